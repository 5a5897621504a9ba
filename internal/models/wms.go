package models

// InboundPlan is one line of the inbound plan sheet (WMS0101).
type InboundPlan struct {
	ID           string `json:"id"`
	ProductCode  string `json:"productCode"`
	ProductName  string `json:"productName"`
	Category     string `json:"category"`
	Supplier     string `json:"supplier"`
	Quantity     int    `json:"quantity"`
	Unit         string `json:"unit"`
	ExpectedDate string `json:"expectedDate"`
	Status       string `json:"status"`
	Remark       string `json:"remark,omitempty"`
}

// InboundReceipt is one line of the inbound registration sheet (WMS0102).
type InboundReceipt struct {
	ID          string `json:"id"`
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`
	Category    string `json:"category"`
	Supplier    string `json:"supplier"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
	InboundDate string `json:"inboundDate"`
	Status      string `json:"status"`
	Remark      string `json:"remark,omitempty"`
}

// InboundInspection compares expected and received quantities (WMS0103).
type InboundInspection struct {
	ID               string `json:"id"`
	ProductCode      string `json:"productCode"`
	ProductName      string `json:"productName"`
	Category         string `json:"category"`
	Supplier         string `json:"supplier"`
	ExpectedQuantity int    `json:"expectedQuantity"`
	ActualQuantity   int    `json:"actualQuantity"`
	InboundDate      string `json:"inboundDate"`
	Status           string `json:"status"`
	Remark           string `json:"remark,omitempty"`
}

// PutawayOrder assigns received goods to a location (WMS0104).
type PutawayOrder struct {
	ID          string `json:"id"`
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`
	Category    string `json:"category"`
	Supplier    string `json:"supplier"`
	Quantity    int    `json:"quantity"`
	InboundDate string `json:"inboundDate"`
	Status      string `json:"status"`
	Location    string `json:"location,omitempty"`
	Remark      string `json:"remark,omitempty"`
}

// ReturnReceipt is a customer return coming back into stock (WMS0105).
type ReturnReceipt struct {
	ID          string `json:"id"`
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`
	Category    string `json:"category"`
	Customer    string `json:"customer"`
	Quantity    int    `json:"quantity"`
	ReturnDate  string `json:"returnDate"`
	Status      string `json:"status"`
	Reason      string `json:"reason"`
	Remark      string `json:"remark,omitempty"`
}

// InboundHistory is a completed or cancelled inbound (WMS0106).
type InboundHistory struct {
	ID          string `json:"id"`
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`
	Category    string `json:"category"`
	Supplier    string `json:"supplier"`
	Quantity    int    `json:"quantity"`
	InboundDate string `json:"inboundDate"`
	Status      string `json:"status"`
	Location    string `json:"location,omitempty"`
	Remark      string `json:"remark,omitempty"`
}

// OutboundOrder is one line of the outbound registration sheet (WMS0201).
type OutboundOrder struct {
	ID           string `json:"id"`
	ProductCode  string `json:"productCode"`
	ProductName  string `json:"productName"`
	Category     string `json:"category"`
	Customer     string `json:"customer"`
	Quantity     int    `json:"quantity"`
	Unit         string `json:"unit"`
	OutboundDate string `json:"outboundDate"`
	Location     string `json:"location"`
	Status       string `json:"status"`
	Remark       string `json:"remark,omitempty"`
}

// PickingOrder is a pick task for an outbound order (WMS0202).
type PickingOrder struct {
	ID          string `json:"id"`
	OrderNo     string `json:"orderNo"`
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`
	Customer    string `json:"customer"`
	Quantity    int    `json:"quantity"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Remark      string `json:"remark,omitempty"`
}

// StockItem is the on-hand quantity of a product at a location (WMS0301).
type StockItem struct {
	ID          string `json:"id"`
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Quantity    int    `json:"quantity"`
	MinStock    int    `json:"minStock"`
	MaxStock    int    `json:"maxStock"`
	Status      string `json:"status"`
	LastUpdated string `json:"lastUpdated"`
	Remark      string `json:"remark,omitempty"`
}

// StockAdjustment requests a manual change of on-hand stock (WMS0302).
type StockAdjustment struct {
	ID              string `json:"id"`
	ProductCode     string `json:"productCode"`
	ProductName     string `json:"productName"`
	Location        string `json:"location"`
	CurrentQuantity int    `json:"currentQuantity"`
	AdjustQuantity  int    `json:"adjustQuantity"`
	Reason          string `json:"reason"`
	AdjustmentType  string `json:"adjustmentType"`
	Status          string `json:"status"`
	RequestDate     string `json:"requestDate"`
	Approver        string `json:"approver,omitempty"`
	Remark          string `json:"remark,omitempty"`
}

// StockCount is a cycle count result (WMS0303). Difference is always
// ActualQuantity minus SystemQuantity.
type StockCount struct {
	ID             string `json:"id"`
	ProductCode    string `json:"productCode"`
	ProductName    string `json:"productName"`
	Location       string `json:"location"`
	SystemQuantity int    `json:"systemQuantity"`
	ActualQuantity int    `json:"actualQuantity"`
	Difference     int    `json:"difference"`
	Status         string `json:"status"`
	CountDate      string `json:"countDate"`
	Counter        string `json:"counter,omitempty"`
	Remark         string `json:"remark,omitempty"`
}

// Lot tracks a production batch and its expiry (WMS0304).
type Lot struct {
	ID              string `json:"id"`
	LotNo           string `json:"lotNo"`
	ProductCode     string `json:"productCode"`
	ProductName     string `json:"productName"`
	Location        string `json:"location"`
	Quantity        int    `json:"quantity"`
	ManufactureDate string `json:"manufactureDate"`
	ExpiryDate      string `json:"expiryDate"`
	Status          string `json:"status"`
	Supplier        string `json:"supplier"`
	Remark          string `json:"remark,omitempty"`
}

// Serial tracks a single serialised unit (WMS0305).
type Serial struct {
	ID           string `json:"id"`
	SerialNo     string `json:"serialNo"`
	LotNo        string `json:"lotNo"`
	ProductCode  string `json:"productCode"`
	ProductName  string `json:"productName"`
	Location     string `json:"location"`
	Status       string `json:"status"`
	InboundDate  string `json:"inboundDate"`
	OutboundDate string `json:"outboundDate,omitempty"`
	Customer     string `json:"customer,omitempty"`
	Remark       string `json:"remark,omitempty"`
}

// WarehouseTransfer moves stock between warehouses (WMS0402).
type WarehouseTransfer struct {
	ID            string `json:"id"`
	ProductCode   string `json:"productCode"`
	ProductName   string `json:"productName"`
	FromWarehouse string `json:"fromWarehouse"`
	FromLocation  string `json:"fromLocation"`
	ToWarehouse   string `json:"toWarehouse"`
	ToLocation    string `json:"toLocation"`
	Quantity      int    `json:"quantity"`
	Status        string `json:"status"`
	TransferDate  string `json:"transferDate,omitempty"`
	TransferBy    string `json:"transferBy,omitempty"`
	Remark        string `json:"remark,omitempty"`
}

// Replenishment refills a picking location from storage (WMS0403).
type Replenishment struct {
	ID                string `json:"id"`
	ProductCode       string `json:"productCode"`
	ProductName       string `json:"productName"`
	FromLocation      string `json:"fromLocation"`
	ToLocation        string `json:"toLocation"`
	CurrentQuantity   int    `json:"currentQuantity"`
	MinQuantity       int    `json:"minQuantity"`
	MaxQuantity       int    `json:"maxQuantity"`
	ReplenishQuantity int    `json:"replenishQuantity"`
	Status            string `json:"status"`
	Priority          string `json:"priority"`
	ReplenishDate     string `json:"replenishDate,omitempty"`
	ReplenishBy       string `json:"replenishBy,omitempty"`
	Remark            string `json:"remark,omitempty"`
}

// TransferHistory is a finished stock movement of any kind (WMS0404).
type TransferHistory struct {
	ID            string `json:"id"`
	TransferType  string `json:"transferType"`
	ProductCode   string `json:"productCode"`
	ProductName   string `json:"productName"`
	FromWarehouse string `json:"fromWarehouse"`
	FromLocation  string `json:"fromLocation"`
	ToWarehouse   string `json:"toWarehouse"`
	ToLocation    string `json:"toLocation"`
	Quantity      int    `json:"quantity"`
	Status        string `json:"status"`
	TransferDate  string `json:"transferDate"`
	TransferBy    string `json:"transferBy"`
	Remark        string `json:"remark,omitempty"`
}

// Barcode is an issued barcode (WMS0501).
type Barcode struct {
	ID            string `json:"id"`
	ProductCode   string `json:"productCode"`
	ProductName   string `json:"productName"`
	BarcodeType   string `json:"barcodeType"`
	BarcodeFormat string `json:"barcodeFormat"`
	BarcodeData   string `json:"barcodeData"`
	Quantity      int    `json:"quantity"`
	Status        string `json:"status"`
	CreateDate    string `json:"createDate"`
	CreateBy      string `json:"createBy"`
	Remark        string `json:"remark,omitempty"`
}

// LabelElement is one positioned item of a label template. Units are mm.
type LabelElement struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Content       string  `json:"content"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	FontSize      int     `json:"fontSize,omitempty"`
	FontFamily    string  `json:"fontFamily,omitempty"`
	BarcodeType   string  `json:"barcodeType,omitempty"`
	BarcodeFormat string  `json:"barcodeFormat,omitempty"`
}

// LabelTemplate is a printable label layout (WMS0502).
type LabelTemplate struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Width       float64        `json:"width"`
	Height      float64        `json:"height"`
	Orientation string         `json:"orientation"`
	Elements    []LabelElement `json:"elements"`
	CreateDate  string         `json:"createDate"`
	CreateBy    string         `json:"createBy"`
	Remark      string         `json:"remark,omitempty"`
}

// LabelPrintJob is a batch of labels sent to a printer (WMS0503).
type LabelPrintJob struct {
	ID           string `json:"id"`
	TemplateID   string `json:"templateId"`
	TemplateName string `json:"templateName"`
	Category     string `json:"category"`
	PrintCount   int    `json:"printCount"`
	Status       string `json:"status"`
	PrintDate    string `json:"printDate"`
	PrintBy      string `json:"printBy"`
	Remark       string `json:"remark,omitempty"`
}

// Product is the item master (WMS0601).
type Product struct {
	ID             string  `json:"id"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Unit           string  `json:"unit"`
	StandardUnit   string  `json:"standardUnit"`
	ConversionRate float64 `json:"conversionRate"`
	Barcode        string  `json:"barcode"`
	Status         string  `json:"status"`
	Remark         string  `json:"remark,omitempty"`
}

// Vendor is a supplier or customer (WMS0602).
type Vendor struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Status        string `json:"status"`
	Remark        string `json:"remark,omitempty"`
}

// Warehouse is a physical storage site (WMS0603).
type Warehouse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Address      string `json:"address"`
	Manager      string `json:"manager"`
	Phone        string `json:"phone"`
	Capacity     int    `json:"capacity"`
	UsedCapacity int    `json:"usedCapacity"`
	Status       string `json:"status"`
	Remark       string `json:"remark,omitempty"`
}

// Location is a bin inside a warehouse (WMS0604).
type Location struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	WarehouseCode string `json:"warehouseCode"`
	WarehouseName string `json:"warehouseName"`
	Type          string `json:"type"`
	Area          string `json:"area"`
	Rack          string `json:"rack"`
	Level         string `json:"level"`
	Position      string `json:"position"`
	Capacity      int    `json:"capacity"`
	UsedCapacity  int    `json:"usedCapacity"`
	Status        string `json:"status"`
	Remark        string `json:"remark,omitempty"`
}

// Area is a zone of a warehouse (WMS0605).
type Area struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	WarehouseCode string `json:"warehouseCode"`
	WarehouseName string `json:"warehouseName"`
	Type          string `json:"type"`
	TotalCapacity int    `json:"totalCapacity"`
	UsedCapacity  int    `json:"usedCapacity"`
	Status        string `json:"status"`
	CreateBy      string `json:"createBy"`
	Remark        string `json:"remark,omitempty"`
}

// Unit is a unit of measure. Every unit converts to its BaseUnit by
// ConversionRate; chains end at EA.
type Unit struct {
	ID             string  `json:"id"`
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	BaseUnit       string  `json:"baseUnit"`
	ConversionRate float64 `json:"conversionRate"`
	Status         string  `json:"status"`
	Remark         string  `json:"remark,omitempty"`
}

// Category is a node of the product category tree (WMS0607).
type Category struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	ParentCode *string `json:"parentCode"`
	Level      int     `json:"level"`
	SortOrder  int     `json:"sortOrder"`
	Status     string  `json:"status"`
	Remark     string  `json:"remark,omitempty"`
}
