package screens

import (
	"context"
	"fmt"
	"time"

	"erp/internal/datatable"
	"erp/internal/fixtures"
	"erp/internal/models"
	"erp/internal/store"
	"erp/internal/validation"
	"erp/internal/wms"
)

// WMS groups the warehouse screens.
type WMS struct {
	Plans          *Table[models.InboundPlan]
	Receipts       *Table[models.InboundReceipt]
	Inspections    *Table[models.InboundInspection]
	Putaways       *Table[models.PutawayOrder]
	Returns        *Table[models.ReturnReceipt]
	InboundHistory *Table[models.InboundHistory]
	Outbound       *Table[models.OutboundOrder]
	Pickings       *Table[models.PickingOrder]
	Stock          *Table[models.StockItem]
	Adjustments    *Table[models.StockAdjustment]
	Counts         *Table[models.StockCount]
	Lots           *Table[models.Lot]
	Serials        *Table[models.Serial]
	Transfers      *Table[models.WarehouseTransfer]
	Replenishments *Table[models.Replenishment]
	History        *Table[models.TransferHistory]
	Barcodes       *Table[models.Barcode]
	Templates      *Table[models.LabelTemplate]
	PrintJobs      *Table[models.LabelPrintJob]
	Products       *Table[models.Product]
	Vendors        *Table[models.Vendor]
	Warehouses     *Table[models.Warehouse]
	Locations      *Table[models.Location]
	Areas          *Table[models.Area]
	Units          *Table[models.Unit]
	Categories     *Table[models.Category]
}

func (m *WMS) screens() []Screen {
	return []Screen{
		m.Plans, m.Receipts, m.Inspections, m.Putaways, m.Returns, m.InboundHistory,
		m.Outbound, m.Pickings,
		m.Stock, m.Adjustments, m.Counts, m.Lots, m.Serials,
		m.Transfers, m.Replenishments, m.History,
		m.Barcodes, m.Templates, m.PrintJobs,
		m.Products, m.Vendors, m.Warehouses, m.Locations, m.Areas, m.Units, m.Categories,
	}
}

func requireProduct(ve *validation.ValidationErrors, code, name string) {
	validation.RequireField(ve, "productCode", code)
	validation.RequireField(ve, "productName", name)
}

func newWMS(st *store.Store) *WMS {
	m := &WMS{}
	m.inbound(st)
	m.outbound(st)
	m.inventory(st)
	m.transfer(st)
	m.barcode(st)
	m.master(st)
	return m
}

func (m *WMS) inbound(st *store.Store) {
	type pl = models.InboundPlan
	plStatus := field("status", "상태", func(r pl) string { return r.Status }, validation.PlanStatuses...)
	plDate := field("expectedDate", "입고예정일", func(r pl) string { return r.ExpectedDate })
	m.Plans = New(st, Def[pl]{
		ID:    "WMS0101",
		Title: "입고 예정 등록",
		Spec: datatable.Spec[pl]{
			Search: []datatable.Field[pl]{
				field("productName", "품목명", func(r pl) string { return r.ProductName }),
				field("productCode", "품목코드", func(r pl) string { return r.ProductCode }),
				field("supplier", "공급업체", func(r pl) string { return r.Supplier }),
			},
			Filters: []datatable.Field[pl]{plStatus},
			Date:    &plDate,
			Counts:  []datatable.Field[pl]{plStatus},
		},
		Columns: []datatable.Field[pl]{
			field("productCode", "품목코드", func(r pl) string { return r.ProductCode }),
			field("productName", "품목명", func(r pl) string { return r.ProductName }),
			field("category", "분류", func(r pl) string { return r.Category }),
			field("supplier", "공급업체", func(r pl) string { return r.Supplier }),
			field("quantity", "수량", func(r pl) string { return itoa(r.Quantity) }),
			field("unit", "단위", func(r pl) string { return r.Unit }),
			plDate,
			plStatus,
			field("remark", "비고", func(r pl) string { return r.Remark }),
		},
		Key:      func(r pl) string { return r.ID },
		SetKey:   func(r *pl, id string) { r.ID = id },
		IDPrefix: "PLN",
		Validate: func(r pl, ve *validation.ValidationErrors) {
			requireProduct(ve, r.ProductCode, r.ProductName)
			validation.RequireField(ve, "supplier", r.Supplier)
			validation.ValidatePositiveFloat(ve, "quantity", float64(r.Quantity))
			validation.RequireField(ve, "expectedDate", r.ExpectedDate)
			validation.ValidateDate(ve, "expectedDate", r.ExpectedDate)
			validation.ValidateEnum(ve, "status", r.Status, validation.PlanStatuses)
		},
		Seed: func(time.Time) []pl { return fixtures.InboundPlans() },
	})

	type rc = models.InboundReceipt
	rcStatus := field("status", "상태", func(r rc) string { return r.Status }, validation.ReceiptStatuses...)
	rcDate := field("inboundDate", "입고일", func(r rc) string { return r.InboundDate })
	m.Receipts = New(st, Def[rc]{
		ID:    "WMS0102",
		Title: "입고 등록",
		Spec: datatable.Spec[rc]{
			Search: []datatable.Field[rc]{
				field("productName", "품목명", func(r rc) string { return r.ProductName }),
				field("productCode", "품목코드", func(r rc) string { return r.ProductCode }),
				field("supplier", "공급업체", func(r rc) string { return r.Supplier }),
			},
			Filters: []datatable.Field[rc]{rcStatus},
			Date:    &rcDate,
			Counts:  []datatable.Field[rc]{rcStatus},
		},
		Columns: []datatable.Field[rc]{
			field("productCode", "품목코드", func(r rc) string { return r.ProductCode }),
			field("productName", "품목명", func(r rc) string { return r.ProductName }),
			field("category", "분류", func(r rc) string { return r.Category }),
			field("supplier", "공급업체", func(r rc) string { return r.Supplier }),
			field("quantity", "수량", func(r rc) string { return itoa(r.Quantity) }),
			field("unit", "단위", func(r rc) string { return r.Unit }),
			rcDate,
			rcStatus,
			field("remark", "비고", func(r rc) string { return r.Remark }),
		},
		Key:      func(r rc) string { return r.ID },
		SetKey:   func(r *rc, id string) { r.ID = id },
		IDPrefix: "RCV",
		Validate: func(r rc, ve *validation.ValidationErrors) {
			requireProduct(ve, r.ProductCode, r.ProductName)
			validation.ValidatePositiveFloat(ve, "quantity", float64(r.Quantity))
			validation.RequireField(ve, "inboundDate", r.InboundDate)
			validation.ValidateDate(ve, "inboundDate", r.InboundDate)
			validation.ValidateEnum(ve, "status", r.Status, validation.ReceiptStatuses)
		},
		Seed: func(time.Time) []rc { return fixtures.InboundReceipts() },
	})

	type in = models.InboundInspection
	inStatus := field("status", "상태", func(r in) string { return r.Status }, validation.InspectionStatuses...)
	m.Inspections = New(st, Def[in]{
		ID:    "WMS0103",
		Title: "입고 검수",
		Spec: datatable.Spec[in]{
			Search: []datatable.Field[in]{
				field("productName", "품목명", func(r in) string { return r.ProductName }),
				field("productCode", "품목코드", func(r in) string { return r.ProductCode }),
				field("supplier", "공급업체", func(r in) string { return r.Supplier }),
			},
			Filters: []datatable.Field[in]{inStatus},
			Counts:  []datatable.Field[in]{inStatus},
		},
		Columns: []datatable.Field[in]{
			field("id", "입고번호", func(r in) string { return r.ID }),
			field("productCode", "품목코드", func(r in) string { return r.ProductCode }),
			field("productName", "품목명", func(r in) string { return r.ProductName }),
			field("supplier", "공급업체", func(r in) string { return r.Supplier }),
			field("expectedQuantity", "예정수량", func(r in) string { return itoa(r.ExpectedQuantity) }),
			field("actualQuantity", "실수량", func(r in) string { return itoa(r.ActualQuantity) }),
			field("inboundDate", "입고일", func(r in) string { return r.InboundDate }),
			inStatus,
			field("remark", "비고", func(r in) string { return r.Remark }),
		},
		Key:      func(r in) string { return r.ID },
		SetKey:   func(r *in, id string) { r.ID = id },
		IDPrefix: "INB",
		Validate: func(r in, ve *validation.ValidationErrors) {
			requireProduct(ve, r.ProductCode, r.ProductName)
			validation.ValidateNonNegativeInt(ve, "expectedQuantity", r.ExpectedQuantity)
			validation.ValidateNonNegativeInt(ve, "actualQuantity", r.ActualQuantity)
			validation.ValidateDate(ve, "inboundDate", r.InboundDate)
			validation.ValidateEnum(ve, "status", r.Status, validation.InspectionStatuses)
		},
		Seed: func(time.Time) []in { return fixtures.Inspections() },
	})

	type pa = models.PutawayOrder
	paStatus := field("status", "상태", func(r pa) string { return r.Status }, validation.PutawayStatuses...)
	m.Putaways = New(st, Def[pa]{
		ID:    "WMS0104",
		Title: "적치 지시",
		Spec: datatable.Spec[pa]{
			Search: []datatable.Field[pa]{
				field("productName", "품목명", func(r pa) string { return r.ProductName }),
				field("productCode", "품목코드", func(r pa) string { return r.ProductCode }),
				field("supplier", "공급업체", func(r pa) string { return r.Supplier }),
			},
			Filters: []datatable.Field[pa]{paStatus},
			Counts:  []datatable.Field[pa]{paStatus},
		},
		Columns: []datatable.Field[pa]{
			field("id", "입고번호", func(r pa) string { return r.ID }),
			field("productCode", "품목코드", func(r pa) string { return r.ProductCode }),
			field("productName", "품목명", func(r pa) string { return r.ProductName }),
			field("quantity", "수량", func(r pa) string { return itoa(r.Quantity) }),
			field("inboundDate", "입고일", func(r pa) string { return r.InboundDate }),
			field("location", "적치위치", func(r pa) string { return orDash(&r.Location) }),
			paStatus,
			field("remark", "비고", func(r pa) string { return r.Remark }),
		},
		Key:      func(r pa) string { return r.ID },
		SetKey:   func(r *pa, id string) { r.ID = id },
		IDPrefix: "INB",
		Validate: func(r pa, ve *validation.ValidationErrors) {
			requireProduct(ve, r.ProductCode, r.ProductName)
			validation.ValidatePositiveFloat(ve, "quantity", float64(r.Quantity))
			validation.ValidateEnum(ve, "status", r.Status, validation.PutawayStatuses)
			if r.Status == "적치완료" {
				validation.RequireField(ve, "location", r.Location)
			}
		},
		Seed: func(time.Time) []pa { return fixtures.Putaways() },
	})

	type rt = models.ReturnReceipt
	rtStatus := field("status", "상태", func(r rt) string { return r.Status }, validation.ReceiptStatuses...)
	rtDate := field("returnDate", "반품일", func(r rt) string { return r.ReturnDate })
	m.Returns = New(st, Def[rt]{
		ID:    "WMS0105",
		Title: "반품 입고",
		Spec: datatable.Spec[rt]{
			Search: []datatable.Field[rt]{
				field("productName", "품목명", func(r rt) string { return r.ProductName }),
				field("productCode", "품목코드", func(r rt) string { return r.ProductCode }),
				field("customer", "고객사", func(r rt) string { return r.Customer }),
			},
			Filters: []datatable.Field[rt]{rtStatus},
			Date:    &rtDate,
			Counts:  []datatable.Field[rt]{rtStatus},
		},
		Columns: []datatable.Field[rt]{
			field("id", "반품번호", func(r rt) string { return r.ID }),
			field("productName", "품목명", func(r rt) string { return r.ProductName }),
			field("customer", "고객사", func(r rt) string { return r.Customer }),
			field("quantity", "수량", func(r rt) string { return itoa(r.Quantity) }),
			rtDate,
			field("reason", "반품사유", func(r rt) string { return r.Reason }),
			rtStatus,
			field("remark", "비고", func(r rt) string { return r.Remark }),
		},
		Key:      func(r rt) string { return r.ID },
		SetKey:   func(r *rt, id string) { r.ID = id },
		IDPrefix: "RET",
		Validate: func(r rt, ve *validation.ValidationErrors) {
			requireProduct(ve, r.ProductCode, r.ProductName)
			validation.RequireField(ve, "customer", r.Customer)
			validation.ValidatePositiveFloat(ve, "quantity", float64(r.Quantity))
			validation.ValidateDate(ve, "returnDate", r.ReturnDate)
			validation.ValidateEnum(ve, "status", r.Status, validation.ReceiptStatuses)
		},
		Seed: func(time.Time) []rt { return fixtures.Returns() },
	})

	type ih = models.InboundHistory
	ihStatus := field("status", "상태", func(r ih) string { return r.Status }, validation.ReceiptStatuses...)
	ihDate := field("inboundDate", "입고일", func(r ih) string { return r.InboundDate })
	m.InboundHistory = New(st, Def[ih]{
		ID:    "WMS0106",
		Title: "입고 내역 조회",
		Spec: datatable.Spec[ih]{
			Search: []datatable.Field[ih]{
				field("productName", "품목명", func(r ih) string { return r.ProductName }),
				field("productCode", "품목코드", func(r ih) string { return r.ProductCode }),
				field("supplier", "공급업체", func(r ih) string { return r.Supplier }),
			},
			Filters: []datatable.Field[ih]{ihStatus},
			Date:    &ihDate,
			Counts:  []datatable.Field[ih]{ihStatus},
		},
		Columns: []datatable.Field[ih]{
			field("id", "입고번호", func(r ih) string { return r.ID }),
			field("productName", "품목명", func(r ih) string { return r.ProductName }),
			field("supplier", "공급업체", func(r ih) string { return r.Supplier }),
			field("quantity", "수량", func(r ih) string { return itoa(r.Quantity) }),
			ihDate,
			field("location", "위치", func(r ih) string { return orDash(&r.Location) }),
			ihStatus,
			field("remark", "비고", func(r ih) string { return r.Remark }),
		},
		Key:      func(r ih) string { return r.ID },
		SetKey:   func(r *ih, id string) { r.ID = id },
		IDPrefix: "INB",
		Validate: func(r ih, ve *validation.ValidationErrors) {
			requireProduct(ve, r.ProductCode, r.ProductName)
			validation.ValidateDate(ve, "inboundDate", r.InboundDate)
			validation.ValidateEnum(ve, "status", r.Status, validation.ReceiptStatuses)
		},
		Seed: func(time.Time) []ih { return fixtures.InboundHistory() },
	})
}

func (m *WMS) outbound(st *store.Store) {
	type ob = models.OutboundOrder
	obStatus := field("status", "상태", func(r ob) string { return r.Status }, validation.OutboundStatuses...)
	obDate := field("outboundDate", "출고일", func(r ob) string { return r.OutboundDate })
	m.Outbound = New(st, Def[ob]{
		ID:    "WMS0201",
		Title: "출고 주문 등록",
		Spec: datatable.Spec[ob]{
			Search: []datatable.Field[ob]{
				field("productName", "품목명", func(r ob) string { return r.ProductName }),
				field("productCode", "품목코드", func(r ob) string { return r.ProductCode }),
				field("customer", "고객사", func(r ob) string { return r.Customer }),
			},
			Filters: []datatable.Field[ob]{obStatus},
			Date:    &obDate,
			Counts:  []datatable.Field[ob]{obStatus},
		},
		Columns: []datatable.Field[ob]{
			field("productCode", "품목코드", func(r ob) string { return r.ProductCode }),
			field("productName", "품목명", func(r ob) string { return r.ProductName }),
			field("customer", "고객사", func(r ob) string { return r.Customer }),
			field("quantity", "수량", func(r ob) string { return itoa(r.Quantity) }),
			field("unit", "단위", func(r ob) string { return r.Unit }),
			obDate,
			field("location", "출고위치", func(r ob) string { return r.Location }),
			obStatus,
			field("remark", "비고", func(r ob) string { return r.Remark }),
		},
		Key:      func(r ob) string { return r.ID },
		SetKey:   func(r *ob, id string) { r.ID = id },
		IDPrefix: "OUT",
		Validate: func(r ob, ve *validation.ValidationErrors) {
			requireProduct(ve, r.ProductCode, r.ProductName)
			validation.RequireField(ve, "customer", r.Customer)
			validation.ValidatePositiveFloat(ve, "quantity", float64(r.Quantity))
			validation.RequireField(ve, "outboundDate", r.OutboundDate)
			validation.ValidateDate(ve, "outboundDate", r.OutboundDate)
			validation.ValidateEnum(ve, "status", r.Status, validation.OutboundStatuses)
		},
		Seed: func(time.Time) []ob { return fixtures.OutboundOrders() },
	})

	type pk = models.PickingOrder
	pkStatus := field("status", "상태", func(r pk) string { return r.Status }, validation.PickingStatuses...)
	pkPriority := field("priority", "우선순위", func(r pk) string { return r.Priority }, validation.Priorities...)
	m.Pickings = New(st, Def[pk]{
		ID:    "WMS0202",
		Title: "피킹 지시",
		Spec: datatable.Spec[pk]{
			Search: []datatable.Field[pk]{
				field("productName", "품목명", func(r pk) string { return r.ProductName }),
				field("productCode", "품목코드", func(r pk) string { return r.ProductCode }),
				field("customer", "고객사", func(r pk) string { return r.Customer }),
				field("orderNo", "주문번호", func(r pk) string { return r.OrderNo }),
			},
			Filters: []datatable.Field[pk]{pkStatus, pkPriority},
			Counts:  []datatable.Field[pk]{pkStatus, pkPriority},
		},
		Columns: []datatable.Field[pk]{
			field("id", "피킹번호", func(r pk) string { return r.ID }),
			field("orderNo", "주문번호", func(r pk) string { return r.OrderNo }),
			field("productName", "품목명", func(r pk) string { return r.ProductName }),
			field("customer", "고객사", func(r pk) string { return r.Customer }),
			field("quantity", "수량", func(r pk) string { return itoa(r.Quantity) }),
			field("location", "위치", func(r pk) string { return r.Location }),
			pkStatus,
			pkPriority,
			field("remark", "비고", func(r pk) string { return r.Remark }),
		},
		Key:      func(r pk) string { return r.ID },
		SetKey:   func(r *pk, id string) { r.ID = id },
		IDPrefix: "PKG",
		Validate: func(r pk, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "orderNo", r.OrderNo)
			requireProduct(ve, r.ProductCode, r.ProductName)
			validation.ValidatePositiveFloat(ve, "quantity", float64(r.Quantity))
			validation.ValidateEnum(ve, "status", r.Status, validation.PickingStatuses)
			validation.ValidateEnum(ve, "priority", r.Priority, validation.Priorities)
		},
		Seed: func(time.Time) []pk { return fixtures.Pickings() },
	})
}

func (m *WMS) inventory(st *store.Store) {
	type sk = models.StockItem
	skStatus := field("status", "상태", func(r sk) string { return r.Status }, validation.StockStatuses...)
	skCategory := field("category", "분류", func(r sk) string { return r.Category })
	m.Stock = New(st, Def[sk]{
		ID:    "WMS0301",
		Title: "재고 현황 조회",
		Spec: datatable.Spec[sk]{
			Search: []datatable.Field[sk]{
				field("productName", "품목명", func(r sk) string { return r.ProductName }),
				field("productCode", "품목코드", func(r sk) string { return r.ProductCode }),
				field("location", "위치", func(r sk) string { return r.Location }),
			},
			Filters: []datatable.Field[sk]{skCategory, skStatus},
			Counts:  []datatable.Field[sk]{skStatus},
		},
		Columns: []datatable.Field[sk]{
			field("productCode", "품목코드", func(r sk) string { return r.ProductCode }),
			field("productName", "품목명", func(r sk) string { return r.ProductName }),
			skCategory,
			field("location", "위치", func(r sk) string { return r.Location }),
			field("quantity", "현재고", func(r sk) string { return itoa(r.Quantity) }),
			field("minStock", "최소재고", func(r sk) string { return itoa(r.MinStock) }),
			field("maxStock", "최대재고", func(r sk) string { return itoa(r.MaxStock) }),
			skStatus,
			field("lastUpdated", "최종수정일", func(r sk) string { return r.LastUpdated }),
		},
		Key:      func(r sk) string { return r.ID },
		SetKey:   func(r *sk, id string) { r.ID = id },
		IDPrefix: "INV",
		Prepare: func(r *sk) error {
			wms.NormalizeStock(r)
			return nil
		},
		Validate: func(r sk, ve *validation.ValidationErrors) {
			requireProduct(ve, r.ProductCode, r.ProductName)
			validation.ValidateNonNegativeInt(ve, "quantity", r.Quantity)
			validation.ValidateNonNegativeInt(ve, "minStock", r.MinStock)
			validation.ValidateNonNegativeInt(ve, "maxStock", r.MaxStock)
			if r.MaxStock > 0 && r.MinStock > r.MaxStock {
				ve.Add("maxStock", "must not be below minStock")
			}
			validation.ValidateDate(ve, "lastUpdated", r.LastUpdated)
		},
		Seed: func(time.Time) []sk { return fixtures.Stock() },
	})

	type ad = models.StockAdjustment
	adStatus := field("status", "상태", func(r ad) string { return r.Status }, validation.AdjustmentStatuses...)
	adType := field("adjustmentType", "조정유형", func(r ad) string { return r.AdjustmentType }, validation.AdjustmentTypes...)
	m.Adjustments = New(st, Def[ad]{
		ID:    "WMS0302",
		Title: "재고 조정",
		Spec: datatable.Spec[ad]{
			Search: []datatable.Field[ad]{
				field("productName", "품목명", func(r ad) string { return r.ProductName }),
				field("productCode", "품목코드", func(r ad) string { return r.ProductCode }),
				field("location", "위치", func(r ad) string { return r.Location }),
			},
			Filters: []datatable.Field[ad]{adStatus, adType},
			Counts:  []datatable.Field[ad]{adStatus},
		},
		Columns: []datatable.Field[ad]{
			field("id", "조정번호", func(r ad) string { return r.ID }),
			field("productName", "품목명", func(r ad) string { return r.ProductName }),
			field("location", "위치", func(r ad) string { return r.Location }),
			field("currentQuantity", "현재고", func(r ad) string { return itoa(r.CurrentQuantity) }),
			field("adjustQuantity", "조정수량", func(r ad) string { return itoa(r.AdjustQuantity) }),
			adType,
			field("reason", "사유", func(r ad) string { return r.Reason }),
			adStatus,
			field("requestDate", "요청일", func(r ad) string { return r.RequestDate }),
			field("approver", "승인자", func(r ad) string { return r.Approver }),
		},
		Key:      func(r ad) string { return r.ID },
		SetKey:   func(r *ad, id string) { r.ID = id },
		IDPrefix: "ADJ",
		Validate: func(r ad, ve *validation.ValidationErrors) {
			requireProduct(ve, r.ProductCode, r.ProductName)
			validation.RequireField(ve, "reason", r.Reason)
			validation.ValidatePositiveFloat(ve, "adjustQuantity", float64(r.AdjustQuantity))
			validation.ValidateEnum(ve, "adjustmentType", r.AdjustmentType, validation.AdjustmentTypes)
			validation.ValidateEnum(ve, "status", r.Status, validation.AdjustmentStatuses)
			validation.ValidateDate(ve, "requestDate", r.RequestDate)
			if r.AdjustmentType == "감소" && r.AdjustQuantity > r.CurrentQuantity {
				ve.Add("adjustQuantity", "must not exceed currentQuantity")
			}
		},
		Seed: func(time.Time) []ad { return fixtures.Adjustments() },
	})

	type ct = models.StockCount
	ctStatus := field("status", "상태", func(r ct) string { return r.Status }, validation.CountStatuses...)
	ctDate := field("countDate", "실사일", func(r ct) string { return r.CountDate })
	m.Counts = New(st, Def[ct]{
		ID:    "WMS0303",
		Title: "재고 실사",
		Spec: datatable.Spec[ct]{
			Search: []datatable.Field[ct]{
				field("productName", "품목명", func(r ct) string { return r.ProductName }),
				field("productCode", "품목코드", func(r ct) string { return r.ProductCode }),
				field("location", "위치", func(r ct) string { return r.Location }),
			},
			Filters: []datatable.Field[ct]{ctStatus},
			Date:    &ctDate,
			Counts:  []datatable.Field[ct]{ctStatus},
		},
		Columns: []datatable.Field[ct]{
			field("id", "실사번호", func(r ct) string { return r.ID }),
			field("productName", "품목명", func(r ct) string { return r.ProductName }),
			field("location", "위치", func(r ct) string { return r.Location }),
			field("systemQuantity", "전산수량", func(r ct) string { return itoa(r.SystemQuantity) }),
			field("actualQuantity", "실사수량", func(r ct) string { return itoa(r.ActualQuantity) }),
			field("difference", "차이", func(r ct) string { return fmt.Sprintf("%+d", r.Difference) }),
			ctStatus,
			ctDate,
			field("counter", "실사자", func(r ct) string { return r.Counter }),
		},
		Key:      func(r ct) string { return r.ID },
		SetKey:   func(r *ct, id string) { r.ID = id },
		IDPrefix: "CNT",
		Prepare: func(r *ct) error {
			wms.NormalizeCount(r)
			return nil
		},
		Validate: func(r ct, ve *validation.ValidationErrors) {
			requireProduct(ve, r.ProductCode, r.ProductName)
			validation.ValidateNonNegativeInt(ve, "systemQuantity", r.SystemQuantity)
			validation.ValidateNonNegativeInt(ve, "actualQuantity", r.ActualQuantity)
			validation.ValidateEnum(ve, "status", r.Status, validation.CountStatuses)
			validation.ValidateDate(ve, "countDate", r.CountDate)
		},
		Seed: func(time.Time) []ct { return fixtures.Counts() },
	})

	type lt = models.Lot
	ltStatus := field("status", "상태", func(r lt) string { return r.Status }, validation.LotStatuses...)
	ltExpiry := field("expiryDate", "유효기간", func(r lt) string { return r.ExpiryDate })
	m.Lots = New(st, Def[lt]{
		ID:    "WMS0304",
		Title: "로트/유효기간 관리",
		Spec: datatable.Spec[lt]{
			Search: []datatable.Field[lt]{
				field("productName", "품목명", func(r lt) string { return r.ProductName }),
				field("productCode", "품목코드", func(r lt) string { return r.ProductCode }),
				field("lotNo", "로트번호", func(r lt) string { return r.LotNo }),
				field("location", "위치", func(r lt) string { return r.Location }),
			},
			Filters: []datatable.Field[lt]{ltStatus},
			Date:    &ltExpiry,
			Counts:  []datatable.Field[lt]{ltStatus},
		},
		Columns: []datatable.Field[lt]{
			field("lotNo", "로트번호", func(r lt) string { return r.LotNo }),
			field("productName", "품목명", func(r lt) string { return r.ProductName }),
			field("location", "위치", func(r lt) string { return r.Location }),
			field("quantity", "수량", func(r lt) string { return itoa(r.Quantity) }),
			field("manufactureDate", "제조일", func(r lt) string { return r.ManufactureDate }),
			ltExpiry,
			ltStatus,
			field("supplier", "공급업체", func(r lt) string { return r.Supplier }),
		},
		Key:      func(r lt) string { return r.ID },
		SetKey:   func(r *lt, id string) { r.ID = id },
		IDPrefix: "LOT",
		Validate: func(r lt, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "lotNo", r.LotNo)
			requireProduct(ve, r.ProductCode, r.ProductName)
			validation.ValidateNonNegativeInt(ve, "quantity", r.Quantity)
			validation.ValidateDateRange(ve, "manufactureDate", r.ManufactureDate, "expiryDate", r.ExpiryDate)
			validation.ValidateEnum(ve, "status", r.Status, validation.LotStatuses)
		},
		Seed: func(time.Time) []lt { return fixtures.Lots() },
	})

	type sr = models.Serial
	srStatus := field("status", "상태", func(r sr) string { return r.Status }, validation.SerialStatuses...)
	m.Serials = New(st, Def[sr]{
		ID:    "WMS0305",
		Title: "시리얼번호 관리",
		Spec: datatable.Spec[sr]{
			Search: []datatable.Field[sr]{
				field("productName", "품목명", func(r sr) string { return r.ProductName }),
				field("productCode", "품목코드", func(r sr) string { return r.ProductCode }),
				field("serialNo", "시리얼번호", func(r sr) string { return r.SerialNo }),
				field("lotNo", "로트번호", func(r sr) string { return r.LotNo }),
			},
			Filters: []datatable.Field[sr]{srStatus},
			Counts:  []datatable.Field[sr]{srStatus},
		},
		Columns: []datatable.Field[sr]{
			field("serialNo", "시리얼번호", func(r sr) string { return r.SerialNo }),
			field("lotNo", "로트번호", func(r sr) string { return r.LotNo }),
			field("productName", "품목명", func(r sr) string { return r.ProductName }),
			srStatus,
			field("inboundDate", "입고일", func(r sr) string { return r.InboundDate }),
			field("outboundDate", "출고일", func(r sr) string { return orDash(&r.OutboundDate) }),
			field("customer", "고객사", func(r sr) string { return orDash(&r.Customer) }),
		},
		Key:      func(r sr) string { return r.ID },
		SetKey:   func(r *sr, id string) { r.ID = id },
		IDPrefix: "SER",
		Validate: func(r sr, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "serialNo", r.SerialNo)
			requireProduct(ve, r.ProductCode, r.ProductName)
			validation.ValidateEnum(ve, "status", r.Status, validation.SerialStatuses)
			validation.ValidateDateRange(ve, "inboundDate", r.InboundDate, "outboundDate", r.OutboundDate)
		},
		Seed: func(time.Time) []sr { return fixtures.Serials() },
	})
}

func (m *WMS) transfer(st *store.Store) {
	type wt = models.WarehouseTransfer
	wtStatus := field("status", "상태", func(r wt) string { return r.Status }, validation.TransferStatuses...)
	m.Transfers = New(st, Def[wt]{
		ID:    "WMS0402",
		Title: "창고 간 이동",
		Spec: datatable.Spec[wt]{
			Search: []datatable.Field[wt]{
				field("productName", "품목명", func(r wt) string { return r.ProductName }),
				field("productCode", "품목코드", func(r wt) string { return r.ProductCode }),
				field("fromWarehouse", "출발창고", func(r wt) string { return r.FromWarehouse }),
				field("toWarehouse", "도착창고", func(r wt) string { return r.ToWarehouse }),
			},
			Filters: []datatable.Field[wt]{wtStatus},
			Counts:  []datatable.Field[wt]{wtStatus},
		},
		Columns: []datatable.Field[wt]{
			field("id", "이동번호", func(r wt) string { return r.ID }),
			field("productName", "품목명", func(r wt) string { return r.ProductName }),
			field("from", "출발", func(r wt) string { return r.FromWarehouse + " " + r.FromLocation }),
			field("to", "도착", func(r wt) string { return r.ToWarehouse + " " + r.ToLocation }),
			field("quantity", "수량", func(r wt) string { return itoa(r.Quantity) }),
			wtStatus,
			field("transferDate", "이동일", func(r wt) string { return orDash(&r.TransferDate) }),
			field("transferBy", "담당자", func(r wt) string { return orDash(&r.TransferBy) }),
		},
		Key:      func(r wt) string { return r.ID },
		SetKey:   func(r *wt, id string) { r.ID = id },
		IDPrefix: "WTRF",
		Validate: func(r wt, ve *validation.ValidationErrors) {
			requireProduct(ve, r.ProductCode, r.ProductName)
			validation.RequireField(ve, "fromWarehouse", r.FromWarehouse)
			validation.RequireField(ve, "toWarehouse", r.ToWarehouse)
			if r.FromWarehouse != "" && r.FromWarehouse == r.ToWarehouse {
				ve.Add("toWarehouse", "must differ from fromWarehouse")
			}
			validation.ValidatePositiveFloat(ve, "quantity", float64(r.Quantity))
			validation.ValidateEnum(ve, "status", r.Status, validation.TransferStatuses)
			validation.ValidateDate(ve, "transferDate", r.TransferDate)
		},
		Seed: func(time.Time) []wt { return fixtures.WarehouseTransfers() },
	})

	type rp = models.Replenishment
	rpStatus := field("status", "상태", func(r rp) string { return r.Status }, validation.TransferStatuses...)
	rpPriority := field("priority", "우선순위", func(r rp) string { return r.Priority }, validation.Priorities...)
	m.Replenishments = New(st, Def[rp]{
		ID:    "WMS0403",
		Title: "피킹존 보충",
		Spec: datatable.Spec[rp]{
			Search: []datatable.Field[rp]{
				field("productName", "품목명", func(r rp) string { return r.ProductName }),
				field("productCode", "품목코드", func(r rp) string { return r.ProductCode }),
				field("fromLocation", "출발위치", func(r rp) string { return r.FromLocation }),
				field("toLocation", "도착위치", func(r rp) string { return r.ToLocation }),
			},
			Filters: []datatable.Field[rp]{rpStatus, rpPriority},
			Counts:  []datatable.Field[rp]{rpStatus, rpPriority},
		},
		Columns: []datatable.Field[rp]{
			field("id", "보충번호", func(r rp) string { return r.ID }),
			field("productName", "품목명", func(r rp) string { return r.ProductName }),
			field("fromLocation", "출발위치", func(r rp) string { return r.FromLocation }),
			field("toLocation", "도착위치", func(r rp) string { return r.ToLocation }),
			field("currentQuantity", "현재수량", func(r rp) string { return itoa(r.CurrentQuantity) }),
			field("minQuantity", "최소", func(r rp) string { return itoa(r.MinQuantity) }),
			field("maxQuantity", "최대", func(r rp) string { return itoa(r.MaxQuantity) }),
			field("replenishQuantity", "보충수량", func(r rp) string { return itoa(r.ReplenishQuantity) }),
			rpStatus,
			rpPriority,
		},
		Key:      func(r rp) string { return r.ID },
		SetKey:   func(r *rp, id string) { r.ID = id },
		IDPrefix: "RPL",
		Validate: func(r rp, ve *validation.ValidationErrors) {
			requireProduct(ve, r.ProductCode, r.ProductName)
			validation.RequireField(ve, "fromLocation", r.FromLocation)
			validation.RequireField(ve, "toLocation", r.ToLocation)
			validation.ValidatePositiveFloat(ve, "replenishQuantity", float64(r.ReplenishQuantity))
			if r.CurrentQuantity+r.ReplenishQuantity > r.MaxQuantity && r.MaxQuantity > 0 {
				ve.Add("replenishQuantity", "would exceed maxQuantity")
			}
			validation.ValidateEnum(ve, "status", r.Status, validation.TransferStatuses)
			validation.ValidateEnum(ve, "priority", r.Priority, validation.Priorities)
		},
		Seed: func(time.Time) []rp { return fixtures.Replenishments() },
	})

	type th = models.TransferHistory
	thType := field("transferType", "이동유형", func(r th) string { return r.TransferType }, validation.TransferTypes...)
	thStatus := field("status", "상태", func(r th) string { return r.Status }, validation.HistoryStatuses...)
	thDate := field("transferDate", "이동일", func(r th) string { return r.TransferDate })
	m.History = New(st, Def[th]{
		ID:    "WMS0404",
		Title: "재고 이동 내역 조회",
		Spec: datatable.Spec[th]{
			Search: []datatable.Field[th]{
				field("productName", "품목명", func(r th) string { return r.ProductName }),
				field("productCode", "품목코드", func(r th) string { return r.ProductCode }),
				field("fromLocation", "출발위치", func(r th) string { return r.FromLocation }),
				field("toLocation", "도착위치", func(r th) string { return r.ToLocation }),
			},
			Filters: []datatable.Field[th]{thType, thStatus},
			Date:    &thDate,
			Counts:  []datatable.Field[th]{thType, thStatus},
		},
		Columns: []datatable.Field[th]{
			field("id", "이력번호", func(r th) string { return r.ID }),
			thType,
			field("productName", "품목명", func(r th) string { return r.ProductName }),
			field("from", "출발", func(r th) string { return r.FromWarehouse + " " + r.FromLocation }),
			field("to", "도착", func(r th) string { return r.ToWarehouse + " " + r.ToLocation }),
			field("quantity", "수량", func(r th) string { return itoa(r.Quantity) }),
			thStatus,
			thDate,
			field("transferBy", "담당자", func(r th) string { return r.TransferBy }),
		},
		Key:      func(r th) string { return r.ID },
		SetKey:   func(r *th, id string) { r.ID = id },
		IDPrefix: "HST",
		Validate: func(r th, ve *validation.ValidationErrors) {
			requireProduct(ve, r.ProductCode, r.ProductName)
			validation.ValidateEnum(ve, "transferType", r.TransferType, validation.TransferTypes)
			validation.ValidateEnum(ve, "status", r.Status, validation.HistoryStatuses)
			validation.RequireField(ve, "transferDate", r.TransferDate)
			validation.ValidateDate(ve, "transferDate", r.TransferDate)
		},
		Seed: func(time.Time) []th { return fixtures.TransferHistory() },
	})
}

func (m *WMS) barcode(st *store.Store) {
	type bc = models.Barcode
	bcType := field("barcodeType", "바코드 유형", func(r bc) string { return r.BarcodeType }, validation.BarcodeTypes...)
	bcStatus := field("status", "상태", func(r bc) string { return r.Status }, validation.BarcodeStatuses...)
	m.Barcodes = New(st, Def[bc]{
		ID:    "WMS0501",
		Title: "바코드 생성/관리",
		Spec: datatable.Spec[bc]{
			Search: []datatable.Field[bc]{
				field("productName", "품목명", func(r bc) string { return r.ProductName }),
				field("productCode", "품목코드", func(r bc) string { return r.ProductCode }),
				field("barcodeData", "바코드 데이터", func(r bc) string { return r.BarcodeData }),
			},
			Filters: []datatable.Field[bc]{bcType, bcStatus},
			Counts:  []datatable.Field[bc]{bcStatus, bcType},
		},
		Columns: []datatable.Field[bc]{
			field("id", "바코드 ID", func(r bc) string { return r.ID }),
			field("productName", "품목명", func(r bc) string { return r.ProductName }),
			bcType,
			field("barcodeFormat", "형식", func(r bc) string { return r.BarcodeFormat }),
			field("barcodeData", "바코드 데이터", func(r bc) string { return r.BarcodeData }),
			field("quantity", "수량", func(r bc) string { return itoa(r.Quantity) }),
			bcStatus,
			field("createDate", "생성일", func(r bc) string { return r.CreateDate }),
			field("createBy", "생성자", func(r bc) string { return r.CreateBy }),
		},
		Key:      func(r bc) string { return r.ID },
		SetKey:   func(r *bc, id string) { r.ID = id },
		IDPrefix: "BC",
		Validate: func(r bc, ve *validation.ValidationErrors) {
			requireProduct(ve, r.ProductCode, r.ProductName)
			validation.ValidateEnum(ve, "barcodeType", r.BarcodeType, validation.BarcodeTypes)
			validation.RequireField(ve, "barcodeData", r.BarcodeData)
			validation.ValidateNonNegativeInt(ve, "quantity", r.Quantity)
			validation.ValidateEnum(ve, "status", r.Status, validation.BarcodeStatuses)
			validation.ValidateDate(ve, "createDate", r.CreateDate)
		},
		Seed: func(time.Time) []bc { return fixtures.Barcodes() },
	})

	type tp = models.LabelTemplate
	tpCategory := field("category", "분류", func(r tp) string { return r.Category })
	m.Templates = New(st, Def[tp]{
		ID:    "WMS0502",
		Title: "라벨 디자인",
		Spec: datatable.Spec[tp]{
			Search: []datatable.Field[tp]{
				field("name", "템플릿명", func(r tp) string { return r.Name }),
				tpCategory,
			},
			Filters: []datatable.Field[tp]{tpCategory},
			Counts:  []datatable.Field[tp]{tpCategory},
		},
		Columns: []datatable.Field[tp]{
			field("id", "템플릿 ID", func(r tp) string { return r.ID }),
			field("name", "템플릿명", func(r tp) string { return r.Name }),
			tpCategory,
			field("size", "크기(mm)", func(r tp) string { return ftoa(r.Width) + "x" + ftoa(r.Height) }),
			field("orientation", "방향", func(r tp) string { return r.Orientation }),
			field("elements", "요소 수", func(r tp) string { return itoa(len(r.Elements)) }),
			field("createDate", "생성일", func(r tp) string { return r.CreateDate }),
			field("createBy", "생성자", func(r tp) string { return r.CreateBy }),
		},
		Key:      func(r tp) string { return r.ID },
		SetKey:   func(r *tp, id string) { r.ID = id },
		IDPrefix: "TPL",
		Validate: func(r tp, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "name", r.Name)
			validation.ValidatePositiveFloat(ve, "width", r.Width)
			validation.ValidatePositiveFloat(ve, "height", r.Height)
			validation.ValidateEnum(ve, "orientation", r.Orientation, validation.Orientations)
			for i, e := range r.Elements {
				name := fmt.Sprintf("elements[%d]", i)
				validation.ValidateEnum(ve, name+".type", e.Type, validation.LabelElementTypes)
				if e.X < 0 || e.Y < 0 || e.X+e.Width > r.Width || e.Y+e.Height > r.Height {
					ve.Add(name, "must fit inside the label")
				}
			}
		},
		Seed: func(time.Time) []tp { return fixtures.LabelTemplates() },
	})

	type pj = models.LabelPrintJob
	pjCategory := field("category", "분류", func(r pj) string { return r.Category })
	pjStatus := field("status", "상태", func(r pj) string { return r.Status }, validation.PrintStatuses...)
	pjDate := field("printDate", "출력일", func(r pj) string { return r.PrintDate })
	m.PrintJobs = New(st, Def[pj]{
		ID:    "WMS0503",
		Title: "라벨 출력",
		Spec: datatable.Spec[pj]{
			Search: []datatable.Field[pj]{
				field("templateName", "템플릿명", func(r pj) string { return r.TemplateName }),
				pjCategory,
			},
			Filters: []datatable.Field[pj]{pjCategory, pjStatus},
			Date:    &pjDate,
			Counts:  []datatable.Field[pj]{pjStatus},
		},
		Columns: []datatable.Field[pj]{
			field("id", "출력 ID", func(r pj) string { return r.ID }),
			field("templateName", "템플릿명", func(r pj) string { return r.TemplateName }),
			pjCategory,
			field("printCount", "출력 매수", func(r pj) string { return itoa(r.PrintCount) }),
			pjStatus,
			pjDate,
			field("printBy", "출력자", func(r pj) string { return r.PrintBy }),
		},
		Key:      func(r pj) string { return r.ID },
		SetKey:   func(r *pj, id string) { r.ID = id },
		IDPrefix: "PRT",
		Validate: func(r pj, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "templateId", r.TemplateID)
			validation.ValidatePositiveFloat(ve, "printCount", float64(r.PrintCount))
			validation.ValidateEnum(ve, "status", r.Status, validation.PrintStatuses)
			validation.ValidateDate(ve, "printDate", r.PrintDate)
		},
		Seed: func(time.Time) []pj { return fixtures.PrintJobs() },
	})
}

func (m *WMS) master(st *store.Store) {
	type pr = models.Product
	prCategory := field("category", "분류", func(r pr) string { return r.Category })
	prStatus := field("status", "상태", func(r pr) string { return r.Status }, validation.MasterStatuses...)
	m.Products = New(st, Def[pr]{
		ID:    "WMS0601",
		Title: "품목",
		Spec: datatable.Spec[pr]{
			Search: []datatable.Field[pr]{
				field("code", "품목코드", func(r pr) string { return r.Code }),
				field("name", "품목명", func(r pr) string { return r.Name }),
				field("barcode", "바코드", func(r pr) string { return r.Barcode }),
			},
			Filters: []datatable.Field[pr]{prCategory, prStatus},
			Counts:  []datatable.Field[pr]{prStatus, prCategory},
		},
		Columns: []datatable.Field[pr]{
			field("code", "품목코드", func(r pr) string { return r.Code }),
			field("name", "품목명", func(r pr) string { return r.Name }),
			prCategory,
			field("unit", "단위", func(r pr) string { return r.Unit }),
			field("standardUnit", "기준단위", func(r pr) string { return r.StandardUnit }),
			field("conversionRate", "환산율", func(r pr) string { return ftoa(r.ConversionRate) }),
			field("barcode", "바코드", func(r pr) string { return r.Barcode }),
			prStatus,
		},
		Key:      func(r pr) string { return r.ID },
		SetKey:   func(r *pr, id string) { r.ID = id },
		IDPrefix: "PRD",
		Validate: func(r pr, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "code", r.Code)
			validation.ValidateCode(ve, "code", r.Code)
			validation.RequireField(ve, "name", r.Name)
			validation.ValidatePositiveFloat(ve, "conversionRate", r.ConversionRate)
			validation.ValidateEnum(ve, "status", r.Status, validation.MasterStatuses)
		},
		Seed: func(time.Time) []pr { return fixtures.Products() },
	})

	type vd = models.Vendor
	vdType := field("type", "유형", func(r vd) string { return r.Type }, validation.VendorTypes...)
	vdStatus := field("status", "상태", func(r vd) string { return r.Status }, validation.MasterStatuses...)
	m.Vendors = New(st, Def[vd]{
		ID:    "WMS0602",
		Title: "거래처",
		Spec: datatable.Spec[vd]{
			Search: []datatable.Field[vd]{
				field("code", "거래처코드", func(r vd) string { return r.Code }),
				field("name", "거래처명", func(r vd) string { return r.Name }),
				field("contactPerson", "담당자", func(r vd) string { return r.ContactPerson }),
			},
			Filters: []datatable.Field[vd]{vdType, vdStatus},
			Counts:  []datatable.Field[vd]{vdStatus, vdType},
		},
		Columns: []datatable.Field[vd]{
			field("code", "거래처코드", func(r vd) string { return r.Code }),
			field("name", "거래처명", func(r vd) string { return r.Name }),
			vdType,
			field("contactPerson", "담당자", func(r vd) string { return r.ContactPerson }),
			field("phone", "연락처", func(r vd) string { return r.Phone }),
			field("email", "이메일", func(r vd) string { return r.Email }),
			field("address", "주소", func(r vd) string { return r.Address }),
			vdStatus,
		},
		Key:      func(r vd) string { return r.ID },
		SetKey:   func(r *vd, id string) { r.ID = id },
		IDPrefix: "VND",
		Validate: func(r vd, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "code", r.Code)
			validation.ValidateCode(ve, "code", r.Code)
			validation.RequireField(ve, "name", r.Name)
			validation.ValidateEnum(ve, "type", r.Type, validation.VendorTypes)
			validation.ValidateEmail(ve, "email", r.Email)
			validation.ValidateEnum(ve, "status", r.Status, validation.MasterStatuses)
		},
		Seed: func(time.Time) []vd { return fixtures.Vendors() },
	})

	type wh = models.Warehouse
	whType := field("type", "유형", func(r wh) string { return r.Type }, validation.WarehouseTypes...)
	whStatus := field("status", "상태", func(r wh) string { return r.Status }, validation.MasterStatuses...)
	m.Warehouses = New(st, Def[wh]{
		ID:    "WMS0603",
		Title: "창고",
		Spec: datatable.Spec[wh]{
			Search: []datatable.Field[wh]{
				field("code", "창고코드", func(r wh) string { return r.Code }),
				field("name", "창고명", func(r wh) string { return r.Name }),
				field("manager", "관리자", func(r wh) string { return r.Manager }),
				field("phone", "연락처", func(r wh) string { return r.Phone }),
				field("address", "주소", func(r wh) string { return r.Address }),
			},
			Filters: []datatable.Field[wh]{whType, whStatus},
			Counts:  []datatable.Field[wh]{whStatus, whType},
		},
		Columns: []datatable.Field[wh]{
			field("code", "창고코드", func(r wh) string { return r.Code }),
			field("name", "창고명", func(r wh) string { return r.Name }),
			whType,
			field("address", "주소", func(r wh) string { return r.Address }),
			field("manager", "관리자", func(r wh) string { return r.Manager }),
			field("capacity", "용량", func(r wh) string { return itoa(r.UsedCapacity) + "/" + itoa(r.Capacity) }),
			field("utilization", "사용률", func(r wh) string {
				return fmt.Sprintf("%.0f%%", wms.Utilization(r.UsedCapacity, r.Capacity))
			}),
			whStatus,
		},
		Key:      func(r wh) string { return r.ID },
		SetKey:   func(r *wh, id string) { r.ID = id },
		IDPrefix: "WH",
		Validate: func(r wh, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "code", r.Code)
			validation.ValidateCode(ve, "code", r.Code)
			validation.RequireField(ve, "name", r.Name)
			validation.ValidateEnum(ve, "type", r.Type, validation.WarehouseTypes)
			validateCapacity(ve, "usedCapacity", r.UsedCapacity, r.Capacity)
			validation.ValidateEnum(ve, "status", r.Status, validation.MasterStatuses)
		},
		Seed: func(time.Time) []wh { return fixtures.Warehouses() },
	})

	type lc = models.Location
	lcWarehouse := field("warehouseCode", "창고", func(r lc) string { return r.WarehouseCode })
	lcType := field("type", "유형", func(r lc) string { return r.Type }, validation.LocationTypes...)
	lcStatus := field("status", "상태", func(r lc) string { return r.Status }, validation.MasterStatuses...)
	m.Locations = New(st, Def[lc]{
		ID:    "WMS0604",
		Title: "위치(로케이션)",
		Spec: datatable.Spec[lc]{
			Search: []datatable.Field[lc]{
				field("code", "위치코드", func(r lc) string { return r.Code }),
				field("name", "위치명", func(r lc) string { return r.Name }),
				field("warehouseName", "창고명", func(r lc) string { return r.WarehouseName }),
			},
			Filters: []datatable.Field[lc]{lcWarehouse, lcType, lcStatus},
			Counts:  []datatable.Field[lc]{lcStatus, lcType},
		},
		Columns: []datatable.Field[lc]{
			field("code", "위치코드", func(r lc) string { return r.Code }),
			field("name", "위치명", func(r lc) string { return r.Name }),
			field("warehouseName", "창고명", func(r lc) string { return r.WarehouseName }),
			lcType,
			field("area", "구역", func(r lc) string { return r.Area }),
			field("rack", "랙", func(r lc) string { return r.Rack }),
			field("level", "단", func(r lc) string { return r.Level }),
			field("position", "열", func(r lc) string { return r.Position }),
			field("capacity", "용량", func(r lc) string { return itoa(r.UsedCapacity) + "/" + itoa(r.Capacity) }),
			lcStatus,
		},
		Key:      func(r lc) string { return r.ID },
		SetKey:   func(r *lc, id string) { r.ID = id },
		IDPrefix: "LOC",
		Validate: func(r lc, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "code", r.Code)
			validation.ValidateCode(ve, "code", r.Code)
			validation.RequireField(ve, "warehouseCode", r.WarehouseCode)
			validation.ValidateEnum(ve, "type", r.Type, validation.LocationTypes)
			validateCapacity(ve, "usedCapacity", r.UsedCapacity, r.Capacity)
			validation.ValidateEnum(ve, "status", r.Status, validation.MasterStatuses)
		},
		Seed: func(time.Time) []lc { return fixtures.Locations() },
	})

	type ar = models.Area
	arWarehouse := field("warehouseCode", "창고", func(r ar) string { return r.WarehouseCode })
	arType := field("type", "유형", func(r ar) string { return r.Type }, validation.LocationTypes...)
	arStatus := field("status", "상태", func(r ar) string { return r.Status }, validation.MasterStatuses...)
	m.Areas = New(st, Def[ar]{
		ID:    "WMS0605",
		Title: "구역(존)",
		Spec: datatable.Spec[ar]{
			Search: []datatable.Field[ar]{
				field("code", "구역코드", func(r ar) string { return r.Code }),
				field("name", "구역명", func(r ar) string { return r.Name }),
				field("warehouseName", "창고명", func(r ar) string { return r.WarehouseName }),
			},
			Filters: []datatable.Field[ar]{arWarehouse, arType, arStatus},
			Counts:  []datatable.Field[ar]{arStatus, arType},
		},
		Columns: []datatable.Field[ar]{
			field("code", "구역코드", func(r ar) string { return r.Code }),
			field("name", "구역명", func(r ar) string { return r.Name }),
			field("warehouseName", "창고명", func(r ar) string { return r.WarehouseName }),
			arType,
			field("capacity", "용량", func(r ar) string { return itoa(r.UsedCapacity) + "/" + itoa(r.TotalCapacity) }),
			field("utilization", "사용률", func(r ar) string {
				return fmt.Sprintf("%.0f%%", wms.Utilization(r.UsedCapacity, r.TotalCapacity))
			}),
			arStatus,
			field("createBy", "등록자", func(r ar) string { return r.CreateBy }),
		},
		Key:      func(r ar) string { return r.ID },
		SetKey:   func(r *ar, id string) { r.ID = id },
		IDPrefix: "AREA",
		Validate: func(r ar, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "code", r.Code)
			validation.ValidateCode(ve, "code", r.Code)
			validation.RequireField(ve, "warehouseCode", r.WarehouseCode)
			validation.ValidateEnum(ve, "type", r.Type, validation.LocationTypes)
			validateCapacity(ve, "usedCapacity", r.UsedCapacity, r.TotalCapacity)
			validation.ValidateEnum(ve, "status", r.Status, validation.MasterStatuses)
		},
		Seed: func(time.Time) []ar { return fixtures.Areas() },
	})

	type un = models.Unit
	unStatus := field("status", "상태", func(r un) string { return r.Status }, validation.MasterStatuses...)
	m.Units = New(st, Def[un]{
		ID:    "WMS0606",
		Title: "단위",
		Spec: datatable.Spec[un]{
			Search: []datatable.Field[un]{
				field("code", "단위코드", func(r un) string { return r.Code }),
				field("name", "단위명", func(r un) string { return r.Name }),
			},
			Filters: []datatable.Field[un]{unStatus},
			Counts:  []datatable.Field[un]{unStatus},
		},
		Columns: []datatable.Field[un]{
			field("code", "단위코드", func(r un) string { return r.Code }),
			field("name", "단위명", func(r un) string { return r.Name }),
			field("baseUnit", "기준단위", func(r un) string { return r.BaseUnit }),
			field("conversionRate", "환산율", func(r un) string { return ftoa(r.ConversionRate) }),
			unStatus,
		},
		Derived: func(all []un) []datatable.Field[un] {
			return []datatable.Field[un]{
				field("conversion", "변환", func(r un) string { return wms.Conversion(all, r) }),
			}
		},
		Key:      func(r un) string { return r.ID },
		SetKey:   func(r *un, id string) { r.ID = id },
		IDPrefix: "UNIT",
		Validate: func(r un, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "code", r.Code)
			validation.ValidateCode(ve, "code", r.Code)
			validation.RequireField(ve, "baseUnit", r.BaseUnit)
			validation.ValidatePositiveFloat(ve, "conversionRate", r.ConversionRate)
			if r.Code != "" && r.Code == r.BaseUnit && r.ConversionRate != 1 {
				ve.Add("conversionRate", "must be 1 for a base unit")
			}
			validation.ValidateEnum(ve, "status", r.Status, validation.MasterStatuses)
			validation.ValidateMaxLength(ve, "remark", r.Remark, validation.MaxStringLength)
		},
		Seed: func(time.Time) []un { return fixtures.Units() },
		Cards: func(_ context.Context, all, _ []un) ([]Card, error) {
			base := wms.BaseUnitCount(all)
			return []Card{
				{Label: "기본 단위", Value: itoa(base) + "건"},
				{Label: "변환 단위", Value: itoa(len(all)-base) + "건"},
			}, nil
		},
	})

	type cg = models.Category
	cgStatus := field("status", "상태", func(r cg) string { return r.Status }, validation.MasterStatuses...)
	m.Categories = New(st, Def[cg]{
		ID:    "WMS0607",
		Title: "품목 분류",
		Spec: datatable.Spec[cg]{
			Search: []datatable.Field[cg]{
				field("code", "분류코드", func(r cg) string { return r.Code }),
				field("name", "분류명", func(r cg) string { return r.Name }),
			},
			Filters: []datatable.Field[cg]{cgStatus},
			Counts:  []datatable.Field[cg]{cgStatus},
		},
		Columns: []datatable.Field[cg]{
			field("code", "분류코드", func(r cg) string { return r.Code }),
			field("name", "분류명", func(r cg) string { return r.Name }),
			field("level", "레벨", func(r cg) string { return itoa(r.Level) }),
			field("sortOrder", "정렬순서", func(r cg) string { return itoa(r.SortOrder) }),
			cgStatus,
		},
		Derived: func(all []cg) []datatable.Field[cg] {
			names := make(map[string]string, len(all))
			for _, c := range all {
				names[c.Code] = c.Name
			}
			return []datatable.Field[cg]{
				field("parent", "상위분류", func(r cg) string {
					if r.ParentCode == nil {
						return "-"
					}
					if n, ok := names[*r.ParentCode]; ok {
						return n
					}
					return "-"
				}),
			}
		},
		Key:      func(r cg) string { return r.ID },
		SetKey:   func(r *cg, id string) { r.ID = id },
		IDPrefix: "CAT",
		Validate: func(r cg, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "code", r.Code)
			validation.ValidateCode(ve, "code", r.Code)
			validation.RequireField(ve, "name", r.Name)
			validation.ValidateIntRange(ve, "level", r.Level, 1, 5)
			validation.ValidateNonNegativeInt(ve, "sortOrder", r.SortOrder)
			if r.ParentCode != nil && *r.ParentCode == r.Code {
				ve.Add("parentCode", "must differ from code")
			}
			if r.ParentCode == nil && r.Level != 1 {
				ve.Add("level", "top-level categories must be level 1")
			}
			validation.ValidateEnum(ve, "status", r.Status, validation.MasterStatuses)
		},
		Seed: func(time.Time) []cg { return fixtures.Categories() },
		Cards: func(_ context.Context, all, _ []cg) ([]Card, error) {
			levels := wms.LevelCounts(all)
			cards := make([]Card, 0, len(levels))
			for _, l := range levels {
				cards = append(cards, Card{Label: fmt.Sprintf("%d단계 분류", l.Level), Value: itoa(l.Count) + "건"})
			}
			return cards, nil
		},
	})
}

func validateCapacity(ve *validation.ValidationErrors, name string, used, capacity int) {
	validation.ValidateNonNegativeInt(ve, "capacity", capacity)
	validation.ValidateNonNegativeInt(ve, name, used)
	if used > capacity {
		ve.Add(name, "must not exceed capacity")
	}
}
