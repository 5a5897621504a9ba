package fixtures

import "erp/internal/models"

// InboundPlans returns the expected receipts.
func InboundPlans() []models.InboundPlan {
	return []models.InboundPlan{
		{ID: "PLN-001", ProductCode: "P001", ProductName: "노트북", Category: "전자제품", Supplier: "삼성전자", Quantity: 50, Unit: "EA", ExpectedDate: "2024-03-25", Status: "예정", Remark: "분기 발주분"},
		{ID: "PLN-002", ProductCode: "P002", ProductName: "마우스", Category: "주변기기", Supplier: "LG전자", Quantity: 20, Unit: "BOX", ExpectedDate: "2024-03-26", Status: "예정"},
		{ID: "PLN-003", ProductCode: "P003", ProductName: "키보드", Category: "주변기기", Supplier: "애플", Quantity: 10, Unit: "BOX", ExpectedDate: "2024-03-18", Status: "입고완료"},
	}
}

// InboundReceipts returns the registered receipts.
func InboundReceipts() []models.InboundReceipt {
	return []models.InboundReceipt{
		{ID: "RCV-001", ProductCode: "P001", ProductName: "노트북", Category: "전자제품", Supplier: "삼성전자", Quantity: 48, Unit: "EA", InboundDate: "2024-03-21", Status: "입고완료", Remark: "2대 파손 반송"},
		{ID: "RCV-002", ProductCode: "P002", ProductName: "마우스", Category: "주변기기", Supplier: "LG전자", Quantity: 20, Unit: "BOX", InboundDate: "2024-03-22", Status: "대기"},
	}
}

// Inspections returns the inbound quality checks.
func Inspections() []models.InboundInspection {
	return []models.InboundInspection{
		{ID: "INB-001", ProductCode: "PRD-001", ProductName: "스마트폰", Category: "전자제품", Supplier: "삼성전자", ExpectedQuantity: 100, ActualQuantity: 100, InboundDate: "2024-03-20", Status: "대기", Remark: "신규 모델 입고"},
		{ID: "INB-002", ProductCode: "PRD-002", ProductName: "노트북", Category: "전자제품", Supplier: "LG전자", ExpectedQuantity: 50, ActualQuantity: 48, InboundDate: "2024-03-21", Status: "불합격", Remark: "수량 부족"},
		{ID: "INB-003", ProductCode: "PRD-003", ProductName: "블루투스 이어폰", Category: "전자제품", Supplier: "애플", ExpectedQuantity: 200, ActualQuantity: 200, InboundDate: "2024-03-22", Status: "검수완료", Remark: "신규 제품"},
	}
}

// Putaways returns the storage assignments of inspected goods.
func Putaways() []models.PutawayOrder {
	return []models.PutawayOrder{
		{ID: "INB-001", ProductCode: "PRD-001", ProductName: "스마트폰", Category: "전자제품", Supplier: "삼성전자", Quantity: 100, InboundDate: "2024-03-20", Status: "대기", Remark: "신규 모델 입고"},
		{ID: "INB-002", ProductCode: "PRD-002", ProductName: "노트북", Category: "전자제품", Supplier: "LG전자", Quantity: 50, InboundDate: "2024-03-21", Status: "적치완료", Location: "A-01-01", Remark: "고가 보관"},
		{ID: "INB-003", ProductCode: "PRD-003", ProductName: "블루투스 이어폰", Category: "전자제품", Supplier: "애플", Quantity: 200, InboundDate: "2024-03-22", Status: "취소", Remark: "적치 취소"},
	}
}

// Returns returns the customer returns.
func Returns() []models.ReturnReceipt {
	return []models.ReturnReceipt{
		{ID: "RET-001", ProductCode: "PRD-001", ProductName: "스마트폰", Category: "전자제품", Customer: "고객사 A", Quantity: 5, ReturnDate: "2024-03-20", Status: "대기", Reason: "불량", Remark: "화면 불량"},
		{ID: "RET-002", ProductCode: "PRD-002", ProductName: "노트북", Category: "전자제품", Customer: "고객사 B", Quantity: 2, ReturnDate: "2024-03-21", Status: "입고완료", Reason: "오배송", Remark: "잘못된 모델"},
		{ID: "RET-003", ProductCode: "PRD-003", ProductName: "블루투스 이어폰", Category: "전자제품", Customer: "고객사 C", Quantity: 10, ReturnDate: "2024-03-22", Status: "취소", Reason: "취소", Remark: "반품 취소"},
	}
}

// InboundHistory returns finished inbounds.
func InboundHistory() []models.InboundHistory {
	return []models.InboundHistory{
		{ID: "INB-001", ProductCode: "PRD-001", ProductName: "스마트폰", Category: "전자제품", Supplier: "삼성전자", Quantity: 100, InboundDate: "2024-03-20", Status: "입고완료", Location: "A-01-01", Remark: "신규 모델 입고"},
		{ID: "INB-002", ProductCode: "PRD-002", ProductName: "노트북", Category: "전자제품", Supplier: "LG전자", Quantity: 50, InboundDate: "2024-03-21", Status: "입고완료", Location: "B-02-01", Remark: "고가 보관"},
		{ID: "INB-003", ProductCode: "PRD-003", ProductName: "블루투스 이어폰", Category: "전자제품", Supplier: "애플", Quantity: 200, InboundDate: "2024-03-22", Status: "취소", Remark: "입고 취소"},
	}
}

// OutboundOrders returns the registered outbound lines.
func OutboundOrders() []models.OutboundOrder {
	return []models.OutboundOrder{
		{ID: "OUT-001", ProductCode: "P001", ProductName: "노트북", Category: "전자제품", Customer: "고객사 A", Quantity: 10, Unit: "EA", OutboundDate: "2024-03-23", Location: "A-01-01", Status: "대기", Remark: "긴급 출고"},
		{ID: "OUT-002", ProductCode: "P002", ProductName: "마우스", Category: "주변기기", Customer: "고객사 B", Quantity: 3, Unit: "BOX", OutboundDate: "2024-03-22", Location: "B-02-01", Status: "출고완료"},
	}
}

// Pickings returns the pick tasks.
func Pickings() []models.PickingOrder {
	return []models.PickingOrder{
		{ID: "PKG-001", OrderNo: "ORD-001", ProductCode: "PRD-001", ProductName: "스마트폰", Customer: "고객사 A", Quantity: 10, Location: "A-01-01", Status: "대기", Priority: "높음", Remark: "긴급 출고"},
		{ID: "PKG-002", OrderNo: "ORD-002", ProductCode: "PRD-002", ProductName: "노트북", Customer: "고객사 B", Quantity: 5, Location: "B-02-01", Status: "피킹중", Priority: "중간", Remark: "일반 출고"},
		{ID: "PKG-003", OrderNo: "ORD-003", ProductCode: "PRD-003", ProductName: "블루투스 이어폰", Customer: "고객사 C", Quantity: 20, Location: "C-03-01", Status: "완료", Priority: "낮음", Remark: "일반 출고"},
	}
}

// Stock returns on-hand quantities.
func Stock() []models.StockItem {
	return []models.StockItem{
		{ID: "INV-001", ProductCode: "PRD-001", ProductName: "스마트폰", Category: "전자제품", Location: "A-01-01", Quantity: 100, MinStock: 50, MaxStock: 200, Status: "정상", LastUpdated: "2024-03-20", Remark: "신규 모델"},
		{ID: "INV-002", ProductCode: "PRD-002", ProductName: "노트북", Category: "전자제품", Location: "B-02-01", Quantity: 20, MinStock: 30, MaxStock: 100, Status: "부족", LastUpdated: "2024-03-21", Remark: "재고 부족"},
		{ID: "INV-003", ProductCode: "PRD-003", ProductName: "블루투스 이어폰", Category: "주변기기", Location: "C-03-01", Quantity: 500, MinStock: 100, MaxStock: 300, Status: "과다", LastUpdated: "2024-03-22", Remark: "재고 과다"},
	}
}

// Adjustments returns stock adjustment requests.
func Adjustments() []models.StockAdjustment {
	return []models.StockAdjustment{
		{ID: "ADJ-001", ProductCode: "PRD-001", ProductName: "스마트폰", Location: "A-01-01", CurrentQuantity: 100, AdjustQuantity: 5, Reason: "재고실사 차이", AdjustmentType: "증가", Status: "대기", RequestDate: "2024-03-20", Remark: "실사 결과 반영"},
		{ID: "ADJ-002", ProductCode: "PRD-002", ProductName: "노트북", Location: "B-02-01", CurrentQuantity: 50, AdjustQuantity: 2, Reason: "파손", AdjustmentType: "감소", Status: "승인", RequestDate: "2024-03-21", Approver: "김승인", Remark: "운반 중 파손"},
		{ID: "ADJ-003", ProductCode: "PRD-003", ProductName: "블루투스 이어폰", Location: "C-03-01", CurrentQuantity: 200, AdjustQuantity: 3, Reason: "수량 오류", AdjustmentType: "감소", Status: "반려", RequestDate: "2024-03-22", Approver: "이반려", Remark: "사유 불충분"},
	}
}

// Counts returns cycle count results.
func Counts() []models.StockCount {
	return []models.StockCount{
		{ID: "CNT-001", ProductCode: "PRD-001", ProductName: "스마트폰", Location: "A-01-01", SystemQuantity: 100, ActualQuantity: 98, Difference: -2, Status: "대기", CountDate: "2024-03-20", Remark: "분실"},
		{ID: "CNT-002", ProductCode: "PRD-002", ProductName: "노트북", Location: "B-02-01", SystemQuantity: 50, ActualQuantity: 50, Difference: 0, Status: "실사완료", CountDate: "2024-03-21", Counter: "김실사", Remark: "정상"},
		{ID: "CNT-003", ProductCode: "PRD-003", ProductName: "블루투스 이어폰", Location: "C-03-01", SystemQuantity: 200, ActualQuantity: 205, Difference: 5, Status: "조정완료", CountDate: "2024-03-22", Counter: "이실사", Remark: "오입고"},
	}
}

// Lots returns tracked production batches.
func Lots() []models.Lot {
	return []models.Lot{
		{ID: "LOT-001", LotNo: "L2024032001", ProductCode: "PRD-001", ProductName: "스마트폰", Location: "A-01-01", Quantity: 100, ManufactureDate: "2024-03-01", ExpiryDate: "2025-03-01", Status: "정상", Supplier: "삼성전자", Remark: "신규 입고"},
		{ID: "LOT-002", LotNo: "L2024032002", ProductCode: "PRD-002", ProductName: "노트북", Location: "B-02-01", Quantity: 50, ManufactureDate: "2024-02-15", ExpiryDate: "2024-05-15", Status: "임박", Supplier: "LG전자", Remark: "유효기간 임박"},
		{ID: "LOT-003", LotNo: "L2024032003", ProductCode: "PRD-003", ProductName: "블루투스 이어폰", Location: "C-03-01", Quantity: 200, ManufactureDate: "2024-01-01", ExpiryDate: "2024-04-01", Status: "만료", Supplier: "애플", Remark: "유효기간 만료"},
	}
}

// Serials returns tracked units.
func Serials() []models.Serial {
	return []models.Serial{
		{ID: "SER-001", SerialNo: "SN202403200001", LotNo: "L2024032001", ProductCode: "PRD-001", ProductName: "스마트폰", Location: "A-01-01", Status: "입고", InboundDate: "2024-03-20"},
		{ID: "SER-002", SerialNo: "SN202403200002", LotNo: "L2024032001", ProductCode: "PRD-001", ProductName: "스마트폰", Status: "출고", InboundDate: "2024-03-19", OutboundDate: "2024-03-21", Customer: "고객사 A", Remark: "정상 출고"},
		{ID: "SER-003", SerialNo: "SN202403200003", LotNo: "L2024032002", ProductCode: "PRD-002", ProductName: "노트북", Location: "B-02-01", Status: "반품", InboundDate: "2024-03-18", OutboundDate: "2024-03-20", Customer: "고객사 B", Remark: "불량 반품"},
	}
}

// WarehouseTransfers returns inter-warehouse moves.
func WarehouseTransfers() []models.WarehouseTransfer {
	return []models.WarehouseTransfer{
		{ID: "WTRF-001", ProductCode: "PRD-001", ProductName: "스마트폰", FromWarehouse: "본사창고", FromLocation: "A-01-01", ToWarehouse: "지점창고", ToLocation: "B-01-01", Quantity: 50, Status: "대기", Remark: "지점 창고 이동"},
		{ID: "WTRF-002", ProductCode: "PRD-002", ProductName: "노트북", FromWarehouse: "지점창고", FromLocation: "B-02-01", ToWarehouse: "본사창고", ToLocation: "A-02-01", Quantity: 20, Status: "이동중", TransferDate: "2024-03-21", TransferBy: "김이동", Remark: "본사 창고 이동"},
		{ID: "WTRF-003", ProductCode: "PRD-003", ProductName: "블루투스 이어폰", FromWarehouse: "본사창고", FromLocation: "A-03-01", ToWarehouse: "지점창고", ToLocation: "C-03-01", Quantity: 100, Status: "완료", TransferDate: "2024-03-22", TransferBy: "이이동"},
	}
}

// Replenishments returns picking zone refills.
func Replenishments() []models.Replenishment {
	return []models.Replenishment{
		{ID: "RPL-001", ProductCode: "PRD-001", ProductName: "스마트폰", FromLocation: "A-01-01", ToLocation: "P-01-01", CurrentQuantity: 10, MinQuantity: 20, MaxQuantity: 50, ReplenishQuantity: 40, Status: "대기", Priority: "높음", Remark: "피킹존 재고 부족"},
		{ID: "RPL-002", ProductCode: "PRD-002", ProductName: "노트북", FromLocation: "B-02-01", ToLocation: "P-02-01", CurrentQuantity: 15, MinQuantity: 10, MaxQuantity: 30, ReplenishQuantity: 15, Status: "이동중", Priority: "중간", ReplenishDate: "2024-03-21", ReplenishBy: "김이동", Remark: "정상 보충"},
		{ID: "RPL-003", ProductCode: "PRD-003", ProductName: "블루투스 이어폰", FromLocation: "C-03-01", ToLocation: "P-03-01", CurrentQuantity: 5, MinQuantity: 15, MaxQuantity: 40, ReplenishQuantity: 35, Status: "완료", Priority: "높음", ReplenishDate: "2024-03-22", ReplenishBy: "이이동", Remark: "긴급 보충"},
	}
}

// TransferHistory returns finished movements.
func TransferHistory() []models.TransferHistory {
	return []models.TransferHistory{
		{ID: "HST-001", TransferType: "로케이션", ProductCode: "PRD-001", ProductName: "스마트폰", FromWarehouse: "본사창고", FromLocation: "A-01-01", ToWarehouse: "본사창고", ToLocation: "A-01-02", Quantity: 50, Status: "완료", TransferDate: "2024-03-20", TransferBy: "김이동", Remark: "보관 위치 변경"},
		{ID: "HST-002", TransferType: "창고", ProductCode: "PRD-002", ProductName: "노트북", FromWarehouse: "지점창고", FromLocation: "B-02-01", ToWarehouse: "본사창고", ToLocation: "A-02-01", Quantity: 20, Status: "완료", TransferDate: "2024-03-21", TransferBy: "이이동", Remark: "본사 창고 이동"},
		{ID: "HST-003", TransferType: "피킹존", ProductCode: "PRD-003", ProductName: "블루투스 이어폰", FromWarehouse: "본사창고", FromLocation: "A-03-01", ToWarehouse: "본사창고", ToLocation: "P-03-01", Quantity: 100, Status: "완료", TransferDate: "2024-03-22", TransferBy: "박이동", Remark: "피킹존 보충"},
	}
}

// Barcodes returns issued barcodes.
func Barcodes() []models.Barcode {
	return []models.Barcode{
		{ID: "BC-001", ProductCode: "PRD-001", ProductName: "스마트폰", BarcodeType: "1D", BarcodeFormat: "CODE128", BarcodeData: "8801234567890", Quantity: 100, Status: "사용", CreateDate: "2024-03-20", CreateBy: "김이동", Remark: "신규 생성"},
		{ID: "BC-002", ProductCode: "PRD-002", ProductName: "노트북", BarcodeType: "2D", BarcodeFormat: "QR", BarcodeData: "ITEM-002-20240321", Quantity: 50, Status: "미사용", CreateDate: "2024-03-21", CreateBy: "이이동", Remark: "대량 생성"},
		{ID: "BC-003", ProductCode: "PRD-003", ProductName: "블루투스 이어폰", BarcodeType: "1D", BarcodeFormat: "CODE39", BarcodeData: "ITEM-003-001", Quantity: 200, Status: "폐기", CreateDate: "2024-03-22", CreateBy: "박이동"},
	}
}

// LabelTemplates returns the printable layouts.
func LabelTemplates() []models.LabelTemplate {
	return []models.LabelTemplate{
		{
			ID: "TPL-001", Name: "기본 상품 라벨", Category: "상품", Width: 100, Height: 50, Orientation: "가로",
			Elements: []models.LabelElement{
				{ID: "ELE-001", Type: "text", Content: "상품명", X: 5, Y: 5, Width: 90, Height: 10, FontSize: 12, FontFamily: "Arial"},
				{ID: "ELE-002", Type: "barcode", Content: "8801234567890", X: 5, Y: 20, Width: 90, Height: 20, BarcodeType: "1D", BarcodeFormat: "CODE128"},
			},
			CreateDate: "2024-03-20", CreateBy: "김이동", Remark: "기본 상품 라벨 템플릿",
		},
		{
			ID: "TPL-002", Name: "QR코드 라벨", Category: "배송", Width: 80, Height: 80, Orientation: "세로",
			Elements: []models.LabelElement{
				{ID: "ELE-003", Type: "barcode", Content: "DEL-20240321-001", X: 5, Y: 5, Width: 70, Height: 70, BarcodeType: "2D", BarcodeFormat: "QR"},
			},
			CreateDate: "2024-03-21", CreateBy: "이이동", Remark: "배송 추적용 QR코드",
		},
		{
			ID: "TPL-003", Name: "로고 포함 라벨", Category: "브랜드", Width: 120, Height: 60, Orientation: "가로",
			Elements: []models.LabelElement{
				{ID: "ELE-004", Type: "image", Content: "logo.png", X: 5, Y: 5, Width: 30, Height: 30},
				{ID: "ELE-005", Type: "text", Content: "회사명", X: 40, Y: 5, Width: 75, Height: 10, FontSize: 14, FontFamily: "Arial"},
			},
			CreateDate: "2024-03-22", CreateBy: "박이동", Remark: "브랜드 로고 포함",
		},
	}
}

// PrintJobs returns label print batches.
func PrintJobs() []models.LabelPrintJob {
	return []models.LabelPrintJob{
		{ID: "PRT-001", TemplateID: "TPL-001", TemplateName: "기본 상품 라벨", Category: "상품", PrintCount: 100, Status: "완료", PrintDate: "2024-03-20", PrintBy: "김이동", Remark: "신규 상품 입고"},
		{ID: "PRT-002", TemplateID: "TPL-002", TemplateName: "QR코드 라벨", Category: "배송", PrintCount: 50, Status: "출력중", PrintDate: "2024-03-21", PrintBy: "이이동", Remark: "배송 라벨 출력"},
		{ID: "PRT-003", TemplateID: "TPL-003", TemplateName: "로고 포함 라벨", Category: "브랜드", PrintCount: 200, Status: "대기", PrintDate: "2024-03-22", PrintBy: "박이동", Remark: "브랜드 라벨 출력"},
	}
}

// Products returns the item master.
func Products() []models.Product {
	return []models.Product{
		{ID: "PRD-001", Code: "P001", Name: "노트북", Category: "전자제품", Unit: "EA", StandardUnit: "EA", ConversionRate: 1, Barcode: "8801234567890", Status: "사용", Remark: "고성능 노트북"},
		{ID: "PRD-002", Code: "P002", Name: "마우스", Category: "주변기기", Unit: "EA", StandardUnit: "BOX", ConversionRate: 10, Barcode: "8801234567891", Status: "사용", Remark: "무선 마우스"},
		{ID: "PRD-003", Code: "P003", Name: "키보드", Category: "주변기기", Unit: "EA", StandardUnit: "BOX", ConversionRate: 5, Barcode: "8801234567892", Status: "중지", Remark: "기계식 키보드"},
	}
}

// Vendors returns suppliers and customers.
func Vendors() []models.Vendor {
	return []models.Vendor{
		{ID: "VND-001", Code: "V001", Name: "삼성전자", Type: "공급업체", ContactPerson: "김삼성", Phone: "02-1234-5678", Email: "contact@samsung.com", Address: "서울특별시 서초구", Status: "사용", Remark: "주요 공급업체"},
		{ID: "VND-002", Code: "V002", Name: "네이버", Type: "고객사", ContactPerson: "이네이버", Phone: "02-2345-6789", Email: "contact@naver.com", Address: "경기도 성남시 분당구", Status: "사용", Remark: "주요 고객사"},
		{ID: "VND-003", Code: "V003", Name: "카카오", Type: "고객사", ContactPerson: "박카카오", Phone: "02-3456-7890", Email: "contact@kakao.com", Address: "제주특별자치도 제주시 첨단로", Status: "중지", Remark: "중단된 거래처"},
	}
}

// Warehouses returns storage sites.
func Warehouses() []models.Warehouse {
	return []models.Warehouse{
		{ID: "WH-001", Code: "W001", Name: "본사 창고", Type: "자체창고", Address: "서울특별시 서초구", Manager: "김창고", Phone: "02-1111-2222", Capacity: 1000, UsedCapacity: 750, Status: "사용", Remark: "본사 메인 창고"},
		{ID: "WH-002", Code: "W002", Name: "물류센터", Type: "외부창고", Address: "경기도 성남시", Manager: "이물류", Phone: "031-333-4444", Capacity: 2000, UsedCapacity: 1500, Status: "사용"},
		{ID: "WH-003", Code: "W003", Name: "임시 보관소", Type: "임시창고", Address: "인천광역시 연수구", Manager: "박임시", Phone: "032-555-6666", Capacity: 500, UsedCapacity: 0, Status: "중지"},
	}
}

// Locations returns storage bins.
func Locations() []models.Location {
	return []models.Location{
		{ID: "LOC-001", Code: "L001", Name: "A-01-01-01", WarehouseCode: "W001", WarehouseName: "본사 창고", Type: "일반", Area: "A", Rack: "01", Level: "01", Position: "01", Capacity: 100, UsedCapacity: 75, Status: "사용"},
		{ID: "LOC-002", Code: "L002", Name: "B-02-03-02", WarehouseCode: "W002", WarehouseName: "물류센터", Type: "파이팅", Area: "B", Rack: "02", Level: "03", Position: "02", Capacity: 50, UsedCapacity: 30, Status: "사용"},
		{ID: "LOC-003", Code: "L003", Name: "C-03-02-01", WarehouseCode: "W003", WarehouseName: "임시 보관소", Type: "피킹", Area: "C", Rack: "03", Level: "02", Position: "01", Capacity: 200, UsedCapacity: 0, Status: "중지", Remark: "피킹 구역"},
	}
}

// Areas returns warehouse zones.
func Areas() []models.Area {
	return []models.Area{
		{ID: "AREA-001", Code: "A-001", Name: "A구역", WarehouseCode: "WH-001", WarehouseName: "본사 창고", Type: "일반", TotalCapacity: 1000, UsedCapacity: 750, Status: "사용", CreateBy: "관리자"},
		{ID: "AREA-002", Code: "A-002", Name: "B구역", WarehouseCode: "WH-001", WarehouseName: "본사 창고", Type: "파이팅", TotalCapacity: 500, UsedCapacity: 300, Status: "사용", CreateBy: "관리자"},
		{ID: "AREA-003", Code: "A-003", Name: "C구역", WarehouseCode: "WH-002", WarehouseName: "물류센터", Type: "보관", TotalCapacity: 2000, UsedCapacity: 1800, Status: "사용", CreateBy: "관리자"},
		{ID: "AREA-004", Code: "A-004", Name: "D구역", WarehouseCode: "WH-002", WarehouseName: "물류센터", Type: "피킹", TotalCapacity: 800, UsedCapacity: 600, Status: "중지", CreateBy: "관리자"},
	}
}

// Units returns units of measure. PALLET → CASE → BOX → EA.
func Units() []models.Unit {
	return []models.Unit{
		{ID: "UNIT-001", Code: "EA", Name: "개", BaseUnit: "EA", ConversionRate: 1, Status: "사용"},
		{ID: "UNIT-002", Code: "BOX", Name: "박스", BaseUnit: "EA", ConversionRate: 12, Status: "사용"},
		{ID: "UNIT-003", Code: "CASE", Name: "케이스", BaseUnit: "BOX", ConversionRate: 6, Status: "사용"},
		{ID: "UNIT-004", Code: "PALLET", Name: "팔레트", BaseUnit: "CASE", ConversionRate: 4, Status: "중지"},
	}
}

// Categories returns the product category tree.
func Categories() []models.Category {
	return []models.Category{
		{ID: "CAT-001", Code: "01", Name: "전자제품", Level: 1, SortOrder: 1, Status: "사용"},
		{ID: "CAT-002", Code: "01-01", Name: "스마트폰", ParentCode: strp("01"), Level: 2, SortOrder: 1, Status: "사용"},
		{ID: "CAT-003", Code: "01-02", Name: "태블릿", ParentCode: strp("01"), Level: 2, SortOrder: 2, Status: "사용"},
		{ID: "CAT-004", Code: "02", Name: "의류", Level: 1, SortOrder: 2, Status: "사용"},
		{ID: "CAT-005", Code: "02-01", Name: "남성의류", ParentCode: strp("02"), Level: 2, SortOrder: 1, Status: "사용"},
		{ID: "CAT-006", Code: "02-02", Name: "여성의류", ParentCode: strp("02"), Level: 2, SortOrder: 2, Status: "중지"},
	}
}
