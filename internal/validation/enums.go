package validation

// Enum values shared by record validation, filter option lists and summary cards.
var (
	AttendanceStatuses    = []string{"정상", "지각", "조퇴", "결근", "휴가"}
	ExceptionTypes        = []string{"지각", "조퇴", "결근"}
	ApprovalStatuses      = []string{"승인대기", "승인", "반려"}
	LeaveTypes            = []string{"연차", "반차(오전)", "반차(오후)", "병가", "경조사", "기타"}
	LeaveDecisionStatuses = []string{"대기", "승인", "거절"}
	SalaryItemTypes       = []string{"지급", "공제"}
	SalaryItemCategories  = []string{"기본", "고정", "변동", "세금", "사회보험", "기타"}
	PayrollStatuses       = []string{"확정", "임시저장", "미등록"}
	EmployeeStatuses      = []string{"재직", "휴직", "퇴직"}
	VoucherTypes          = []string{"입금", "출금", "대체"}
	VoucherStatuses       = []string{"작성", "승인대기", "승인", "반려"}
	PlanStatuses          = []string{"예정", "입고완료", "취소"}
	InspectionStatuses    = []string{"대기", "검수완료", "불합격"}
	PutawayStatuses       = []string{"대기", "적치완료", "취소"}
	ReceiptStatuses       = []string{"대기", "입고완료", "취소"}
	OutboundStatuses      = []string{"대기", "출고완료", "취소"}
	PickingStatuses       = []string{"대기", "피킹중", "완료", "취소"}
	Priorities            = []string{"높음", "중간", "낮음"}
	StockStatuses         = []string{"정상", "부족", "과다"}
	AdjustmentTypes       = []string{"증가", "감소"}
	AdjustmentStatuses    = []string{"대기", "승인", "반려"}
	CountStatuses         = []string{"대기", "실사완료", "조정완료", "취소"}
	LotStatuses           = []string{"정상", "임박", "만료", "폐기"}
	SerialStatuses        = []string{"입고", "출고", "반품", "폐기"}
	TransferStatuses      = []string{"대기", "이동중", "완료", "취소"}
	HistoryStatuses       = []string{"완료", "취소"}
	TransferTypes         = []string{"로케이션", "창고", "피킹존"}
	BarcodeTypes          = []string{"1D", "2D"}
	BarcodeStatuses       = []string{"사용", "미사용", "폐기"}
	Orientations          = []string{"가로", "세로"}
	LabelElementTypes     = []string{"text", "barcode", "image"}
	PrintStatuses         = []string{"대기", "출력중", "완료", "실패"}
	MasterStatuses        = []string{"사용", "중지"}
	VendorTypes           = []string{"공급업체", "고객사", "기타"}
	WarehouseTypes        = []string{"자체창고", "외부창고", "임시창고"}
	LocationTypes         = []string{"일반", "파이팅", "보관", "피킹"}
)
