// Package fixtures holds the literal records every screen is seeded with.
// Each function returns a fresh slice so callers may mutate the result.
package fixtures

import (
	"strconv"

	"github.com/shopspring/decimal"

	"erp/internal/models"
)

func strp(s string) *string { return &s }

func itoa(n int) string { return strconv.Itoa(n) }

func won(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func wonp(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

func ratep(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

type person struct{ id, name, dept, pos string }

var staff = []person{
	{"EMP001", "홍길동", "개발팀", "과장"},
	{"EMP002", "김철수", "마케팅팀", "대리"},
	{"EMP003", "이영희", "인사팀", "부장"},
	{"EMP004", "박민수", "영업팀", "사원"},
	{"EMP005", "정수연", "개발팀", "대리"},
	{"EMP006", "송미란", "회계팀", "과장"},
	{"EMP007", "최지수", "회계팀", "대리"},
	{"EMP008", "한승우", "개발팀", "차장"},
}

// Attendance returns today's clock-in/out records. today is YYYY-MM-DD.
func Attendance(today string) []models.AttendanceRecord {
	rec := func(seq string, p person, in, out, hours *string, status, note string) models.AttendanceRecord {
		return models.AttendanceRecord{
			ID: "ATT-20230601-" + seq, EmployeeID: p.id, Name: p.name, Department: p.dept, Position: p.pos,
			Date: today, ClockIn: in, ClockOut: out, WorkingHours: hours, Status: status, Note: note,
		}
	}
	return []models.AttendanceRecord{
		rec("001", staff[0], strp("08:55:23"), strp("18:10:05"), strp("9:15"), "정상", ""),
		rec("002", staff[1], strp("09:10:45"), strp("18:05:12"), strp("8:54"), "지각", "출근 버스 지연"),
		rec("003", staff[2], strp("08:45:10"), strp("17:30:22"), strp("8:45"), "조퇴", "병원 진료"),
		rec("004", staff[3], nil, nil, nil, "결근", "병가"),
		rec("005", staff[4], nil, nil, nil, "휴가", ""),
		rec("006", staff[5], strp("08:50:33"), strp("18:05:44"), strp("9:15"), "정상", ""),
		rec("007", staff[6], strp("08:58:21"), strp("18:02:10"), strp("9:04"), "정상", ""),
		rec("008", staff[7], strp("08:30:15"), strp("18:30:05"), strp("10:00"), "정상", ""),
	}
}

// AttendanceExceptions returns the exception requests filed for today.
func AttendanceExceptions(today string) []models.AttendanceException {
	yoon := person{"EMP009", "윤지영", "마케팅팀", "사원"}
	choi := person{"EMP010", "최현우", "개발팀", "사원"}
	exc := func(seq string, p person, typ, reason, status, approver, approved string) models.AttendanceException {
		return models.AttendanceException{
			ID: "EXC-20230601-" + seq, EmployeeID: p.id, Name: p.name, Department: p.dept, Position: p.pos,
			Date: today, ExceptionType: typ, Reason: reason, Status: status, Approver: approver,
			RequestDate: "2023-06-01", ApprovedDate: approved,
		}
	}
	return []models.AttendanceException{
		exc("001", staff[1], "지각", "대중교통 지연으로 인한 지각", "승인", "이영희", "2023-06-01"),
		exc("002", staff[2], "조퇴", "병원 진료 예약", "승인", "박민수", "2023-06-01"),
		exc("003", staff[3], "결근", "감기 증상으로 인한 병가", "승인대기", "", ""),
		exc("004", yoon, "지각", "개인 사정", "반려", "이영희", "2023-06-01"),
		exc("005", choi, "결근", "가족 경조사", "승인대기", "", ""),
	}
}

// LeaveRequests returns the signed-in employee's own leave applications.
func LeaveRequests() []models.LeaveRequest {
	p := staff[0]
	req := func(seq, typ, start, end string, days float64, reason, status, approver, requested, approved string) models.LeaveRequest {
		return models.LeaveRequest{
			ID: "LV-20230601-" + seq, EmployeeID: p.id, Name: p.name, Department: p.dept, Position: p.pos,
			Type: typ, StartDate: start, EndDate: end, Days: days, Reason: reason, Status: status,
			Approver: approver, RequestDate: requested, ApprovedDate: approved,
		}
	}
	return []models.LeaveRequest{
		req("001", "연차", "2023-06-15", "2023-06-16", 2, "개인 휴식", "승인", "이영희", "2023-06-01", "2023-06-02"),
		req("002", "반차(오후)", "2023-06-20", "2023-06-20", 0.5, "병원 방문", "승인", "이영희", "2023-06-10", "2023-06-11"),
		req("003", "연차", "2023-07-05", "2023-07-07", 3, "가족 여행", "승인대기", "", "2023-06-25", ""),
	}
}

// LeaveApprovals returns the requests waiting on, or decided by, a manager.
func LeaveApprovals() []models.LeaveApproval {
	ap := func(id string, p person, start, end, typ, status, reason, applied string) models.LeaveApproval {
		return models.LeaveApproval{
			ID: id, EmployeeID: p.id, Name: p.name, Department: p.dept, Position: p.pos,
			StartDate: start, EndDate: end, Type: typ, Status: status, Reason: reason, AppliedDate: applied,
		}
	}
	out := []models.LeaveApproval{
		ap("1", staff[1], "2023-06-25", "2023-06-25", "반차", "대기", "병원 방문", "2023-06-20"),
		ap("2", staff[2], "2023-07-10", "2023-07-14", "연차", "대기", "여행", "2023-06-15"),
		ap("3", staff[7], "2023-07-21", "2023-07-21", "반차", "대기", "개인 사유", "2023-06-30"),
		ap("4", staff[0], "2023-06-20", "2023-06-22", "연차", "승인", "개인 사유", "2023-06-01"),
		ap("5", staff[3], "2023-06-30", "2023-06-30", "반차", "승인", "개인 사유", "2023-06-10"),
		ap("6", staff[4], "2023-07-05", "2023-07-05", "특별휴가", "승인", "결혼기념일", "2023-06-25"),
		ap("7", staff[6], "2023-07-03", "2023-07-03", "반차", "거절", "개인 사유", "2023-06-27"),
	}
	out[3].ApprovedDate = "2023-06-05"
	out[4].ApprovedDate = "2023-06-12"
	out[5].ApprovedDate = "2023-06-26"
	out[6].RejectedDate = "2023-06-28"
	out[6].RejectionReason = "업무 일정 충돌"
	return out
}

// LeaveAllocations returns the yearly entitlement of every employee.
func LeaveAllocations() []models.LeaveAllocation {
	joined := []string{"2020-03-15", "2019-06-22", "2015-01-05", "2022-07-11", "2021-04-30", "2018-09-20", "2020-11-16", "2017-02-28"}
	years := []int{3, 4, 8, 1, 2, 5, 3, 6}
	base := []float64{15, 15, 15, 11, 15, 15, 15, 15}
	extra := []float64{0, 1, 4, 0, 0, 2, 0, 3}
	used := []float64{3, 7, 12, 2, 5, 6, 8, 10}
	out := make([]models.LeaveAllocation, len(staff))
	for i, p := range staff {
		out[i] = models.LeaveAllocation{
			ID: itoa(i + 1), EmployeeID: p.id, Name: p.name, Department: p.dept, Position: p.pos,
			JoinDate: joined[i], ServiceYears: years[i], BaseAllocation: base[i], AdditionalDays: extra[i],
			UsedDays: used[i], RemainingDays: base[i] + extra[i] - used[i],
		}
	}
	return out
}

// SalaryItems returns the configured pay and deduction lines.
func SalaryItems() []models.SalaryItem {
	item := func(id, name, typ, cat string, amount, rate *decimal.Decimal, taxable bool, desc string) models.SalaryItem {
		return models.SalaryItem{
			ID: id, Name: name, Type: typ, Category: cat, Amount: amount, Rate: rate,
			Taxable: taxable, Description: desc, IsActive: true,
		}
	}
	return []models.SalaryItem{
		item("SI001", "기본급", "지급", "기본", nil, nil, true, "근로계약에 명시된 기본 급여"),
		item("SI002", "직책수당", "지급", "고정", wonp(200000), nil, true, "직책에 따른 추가 수당"),
		item("SI003", "식대", "지급", "고정", wonp(100000), nil, false, "식비 지원"),
		item("SI004", "교통비", "지급", "고정", wonp(50000), nil, false, "출퇴근 교통비 지원"),
		item("SI005", "초과근무수당", "지급", "변동", nil, nil, true, "연장근로에 대한 수당"),
		item("SI006", "성과급", "지급", "변동", nil, nil, true, "성과에 따른 보너스"),
		item("SI007", "소득세", "공제", "세금", nil, nil, false, "소득에 대한 세금"),
		item("SI008", "지방소득세", "공제", "세금", nil, ratep("10"), false, "소득세의 10%"),
		item("SI009", "국민연금", "공제", "사회보험", nil, ratep("4.5"), false, "국민연금 기여금"),
		item("SI010", "건강보험", "공제", "사회보험", nil, ratep("3.545"), false, "건강보험료"),
		item("SI011", "장기요양보험", "공제", "사회보험", nil, ratep("12.27"), false, "건강보험료의 12.27%"),
		item("SI012", "고용보험", "공제", "사회보험", nil, ratep("0.9"), false, "고용보험료"),
	}
}

// SalaryRegistrations returns the June 2023 payroll sheet.
func SalaryRegistrations() []models.SalaryRegistration {
	type pay struct{ basic, overtime, allowances, deductions int64 }
	pays := []pay{
		{3500000, 250000, 300000, 430000},
		{3000000, 180000, 250000, 390000},
		{5000000, 0, 500000, 680000},
		{2800000, 320000, 200000, 370000},
		{3200000, 280000, 250000, 410000},
		{3800000, 0, 300000, 450000},
		{3100000, 150000, 250000, 400000},
		{4500000, 0, 400000, 580000},
	}
	statuses := []string{"확정", "확정", "확정", "확정", "임시저장", "임시저장", "미등록", "미등록"}
	out := make([]models.SalaryRegistration, len(staff))
	for i, p := range staff {
		pp := pays[i]
		out[i] = models.SalaryRegistration{
			ID: itoa(i + 1), EmployeeID: p.id, Name: p.name, Department: p.dept, Position: p.pos,
			PayMonth: "2023-06", Basic: won(pp.basic), Overtime: won(pp.overtime), Allowances: won(pp.allowances),
			Deductions: won(pp.deductions), NetPay: won(pp.basic + pp.overtime + pp.allowances - pp.deductions),
			Status: statuses[i],
		}
	}
	return out
}

// Payslips returns one June 2023 payslip per employee. Lines are built from
// the payroll sheet; EMP001 carries the detailed breakdown.
func Payslips() []models.Payslip {
	regs := SalaryRegistrations()
	joined := LeaveAllocations()
	out := make([]models.Payslip, 0, len(regs))
	for i, r := range regs {
		ps := models.Payslip{
			ID: "PS-202306-" + r.EmployeeID, EmployeeID: r.EmployeeID, Name: r.Name,
			Department: r.Department, Position: r.Position, JoinDate: joined[i].JoinDate,
			PayMonth: r.PayMonth, BankAccount: "국민은행 123-45-6789", PaymentDate: "2023-06-25",
			Income: []models.PayLine{
				{Name: "기본급", Amount: r.Basic},
				{Name: "초과근무수당", Amount: r.Overtime},
				{Name: "제수당", Amount: r.Allowances},
			},
			Deductions: []models.PayLine{{Name: "공제합계", Amount: r.Deductions}},
		}
		if r.EmployeeID == "EMP001" {
			ps.Income = []models.PayLine{
				{Name: "기본급", Amount: won(3500000)},
				{Name: "초과근무수당", Amount: won(250000)},
				{Name: "식대", Amount: won(200000)},
				{Name: "교통비", Amount: won(100000)},
			}
			ps.Deductions = []models.PayLine{
				{Name: "소득세", Amount: won(150000)},
				{Name: "국민연금", Amount: won(120000)},
				{Name: "건강보험", Amount: won(90000)},
				{Name: "고용보험", Amount: won(40000)},
				{Name: "장기요양보험", Amount: won(30000)},
			}
		}
		out = append(out, ps)
	}
	return out
}

// Employees returns the staff directory.
func Employees() []models.Employee {
	joined := LeaveAllocations()
	emails := []string{"hong", "kim", "lee", "park", "jung", "song", "choi", "han"}
	phones := []string{"010-1234-5678", "010-2345-6789", "010-3456-7890", "010-4567-8901", "010-5678-9012", "010-6789-0123", "010-7890-1234", "010-8901-2345"}
	out := make([]models.Employee, len(staff))
	for i, p := range staff {
		status := "재직"
		if p.id == "EMP006" {
			status = "휴직"
		}
		out[i] = models.Employee{
			ID: p.id, Name: p.name, Department: p.dept, Position: p.pos, JoinDate: joined[i].JoinDate,
			Status: status, Email: emails[i] + "@example.com", Phone: phones[i],
		}
	}
	return out
}

// EmployeeProfiles returns the personnel cards. Only EMP001 carries the full
// history; the rest are filled from the directory.
func EmployeeProfiles() []models.EmployeeProfile {
	regs := SalaryRegistrations()
	out := make([]models.EmployeeProfile, 0, len(staff))
	for i, e := range Employees() {
		p := models.EmployeeProfile{
			ID: e.ID, Name: e.Name, Department: e.Department, Position: e.Position, Email: e.Email,
			Phone: e.Phone, JoinDate: e.JoinDate, Status: e.Status,
			HRInfo: models.HRInfo{
				EmployeeNumber: e.JoinDate[:4] + "-" + e.JoinDate[5:7] + e.JoinDate[8:10],
				EmployeeType:   "정규직", ContractPeriod: "무기한", WorkHours: "09:00 - 18:00",
				Team: e.Department, Location: "서울 본사",
			},
			PaymentInfo: models.PaymentInfo{
				BankName: "국민은행", AccountHolder: e.Name, BasicSalary: regs[i].Basic,
				LastPaymentDate: "2023-05-25",
			},
			Education:      []models.Education{},
			Career:         []models.Career{},
			Certifications: []models.Certification{},
			Benefits:       models.Benefits{Insurance: []string{"국민연금", "건강보험", "고용보험", "산재보험"}, AdditionalBenefits: []string{}},
		}
		if e.ID == "EMP001" {
			p.Address = "서울특별시 강남구 테헤란로 123"
			p.BirthDate = "1988-05-15"
			p.EmergencyContact = "홍부모 (010-8765-4321)"
			p.HRInfo = models.HRInfo{
				EmployeeNumber: "2020-0315", EmployeeType: "정규직", ContractPeriod: "무기한",
				WorkHours: "09:00 - 18:00", Division: "기술본부", Team: "프론트엔드팀",
				ReportTo: "김팀장 (팀장)", Location: "서울 본사", Extension: "1234",
			}
			p.PaymentInfo = models.PaymentInfo{
				BankName: "국민은행", AccountNumber: "123-45-6789-01", AccountHolder: "홍길동",
				BasicSalary: won(4500000), LastPaymentDate: "2023-05-25",
			}
			p.Education = []models.Education{
				{School: "서울대학교", Degree: "학사", Major: "컴퓨터공학", Period: "2007-03 ~ 2011-02"},
				{School: "서울과학기술고등학교", Degree: "고등학교", Major: "이과", Period: "2004-03 ~ 2007-02"},
			}
			p.Career = []models.Career{
				{Company: "ABC 기술", Position: "주니어 개발자", Period: "2011-03 ~ 2015-02", Description: "웹 애플리케이션 개발"},
				{Company: "XYZ 소프트웨어", Position: "선임 개발자", Period: "2015-03 ~ 2020-02", Description: "프론트엔드 개발 리드"},
			}
			p.Certifications = []models.Certification{
				{Name: "정보처리기사", Issuer: "한국산업인력공단", AcquiredDate: "2011-05-20"},
				{Name: "AWS 공인 솔루션스 아키텍트", Issuer: "Amazon Web Services", AcquiredDate: "2018-11-05"},
			}
			p.Benefits = models.Benefits{
				Insurance:          []string{"국민연금", "건강보험", "고용보험", "산재보험"},
				AdditionalBenefits: []string{"단체상해보험", "치과보험"},
				StockOptions:       "스톡옵션 5000주 (부여일: 2021-03-15)",
			}
		}
		out = append(out, p)
	}
	return out
}
