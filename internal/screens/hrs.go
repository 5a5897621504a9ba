package screens

import (
	"context"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"erp/internal/calendar"
	"erp/internal/datatable"
	"erp/internal/fixtures"
	"erp/internal/hr"
	"erp/internal/models"
	"erp/internal/money"
	"erp/internal/store"
	"erp/internal/validation"
)

// CurrentEmployee is the employee the self-service leave screen belongs to.
const CurrentEmployee = "EMP001"

var payMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

func validatePayMonth(ve *validation.ValidationErrors, value string) {
	validation.RequireField(ve, "payMonth", value)
	if value != "" && !payMonthPattern.MatchString(value) {
		ve.Add("payMonth", "must be a month (YYYY-MM)")
	}
}

// HR groups the human resources screens.
type HR struct {
	Attendance    *Table[models.AttendanceRecord]
	Exceptions    *Table[models.AttendanceException]
	LeaveRequests *Table[models.LeaveRequest]
	Approvals     *Table[models.LeaveApproval]
	Allocations   *Table[models.LeaveAllocation]
	SalaryItems   *Table[models.SalaryItem]
	Registrations *Table[models.SalaryRegistration]
	Payslips      *Table[models.Payslip]
	Employees     *Table[models.Employee]
	Profiles      *Table[models.EmployeeProfile]
}

func (h *HR) screens() []Screen {
	return []Screen{
		h.Attendance, h.Exceptions, h.LeaveRequests, h.Approvals, h.Allocations,
		h.SalaryItems, h.Registrations, h.Payslips, h.Employees, h.Profiles,
	}
}

func newHR(st *store.Store) *HR {
	h := &HR{}

	type att = models.AttendanceRecord
	attStatus := field("status", "상태", func(r att) string { return r.Status }, validation.AttendanceStatuses...)
	attDate := field("date", "날짜", func(r att) string { return r.Date })
	h.Attendance = New(st, Def[att]{
		ID:        "HRS0101",
		Title:     "출퇴근 기록",
		DayHeader: true,
		Spec: datatable.Spec[att]{
			Search: []datatable.Field[att]{
				field("name", "이름", func(r att) string { return r.Name }),
				field("employeeId", "사번", func(r att) string { return r.EmployeeID }),
				field("department", "부서", func(r att) string { return r.Department }),
				field("position", "직급", func(r att) string { return r.Position }),
			},
			Filters: []datatable.Field[att]{attStatus},
			Date:    &attDate,
			Counts:  []datatable.Field[att]{attStatus},
		},
		Columns: []datatable.Field[att]{
			field("employeeId", "사번", func(r att) string { return r.EmployeeID }),
			field("name", "이름", func(r att) string { return r.Name }),
			field("department", "부서", func(r att) string { return r.Department }),
			field("position", "직급", func(r att) string { return r.Position }),
			field("clockIn", "출근시간", func(r att) string { return orDash(r.ClockIn) }),
			field("clockOut", "퇴근시간", func(r att) string { return orDash(r.ClockOut) }),
			field("workingHours", "근무시간", func(r att) string { return orDash(r.WorkingHours) }),
			attStatus,
			field("note", "비고", func(r att) string { return r.Note }),
		},
		Key:      func(r att) string { return r.ID },
		SetKey:   func(r *att, id string) { r.ID = id },
		IDPrefix: "ATT",
		Validate: func(r att, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "employeeId", r.EmployeeID)
			validation.RequireField(ve, "name", r.Name)
			validation.RequireField(ve, "date", r.Date)
			validation.ValidateDate(ve, "date", r.Date)
			validation.ValidateEnum(ve, "status", r.Status, validation.AttendanceStatuses)
			if r.ClockIn != nil {
				validation.ValidateClock(ve, "clockIn", *r.ClockIn)
			}
			if r.ClockOut != nil {
				validation.ValidateClock(ve, "clockOut", *r.ClockOut)
			}
		},
		Seed: func(now time.Time) []att { return fixtures.Attendance(calendar.Format(now)) },
	})

	type exc = models.AttendanceException
	excType := field("exceptionType", "유형", func(r exc) string { return r.ExceptionType }, validation.ExceptionTypes...)
	excStatus := field("status", "상태", func(r exc) string { return r.Status }, validation.ApprovalStatuses...)
	h.Exceptions = New(st, Def[exc]{
		ID:        "HRS0102",
		Title:     "지각/조퇴/결근 처리",
		DayHeader: true,
		Spec: datatable.Spec[exc]{
			Search: []datatable.Field[exc]{
				field("name", "이름", func(r exc) string { return r.Name }),
				field("employeeId", "사번", func(r exc) string { return r.EmployeeID }),
				field("department", "부서", func(r exc) string { return r.Department }),
				field("position", "직급", func(r exc) string { return r.Position }),
				field("reason", "사유", func(r exc) string { return r.Reason }),
			},
			Filters: []datatable.Field[exc]{excType, excStatus},
			Counts:  []datatable.Field[exc]{excStatus, excType},
		},
		Columns: []datatable.Field[exc]{
			field("employeeId", "사번", func(r exc) string { return r.EmployeeID }),
			field("name", "이름", func(r exc) string { return r.Name }),
			field("department", "부서", func(r exc) string { return r.Department }),
			field("date", "날짜", func(r exc) string { return r.Date }),
			excType,
			field("reason", "사유", func(r exc) string { return r.Reason }),
			excStatus,
			field("approver", "승인자", func(r exc) string { return r.Approver }),
			field("requestDate", "신청일", func(r exc) string { return r.RequestDate }),
		},
		Key:      func(r exc) string { return r.ID },
		SetKey:   func(r *exc, id string) { r.ID = id },
		IDPrefix: "EXC",
		Validate: func(r exc, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "employeeId", r.EmployeeID)
			validation.RequireField(ve, "exceptionType", r.ExceptionType)
			validation.ValidateEnum(ve, "exceptionType", r.ExceptionType, validation.ExceptionTypes)
			validation.ValidateEnum(ve, "status", r.Status, validation.ApprovalStatuses)
			validation.ValidateDate(ve, "date", r.Date)
			validation.ValidateDate(ve, "requestDate", r.RequestDate)
			validation.ValidateDate(ve, "approvedDate", r.ApprovedDate)
		},
		Seed: func(now time.Time) []exc { return fixtures.AttendanceExceptions(calendar.Format(now)) },
	})

	type lv = models.LeaveRequest
	lvStatus := field("status", "상태", func(r lv) string { return r.Status }, validation.ApprovalStatuses...)
	h.LeaveRequests = New(st, Def[lv]{
		ID:         "HRS0201",
		Title:      "연차 신청",
		LeaveRange: true,
		Spec: datatable.Spec[lv]{
			Search: []datatable.Field[lv]{
				field("type", "휴가 유형", func(r lv) string { return r.Type }),
				field("reason", "사유", func(r lv) string { return r.Reason }),
				field("startDate", "시작일", func(r lv) string { return r.StartDate }),
			},
			Filters: []datatable.Field[lv]{lvStatus},
			Counts:  []datatable.Field[lv]{lvStatus},
		},
		Columns: []datatable.Field[lv]{
			field("type", "휴가 유형", func(r lv) string { return r.Type }),
			field("startDate", "시작일", func(r lv) string { return r.StartDate }),
			field("endDate", "종료일", func(r lv) string { return r.EndDate }),
			field("days", "일수", func(r lv) string { return ftoa(r.Days) }),
			field("reason", "사유", func(r lv) string { return r.Reason }),
			lvStatus,
			field("approver", "승인자", func(r lv) string { return r.Approver }),
			field("requestDate", "신청일", func(r lv) string { return r.RequestDate }),
		},
		Key:      func(r lv) string { return r.ID },
		SetKey:   func(r *lv, id string) { r.ID = id },
		IDPrefix: "LV",
		Prepare:  hr.NormalizeLeaveRequest,
		Validate: func(r lv, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "employeeId", r.EmployeeID)
			validation.RequireField(ve, "type", r.Type)
			validation.ValidateEnum(ve, "type", r.Type, validation.LeaveTypes)
			validation.ValidateEnum(ve, "status", r.Status, validation.ApprovalStatuses)
			validation.RequireField(ve, "startDate", r.StartDate)
			validation.RequireField(ve, "endDate", r.EndDate)
			validation.ValidateDateRange(ve, "startDate", r.StartDate, "endDate", r.EndDate)
			validation.ValidatePositiveFloat(ve, "days", r.Days)
		},
		Seed: func(time.Time) []lv { return fixtures.LeaveRequests() },
		Cards: func(ctx context.Context, _, _ []lv) ([]Card, error) {
			allocs, err := h.Allocations.Rows(ctx)
			if err != nil {
				return nil, err
			}
			b, err := hr.Balance(allocs, CurrentEmployee)
			if err != nil {
				return []Card{}, nil
			}
			return []Card{
				{Label: "총 연차", Value: ftoa(b.Total) + "일"},
				{Label: "사용 연차", Value: ftoa(b.Used) + "일"},
				{Label: "잔여 연차", Value: ftoa(b.Remaining) + "일"},
			}, nil
		},
	})

	type ap = models.LeaveApproval
	apStatus := field("status", "상태", func(r ap) string { return r.Status }, validation.LeaveDecisionStatuses...)
	h.Approvals = New(st, Def[ap]{
		ID:    "HRS0202",
		Title: "연차 승인",
		Spec: datatable.Spec[ap]{
			Search: []datatable.Field[ap]{
				field("name", "이름", func(r ap) string { return r.Name }),
				field("employeeId", "사번", func(r ap) string { return r.EmployeeID }),
				field("department", "부서", func(r ap) string { return r.Department }),
			},
			Filters: []datatable.Field[ap]{apStatus},
			Counts:  []datatable.Field[ap]{apStatus},
		},
		Columns: []datatable.Field[ap]{
			field("employeeId", "사번", func(r ap) string { return r.EmployeeID }),
			field("name", "이름", func(r ap) string { return r.Name }),
			field("department", "부서", func(r ap) string { return r.Department }),
			field("type", "유형", func(r ap) string { return r.Type }),
			field("startDate", "시작일", func(r ap) string { return r.StartDate }),
			field("endDate", "종료일", func(r ap) string { return r.EndDate }),
			field("reason", "사유", func(r ap) string { return r.Reason }),
			apStatus,
			field("appliedDate", "신청일", func(r ap) string { return r.AppliedDate }),
			field("rejectionReason", "반려 사유", func(r ap) string { return r.RejectionReason }),
		},
		Key:    func(r ap) string { return r.ID },
		SetKey: func(r *ap, id string) { r.ID = id },
		Validate: func(r ap, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "employeeId", r.EmployeeID)
			validation.ValidateEnum(ve, "status", r.Status, validation.LeaveDecisionStatuses)
			validation.ValidateDateRange(ve, "startDate", r.StartDate, "endDate", r.EndDate)
			validation.ValidateDate(ve, "appliedDate", r.AppliedDate)
			if r.Status == "거절" {
				validation.RequireField(ve, "rejectionReason", r.RejectionReason)
			}
		},
		Seed: func(time.Time) []ap { return fixtures.LeaveApprovals() },
	})

	type al = models.LeaveAllocation
	alDept := field("department", "부서", func(r al) string { return r.Department })
	h.Allocations = New(st, Def[al]{
		ID:    "HRS0203",
		Title: "연차 자동 계산",
		Spec: datatable.Spec[al]{
			Search: []datatable.Field[al]{
				field("name", "이름", func(r al) string { return r.Name }),
				field("employeeId", "사번", func(r al) string { return r.EmployeeID }),
			},
			Filters: []datatable.Field[al]{alDept},
			Counts:  []datatable.Field[al]{alDept},
		},
		Columns: []datatable.Field[al]{
			field("employeeId", "사번", func(r al) string { return r.EmployeeID }),
			field("name", "이름", func(r al) string { return r.Name }),
			alDept,
			field("joinDate", "입사일", func(r al) string { return r.JoinDate }),
			field("serviceYears", "근속연수", func(r al) string { return itoa(r.ServiceYears) }),
			field("baseAllocation", "기본 연차", func(r al) string { return ftoa(r.BaseAllocation) }),
			field("additionalDays", "추가 연차", func(r al) string { return ftoa(r.AdditionalDays) }),
			field("usedDays", "사용 연차", func(r al) string { return ftoa(r.UsedDays) }),
			field("remainingDays", "잔여 연차", func(r al) string { return ftoa(r.RemainingDays) }),
		},
		Key:    func(r al) string { return r.ID },
		SetKey: func(r *al, id string) { r.ID = id },
		Prepare: func(r *al) error {
			hr.NormalizeAllocation(r)
			return nil
		},
		Validate: func(r al, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "employeeId", r.EmployeeID)
			validation.ValidateDate(ve, "joinDate", r.JoinDate)
			validation.ValidateNonNegativeInt(ve, "serviceYears", r.ServiceYears)
			validation.ValidateNonNegativeFloat(ve, "baseAllocation", r.BaseAllocation)
			validation.ValidateNonNegativeFloat(ve, "additionalDays", r.AdditionalDays)
			validation.ValidateNonNegativeFloat(ve, "usedDays", r.UsedDays)
		},
		Seed: func(time.Time) []al { return fixtures.LeaveAllocations() },
		Cards: func(_ context.Context, all, _ []al) ([]Card, error) {
			t := hr.TotalAllocations(all)
			return []Card{
				{Label: "총 연차", Value: ftoa(t.Total) + "일"},
				{Label: "사용 연차", Value: ftoa(t.Used) + "일"},
				{Label: "잔여 연차", Value: ftoa(t.Remaining) + "일"},
			}, nil
		},
	})

	type si = models.SalaryItem
	siType := field("type", "구분", func(r si) string { return r.Type }, validation.SalaryItemTypes...)
	siCategory := field("category", "분류", func(r si) string { return r.Category }, validation.SalaryItemCategories...)
	h.SalaryItems = New(st, Def[si]{
		ID:    "HRS0301",
		Title: "급여 항목 설정",
		Spec: datatable.Spec[si]{
			Search: []datatable.Field[si]{
				field("name", "항목명", func(r si) string { return r.Name }),
				field("description", "설명", func(r si) string { return r.Description }),
			},
			Filters: []datatable.Field[si]{siType, siCategory},
			Counts:  []datatable.Field[si]{siType},
		},
		Columns: []datatable.Field[si]{
			field("id", "코드", func(r si) string { return r.ID }),
			field("name", "항목명", func(r si) string { return r.Name }),
			siType,
			siCategory,
			field("amount", "금액", func(r si) string { return optAmount(r.Amount) }),
			field("rate", "비율(%)", func(r si) string { return optAmount(r.Rate) }),
			field("taxable", "과세", func(r si) string { return yesNo(r.Taxable) }),
			field("isActive", "사용", func(r si) string { return yesNo(r.IsActive) }),
			field("description", "설명", func(r si) string { return r.Description }),
		},
		Key:      func(r si) string { return r.ID },
		SetKey:   func(r *si, id string) { r.ID = id },
		IDPrefix: "SI",
		Validate: func(r si, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "name", r.Name)
			validation.RequireField(ve, "type", r.Type)
			validation.ValidateEnum(ve, "type", r.Type, validation.SalaryItemTypes)
			validation.ValidateEnum(ve, "category", r.Category, validation.SalaryItemCategories)
			if r.Amount != nil && r.Amount.IsNegative() {
				ve.Add("amount", "must be a non-negative number")
			}
			if r.Rate != nil {
				validation.ValidatePercentage(ve, "rate", r.Rate.InexactFloat64())
			}
		},
		Seed: func(time.Time) []si { return fixtures.SalaryItems() },
	})

	type reg = models.SalaryRegistration
	regStatus := field("status", "상태", func(r reg) string { return r.Status }, validation.PayrollStatuses...)
	h.Registrations = New(st, Def[reg]{
		ID:    "HRS0302",
		Title: "급여 명세 등록",
		Spec: datatable.Spec[reg]{
			Search: []datatable.Field[reg]{
				field("name", "이름", func(r reg) string { return r.Name }),
				field("employeeId", "사번", func(r reg) string { return r.EmployeeID }),
				field("department", "부서", func(r reg) string { return r.Department }),
			},
			Filters: []datatable.Field[reg]{
				field("payMonth", "급여월", func(r reg) string { return r.PayMonth }),
				regStatus,
			},
			Counts: []datatable.Field[reg]{regStatus},
		},
		Columns: []datatable.Field[reg]{
			field("employeeId", "사번", func(r reg) string { return r.EmployeeID }),
			field("name", "이름", func(r reg) string { return r.Name }),
			field("department", "부서", func(r reg) string { return r.Department }),
			field("position", "직급", func(r reg) string { return r.Position }),
			field("basic", "기본급", func(r reg) string { return amount(r.Basic) }),
			field("overtime", "초과근무", func(r reg) string { return amount(r.Overtime) }),
			field("allowances", "수당", func(r reg) string { return amount(r.Allowances) }),
			field("deductions", "공제", func(r reg) string { return amount(r.Deductions) }),
			field("netPay", "실지급액", func(r reg) string { return amount(r.NetPay) }),
			regStatus,
		},
		Key:    func(r reg) string { return r.ID },
		SetKey: func(r *reg, id string) { r.ID = id },
		Prepare: func(r *reg) error {
			hr.NormalizeRegistration(r)
			return nil
		},
		Validate: func(r reg, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "employeeId", r.EmployeeID)
			validatePayMonth(ve, r.PayMonth)
			validation.ValidateEnum(ve, "status", r.Status, validation.PayrollStatuses)
			amounts := []struct {
				name  string
				value decimal.Decimal
			}{
				{"basic", r.Basic}, {"overtime", r.Overtime},
				{"allowances", r.Allowances}, {"deductions", r.Deductions},
			}
			for _, a := range amounts {
				if a.value.IsNegative() {
					ve.Add(a.name, "must be a non-negative number")
				}
			}
		},
		Seed:          func(time.Time) []reg { return fixtures.SalaryRegistrations() },
		CountFiltered: true,
		Cards: func(_ context.Context, _, filtered []reg) ([]Card, error) {
			s := hr.Summarize(filtered)
			return []Card{{Label: "총 지급액", Value: s.Display}}, nil
		},
	})

	type ps = models.Payslip
	h.Payslips = New(st, Def[ps]{
		ID:    "HRS0303",
		Title: "명세서 조회",
		Spec: datatable.Spec[ps]{
			Search: []datatable.Field[ps]{
				field("name", "이름", func(r ps) string { return r.Name }),
				field("employeeId", "사번", func(r ps) string { return r.EmployeeID }),
				field("department", "부서", func(r ps) string { return r.Department }),
			},
			Filters: []datatable.Field[ps]{
				field("payMonth", "급여월", func(r ps) string { return r.PayMonth }),
			},
		},
		Columns: []datatable.Field[ps]{
			field("employeeId", "사번", func(r ps) string { return r.EmployeeID }),
			field("name", "이름", func(r ps) string { return r.Name }),
			field("department", "부서", func(r ps) string { return r.Department }),
			field("payMonth", "급여월", func(r ps) string { return r.PayMonth }),
			field("totalIncome", "지급총액", func(r ps) string { return amount(r.TotalIncome) }),
			field("totalDeduction", "공제총액", func(r ps) string { return amount(r.TotalDeduction) }),
			field("netPay", "실지급액", func(r ps) string { return amount(r.NetPay) }),
			field("paymentDate", "지급일", func(r ps) string { return r.PaymentDate }),
		},
		Key:      func(r ps) string { return r.ID },
		SetKey:   func(r *ps, id string) { r.ID = id },
		IDPrefix: "PS",
		Prepare: func(r *ps) error {
			hr.NormalizePayslip(r)
			return nil
		},
		Validate: func(r ps, ve *validation.ValidationErrors) {
			validation.RequireField(ve, "employeeId", r.EmployeeID)
			validatePayMonth(ve, r.PayMonth)
			validation.ValidateDate(ve, "paymentDate", r.PaymentDate)
			for _, l := range append(append([]models.PayLine(nil), r.Income...), r.Deductions...) {
				if l.Amount.IsNegative() {
					ve.Add("amount", l.Name+" must be a non-negative number")
				}
			}
		},
		Seed: func(time.Time) []ps { return fixtures.Payslips() },
		Cards: func(_ context.Context, _, filtered []ps) ([]Card, error) {
			total := money.Int(0)
			for _, p := range filtered {
				total = total.Add(p.NetPay)
			}
			return []Card{{Label: "실지급 합계", Value: money.Won(total)}}, nil
		},
	})

	type emp = models.Employee
	empStatus := field("status", "상태", func(r emp) string { return r.Status }, validation.EmployeeStatuses...)
	empDept := field("department", "부서", func(r emp) string { return r.Department })
	h.Employees = New(st, Def[emp]{
		ID:    "HRS0401",
		Title: "직원 정보 관리",
		Spec: datatable.Spec[emp]{
			Search: []datatable.Field[emp]{
				field("name", "이름", func(r emp) string { return r.Name }),
				field("id", "사번", func(r emp) string { return r.ID }),
				field("department", "부서", func(r emp) string { return r.Department }),
			},
			Filters: []datatable.Field[emp]{empDept, empStatus},
			Counts:  []datatable.Field[emp]{empStatus, empDept},
		},
		Columns: []datatable.Field[emp]{
			field("id", "사번", func(r emp) string { return r.ID }),
			field("name", "이름", func(r emp) string { return r.Name }),
			empDept,
			field("position", "직급", func(r emp) string { return r.Position }),
			field("joinDate", "입사일", func(r emp) string { return r.JoinDate }),
			empStatus,
			field("email", "이메일", func(r emp) string { return r.Email }),
			field("phone", "연락처", func(r emp) string { return r.Phone }),
		},
		Key:      func(r emp) string { return r.ID },
		SetKey:   func(r *emp, id string) { r.ID = id },
		IDPrefix: "EMP",
		Validate: validateEmployee,
		Seed:     func(time.Time) []emp { return fixtures.Employees() },
	})

	type prof = models.EmployeeProfile
	h.Profiles = New(st, Def[prof]{
		ID:    "HRS0402",
		Title: "직원 상세 정보",
		Spec: datatable.Spec[prof]{
			Search: []datatable.Field[prof]{
				field("name", "이름", func(r prof) string { return r.Name }),
				field("id", "사번", func(r prof) string { return r.ID }),
				field("department", "부서", func(r prof) string { return r.Department }),
			},
		},
		Columns: []datatable.Field[prof]{
			field("id", "사번", func(r prof) string { return r.ID }),
			field("name", "이름", func(r prof) string { return r.Name }),
			field("department", "부서", func(r prof) string { return r.Department }),
			field("position", "직급", func(r prof) string { return r.Position }),
			field("employeeType", "고용형태", func(r prof) string { return r.HRInfo.EmployeeType }),
			field("team", "팀", func(r prof) string { return r.HRInfo.Team }),
			field("location", "근무지", func(r prof) string { return r.HRInfo.Location }),
			field("status", "상태", func(r prof) string { return r.Status }),
		},
		Key:      func(r prof) string { return r.ID },
		SetKey:   func(r *prof, id string) { r.ID = id },
		IDPrefix: "EMP",
		Validate: func(r prof, ve *validation.ValidationErrors) {
			validateEmployee(models.Employee{ID: r.ID, Name: r.Name, Status: r.Status, Email: r.Email, JoinDate: r.JoinDate}, ve)
			validation.ValidateDate(ve, "birthDate", r.BirthDate)
			if r.PaymentInfo.BasicSalary.IsNegative() {
				ve.Add("paymentInfo.basicSalary", "must be a non-negative number")
			}
		},
		Seed: func(time.Time) []prof { return fixtures.EmployeeProfiles() },
	})

	return h
}

func validateEmployee(r models.Employee, ve *validation.ValidationErrors) {
	validation.RequireField(ve, "name", r.Name)
	validation.ValidateMaxLength(ve, "name", r.Name, 50)
	validation.ValidateEnum(ve, "status", r.Status, validation.EmployeeStatuses)
	validation.ValidateDate(ve, "joinDate", r.JoinDate)
	if r.Email != "" {
		validation.ValidateEmail(ve, "email", r.Email)
	}
}
