// Package hr derives the figures shown on the attendance, leave and payroll
// screens from their records.
package hr

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"erp/internal/calendar"
	"erp/internal/models"
	"erp/internal/money"
)

// ErrEmployeeNotFound is returned when no record exists for an employee id.
var ErrEmployeeNotFound = errors.New("employee not found")

// Remaining returns base + additional − used.
func Remaining(a models.LeaveAllocation) float64 {
	return a.BaseAllocation + a.AdditionalDays - a.UsedDays
}

// NormalizeAllocation recomputes RemainingDays.
func NormalizeAllocation(a *models.LeaveAllocation) {
	a.RemainingDays = Remaining(*a)
}

// LeaveBalance is the entitlement card of one employee.
type LeaveBalance struct {
	EmployeeID string  `json:"employeeId"`
	Name       string  `json:"name"`
	Total      float64 `json:"totalLeave"`
	Used       float64 `json:"usedLeave"`
	Remaining  float64 `json:"remainingLeave"`
}

// Balance looks up the allocation of employeeID.
func Balance(allocs []models.LeaveAllocation, employeeID string) (LeaveBalance, error) {
	for _, a := range allocs {
		if a.EmployeeID != employeeID {
			continue
		}
		return LeaveBalance{
			EmployeeID: a.EmployeeID,
			Name:       a.Name,
			Total:      a.BaseAllocation + a.AdditionalDays,
			Used:       a.UsedDays,
			Remaining:  Remaining(a),
		}, nil
	}
	return LeaveBalance{}, fmt.Errorf("%w: %s", ErrEmployeeNotFound, employeeID)
}

// AllocationTotals sums the allocation sheet.
type AllocationTotals struct {
	Employees int     `json:"employees"`
	Total     float64 `json:"totalLeaveDays"`
	Used      float64 `json:"usedLeaveDays"`
	Remaining float64 `json:"remainingLeaveDays"`
}

// TotalAllocations sums entitlement, usage and remainder across allocs.
func TotalAllocations(allocs []models.LeaveAllocation) AllocationTotals {
	t := AllocationTotals{Employees: len(allocs)}
	for _, a := range allocs {
		t.Total += a.BaseAllocation + a.AdditionalDays
		t.Used += a.UsedDays
		t.Remaining += Remaining(a)
	}
	return t
}

// UsageRate is the share of entitlement already used, in percent. It is
// zero when nothing is allocated.
func (t AllocationTotals) UsageRate() float64 {
	if t.Total == 0 {
		return 0
	}
	return t.Used / t.Total * 100
}

// IsHalfDay reports whether a leave type counts as half a day.
func IsHalfDay(leaveType string) bool {
	return strings.HasPrefix(leaveType, "반차")
}

// RequestDays counts the days a leave request covers. Half-day types count
// 0.5 regardless of the range.
func RequestDays(r models.LeaveRequest) (float64, error) {
	from, err := calendar.Parse(r.StartDate, time.UTC)
	if err != nil {
		return 0, err
	}
	to, err := calendar.Parse(r.EndDate, time.UTC)
	if err != nil {
		return 0, err
	}
	n, err := calendar.LeaveDays(from, to)
	if err != nil {
		return 0, err
	}
	if IsHalfDay(r.Type) {
		return 0.5, nil
	}
	return float64(n), nil
}

// NormalizeLeaveRequest fills Days from the date range when it is unset.
func NormalizeLeaveRequest(r *models.LeaveRequest) error {
	if r.Days > 0 {
		return nil
	}
	days, err := RequestDays(*r)
	if err != nil {
		return err
	}
	r.Days = days
	return nil
}

// Pending returns the approvals still waiting for a decision.
func Pending(approvals []models.LeaveApproval) []models.LeaveApproval {
	out := []models.LeaveApproval{}
	for _, a := range approvals {
		if a.Status == "대기" {
			out = append(out, a)
		}
	}
	return out
}

// NetPay returns basic + overtime + allowances − deductions.
func NetPay(r models.SalaryRegistration) decimal.Decimal {
	return r.Basic.Add(r.Overtime).Add(r.Allowances).Sub(r.Deductions)
}

// NormalizeRegistration recomputes NetPay.
func NormalizeRegistration(r *models.SalaryRegistration) {
	r.NetPay = NetPay(*r)
}

// PayrollSummary is the card row above the payroll sheet.
type PayrollSummary struct {
	Total        int             `json:"total"`
	Confirmed    int             `json:"confirmed"`
	Draft        int             `json:"draft"`
	Unregistered int             `json:"unregistered"`
	TotalNetPay  decimal.Decimal `json:"totalNetPay"`
	Display      string          `json:"totalNetPayDisplay"`
}

// Summarize aggregates regs. Callers pass the filtered sheet.
func Summarize(regs []models.SalaryRegistration) PayrollSummary {
	s := PayrollSummary{Total: len(regs), TotalNetPay: decimal.Zero}
	for _, r := range regs {
		switch r.Status {
		case "확정":
			s.Confirmed++
		case "임시저장":
			s.Draft++
		case "미등록":
			s.Unregistered++
		}
		s.TotalNetPay = s.TotalNetPay.Add(r.NetPay)
	}
	s.Display = money.Won(s.TotalNetPay)
	return s
}

func sumLines(lines []models.PayLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}

// NormalizePayslip recomputes the income, deduction and net totals.
func NormalizePayslip(p *models.Payslip) {
	p.TotalIncome = sumLines(p.Income)
	p.TotalDeduction = sumLines(p.Deductions)
	p.NetPay = p.TotalIncome.Sub(p.TotalDeduction)
}

// FindPayslip returns the payslip of employeeID for month (YYYY-MM). An
// empty month picks the latest one.
func FindPayslip(slips []models.Payslip, employeeID, month string) (models.Payslip, error) {
	var (
		found models.Payslip
		ok    bool
	)
	for _, p := range slips {
		if p.EmployeeID != employeeID {
			continue
		}
		if month != "" && p.PayMonth != month {
			continue
		}
		if !ok || p.PayMonth > found.PayMonth {
			found, ok = p, true
		}
	}
	if !ok {
		return models.Payslip{}, fmt.Errorf("%w: %s", ErrEmployeeNotFound, employeeID)
	}
	NormalizePayslip(&found)
	return found, nil
}
