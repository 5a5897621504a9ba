// Package dashboard computes the summary cards on the landing page from the
// current screen data.
package dashboard

import (
	"context"
	"fmt"
	"math"

	"erp/internal/hr"
	"erp/internal/screens"
)

// Card is one figure on the dashboard.
type Card struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Note  string `json:"note"`
	Link  string `json:"link,omitempty"`
}

// Dashboard is the landing page payload.
type Dashboard struct {
	Date  string `json:"date"`
	Cards []Card `json:"cards"`
}

// Build reads the HR and accounting screens and lays out the cards. today
// is YYYY-MM-DD and selects the attendance day.
func Build(ctx context.Context, reg *screens.Registry, today string) (Dashboard, error) {
	employees, err := reg.HR.Employees.Rows(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("dashboard employees: %w", err)
	}
	attendance, err := reg.HR.Attendance.Rows(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("dashboard attendance: %w", err)
	}
	approvals, err := reg.HR.Approvals.Rows(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("dashboard approvals: %w", err)
	}
	allocations, err := reg.HR.Allocations.Rows(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("dashboard allocations: %w", err)
	}
	registrations, err := reg.HR.Registrations.Rows(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("dashboard payroll: %w", err)
	}
	vouchers, err := reg.ACC.Vouchers.Rows(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("dashboard vouchers: %w", err)
	}

	active, leave := 0, 0
	for _, e := range employees {
		switch e.Status {
		case "재직":
			active++
		case "휴직":
			leave++
		}
	}

	present, onLeave, absent, recorded := 0, 0, 0, 0
	for _, a := range attendance {
		if a.Date != today {
			continue
		}
		recorded++
		switch a.Status {
		case "휴가":
			onLeave++
		case "결근":
			absent++
		default:
			present++
		}
	}

	pendingLeave := len(hr.Pending(approvals))
	pendingVouchers := 0
	for _, v := range vouchers {
		if v.Status == "승인대기" {
			pendingVouchers++
		}
	}

	totals := hr.TotalAllocations(allocations)
	payroll := hr.Summarize(registrations)

	return Dashboard{
		Date: today,
		Cards: []Card{
			{
				Title: "직원 현황",
				Value: fmt.Sprintf("%d명", active),
				Note:  fmt.Sprintf("전체 %d명, 휴직 %d명", len(employees), leave),
				Link:  "/HRS/hr-info/HRS0401",
			},
			{
				Title: "오늘 출근 현황",
				Value: fmt.Sprintf("%d명 / %d명", present, recorded),
				Note:  fmt.Sprintf("휴가 %d명, 결근 %d명", onLeave, absent),
				Link:  "/HRS/attendance/HRS0101",
			},
			{
				Title: "결재 대기",
				Value: fmt.Sprintf("%d건", pendingLeave+pendingVouchers),
				Note:  fmt.Sprintf("연차 신청 %d건, 전표 %d건", pendingLeave, pendingVouchers),
				Link:  "/HRS/leave/HRS0202",
			},
			{
				Title: "이번달 연차 사용",
				Value: fmt.Sprintf("%s일", trimFloat(totals.Used)),
				Note:  fmt.Sprintf("전체 연차의 %d%% 사용", int(math.Round(totals.UsageRate()))),
				Link:  "/HRS/leave/HRS0203",
			},
			{
				Title: "이번달 급여 지출",
				Value: payroll.Display,
				Note:  fmt.Sprintf("확정 %d건, 임시저장 %d건", payroll.Confirmed, payroll.Draft),
				Link:  "/HRS/salary/HRS0302",
			},
		},
	}, nil
}

func trimFloat(f float64) string {
	if f == math.Trunc(f) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%.1f", f)
}
