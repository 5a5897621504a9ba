package hr

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp/internal/calendar"
	"erp/internal/fixtures"
	"erp/internal/models"
)

func TestFixtureAllocationsAreConsistent(t *testing.T) {
	for _, a := range fixtures.LeaveAllocations() {
		assert.Equal(t, a.RemainingDays, Remaining(a), a.EmployeeID)
	}
}

func TestBalance(t *testing.T) {
	b, err := Balance(fixtures.LeaveAllocations(), "EMP002")
	require.NoError(t, err)
	assert.Equal(t, LeaveBalance{EmployeeID: "EMP002", Name: "김철수", Total: 16, Used: 7, Remaining: 9}, b)

	_, err = Balance(fixtures.LeaveAllocations(), "EMP999")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestTotalAllocations(t *testing.T) {
	totals := TotalAllocations(fixtures.LeaveAllocations())
	assert.Equal(t, 8, totals.Employees)
	assert.Equal(t, 126.0, totals.Total)
	assert.Equal(t, 53.0, totals.Used)
	assert.Equal(t, totals.Total-totals.Used, totals.Remaining)
	assert.InDelta(t, 53.0/126.0*100, totals.UsageRate(), 0.0001)
	assert.Zero(t, TotalAllocations(nil).UsageRate())
}

func TestRequestDays(t *testing.T) {
	tests := []struct {
		name    string
		req     models.LeaveRequest
		want    float64
		wantErr error
	}{
		{"single day", models.LeaveRequest{Type: "연차", StartDate: "2023-06-15", EndDate: "2023-06-15"}, 1, nil},
		{"inclusive range", models.LeaveRequest{Type: "연차", StartDate: "2023-07-05", EndDate: "2023-07-07"}, 3, nil},
		{"across month end", models.LeaveRequest{Type: "병가", StartDate: "2023-06-29", EndDate: "2023-07-02"}, 4, nil},
		{"half day", models.LeaveRequest{Type: "반차(오후)", StartDate: "2023-06-20", EndDate: "2023-06-20"}, 0.5, nil},
		{"reversed", models.LeaveRequest{Type: "연차", StartDate: "2023-06-16", EndDate: "2023-06-15"}, 0, calendar.ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequestDays(tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := RequestDays(models.LeaveRequest{StartDate: "06/15/2023", EndDate: "2023-06-15"})
	assert.Error(t, err)
}

func TestNormalizeLeaveRequestKeepsExplicitDays(t *testing.T) {
	r := models.LeaveRequest{Type: "연차", StartDate: "2023-06-15", EndDate: "2023-06-16", Days: 1}
	require.NoError(t, NormalizeLeaveRequest(&r))
	assert.Equal(t, 1.0, r.Days)

	r.Days = 0
	require.NoError(t, NormalizeLeaveRequest(&r))
	assert.Equal(t, 2.0, r.Days)
}

func TestPending(t *testing.T) {
	pending := Pending(fixtures.LeaveApprovals())
	require.Len(t, pending, 3)
	for _, a := range pending {
		assert.Equal(t, "대기", a.Status)
	}
	assert.NotNil(t, Pending(nil))
}

func TestSummarize(t *testing.T) {
	regs := fixtures.SalaryRegistrations()
	s := Summarize(regs)
	assert.Equal(t, 8, s.Total)
	assert.Equal(t, 4, s.Confirmed)
	assert.Equal(t, 2, s.Draft)
	assert.Equal(t, 2, s.Unregistered)
	assert.True(t, decimal.NewFromInt(28820000).Equal(s.TotalNetPay), s.TotalNetPay.String())
	assert.Equal(t, "28,820,000원", s.Display)

	for _, r := range regs {
		assert.True(t, NetPay(r).Equal(r.NetPay), r.EmployeeID)
	}
}

func TestPayslipTotals(t *testing.T) {
	p, err := FindPayslip(fixtures.Payslips(), "EMP001", "2023-06")
	require.NoError(t, err)
	assert.Equal(t, "4050000", p.TotalIncome.String())
	assert.Equal(t, "430000", p.TotalDeduction.String())
	assert.Equal(t, "3620000", p.NetPay.String())

	_, err = FindPayslip(fixtures.Payslips(), "EMP001", "2022-01")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestNormalizePayslipIsExact(t *testing.T) {
	p := models.Payslip{
		Income:     []models.PayLine{{Name: "a", Amount: decimal.RequireFromString("0.1")}, {Name: "b", Amount: decimal.RequireFromString("0.2")}},
		Deductions: []models.PayLine{{Name: "c", Amount: decimal.RequireFromString("0.3")}},
	}
	NormalizePayslip(&p)
	assert.True(t, p.NetPay.IsZero(), p.NetPay.String())
}
