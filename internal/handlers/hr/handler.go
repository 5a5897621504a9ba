// Package hr serves the HR figures that do not fit the generic screen
// listing: leave balances, payroll totals, payslips and personnel cards.
package hr

import (
	"errors"
	"net/http"

	"erp/internal/datatable"
	hrcalc "erp/internal/hr"
	"erp/internal/response"
	"erp/internal/screens"
	"erp/internal/validation"
)

// Handler holds dependencies for HR handlers.
type Handler struct {
	Registry *screens.Registry
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, hrcalc.ErrEmployeeNotFound) {
		response.Err(w, err.Error(), http.StatusNotFound)
		return
	}
	response.Error(w, err)
}

// LeaveBalance returns the entitlement card of an employee.
func (h *Handler) LeaveBalance(w http.ResponseWriter, r *http.Request, employeeID string) {
	allocs, err := h.Registry.HR.Allocations.Rows(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	b, err := hrcalc.Balance(allocs, employeeID)
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, b)
}

// PayrollSummary aggregates the payroll sheet. The optional search and
// month parameters narrow it the way the sheet's own filters do.
func (h *Handler) PayrollSummary(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month != "" {
		ve := &validation.ValidationErrors{}
		validation.ValidateDate(ve, "month", month+"-01")
		if ve.HasErrors() {
			response.Error(w, ve)
			return
		}
	}
	q := datatable.Query{Search: r.URL.Query().Get("search")}
	if month != "" {
		q.Filters = map[string]string{"payMonth": month}
	}
	regs, err := h.Registry.HR.Registrations.Filtered(r.Context(), q)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, hrcalc.Summarize(regs))
}

// Payslip returns an employee's payslip for month, or the latest one.
func (h *Handler) Payslip(w http.ResponseWriter, r *http.Request, employeeID string) {
	slips, err := h.Registry.HR.Payslips.Rows(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	p, err := hrcalc.FindPayslip(slips, employeeID, r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, err)
		return
	}
	response.JSON(w, p)
}

// Profile returns the personnel card of an employee.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request, employeeID string) {
	p, err := h.Registry.HR.Profiles.Find(r.Context(), employeeID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, p)
}
