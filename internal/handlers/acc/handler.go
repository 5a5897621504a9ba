// Package acc serves the voucher journal footer.
package acc

import (
	"net/http"

	acccalc "erp/internal/acc"
	"erp/internal/datatable"
	"erp/internal/response"
	"erp/internal/screens"
)

// Handler holds dependencies for accounting handlers.
type Handler struct {
	Registry *screens.Registry
}

// VoucherTotals sums debit and credit over the vouchers matching the same
// search, filter and date parameters as the voucher list.
func (h *Handler) VoucherTotals(w http.ResponseWriter, r *http.Request) {
	vouchers := h.Registry.ACC.Vouchers
	q, err := datatable.ParseQuery(r.URL.Query(), vouchers.FilterNames())
	if err != nil {
		response.Error(w, err)
		return
	}
	rows, err := vouchers.Filtered(r.Context(), q)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, acccalc.Sum(rows))
}
