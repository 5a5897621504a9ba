package common

import (
	"net/http"

	"erp/internal/calendar"
	"erp/internal/dashboard"
	"erp/internal/response"
)

// Dashboard returns the landing page cards for today.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := dashboard.Build(r.Context(), h.Registry, calendar.Format(h.now()))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, d)
}
