package records

import (
	"net/http"

	"go.uber.org/zap"

	"erp/internal/audit"
	"erp/internal/datatable"
	"erp/internal/export"
	"erp/internal/models"
	"erp/internal/response"
)

// ListScreens returns every registered screen with its row count.
func (h *Handler) ListScreens(w http.ResponseWriter, r *http.Request) {
	all := h.Registry.All()
	out := make([]models.ScreenInfo, 0, len(all))
	for _, s := range all {
		n, err := s.Len(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}
		info := s.Info()
		out = append(out, models.ScreenInfo{ID: info.ID, Title: info.Title, Module: info.Module, Path: info.Path, Rows: n})
	}
	response.JSONMeta(w, out, len(out), 0, 0)
}

// List returns the filtered page of a screen with its status counts.
func (h *Handler) List(w http.ResponseWriter, r *http.Request, id string) {
	s, ok := h.screen(w, id)
	if !ok {
		return
	}
	q, err := datatable.ParseQuery(r.URL.Query(), s.FilterNames())
	if err != nil {
		response.Error(w, err)
		return
	}
	res, err := s.List(r.Context(), q)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSONMeta(w, res, res.Total, res.Page, res.Limit)
}

// Summary returns only the status counts of a screen.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request, id string) {
	s, ok := h.screen(w, id)
	if !ok {
		return
	}
	q, err := datatable.ParseQuery(r.URL.Query(), s.FilterNames())
	if err != nil {
		response.Error(w, err)
		return
	}
	counts, err := s.Summary(r.Context(), q)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, counts)
}

// Schema describes the record type of a screen.
func (h *Handler) Schema(w http.ResponseWriter, r *http.Request, id string) {
	s, ok := h.screen(w, id)
	if !ok {
		return
	}
	response.JSON(w, s.Schema())
}

// Export downloads every row matching the query as CSV or XLSX. Pagination
// parameters are ignored.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request, id string) {
	s, ok := h.screen(w, id)
	if !ok {
		return
	}
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		response.Err(w, err.Error(), http.StatusBadRequest)
		return
	}
	q, err := datatable.ParseQuery(r.URL.Query(), s.FilterNames())
	if err != nil {
		response.Error(w, err)
		return
	}
	headers, data, err := s.Export(r.Context(), q)
	if err != nil {
		response.Error(w, err)
		return
	}
	h.audit(r.Context(), r, audit.ActionExport, id, string(format), s.Info().Title+" 내보내기")
	if err := export.Serve(w, format, id, headers, data); err != nil {
		h.logger().Error("export failed", zap.String("screen", id), zap.Error(err))
	}
}
