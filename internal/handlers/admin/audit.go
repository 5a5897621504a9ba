package admin

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"erp/internal/audit"
	"erp/internal/response"
)

// AuditLog lists audit entries, newest first. Query: module, limit.
func (h *Handler) AuditLog(w http.ResponseWriter, r *http.Request) {
	limit := audit.DefaultLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			response.Err(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}
	entries, err := audit.List(r.Context(), h.DB, r.URL.Query().Get("module"), limit)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSONMeta(w, entries, len(entries), 1, limit)
}

// Reset reloads every screen from its fixtures.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.Registry.Seed(r.Context(), h.now()); err != nil {
		h.logger().Error("reset fixtures", zap.Error(err))
		response.Error(w, err)
		return
	}
	username := h.Auth.Username(r)
	if err := audit.Log(r.Context(), h.DB, h.Hub, username, audit.ActionReset, "system", "fixtures", "샘플 데이터 초기화"); err != nil {
		h.logger().Warn("audit reset", zap.Error(err))
	}
	response.JSON(w, map[string]any{"status": "ok", "screens": len(h.Registry.All())})
}
