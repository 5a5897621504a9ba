package records

import (
	"net/http"

	"erp/internal/audit"
	"erp/internal/response"
)

// GetRow returns one record of a screen.
func (h *Handler) GetRow(w http.ResponseWriter, r *http.Request, id, rowID string) {
	s, ok := h.screen(w, id)
	if !ok {
		return
	}
	v, err := s.Get(r.Context(), rowID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, v)
}

// CreateRow stores a new record. A missing id is generated.
func (h *Handler) CreateRow(w http.ResponseWriter, r *http.Request, id string) {
	s, ok := h.screen(w, id)
	if !ok {
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	rowID, v, err := s.Create(r.Context(), body)
	if err != nil {
		writeError(w, err)
		return
	}
	h.audit(r.Context(), r, audit.ActionCreate, id, rowID, s.Info().Title+" 등록: "+rowID)
	response.Created(w, v)
}

// UpdateRow replaces a record. The id cannot change.
func (h *Handler) UpdateRow(w http.ResponseWriter, r *http.Request, id, rowID string) {
	s, ok := h.screen(w, id)
	if !ok {
		return
	}
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	v, err := s.Update(r.Context(), rowID, body)
	if err != nil {
		writeError(w, err)
		return
	}
	h.audit(r.Context(), r, audit.ActionUpdate, id, rowID, s.Info().Title+" 수정: "+rowID)
	response.JSON(w, v)
}

// DeleteRow removes a record.
func (h *Handler) DeleteRow(w http.ResponseWriter, r *http.Request, id, rowID string) {
	s, ok := h.screen(w, id)
	if !ok {
		return
	}
	if err := s.Delete(r.Context(), rowID); err != nil {
		response.Error(w, err)
		return
	}
	h.audit(r.Context(), r, audit.ActionDelete, id, rowID, s.Info().Title+" 삭제: "+rowID)
	response.JSON(w, map[string]string{"status": "deleted", "id": rowID})
}
