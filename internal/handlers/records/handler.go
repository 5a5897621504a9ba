// Package records serves the generic screen endpoints: listings, status
// summaries, record schemas, exports and row CRUD.
package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"erp/internal/audit"
	"erp/internal/response"
	"erp/internal/screens"
	"erp/internal/websocket"
)

// maxBody caps row request bodies.
const maxBody = 1 << 20

// Handler holds dependencies for screen handlers.
type Handler struct {
	DB       *sql.DB
	Hub      *websocket.Hub
	Registry *screens.Registry
	Logger   *zap.Logger

	// GetUsername extracts the username from the request.
	GetUsername func(r *http.Request) string
}

func (h *Handler) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}

func (h *Handler) username(r *http.Request) string {
	if h.GetUsername == nil {
		return "system"
	}
	return h.GetUsername(r)
}

// screen resolves id or writes a 404.
func (h *Handler) screen(w http.ResponseWriter, id string) (screens.Screen, bool) {
	s, ok := h.Registry.Get(id)
	if !ok {
		response.Err(w, "unknown screen: "+id, http.StatusNotFound)
		return nil, false
	}
	return s, true
}

func (h *Handler) audit(ctx context.Context, r *http.Request, action, screenID, rowID, summary string) {
	if err := audit.Log(ctx, h.DB, h.Hub, h.username(r), action, screenID, rowID, summary); err != nil {
		h.logger().Warn("audit log failed",
			zap.String("action", action), zap.String("screen", screenID), zap.Error(err))
	}
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", screens.ErrInvalidBody, err)
	}
	return body, nil
}

// writeError adds the body-decoding case to response.Error.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, screens.ErrInvalidBody) {
		response.Err(w, err.Error(), http.StatusBadRequest)
		return
	}
	response.Error(w, err)
}
