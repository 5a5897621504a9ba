package admin

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	"erp/internal/auth"
	"erp/internal/calendar"
	"erp/internal/screens"
	"erp/internal/websocket"
)

// Handler holds dependencies for the login, audit and maintenance
// endpoints.
type Handler struct {
	DB       *sql.DB
	Hub      *websocket.Hub
	Auth     *auth.Service
	Registry *screens.Registry
	Logger   *zap.Logger

	// Clock pins the date fixtures are reseeded against. Nil means time.Now.
	Clock calendar.Clock
}

func (h *Handler) now() time.Time {
	if h.Clock == nil {
		return time.Now()
	}
	return h.Clock()
}

func (h *Handler) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}
