package common

import (
	"time"

	"erp/internal/calendar"
	"erp/internal/menu"
	"erp/internal/screens"
)

// Handler holds dependencies for the navigation, calendar and dashboard
// endpoints.
type Handler struct {
	Nav      *menu.Holder
	Registry *screens.Registry

	// Clock pins "today". Nil means time.Now.
	Clock calendar.Clock
}

func (h *Handler) now() time.Time {
	if h.Clock == nil {
		return time.Now()
	}
	return h.Clock()
}
