// Package pages serves the server-rendered HTML screens.
package pages

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"erp/internal/auth"
	"erp/internal/calendar"
	"erp/internal/menu"
	"erp/internal/models"
	"erp/internal/screens"
	"erp/internal/web"
)

// Handler renders pages with the shared layout.
type Handler struct {
	Auth     *auth.Service
	Menu     *menu.Holder
	Registry *screens.Registry
	Renderer *web.Renderer
	Company  string
	Logger   *zap.Logger

	// Clock pins "today". Nil means time.Now.
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

func (h *Handler) user(r *http.Request) models.User {
	u, err := h.Auth.UserFromRequest(r)
	if err != nil && !errors.Is(err, auth.ErrNoSession) {
		h.logger().Warn("resolve page user", zap.Error(err))
	}
	return u
}

// layout fills the chrome for a page routed at path.
func (h *Handler) layout(r *http.Request, title, path string, content any) web.Layout {
	tree := h.Menu.Tree()
	exp := menu.NewExpansion(tree.Expanded...)
	if s := r.URL.Query().Get("expanded"); s != "" {
		exp = menu.ParseExpansion(s)
	}
	return web.Layout{
		Title:      title,
		Company:    h.Company,
		User:       h.user(r),
		Menu:       tree.Render(path, exp),
		Breadcrumb: tree.Breadcrumb(path),
		Content:    content,
	}
}

func (h *Handler) render(w http.ResponseWriter, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := h.Renderer.Render(w, page, data); err != nil {
		h.logger().Error("render page", zap.String("page", page), zap.Error(err))
	}
}
