package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"erp/internal/audit"
	"erp/internal/auth"
	"erp/internal/models"
	"erp/internal/response"
)

// HandleLogin authenticates a user and creates a session.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sess, err := h.Auth.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		response.Err(w, err.Error(), http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.logger().Error("login failed", zap.String("username", req.Username), zap.Error(err))
		response.Err(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	if err := audit.Log(r.Context(), h.DB, h.Hub, sess.User.Username, audit.ActionLogin, "auth", sess.User.Username, "로그인"); err != nil {
		h.logger().Warn("audit login", zap.Error(err))
	}
	auth.SetCookie(w, sess)
	response.JSON(w, models.LoginResponse{Redirect: "/", User: sess.User})
}

// HandleLogout logs out the user.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(auth.CookieName); err == nil {
		username := h.Auth.Username(r)
		if err := h.Auth.Logout(r.Context(), c.Value); err != nil {
			h.logger().Warn("logout", zap.Error(err))
		}
		if username != auth.Anonymous {
			if err := audit.Log(r.Context(), h.DB, h.Hub, username, audit.ActionLogout, "auth", username, "로그아웃"); err != nil {
				h.logger().Warn("audit logout", zap.Error(err))
			}
		}
	}
	auth.ClearCookie(w)
	response.JSON(w, map[string]string{"status": "ok"})
}

// HandleMe returns the current user's info.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.Auth.UserFromRequest(r)
	if errors.Is(err, auth.ErrNoSession) {
		response.Err(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, u)
}
