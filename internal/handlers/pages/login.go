package pages

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"erp/internal/auth"
	"erp/internal/web"
)

// LoginPage shows the login form, or sends a signed-in user home.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Auth.UserFromRequest(r); err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, http.StatusOK, web.PageLogin, web.LoginView{Company: h.Company})
}

// LoginSubmit handles the login form. Bad credentials re-render the form
// with the error under the password field.
func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64<<10)
	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusBadRequest, web.PageLogin, web.LoginView{Company: h.Company, Error: "잘못된 요청입니다."})
		return
	}
	userID := r.PostFormValue("userId")
	sess, err := h.Auth.Login(r.Context(), userID, r.PostFormValue("password"))
	if errors.Is(err, auth.ErrInvalidCredentials) {
		h.render(w, http.StatusOK, web.PageLogin, web.LoginView{Company: h.Company, UserID: userID, Error: err.Error()})
		return
	}
	if err != nil {
		h.logger().Error("form login", zap.String("username", userID), zap.Error(err))
		h.render(w, http.StatusInternalServerError, web.PageLogin, web.LoginView{Company: h.Company, UserID: userID, Error: "로그인 처리 중 오류가 발생했습니다."})
		return
	}
	auth.SetCookie(w, sess)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout drops the session and returns to the login form.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(auth.CookieName); err == nil {
		if err := h.Auth.Logout(r.Context(), c.Value); err != nil {
			h.logger().Warn("logout", zap.Error(err))
		}
	}
	auth.ClearCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
