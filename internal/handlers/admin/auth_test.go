package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp/internal/audit"
	"erp/internal/auth"
	"erp/internal/models"
	"erp/internal/testutil"
	"erp/internal/websocket"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	st := testutil.SetupStore(t)
	return &Handler{
		DB:       st.DB,
		Hub:      websocket.NewHub(nil),
		Auth:     auth.NewService(st.DB),
		Registry: testutil.SeededRegistry(t, st),
		Clock:    testutil.Clock,
	}
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	return nil
}

func TestHandleLogin(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"username":"admin","password":"admin"}`, http.StatusOK},
		{"wrong password", `{"username":"admin","password":"nope"}`, http.StatusUnauthorized},
		{"unknown user", `{"username":"ghost","password":"admin"}`, http.StatusUnauthorized},
		{"empty", `{}`, http.StatusUnauthorized},
		{"malformed", `{"username":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.HandleLogin(w, httptest.NewRequest("POST", "/auth/login", strings.NewReader(tt.body)))
			testutil.AssertStatus(t, w, tt.status)
			if tt.status != http.StatusOK {
				assert.Nil(t, sessionCookie(w))
				return
			}
			require.NotNil(t, sessionCookie(w))
			var res models.LoginResponse
			testutil.DecodeEnvelope(t, w, &res)
			assert.Equal(t, "/", res.Redirect)
			assert.Equal(t, "admin", res.User.Username)
		})
	}
}

func TestLoginErrorMessage(t *testing.T) {
	h := newTestHandler(t)
	w := httptest.NewRecorder()
	h.HandleLogin(w, httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"username":"admin","password":"x"}`)))
	assert.Equal(t, "아이디 또는 비밀번호가 올바르지 않습니다.", testutil.DecodeError(t, w))
}

func TestMeAndLogout(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.HandleLogin(w, httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"username":"admin","password":"admin"}`)))
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)

	w = httptest.NewRecorder()
	h.HandleMe(w, testutil.AuthedRequest("GET", "/auth/me", nil, cookie.Value))
	testutil.AssertStatus(t, w, http.StatusOK)
	var u models.User
	testutil.DecodeEnvelope(t, w, &u)
	assert.Equal(t, "admin", u.Username)

	w = httptest.NewRecorder()
	h.HandleLogout(w, testutil.AuthedRequest("POST", "/auth/logout", nil, cookie.Value))
	testutil.AssertStatus(t, w, http.StatusOK)
	cleared := sessionCookie(w)
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)

	w = httptest.NewRecorder()
	h.HandleMe(w, testutil.AuthedRequest("GET", "/auth/me", nil, cookie.Value))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	entries, err := audit.List(context.Background(), h.DB, "auth", 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, audit.ActionLogout, entries[0].Action)
	assert.Equal(t, audit.ActionLogin, entries[1].Action)
}

func TestMeWithoutSession(t *testing.T) {
	h := newTestHandler(t)
	w := httptest.NewRecorder()
	h.HandleMe(w, httptest.NewRequest("GET", "/auth/me", nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}
