package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp/internal/auth"
	"erp/internal/models"
	"erp/internal/store"
)

func newService(t *testing.T) *auth.Service {
	t.Helper()
	st, err := store.Open(context.Background(), store.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := auth.NewService(st.DB)
	require.NoError(t, svc.SeedAdmin(context.Background(), "admin", "admin", "관리자"))
	return svc
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid", "admin", "admin", nil},
		{"wrong password", "admin", "nope", auth.ErrInvalidCredentials},
		{"unknown user", "ghost", "admin", auth.ErrInvalidCredentials},
		{"empty", "", "", auth.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := svc.Login(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, sess.Token)
			assert.Equal(t, "admin", sess.User.Username)
			assert.Equal(t, "관리자", sess.User.DisplayName)
			assert.WithinDuration(t, time.Now().Add(auth.SessionTTL), sess.Expires, time.Minute)
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	sess, err := svc.Login(ctx, "admin", "admin")
	require.NoError(t, err)

	u, err := svc.Lookup(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Role)

	rec := httptest.NewRecorder()
	auth.SetCookie(rec, sess)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	assert.Equal(t, "admin", svc.Username(req))

	require.NoError(t, svc.Logout(ctx, sess.Token))
	_, err = svc.Lookup(ctx, sess.Token)
	assert.ErrorIs(t, err, auth.ErrNoSession)
	assert.Equal(t, auth.Anonymous, svc.Username(req))
}

func TestSeedAdminResetsPassword(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	require.NoError(t, svc.SeedAdmin(ctx, "admin", "changed", "관리자"))
	_, err := svc.Login(ctx, "admin", "admin")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "admin", "changed")
	assert.NoError(t, err)

	assert.Error(t, svc.SeedAdmin(ctx, " ", "x", ""))
}

func TestUserFromContext(t *testing.T) {
	svc := newService(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := svc.UserFromRequest(req)
	assert.ErrorIs(t, err, auth.ErrNoSession)

	req = req.WithContext(auth.WithUser(req.Context(), models.User{ID: 7, Username: "kim"}))
	u, err := svc.UserFromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, 7, u.ID)
	assert.Equal(t, "kim", svc.Username(req))
}
