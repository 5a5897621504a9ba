// Package auth holds users and cookie sessions.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"erp/internal/models"
)

// CookieName is the session cookie set on login.
const CookieName = "erp_session"

// SessionTTL bounds how long a session stays valid.
const SessionTTL = 24 * time.Hour

// Anonymous is the audit name used when a request has no session.
const Anonymous = "system"

const timeLayout = "2006-01-02 15:04:05"

var (
	ErrInvalidCredentials = errors.New("아이디 또는 비밀번호가 올바르지 않습니다.")
	ErrNoSession          = errors.New("no valid session")
)

// Session is an issued login.
type Session struct {
	Token   string
	User    models.User
	Expires time.Time
}

// Service checks credentials against the users table and keeps sessions in
// the sessions table.
type Service struct {
	db  *sql.DB
	now func() time.Time
}

// NewService wraps db. The tables are created by store.Open.
func NewService(db *sql.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// SeedAdmin creates or resets the administrator account.
func (s *Service) SeedAdmin(ctx context.Context, username, password, displayName string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return errors.New("admin username and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, display_name, role) VALUES (?, ?, ?, 'admin')
		 ON CONFLICT(username) DO UPDATE SET password_hash = excluded.password_hash, display_name = excluded.display_name`,
		username, string(hash), displayName)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

// Login checks the credentials and opens a session.
func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	var u models.User
	var hash string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, COALESCE(display_name,''), role, password_hash FROM users WHERE username = ?", username).
		Scan(&u.ID, &u.Username, &u.DisplayName, &u.Role, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("login %s: %w", username, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}

	now := s.now().UTC()
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at < ?", now.Format(timeLayout)); err != nil {
		return Session{}, fmt.Errorf("prune sessions: %w", err)
	}
	sess := Session{Token: uuid.NewString(), User: u, Expires: now.Add(SessionTTL)}
	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO sessions (token, user_id, expires_at) VALUES (?, ?, ?)",
		sess.Token, u.ID, sess.Expires.Format(timeLayout)); err != nil {
		return Session{}, fmt.Errorf("create session: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "UPDATE users SET last_login = ? WHERE id = ?", now.Format(timeLayout), u.ID); err != nil {
		return Session{}, fmt.Errorf("update last login: %w", err)
	}
	return sess, nil
}

// Logout drops the session. Unknown tokens are ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token)
	return err
}

// Lookup returns the user owning a live session.
func (s *Service) Lookup(ctx context.Context, token string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT u.id, u.username, COALESCE(u.display_name,''), u.role
		 FROM sessions s JOIN users u ON s.user_id = u.id
		 WHERE s.token = ? AND s.expires_at > ?`, token, s.now().UTC().Format(timeLayout)).
		Scan(&u.ID, &u.Username, &u.DisplayName, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoSession
	}
	if err != nil {
		return models.User{}, fmt.Errorf("lookup session: %w", err)
	}
	return u, nil
}

type ctxKey struct{}

// WithUser attaches an authenticated user to ctx.
func WithUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// UserFrom returns the user attached by WithUser.
func UserFrom(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(ctxKey{}).(models.User)
	return u, ok
}

// UserFromRequest returns the user the auth middleware attached to r, or
// resolves the session cookie.
func (s *Service) UserFromRequest(r *http.Request) (models.User, error) {
	if u, ok := UserFrom(r.Context()); ok {
		return u, nil
	}
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return models.User{}, ErrNoSession
	}
	return s.Lookup(r.Context(), c.Value)
}

// Username returns the user behind r, or Anonymous.
func (s *Service) Username(r *http.Request) string {
	u, err := s.UserFromRequest(r)
	if err != nil {
		return Anonymous
	}
	return u.Username
}

// SetCookie attaches sess to the response.
func SetCookie(w http.ResponseWriter, sess Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sess.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  sess.Expires,
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
