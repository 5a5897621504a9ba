package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"erp/internal/auth"
	"erp/internal/menu"
	"erp/internal/models"
	"erp/internal/screens"
	"erp/internal/store"
)

// Today is the date every fixture-backed test runs on. Fixtures derive the
// attendance day from it.
var Today = time.Date(2023, 6, 1, 9, 0, 0, 0, time.UTC)

// Clock always returns Today.
func Clock() time.Time { return Today }

// Admin credentials seeded by SetupStore.
const (
	AdminUser     = "admin"
	AdminPassword = "admin"
)

// SetupStore opens a private in-memory store with the admin account seeded.
func SetupStore(t *testing.T) *store.Store {
	t.Helper()
	ctx := context.Background()
	st, err := store.Open(ctx, store.MemoryDSN)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	if err := auth.NewService(st.DB).SeedAdmin(ctx, AdminUser, AdminPassword, "관리자"); err != nil {
		t.Fatalf("Failed to seed admin user: %v", err)
	}
	return st
}

// SeededRegistry builds every screen over st and loads the fixtures as of
// Today.
func SeededRegistry(t *testing.T, st *store.Store) *screens.Registry {
	t.Helper()
	reg := screens.NewRegistry(st, menu.Default())
	if err := reg.Seed(context.Background(), Today); err != nil {
		t.Fatalf("Failed to seed screens: %v", err)
	}
	return reg
}

// LoginAdmin returns a session token for the seeded admin user.
func LoginAdmin(t *testing.T, st *store.Store) string {
	t.Helper()
	sess, err := auth.NewService(st.DB).Login(context.Background(), AdminUser, AdminPassword)
	if err != nil {
		t.Fatalf("Failed to log in admin: %v", err)
	}
	return sess.Token
}

// AuthedRequest creates an authenticated HTTP request with a session cookie.
func AuthedRequest(method, path string, body []byte, sessionToken string) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: sessionToken})
	}

	return req
}

// AuthedJSONRequest creates an authenticated HTTP request with JSON content type.
func AuthedJSONRequest(method, path string, body interface{}, sessionToken string) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}

	req := AuthedRequest(method, path, bodyBytes, sessionToken)
	req.Header.Set("Content-Type", "application/json")

	return req
}

// DecodeAPIResponse decodes an APIResponse from a ResponseRecorder.
func DecodeAPIResponse(t *testing.T, w *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var response models.APIResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode API response: %v", err)
	}
	return response
}

// AssertStatus checks that the HTTP status code matches expected.
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// DecodeEnvelope decodes an API response envelope and extracts the data.
func DecodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	var resp models.APIResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode API envelope: %v", err)
	}
	dataBytes, _ := json.Marshal(resp.Data)
	if err := json.Unmarshal(dataBytes, v); err != nil {
		t.Fatalf("Failed to decode data from envelope: %v", err)
	}
}

// DecodeError returns the message of an error response.
func DecodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	return body.Error
}
