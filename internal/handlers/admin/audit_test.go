package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp/internal/audit"
	"erp/internal/models"
	"erp/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()
	for _, id := range []string{"BC-001", "BC-002", "BC-003"} {
		require.NoError(t, audit.Log(ctx, h.DB, nil, "admin", audit.ActionDelete, "WMS0501", id, "삭제"))
	}
	require.NoError(t, audit.Log(ctx, h.DB, nil, "admin", audit.ActionCreate, "HRS0101", "9", "등록"))

	tests := []struct {
		name   string
		query  string
		status int
		want   int
	}{
		{"all", "", http.StatusOK, 4},
		{"by module", "?module=WMS0501", http.StatusOK, 3},
		{"limited", "?limit=2", http.StatusOK, 2},
		{"bad limit", "?limit=zero", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.AuditLog(w, httptest.NewRequest("GET", "/api/v1/audit"+tt.query, nil))
			testutil.AssertStatus(t, w, tt.status)
			if tt.status != http.StatusOK {
				return
			}
			var entries []models.AuditEntry
			testutil.DecodeEnvelope(t, w, &entries)
			assert.Len(t, entries, tt.want)
		})
	}
}

func TestResetRestoresFixtures(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()

	s, ok := h.Registry.Get("WMS0501")
	require.True(t, ok)
	require.NoError(t, s.Delete(ctx, "BC-001"))
	before, err := s.Len(ctx)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.Reset(w, httptest.NewRequest("POST", "/api/v1/admin/reset", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	after, err := s.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
	_, err = s.Get(ctx, "BC-001")
	assert.NoError(t, err)

	entries, err := audit.List(ctx, h.DB, "system", 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, audit.ActionReset, entries[0].Action)
	assert.Equal(t, "system", entries[0].Username)
}
