package common

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp/internal/dashboard"
	"erp/internal/menu"
	"erp/internal/testutil"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	st := testutil.SetupStore(t)
	return &Handler{
		Nav:      menu.NewHolder(menu.Default()),
		Registry: testutil.SeededRegistry(t, st),
		Clock:    testutil.Clock,
	}
}

func TestCalendarNavigation(t *testing.T) {
	h := newTestHandler(t)
	tests := []struct {
		name  string
		query string
		want  string
		today bool
	}{
		{"defaults to today", "", "2023-06-01", true},
		{"prev", "?date=2023-06-01&step=prev", "2023-05-31", false},
		{"next crosses month", "?date=2023-06-30&step=next", "2023-07-01", false},
		{"today resets", "?date=2020-01-15&step=today", "2023-06-01", true},
		{"no step keeps date", "?date=2023-06-10", "2023-06-10", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Calendar(w, httptest.NewRequest("GET", "/api/v1/calendar"+tt.query, nil))
			testutil.AssertStatus(t, w, http.StatusOK)

			var day CalendarDay
			testutil.DecodeEnvelope(t, w, &day)
			assert.Equal(t, tt.want, day.Date)
			assert.Equal(t, tt.today, day.Today)
		})
	}
}

func TestCalendarDisplay(t *testing.T) {
	h := newTestHandler(t)
	w := httptest.NewRecorder()
	h.Calendar(w, httptest.NewRequest("GET", "/api/v1/calendar", nil))

	var day CalendarDay
	testutil.DecodeEnvelope(t, w, &day)
	assert.Equal(t, "2023년 6월 1일 목요일", day.Display)
}

func TestCalendarRejectsBadInput(t *testing.T) {
	h := newTestHandler(t)
	for _, q := range []string{"?date=06/01/2023", "?step=sideways"} {
		w := httptest.NewRecorder()
		h.Calendar(w, httptest.NewRequest("GET", "/api/v1/calendar"+q, nil))
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	}
}

func TestLeaveDays(t *testing.T) {
	h := newTestHandler(t)
	tests := []struct {
		name   string
		query  string
		status int
		days   int
	}{
		{"single day", "?from=2023-06-20&to=2023-06-20", http.StatusOK, 1},
		{"week", "?from=2023-07-10&to=2023-07-14", http.StatusOK, 5},
		{"across months", "?from=2023-06-29&to=2023-07-02", http.StatusOK, 4},
		{"reversed", "?from=2023-06-22&to=2023-06-20", http.StatusBadRequest, 0},
		{"missing to", "?from=2023-06-22", http.StatusBadRequest, 0},
		{"bad date", "?from=2023-13-01&to=2023-13-02", http.StatusBadRequest, 0},
		{"day out of range", "?from=2023-02-30&to=2023-03-01", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.LeaveDays(w, httptest.NewRequest("GET", "/api/v1/leave/days"+tt.query, nil))
			testutil.AssertStatus(t, w, tt.status)
			if tt.status != http.StatusOK {
				return
			}
			var res LeaveDaysResult
			testutil.DecodeEnvelope(t, w, &res)
			assert.Equal(t, tt.days, res.Days)
		})
	}
}

func TestMenuDefaultsAndToggle(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.Menu(w, httptest.NewRequest("GET", "/api/v1/menu?active=/WMS/inventory/WMS0301", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var view MenuView
	testutil.DecodeEnvelope(t, w, &view)
	assert.Equal(t, []string{"HRS"}, view.Expanded)

	var wmsNode *menu.Node
	for i := range view.Items {
		if view.Items[i].ID == "WMS" {
			wmsNode = &view.Items[i]
		}
	}
	require.NotNil(t, wmsNode)
	assert.True(t, wmsNode.Expanded, "ancestor of the active screen opens")

	w = httptest.NewRecorder()
	h.Menu(w, httptest.NewRequest("GET", "/api/v1/menu?expanded=HRS&toggle=HRS", nil))
	testutil.DecodeEnvelope(t, w, &view)
	assert.Empty(t, view.Expanded)
}

func TestMenuModuleAndBreadcrumb(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.MenuModule(w, httptest.NewRequest("GET", "/api/v1/menu/modules/WMS", nil), "WMS")
	testutil.AssertStatus(t, w, http.StatusOK)
	var hub menu.Hub
	testutil.DecodeEnvelope(t, w, &hub)
	assert.NotEmpty(t, hub.Groups)

	w = httptest.NewRecorder()
	h.MenuModule(w, httptest.NewRequest("GET", "/api/v1/menu/modules/NOPE", nil), "NOPE")
	testutil.AssertStatus(t, w, http.StatusNotFound)

	w = httptest.NewRecorder()
	h.Breadcrumb(w, httptest.NewRequest("GET", "/api/v1/menu/breadcrumb?path=/HRS/attendance/HRS0101", nil))
	var crumbs []menu.Crumb
	testutil.DecodeEnvelope(t, w, &crumbs)
	require.NotEmpty(t, crumbs)
	assert.Equal(t, "HRS0101", crumbs[len(crumbs)-1].ID)

	w = httptest.NewRecorder()
	h.Breadcrumb(w, httptest.NewRequest("GET", "/api/v1/menu/breadcrumb", nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestDashboardEndpoint(t *testing.T) {
	h := newTestHandler(t)
	w := httptest.NewRecorder()
	h.Dashboard(w, httptest.NewRequest("GET", "/api/v1/dashboard", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var d dashboard.Dashboard
	testutil.DecodeEnvelope(t, w, &d)
	assert.Equal(t, "2023-06-01", d.Date)
	require.Len(t, d.Cards, 5)
	assert.Equal(t, "5건", d.Cards[2].Value)
}
