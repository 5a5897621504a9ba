package wms

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"erp/internal/testutil"
	wmscalc "erp/internal/wms"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	st := testutil.SetupStore(t)
	return &Handler{Registry: testutil.SeededRegistry(t, st)}
}

func TestUnitConversion(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		code   string
		status int
		want   Conversion
	}{
		{"EA", http.StatusOK, Conversion{Code: "EA", Name: "개", BaseUnit: "EA", Rate: 1, Convertible: true, Text: wmscalc.ConversionBase}},
		{"BOX", http.StatusOK, Conversion{Code: "BOX", Name: "박스", BaseUnit: "EA", Rate: 12, Convertible: true, Text: "1BOX = 12EA"}},
		{"PALLET", http.StatusOK, Conversion{Code: "PALLET", Name: "팔레트", BaseUnit: "CASE", Rate: 288, Convertible: true, Text: "1PALLET = 288EA"}},
		{"TON", http.StatusNotFound, Conversion{}},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.UnitConversion(w, httptest.NewRequest("GET", "/api/v1/wms/units/"+tt.code+"/conversion", nil), tt.code)
			testutil.AssertStatus(t, w, tt.status)
			if tt.status != http.StatusOK {
				return
			}
			var got Conversion
			testutil.DecodeEnvelope(t, w, &got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func codes(nodes []wmscalc.CategoryNode) []string {
	out := []string{}
	for _, n := range nodes {
		out = append(out, n.Code)
		out = append(out, codes(n.Children)...)
	}
	return out
}

func TestCategoryTree(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"collapsed", "", []string{"01", "02"}},
		{"one open", "?expanded=01", []string{"01", "01-01", "01-02", "02"}},
		{"all open", "?expanded=all", []string{"01", "01-01", "01-02", "02", "02-01", "02-02"}},
		{"status hides children of hidden parents", "?status=중지&expanded=all", []string{}},
		{"search hits a root", "?search=의류&expanded=all", []string{"02", "02-01", "02-02"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.CategoryTree(w, httptest.NewRequest("GET", "/api/v1/wms/categories/tree"+tt.query, nil))
			testutil.AssertStatus(t, w, http.StatusOK)

			var view CategoryTreeView
			testutil.DecodeEnvelope(t, w, &view)
			if diff := cmp.Diff(tt.want, codes(view.Nodes)); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, []wmscalc.LevelCount{{Level: 1, Count: 2}, {Level: 2, Count: 4}}, view.Levels)
		})
	}
}
