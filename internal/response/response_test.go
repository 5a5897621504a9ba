package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp/internal/store"
	"erp/internal/validation"
)

func TestError(t *testing.T) {
	ve := &validation.ValidationErrors{}
	ve.Add("quantity", "must be a positive number")

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", ve, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("create: %w", ve), http.StatusBadRequest},
		{"not found", fmt.Errorf("WMS0101/x: %w", store.ErrNotFound), http.StatusNotFound},
		{"duplicate", fmt.Errorf("WMS0101/x: %w", store.ErrDuplicate), http.StatusConflict},
		{"other", fmt.Errorf("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Error(w, tt.err)
			assert.Equal(t, tt.code, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			assert.NotContains(t, body["error"], "disk", "internal errors are not leaked")
		})
	}
}

func TestJSONMeta(t *testing.T) {
	w := httptest.NewRecorder()
	JSONMeta(w, []string{"a"}, 3, 1, 1)
	assert.JSONEq(t, `{"data":["a"],"meta":{"total":3,"page":1,"limit":1}}`, w.Body.String())
}
