package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"erp/internal/models"
	"erp/internal/store"
	"erp/internal/validation"
)

// JSON writes a successful API response with the given data.
func JSON(w http.ResponseWriter, data any) {
	json.NewEncoder(w).Encode(models.APIResponse{Data: data})
}

// JSONMeta writes a successful API response with pagination metadata.
func JSONMeta(w http.ResponseWriter, data any, total, page, limit int) {
	json.NewEncoder(w).Encode(models.APIResponse{
		Data: data,
		Meta: &models.Meta{Total: total, Page: page, Limit: limit},
	})
}

// Created writes data with status 201.
func Created(w http.ResponseWriter, data any) {
	w.WriteHeader(http.StatusCreated)
	JSON(w, data)
}

// Err writes a JSON error response with the given message and HTTP status code.
func Err(w http.ResponseWriter, msg string, code int) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// Error maps err to a status code. Validation failures carry their field
// errors along with the message.
func Error(w http.ResponseWriter, err error) {
	var ve *validation.ValidationErrors
	switch {
	case errors.As(err, &ve):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"error": ve.Error(), "fields": ve.Errors})
	case errors.Is(err, store.ErrNotFound):
		Err(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, store.ErrDuplicate):
		Err(w, err.Error(), http.StatusConflict)
	default:
		Err(w, "internal server error", http.StatusInternalServerError)
	}
}

// DecodeBody decodes a JSON request body into the given value.
func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
