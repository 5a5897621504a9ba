package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the calendar date format used by every record.
const DateLayout = "2006-01-02"

// ValidationError represents a structured validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects multiple field errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (ve *ValidationErrors) Add(field, message string) {
	ve.Errors = append(ve.Errors, ValidationError{Field: field, Message: message})
}

func (ve *ValidationErrors) HasErrors() bool {
	return len(ve.Errors) > 0
}

func (ve *ValidationErrors) Error() string {
	msgs := make([]string, len(ve.Errors))
	for i, e := range ve.Errors {
		msgs[i] = e.Field + ": " + e.Message
	}
	return strings.Join(msgs, "; ")
}

// Err returns ve when it holds errors and nil otherwise, so callers can
// return it directly as an error.
func (ve *ValidationErrors) Err() error {
	if ve.HasErrors() {
		return ve
	}
	return nil
}

// RequireField checks a required string field is non-empty.
func RequireField(ve *ValidationErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		ve.Add(field, "is required")
	}
}

// ValidateEnum checks a field is one of allowed values.
func ValidateEnum(ve *ValidationErrors, field, value string, allowed []string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	ve.Add(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
}

// ValidateDate checks a field is a valid date (YYYY-MM-DD).
func ValidateDate(ve *ValidationErrors, field, value string) {
	if value == "" {
		return
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		ve.Add(field, "must be a valid date (YYYY-MM-DD)")
	}
}

// ValidateDateRange checks both bounds are dates and from is not after to.
func ValidateDateRange(ve *ValidationErrors, fromField, from, toField, to string) {
	before := len(ve.Errors)
	ValidateDate(ve, fromField, from)
	ValidateDate(ve, toField, to)
	if len(ve.Errors) > before || from == "" || to == "" {
		return
	}
	if from > to {
		ve.Add(toField, "must not be before "+fromField)
	}
}

// clockPattern matches HH:MM:SS.
var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d:[0-5]\d$`)

// ValidateClock checks a field is a wall-clock time (HH:MM:SS).
func ValidateClock(ve *ValidationErrors, field, value string) {
	if value == "" {
		return
	}
	if !clockPattern.MatchString(value) {
		ve.Add(field, "must be a valid time (HH:MM:SS)")
	}
}

// ValidatePositiveFloat checks a field is > 0.
func ValidatePositiveFloat(ve *ValidationErrors, field string, value float64) {
	if value <= 0 {
		ve.Add(field, "must be a positive number")
	}
}

// ValidateNonNegativeFloat checks a field is >= 0.
func ValidateNonNegativeFloat(ve *ValidationErrors, field string, value float64) {
	if value < 0 {
		ve.Add(field, "must be non-negative")
	}
}

// ValidateNonNegativeInt checks a field is >= 0.
func ValidateNonNegativeInt(ve *ValidationErrors, field string, value int) {
	if value < 0 {
		ve.Add(field, "must be non-negative")
	}
}

// ValidateIntRange checks a field is within a specified range.
func ValidateIntRange(ve *ValidationErrors, field string, value, min, max int) {
	if value < min || value > max {
		ve.Add(field, fmt.Sprintf("must be between %d and %d", min, max))
	}
}

// ValidatePercentage checks a value is a valid percentage (0-100).
func ValidatePercentage(ve *ValidationErrors, field string, value float64) {
	if value < 0 || value > 100 {
		ve.Add(field, "must be between 0 and 100")
	}
}

// ValidateEmail checks a field is a valid email (if non-empty).
func ValidateEmail(ve *ValidationErrors, field, value string) {
	if value == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		ve.Add(field, "must be a valid email address")
	}
}

// MaxStringLength bounds free-text fields such as remarks.
const MaxStringLength = 10000

// ValidateMaxLength checks string doesn't exceed max length.
func ValidateMaxLength(ve *ValidationErrors, field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		ve.Add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

// CodePattern matches master-data codes (letters, numbers, hyphens).
var CodePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9\-_.]*$`)

// ValidateCode validates a master-data code field.
func ValidateCode(ve *ValidationErrors, field, value string) {
	if value == "" {
		return
	}
	if !CodePattern.MatchString(value) {
		ve.Add(field, "must contain only letters, numbers, hyphens, underscores, and dots")
	}
}
