package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name  string
		check func(ve *ValidationErrors)
		field string
	}{
		{"required blank", func(ve *ValidationErrors) { RequireField(ve, "name", "  ") }, "name"},
		{"enum outside set", func(ve *ValidationErrors) { ValidateEnum(ve, "status", "보류", MasterStatuses) }, "status"},
		{"bad date", func(ve *ValidationErrors) { ValidateDate(ve, "date", "2023-02-30") }, "date"},
		{"reversed range", func(ve *ValidationErrors) { ValidateDateRange(ve, "from", "2023-06-10", "to", "2023-06-01") }, "to"},
		{"bad clock", func(ve *ValidationErrors) { ValidateClock(ve, "checkIn", "24:00:00") }, "checkIn"},
		{"zero rate", func(ve *ValidationErrors) { ValidatePositiveFloat(ve, "rate", 0) }, "rate"},
		{"negative qty", func(ve *ValidationErrors) { ValidateNonNegativeInt(ve, "qty", -1) }, "qty"},
		{"bad email", func(ve *ValidationErrors) { ValidateEmail(ve, "email", "not-an-email") }, "email"},
		{"long name", func(ve *ValidationErrors) { ValidateMaxLength(ve, "name", strings.Repeat("가", 51), 50) }, "name"},
		{"bad code", func(ve *ValidationErrors) { ValidateCode(ve, "code", "-BOX") }, "code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationErrors{}
			tt.check(ve)
			require.Len(t, ve.Errors, 1)
			assert.Equal(t, tt.field, ve.Errors[0].Field)
			assert.Error(t, ve.Err())
		})
	}
}

func TestValidatorsAcceptGoodValues(t *testing.T) {
	ve := &ValidationErrors{}
	RequireField(ve, "name", "홍길동")
	ValidateEnum(ve, "status", "", MasterStatuses)
	ValidateEnum(ve, "status", "사용", MasterStatuses)
	ValidateDate(ve, "date", "")
	ValidateDateRange(ve, "from", "2023-06-01", "to", "2023-06-01")
	ValidateDateRange(ve, "from", "", "to", "2023-06-01")
	ValidateClock(ve, "checkIn", "09:00:00")
	ValidateMaxLength(ve, "name", strings.Repeat("가", 50), 50)
	ValidateCode(ve, "code", "BOX-12.A")
	assert.NoError(t, ve.Err())
	assert.False(t, ve.HasErrors())
}

func TestValidationErrorMessage(t *testing.T) {
	ve := &ValidationErrors{}
	ve.Add("from", "must be a valid date (YYYY-MM-DD)")
	ve.Add("page", "must be a positive integer")
	assert.Equal(t, "from: must be a valid date (YYYY-MM-DD); page: must be a positive integer", ve.Error())
}
