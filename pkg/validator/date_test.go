package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateValidator(t *testing.T) {
	validator := NewDateValidator()
	assert.NotNil(t, validator)
}

func TestValidate_ValidDates(t *testing.T) {
	validator := NewDateValidator()

	validDates := []struct {
		input    string
		expected time.Time
		name     string
	}{
		{"2024-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Start of year"},
		{"2024-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), "Leap day"},
		{"2024-12-31", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), "End of year"},
		{" 2024-06-15 ", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), "Surrounding whitespace"},
	}

	for _, tc := range validDates {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := validator.Validate(tc.input)
			require.NoError(t, err)
			assert.True(t, parsed.Equal(tc.expected))
		})
	}
}

func TestValidate_InvalidDates(t *testing.T) {
	validator := NewDateValidator()

	invalidDates := []struct {
		input string
		name  string
	}{
		{"", "Empty"},
		{"   ", "Whitespace only"},
		{"2024/01/01", "Wrong separator"},
		{"01-01-2024", "Wrong field order"},
		{"2024-13-01", "Invalid month"},
		{"2023-02-29", "Non-leap February 29"},
		{"2024-1-1", "Unpadded fields"},
		{"tomorrow", "Not a date"},
		{"2024-01-01T00:00:00Z", "Timestamp instead of date"},
	}

	for _, tc := range invalidDates {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validator.Validate(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestValidateOptional(t *testing.T) {
	validator := NewDateValidator()

	empty := ""
	valid := "2024-05-01"
	invalid := "05/01/2024"

	assert.NoError(t, validator.ValidateOptional(nil))
	assert.NoError(t, validator.ValidateOptional(&empty))
	assert.NoError(t, validator.ValidateOptional(&valid))
	assert.ErrorIs(t, validator.ValidateOptional(&invalid), ErrInvalidDate)
}

func TestValidateRating(t *testing.T) {
	validator := NewDateValidator()

	for rating := 1; rating <= 5; rating++ {
		assert.NoError(t, validator.ValidateRating(rating))
	}
	assert.ErrorIs(t, validator.ValidateRating(0), ErrRatingOutOfRange)
	assert.ErrorIs(t, validator.ValidateRating(6), ErrRatingOutOfRange)
	assert.ErrorIs(t, validator.ValidateRating(-1), ErrRatingOutOfRange)
}
