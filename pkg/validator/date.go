package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only accepted calendar date format (ISO 8601, no
// time-of-day component)
const DateLayout = "2006-01-02"

var (
	// ErrEmptyDate indicates the date string is empty
	ErrEmptyDate = errors.New("date cannot be empty")

	// ErrInvalidDate indicates the date is not a valid YYYY-MM-DD calendar date
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")

	// ErrRatingOutOfRange indicates a rating outside the 1-5 scale
	ErrRatingOutOfRange = errors.New("rating must be an integer between 1 and 5")
)

// DateValidator handles calendar date validation
type DateValidator struct{}

// NewDateValidator creates a new date validator instance
func NewDateValidator() *DateValidator {
	return &DateValidator{}
}

// Validate validates a YYYY-MM-DD date string.
// Returns the parsed calendar date and an error if invalid. Any other
// format is rejected rather than coerced.
func (v *DateValidator) Validate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, ErrEmptyDate
	}

	parsed, err := time.Parse(DateLayout, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	return parsed, nil
}

// ValidateOptional validates a date field that may be absent. A nil or
// empty value passes; a present value must be a valid date.
func (v *DateValidator) ValidateOptional(value *string) error {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	_, err := v.Validate(*value)
	return err
}

// ValidateRating checks a feedback rating against the 1-5 scale
func (v *DateValidator) ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrRatingOutOfRange
	}
	return nil
}
