package services

import (
	"fmt"
	"time"

	"github.com/careops/staff-dashboard-backend/internal/models"
	"github.com/careops/staff-dashboard-backend/pkg/validator"
)

// StatusEvaluator classifies certification and inventory records against a
// caller-supplied reference date. It performs no I/O and never fails:
// a stored date that does not parse degrades to an Unknown classification
// instead of an error.
type StatusEvaluator struct {
	dueSoonWindowDays int
}

// NewStatusEvaluator creates a new evaluator with the given due-soon window
func NewStatusEvaluator(dueSoonWindowDays int) *StatusEvaluator {
	return &StatusEvaluator{
		dueSoonWindowDays: dueSoonWindowDays,
	}
}

// DueSoonWindowDays returns the configured due-soon window
func (e *StatusEvaluator) DueSoonWindowDays() int {
	return e.dueSoonWindowDays
}

// CertificationStatus classifies a certification expiry date.
// An absent expiry is NotApplicable, an unparseable one is Unknown.
// Expiring exactly today counts as due soon, not expired; exactly
// dueSoonWindowDays out is due soon, one day further is valid.
func (e *StatusEvaluator) CertificationStatus(expiry *string, today time.Time) models.CertificationStatus {
	if expiry == nil || *expiry == "" {
		return models.CertificationNotApplicable
	}

	expiryDate, err := time.Parse(validator.DateLayout, *expiry)
	if err != nil {
		return models.CertificationUnknown
	}

	days := daysBetween(today, expiryDate)
	switch {
	case days < 0:
		return models.CertificationExpired
	case days <= e.dueSoonWindowDays:
		return models.CertificationDueSoon
	default:
		return models.CertificationValid
	}
}

// InventoryStatus classifies an inventory item. A parseable expiry in the
// past dominates the stock check; otherwise quantity at or below the
// minimum is low stock. An unparseable expiry is ignored so the stock
// level still decides.
func (e *StatusEvaluator) InventoryStatus(quantity, minQuantity int, expiry *string, today time.Time) models.InventoryStatus {
	if expiry != nil && *expiry != "" {
		expiryDate, err := time.Parse(validator.DateLayout, *expiry)
		if err == nil && daysBetween(today, expiryDate) < 0 {
			return models.InventoryExpired
		}
	}

	if quantity <= minQuantity {
		return models.InventoryLowStock
	}

	return models.InventoryOK
}

// DaysUntil returns the number of calendar days from today until the given
// date. Negative for past dates, zero for today.
func (e *StatusEvaluator) DaysUntil(date string, today time.Time) (int, error) {
	parsed, err := time.Parse(validator.DateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return daysBetween(today, parsed), nil
}

// dateOnly strips the time-of-day component
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole calendar days from a to b
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}
