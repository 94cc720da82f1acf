package models

import (
	"time"

	"github.com/google/uuid"
)

// SafetyStatus is the two-state lifecycle of a safety concern
type SafetyStatus string

const (
	SafetyOpen     SafetyStatus = "Open"
	SafetyResolved SafetyStatus = "Resolved"
)

// SafetyConcern represents a reported safety concern. Concerns start Open
// and are never deleted.
type SafetyConcern struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	ReportedDate string       `json:"reported_date" db:"reported_date"`
	StaffID      *uuid.UUID   `json:"staff_id,omitempty" db:"staff_id"`
	Description  string       `json:"description" db:"description"`
	Status       SafetyStatus `json:"status" db:"status"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}

// Resolve marks the concern resolved. Resolving an already-resolved
// concern is a no-op.
func (s *SafetyConcern) Resolve() {
	s.Status = SafetyResolved
}

// Toggle flips the concern between Open and Resolved
func (s *SafetyConcern) Toggle() {
	if s.Status == SafetyOpen {
		s.Status = SafetyResolved
	} else {
		s.Status = SafetyOpen
	}
}

// SafetyConcernInput represents input for reporting a safety concern
type SafetyConcernInput struct {
	ReportedDate string  `json:"reported_date" binding:"required"`
	StaffID      *string `json:"staff_id"`
	Description  string  `json:"description" binding:"required"`
}
