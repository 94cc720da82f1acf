package models

import (
	"time"

	"github.com/google/uuid"
)

// CertificationStatus classifies a staff member's certification against a
// reference date
type CertificationStatus string

const (
	CertificationNotApplicable CertificationStatus = "N/A"
	CertificationUnknown       CertificationStatus = "Unknown"
	CertificationExpired       CertificationStatus = "Expired"
	CertificationDueSoon       CertificationStatus = "Due soon"
	CertificationValid         CertificationStatus = "Valid"
)

// Staff represents a staff member with optional certification tracking.
// Date fields are calendar dates stored as YYYY-MM-DD strings.
type Staff struct {
	ID                  uuid.UUID `json:"id" db:"id"`
	Name                string    `json:"name" db:"name"`
	Email               string    `json:"email" db:"email"`
	Role                *string   `json:"role,omitempty" db:"role"`
	CertificationName   *string   `json:"certification_name,omitempty" db:"certification_name"`
	CertificationExpiry *string   `json:"certification_expiry,omitempty" db:"certification_expiry"`
	TrainingDue         *string   `json:"training_due,omitempty" db:"training_due"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}

// StaffInput represents input for creating or updating a staff member
type StaffInput struct {
	Name                string  `json:"name" binding:"required"`
	Email               string  `json:"email" binding:"required"`
	Role                *string `json:"role"`
	CertificationName   *string `json:"certification_name"`
	CertificationExpiry *string `json:"certification_expiry"`
	TrainingDue         *string `json:"training_due"`
}

// StaffWithStatus pairs a staff record with its evaluated certification
// status for presentation
type StaffWithStatus struct {
	Staff
	CertificationStatus CertificationStatus `json:"certification_status"`
	DaysRemaining       *int                `json:"days_remaining,omitempty"`
}
