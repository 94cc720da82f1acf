package models

import (
	"time"

	"github.com/google/uuid"
)

// ShiftType represents the shift slot a staff member is assigned to
type ShiftType string

const (
	ShiftMorning ShiftType = "Morning"
	ShiftEvening ShiftType = "Evening"
	ShiftNight   ShiftType = "Night"
)

// ValidShiftType reports whether t is one of the known shift slots
func ValidShiftType(t ShiftType) bool {
	switch t {
	case ShiftMorning, ShiftEvening, ShiftNight:
		return true
	}
	return false
}

// Shift represents a single shift assignment. Re-scheduling is
// delete-and-create; there is no update-in-place.
type Shift struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ShiftDate string    `json:"shift_date" db:"shift_date"`
	ShiftType ShiftType `json:"shift_type" db:"shift_type"`
	StaffID   uuid.UUID `json:"staff_id" db:"staff_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ShiftInput represents input for scheduling a shift
type ShiftInput struct {
	ShiftDate string    `json:"shift_date" binding:"required"`
	ShiftType ShiftType `json:"shift_type" binding:"required"`
	StaffID   string    `json:"staff_id" binding:"required"`
}
