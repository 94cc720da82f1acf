package database

import (
	"github.com/careops/staff-dashboard-backend/internal/models"
)

// Store bundles the per-entity repositories behind the read interface the
// core services consume. Each List call is a single query, so a caller
// reading the five collections gets one consistent snapshot per call.
type Store struct {
	Staff     *StaffRepository
	Shifts    *ShiftRepository
	Safety    *SafetyRepository
	Inventory *InventoryRepository
	Feedback  *FeedbackRepository
}

// NewStore creates a store over a single database connection
func NewStore(db DB) *Store {
	return &Store{
		Staff:     NewStaffRepository(db),
		Shifts:    NewShiftRepository(db),
		Safety:    NewSafetyRepository(db),
		Inventory: NewInventoryRepository(db),
		Feedback:  NewFeedbackRepository(db),
	}
}

// ListStaff returns all staff records
func (s *Store) ListStaff() ([]models.Staff, error) {
	return s.Staff.List()
}

// ListShifts returns all shift assignments
func (s *Store) ListShifts() ([]models.Shift, error) {
	return s.Shifts.List()
}

// ListSafetyConcerns returns all safety concerns
func (s *Store) ListSafetyConcerns() ([]models.SafetyConcern, error) {
	return s.Safety.List()
}

// ListInventory returns all inventory items
func (s *Store) ListInventory() ([]models.InventoryItem, error) {
	return s.Inventory.List()
}

// ListFeedback returns all feedback entries
func (s *Store) ListFeedback() ([]models.FeedbackEntry, error) {
	return s.Feedback.List()
}
