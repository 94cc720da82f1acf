package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/careops/staff-dashboard-backend/internal/models"
	"github.com/google/uuid"
)

// ShiftRepository handles shift assignment database operations
type ShiftRepository struct {
	db DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db DB) *ShiftRepository {
	return &ShiftRepository{
		db: db,
	}
}

// Create inserts a new shift assignment
func (r *ShiftRepository) Create(shiftDate string, shiftType models.ShiftType, staffID uuid.UUID) (*models.Shift, error) {
	shift := &models.Shift{
		ID:        uuid.New(),
		ShiftDate: shiftDate,
		ShiftType: shiftType,
		StaffID:   staffID,
		CreatedAt: time.Now(),
	}

	query := `
		INSERT INTO shifts (id, shift_date, shift_type, staff_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(query, shift.ID, shift.ShiftDate, shift.ShiftType, shift.StaffID, shift.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	return shift, nil
}

// List retrieves all shift assignments in ascending date order
func (r *ShiftRepository) List() ([]models.Shift, error) {
	var shifts []models.Shift
	query := `SELECT * FROM shifts ORDER BY shift_date, created_at`
	err := r.db.Select(&shifts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return shifts, nil
}

// Delete removes a shift assignment
func (r *ShiftRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
