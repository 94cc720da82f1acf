package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/careops/staff-dashboard-backend/internal/models"
	"github.com/google/uuid"
)

// StaffRepository handles staff database operations
type StaffRepository struct {
	db DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db DB) *StaffRepository {
	return &StaffRepository{
		db: db,
	}
}

// Create inserts a new staff member
func (r *StaffRepository) Create(input *models.StaffInput) (*models.Staff, error) {
	staff := &models.Staff{
		ID:                  uuid.New(),
		Name:                input.Name,
		Email:               input.Email,
		Role:                input.Role,
		CertificationName:   input.CertificationName,
		CertificationExpiry: input.CertificationExpiry,
		TrainingDue:         input.TrainingDue,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	query := `
		INSERT INTO staff (
			id, name, email, role,
			certification_name, certification_expiry, training_due,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(
		query,
		staff.ID,
		staff.Name,
		staff.Email,
		staff.Role,
		staff.CertificationName,
		staff.CertificationExpiry,
		staff.TrainingDue,
		staff.CreatedAt,
		staff.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}

	return staff, nil
}

// GetByID retrieves a staff member by ID. Returns nil without error when
// no record exists.
func (r *StaffRepository) GetByID(id uuid.UUID) (*models.Staff, error) {
	var staff models.Staff
	query := `SELECT * FROM staff WHERE id = $1`
	err := r.db.Get(&staff, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	return &staff, nil
}

// List retrieves all staff members
func (r *StaffRepository) List() ([]models.Staff, error) {
	var staff []models.Staff
	query := `SELECT * FROM staff ORDER BY created_at`
	err := r.db.Select(&staff, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

// Update replaces the editable fields of a staff member
func (r *StaffRepository) Update(id uuid.UUID, input *models.StaffInput) error {
	query := `
		UPDATE staff
		SET name = $1, email = $2, role = $3,
		    certification_name = $4, certification_expiry = $5, training_due = $6,
		    updated_at = $7
		WHERE id = $8
	`

	result, err := r.db.Exec(
		query,
		input.Name,
		input.Email,
		input.Role,
		input.CertificationName,
		input.CertificationExpiry,
		input.TrainingDue,
		time.Now(),
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update staff member: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// Delete removes a staff member. Dependent shift, safety and feedback rows
// keep their staff_id; readers tolerate the dangling reference.
func (r *StaffRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
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
