package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/careops/staff-dashboard-backend/internal/models"
	"github.com/google/uuid"
)

// SafetyRepository handles safety concern database operations
type SafetyRepository struct {
	db DB
}

// NewSafetyRepository creates a new safety concern repository
func NewSafetyRepository(db DB) *SafetyRepository {
	return &SafetyRepository{
		db: db,
	}
}

// Create records a new safety concern with initial status Open
func (r *SafetyRepository) Create(reportedDate string, staffID *uuid.UUID, description string) (*models.SafetyConcern, error) {
	concern := &models.SafetyConcern{
		ID:           uuid.New(),
		ReportedDate: reportedDate,
		StaffID:      staffID,
		Description:  description,
		Status:       models.SafetyOpen,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	query := `
		INSERT INTO safety_concerns (id, reported_date, staff_id, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(
		query,
		concern.ID,
		concern.ReportedDate,
		concern.StaffID,
		concern.Description,
		concern.Status,
		concern.CreatedAt,
		concern.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create safety concern: %w", err)
	}

	return concern, nil
}

// GetByID retrieves a safety concern by ID. Returns nil without error when
// no record exists.
func (r *SafetyRepository) GetByID(id uuid.UUID) (*models.SafetyConcern, error) {
	var concern models.SafetyConcern
	query := `SELECT * FROM safety_concerns WHERE id = $1`
	err := r.db.Get(&concern, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get safety concern: %w", err)
	}
	return &concern, nil
}

// List retrieves all safety concerns, most recent first
func (r *SafetyRepository) List() ([]models.SafetyConcern, error) {
	var concerns []models.SafetyConcern
	query := `SELECT * FROM safety_concerns ORDER BY reported_date DESC, created_at DESC`
	err := r.db.Select(&concerns, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list safety concerns: %w", err)
	}
	return concerns, nil
}

// UpdateStatus persists a status transition
func (r *SafetyRepository) UpdateStatus(id uuid.UUID, status models.SafetyStatus) error {
	query := `UPDATE safety_concerns SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.Exec(query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update safety concern status: %w", err)
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
