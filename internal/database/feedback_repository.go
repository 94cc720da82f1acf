package database

import (
	"fmt"
	"time"

	"github.com/careops/staff-dashboard-backend/internal/models"
	"github.com/google/uuid"
)

// FeedbackRepository handles feedback database operations
type FeedbackRepository struct {
	db DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db DB) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
	}
}

// Create inserts a new feedback entry
func (r *FeedbackRepository) Create(feedbackDate string, staffID *uuid.UUID, topic string, rating int, comments *string) (*models.FeedbackEntry, error) {
	entry := &models.FeedbackEntry{
		ID:           uuid.New(),
		FeedbackDate: feedbackDate,
		StaffID:      staffID,
		Topic:        topic,
		Rating:       rating,
		Comments:     comments,
		CreatedAt:    time.Now(),
	}

	query := `
		INSERT INTO feedback (id, feedback_date, staff_id, topic, rating, comments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(
		query,
		entry.ID,
		entry.FeedbackDate,
		entry.StaffID,
		entry.Topic,
		entry.Rating,
		entry.Comments,
		entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback entry: %w", err)
	}

	return entry, nil
}

// List retrieves all feedback entries, most recent first
func (r *FeedbackRepository) List() ([]models.FeedbackEntry, error) {
	var entries []models.FeedbackEntry
	query := `SELECT * FROM feedback ORDER BY feedback_date DESC, created_at DESC`
	err := r.db.Select(&entries, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return entries, nil
}
