package models

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackEntry represents a survey response. Rating is always within [1,5].
type FeedbackEntry struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	FeedbackDate string     `json:"feedback_date" db:"feedback_date"`
	StaffID      *uuid.UUID `json:"staff_id,omitempty" db:"staff_id"`
	Topic        string     `json:"topic" db:"topic"`
	Rating       int        `json:"rating" db:"rating"`
	Comments     *string    `json:"comments,omitempty" db:"comments"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// FeedbackInput represents input for submitting feedback
type FeedbackInput struct {
	FeedbackDate string  `json:"feedback_date" binding:"required"`
	StaffID      *string `json:"staff_id"`
	Topic        string  `json:"topic" binding:"required"`
	Rating       *int    `json:"rating" binding:"required"`
	Comments     *string `json:"comments"`
}
