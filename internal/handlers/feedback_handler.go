package handlers

import (
	"net/http"

	"github.com/careops/staff-dashboard-backend/internal/database"
	"github.com/careops/staff-dashboard-backend/internal/models"
	"github.com/careops/staff-dashboard-backend/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FeedbackHandler serves staff survey feedback
type FeedbackHandler struct {
	feedbackRepo *database.FeedbackRepository
	dates        *validator.DateValidator
}

// NewFeedbackHandler creates a new FeedbackHandler
func NewFeedbackHandler(feedbackRepo *database.FeedbackRepository) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackRepo: feedbackRepo,
		dates:        validator.NewDateValidator(),
	}
}

// ListFeedback retrieves all feedback entries, most recent first
// GET /api/v1/feedback
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	entries, err := h.feedbackRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CreateFeedback submits a new feedback entry
// POST /api/v1/feedback
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var input models.FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.dates.Validate(input.FeedbackDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback_date: " + err.Error()})
		return
	}
	if err := h.dates.ValidateRating(*input.Rating); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var staffID *uuid.UUID
	if input.StaffID != nil && *input.StaffID != "" {
		parsed, err := uuid.Parse(*input.StaffID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff_id"})
			return
		}
		staffID = &parsed
	}

	entry, err := h.feedbackRepo.Create(input.FeedbackDate, staffID, input.Topic, *input.Rating, input.Comments)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create feedback entry"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}
