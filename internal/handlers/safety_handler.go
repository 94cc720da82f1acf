package handlers

import (
	"database/sql"
	"net/http"

	"github.com/careops/staff-dashboard-backend/internal/database"
	"github.com/careops/staff-dashboard-backend/internal/models"
	"github.com/careops/staff-dashboard-backend/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SafetyHandler serves safety concern reporting and the two-state
// Open/Resolved lifecycle. Concerns are never deleted.
type SafetyHandler struct {
	safetyRepo *database.SafetyRepository
	dates      *validator.DateValidator
}

// NewSafetyHandler creates a new SafetyHandler
func NewSafetyHandler(safetyRepo *database.SafetyRepository) *SafetyHandler {
	return &SafetyHandler{
		safetyRepo: safetyRepo,
		dates:      validator.NewDateValidator(),
	}
}

// ListSafetyConcerns retrieves all safety concerns, most recent first
// GET /api/v1/safety
func (h *SafetyHandler) ListSafetyConcerns(c *gin.Context) {
	concerns, err := h.safetyRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch safety concerns"})
		return
	}
	c.JSON(http.StatusOK, concerns)
}

// CreateSafetyConcern reports a new concern with initial status Open
// POST /api/v1/safety
func (h *SafetyHandler) CreateSafetyConcern(c *gin.Context) {
	var input models.SafetyConcernInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.dates.Validate(input.ReportedDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reported_date: " + err.Error()})
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

	concern, err := h.safetyRepo.Create(input.ReportedDate, staffID, input.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create safety concern"})
		return
	}

	c.JSON(http.StatusCreated, concern)
}

// ResolveSafetyConcern marks a concern resolved. Resolving an
// already-resolved concern succeeds without changing anything.
// POST /api/v1/safety/:id/resolve
func (h *SafetyHandler) ResolveSafetyConcern(c *gin.Context) {
	h.transition(c, func(concern *models.SafetyConcern) {
		concern.Resolve()
	})
}

// ToggleSafetyConcern flips a concern between Open and Resolved
// POST /api/v1/safety/:id/toggle
func (h *SafetyHandler) ToggleSafetyConcern(c *gin.Context) {
	h.transition(c, func(concern *models.SafetyConcern) {
		concern.Toggle()
	})
}

// transition loads a concern, applies a state change and persists it only
// when the status actually moved
func (h *SafetyHandler) transition(c *gin.Context, apply func(*models.SafetyConcern)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid safety concern ID"})
		return
	}

	concern, err := h.safetyRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch safety concern"})
		return
	}
	if concern == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Safety concern not found"})
		return
	}

	before := concern.Status
	apply(concern)

	if concern.Status != before {
		if err := h.safetyRepo.UpdateStatus(id, concern.Status); err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusNotFound, gin.H{"error": "Safety concern not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update safety concern"})
			return
		}
	}

	c.JSON(http.StatusOK, concern)
}
