package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/careops/staff-dashboard-backend/internal/database"
	"github.com/careops/staff-dashboard-backend/internal/models"
	"github.com/careops/staff-dashboard-backend/internal/services"
	"github.com/careops/staff-dashboard-backend/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StaffHandler serves the staff roster. Listings carry the evaluated
// certification status so the client never re-derives it.
type StaffHandler struct {
	staffRepo *database.StaffRepository
	evaluator *services.StatusEvaluator
	dates     *validator.DateValidator
}

// NewStaffHandler creates a new StaffHandler
func NewStaffHandler(staffRepo *database.StaffRepository, evaluator *services.StatusEvaluator) *StaffHandler {
	return &StaffHandler{
		staffRepo: staffRepo,
		evaluator: evaluator,
		dates:     validator.NewDateValidator(),
	}
}

// validateStaffInput checks the optional date fields. Stored dates that
// predate validation may still be malformed, but new writes are kept clean.
func (h *StaffHandler) validateStaffInput(c *gin.Context, input *models.StaffInput) bool {
	if err := h.dates.ValidateOptional(input.CertificationExpiry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid certification_expiry: " + err.Error()})
		return false
	}
	if err := h.dates.ValidateOptional(input.TrainingDue); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid training_due: " + err.Error()})
		return false
	}
	return true
}

// withStatus pairs a staff record with its evaluated certification status
func (h *StaffHandler) withStatus(staff models.Staff, today time.Time) models.StaffWithStatus {
	result := models.StaffWithStatus{
		Staff:               staff,
		CertificationStatus: h.evaluator.CertificationStatus(staff.CertificationExpiry, today),
	}
	if staff.CertificationExpiry != nil {
		if days, err := h.evaluator.DaysUntil(*staff.CertificationExpiry, today); err == nil {
			result.DaysRemaining = &days
		}
	}
	return result
}

// ListStaff retrieves all staff members with evaluated statuses
// GET /api/v1/staff
func (h *StaffHandler) ListStaff(c *gin.Context) {
	staff, err := h.staffRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch staff"})
		return
	}

	today := time.Now()
	result := make([]models.StaffWithStatus, 0, len(staff))
	for _, member := range staff {
		result = append(result, h.withStatus(member, today))
	}

	c.JSON(http.StatusOK, result)
}

// GetStaff retrieves a single staff member
// GET /api/v1/staff/:id
func (h *StaffHandler) GetStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff ID"})
		return
	}

	staff, err := h.staffRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch staff member"})
		return
	}
	if staff == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}

	c.JSON(http.StatusOK, h.withStatus(*staff, time.Now()))
}

// CreateStaff adds a new staff member
// POST /api/v1/staff
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var input models.StaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.validateStaffInput(c, &input) {
		return
	}

	staff, err := h.staffRepo.Create(&input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff member"})
		return
	}

	c.JSON(http.StatusCreated, staff)
}

// UpdateStaff replaces the editable fields of a staff member
// PUT /api/v1/staff/:id
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff ID"})
		return
	}

	var input models.StaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.validateStaffInput(c, &input) {
		return
	}

	if err := h.staffRepo.Update(id, &input); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update staff member"})
		return
	}

	updated, err := h.staffRepo.GetByID(id)
	if err != nil || updated == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated staff member"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteStaff removes a staff member. Shifts, safety concerns and feedback
// referencing the member are kept; readers tolerate the dangling reference.
// DELETE /api/v1/staff/:id
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff ID"})
		return
	}

	if err := h.staffRepo.Delete(id); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete staff member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}
