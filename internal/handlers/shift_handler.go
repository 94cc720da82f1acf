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

// ShiftHandler serves shift assignments. Re-scheduling is delete-and-create.
type ShiftHandler struct {
	shiftRepo *database.ShiftRepository
	staffRepo *database.StaffRepository
	dates     *validator.DateValidator
}

// NewShiftHandler creates a new ShiftHandler
func NewShiftHandler(shiftRepo *database.ShiftRepository, staffRepo *database.StaffRepository) *ShiftHandler {
	return &ShiftHandler{
		shiftRepo: shiftRepo,
		staffRepo: staffRepo,
		dates:     validator.NewDateValidator(),
	}
}

// ListShifts retrieves all shift assignments
// GET /api/v1/shifts
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	shifts, err := h.shiftRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shifts"})
		return
	}
	c.JSON(http.StatusOK, shifts)
}

// CreateShift schedules a new shift for an existing staff member
// POST /api/v1/shifts
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var input models.ShiftInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.dates.Validate(input.ShiftDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift_date: " + err.Error()})
		return
	}
	if !models.ValidShiftType(input.ShiftType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift_type. Must be Morning, Evening or Night"})
		return
	}

	staffID, err := uuid.Parse(input.StaffID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff_id"})
		return
	}

	// A shift can only be scheduled against an existing staff member
	staff, err := h.staffRepo.GetByID(staffID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify staff member"})
		return
	}
	if staff == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}

	shift, err := h.shiftRepo.Create(input.ShiftDate, input.ShiftType, staffID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shift"})
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// DeleteShift removes a shift assignment
// DELETE /api/v1/shifts/:id
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}

	if err := h.shiftRepo.Delete(id); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete shift"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shift deleted successfully"})
}
