package handlers

import (
	"net/http"
	"time"

	"github.com/careops/staff-dashboard-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated dashboard counts
type DashboardHandler struct {
	dashboardSvc *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardSvc *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardSvc: dashboardSvc,
	}
}

// GetSummary computes the dashboard counts from a fresh snapshot
// GET /api/v1/dashboard/summary
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardSvc.Summary(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
