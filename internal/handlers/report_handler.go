package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/careops/staff-dashboard-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// ReportHandler streams CSV exports of the record collections
type ReportHandler struct {
	reportSvc *services.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportSvc *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportSvc: reportSvc,
	}
}

// setCSVHeaders marks the response as a CSV attachment
func setCSVHeaders(c *gin.Context, name string) {
	filename := fmt.Sprintf("%s_%s.csv", name, time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}

// ExportStaff streams the staff roster with evaluated statuses
// GET /api/v1/reports/staff
func (h *ReportHandler) ExportStaff(c *gin.Context) {
	setCSVHeaders(c, "staff")
	if err := h.reportSvc.WriteStaffReport(c.Writer, time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export staff report"})
	}
}

// ExportCertificationsDue streams staff with due-soon or expired
// certifications
// GET /api/v1/reports/certifications-due
func (h *ReportHandler) ExportCertificationsDue(c *gin.Context) {
	setCSVHeaders(c, "certifications_due")
	if err := h.reportSvc.WriteCertificationsDueReport(c.Writer, time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export certifications report"})
	}
}

// ExportInventory streams the inventory with evaluated statuses
// GET /api/v1/reports/inventory
func (h *ReportHandler) ExportInventory(c *gin.Context) {
	setCSVHeaders(c, "inventory")
	if err := h.reportSvc.WriteInventoryReport(c.Writer, time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export inventory report"})
	}
}

// ExportFeedback streams all feedback entries
// GET /api/v1/reports/feedback
func (h *ReportHandler) ExportFeedback(c *gin.Context) {
	setCSVHeaders(c, "feedback")
	if err := h.reportSvc.WriteFeedbackReport(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export feedback report"})
	}
}

// ExportSafety streams all safety concerns
// GET /api/v1/reports/safety
func (h *ReportHandler) ExportSafety(c *gin.Context) {
	setCSVHeaders(c, "safety")
	if err := h.reportSvc.WriteSafetyReport(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export safety report"})
	}
}
