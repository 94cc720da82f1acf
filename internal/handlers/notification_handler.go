package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/careops/staff-dashboard-backend/internal/config"
	"github.com/careops/staff-dashboard-backend/internal/database"
	"github.com/careops/staff-dashboard-backend/internal/services"
	"github.com/careops/staff-dashboard-backend/pkg/mailer"
	"github.com/gin-gonic/gin"
)

// dispatchRequest carries the SMTP settings for one batch. Fields left
// empty fall back to the server's environment configuration. The settings
// live only for the duration of the request and are never persisted.
type dispatchRequest struct {
	SMTPHost     string `json:"smtp_host"`
	SMTPPort     int    `json:"smtp_port"`
	SMTPUsername string `json:"smtp_username"`
	SMTPSecret   string `json:"smtp_secret"`
}

// NotificationHandler triggers reminder batches. Dispatch is always
// operator-initiated; nothing here runs on a schedule.
type NotificationHandler struct {
	staffRepo       *database.StaffRepository
	shiftRepo       *database.ShiftRepository
	notificationSvc *services.NotificationService
	smtpFallback    config.SMTPConfig
	sendTimeout     time.Duration
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(
	staffRepo *database.StaffRepository,
	shiftRepo *database.ShiftRepository,
	notificationSvc *services.NotificationService,
	smtpFallback config.SMTPConfig,
	sendTimeout time.Duration,
) *NotificationHandler {
	return &NotificationHandler{
		staffRepo:       staffRepo,
		shiftRepo:       shiftRepo,
		notificationSvc: notificationSvc,
		smtpFallback:    smtpFallback,
		sendTimeout:     sendTimeout,
	}
}

// bindDispatchRequest parses the optional request body. An absent body
// means "use the environment fallback for everything".
func (h *NotificationHandler) bindDispatchRequest(c *gin.Context) (*dispatchRequest, bool) {
	var req dispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &req, true
}

// buildTransport resolves the SMTP settings for this request and
// constructs a transport that is dropped when the request ends
func (h *NotificationHandler) buildTransport(c *gin.Context, req *dispatchRequest) mailer.Transport {
	smtpConfig := mailer.SMTPConfig{
		Host:     req.SMTPHost,
		Port:     req.SMTPPort,
		Username: req.SMTPUsername,
		Secret:   req.SMTPSecret,
		Timeout:  h.sendTimeout,
	}
	if smtpConfig.Host == "" {
		smtpConfig.Host = h.smtpFallback.Host
		smtpConfig.Port = h.smtpFallback.Port
		smtpConfig.Username = h.smtpFallback.Username
		smtpConfig.Secret = h.smtpFallback.Secret
	}
	if smtpConfig.Host == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No SMTP host configured. Provide smtp_host in the request or configure SMTP_HOST"})
		return nil
	}
	return mailer.NewSMTPTransport(smtpConfig)
}

// SendCertificationReminders dispatches renewal reminders to every staff
// member whose certification is due soon or expired
// POST /api/v1/notifications/certifications
func (h *NotificationHandler) SendCertificationReminders(c *gin.Context) {
	req, ok := h.bindDispatchRequest(c)
	if !ok {
		return
	}

	transport := h.buildTransport(c, req)
	if transport == nil {
		return
	}

	staff, err := h.staffRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch staff"})
		return
	}

	messages := h.notificationSvc.BuildCertificationReminders(staff, time.Now())
	result := h.notificationSvc.Dispatch(c.Request.Context(), messages, transport)

	c.JSON(http.StatusOK, result)
}

// SendShiftReminders dispatches upcoming-shift schedules, one message per
// staff member with shifts in the coming week
// POST /api/v1/notifications/shifts
func (h *NotificationHandler) SendShiftReminders(c *gin.Context) {
	req, ok := h.bindDispatchRequest(c)
	if !ok {
		return
	}

	transport := h.buildTransport(c, req)
	if transport == nil {
		return
	}

	staff, err := h.staffRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch staff"})
		return
	}
	shifts, err := h.shiftRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shifts"})
		return
	}

	messages := h.notificationSvc.BuildShiftReminders(shifts, staff, time.Now())
	result := h.notificationSvc.Dispatch(c.Request.Context(), messages, transport)

	c.JSON(http.StatusOK, result)
}
