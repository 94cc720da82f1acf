package services

import (
	"errors"
	"testing"
	"time"

	"github.com/careops/staff-dashboard-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	staff     []models.Staff
	shifts    []models.Shift
	concerns  []models.SafetyConcern
	inventory []models.InventoryItem
	feedback  []models.FeedbackEntry
	err       error
}

func (r *stubRepository) ListStaff() ([]models.Staff, error) {
	return r.staff, r.err
}

func (r *stubRepository) ListShifts() ([]models.Shift, error) {
	return r.shifts, r.err
}

func (r *stubRepository) ListSafetyConcerns() ([]models.SafetyConcern, error) {
	return r.concerns, r.err
}

func (r *stubRepository) ListInventory() ([]models.InventoryItem, error) {
	return r.inventory, r.err
}

func (r *stubRepository) ListFeedback() ([]models.FeedbackEntry, error) {
	return r.feedback, r.err
}

func TestSummarize(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	evaluator := NewStatusEvaluator(60)

	staffID := uuid.New()
	repo := &stubRepository{
		staff: []models.Staff{
			{ID: staffID, Name: "Alice", Email: "alice@clinic.test", CertificationExpiry: strPtr("2023-12-01")},
			{ID: uuid.New(), Name: "Bob", Email: "bob@clinic.test", CertificationExpiry: strPtr("2024-02-15")},
			{ID: uuid.New(), Name: "Carol", Email: "carol@clinic.test", CertificationExpiry: strPtr("2030-01-01")},
			{ID: uuid.New(), Name: "Dave", Email: "dave@clinic.test"},
		},
		shifts: []models.Shift{
			{ID: uuid.New(), ShiftDate: "2024-01-01", ShiftType: models.ShiftMorning, StaffID: staffID},
			{ID: uuid.New(), ShiftDate: "2024-01-08", ShiftType: models.ShiftNight, StaffID: staffID},
			{ID: uuid.New(), ShiftDate: "2024-01-09", ShiftType: models.ShiftNight, StaffID: staffID},
			{ID: uuid.New(), ShiftDate: "2023-12-31", ShiftType: models.ShiftEvening, StaffID: staffID},
			{ID: uuid.New(), ShiftDate: "not-a-date", ShiftType: models.ShiftMorning, StaffID: staffID},
		},
		concerns: []models.SafetyConcern{
			{ID: uuid.New(), Description: "Wet floor", Status: models.SafetyOpen},
			{ID: uuid.New(), Description: "Broken rail", Status: models.SafetyResolved},
			{ID: uuid.New(), Description: "Exposed wiring", Status: models.SafetyOpen},
		},
		inventory: []models.InventoryItem{
			{ID: uuid.New(), ItemName: "Gloves", Quantity: 100, MinQuantity: 20},
			{ID: uuid.New(), ItemName: "Masks", Quantity: 5, MinQuantity: 20},
			{ID: uuid.New(), ItemName: "Saline", Quantity: 100, MinQuantity: 20, Expiry: strPtr("2023-11-01")},
		},
		feedback: []models.FeedbackEntry{
			{ID: uuid.New(), Rating: 5},
			{ID: uuid.New(), Rating: 2},
		},
	}

	svc := NewDashboardService(repo, evaluator, 7)
	summary, err := svc.Summary(today)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.StaffCount)
	// Today and day seven count; day eight, the past shift and the
	// unparseable date do not
	assert.Equal(t, 2, summary.UpcomingShifts)
	assert.Equal(t, 2, summary.OpenSafetyConcerns)
	assert.Equal(t, 2, summary.LowOrExpiredInventory)
	// Alice expired, Bob due soon; Carol valid, Dave has no certification
	assert.Equal(t, 2, summary.CertificationsDueOrExpired)
	assert.Equal(t, 2, summary.FeedbackCount)
}

func TestSummarize_EmptySnapshot(t *testing.T) {
	svc := NewDashboardService(&stubRepository{}, NewStatusEvaluator(60), 7)

	summary, err := svc.Summary(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, models.DashboardSummary{}, summary)
}

func TestSummarize_SharesEvaluatorWindow(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	repo := &stubRepository{
		staff: []models.Staff{
			{ID: uuid.New(), Name: "Alice", Email: "alice@clinic.test", CertificationExpiry: strPtr("2024-01-20")},
		},
	}

	// With a 30-day window the certification is due soon; with a 10-day
	// window the same record is valid. The summary must follow the
	// evaluator it was built with.
	wide := NewDashboardService(repo, NewStatusEvaluator(30), 7)
	narrow := NewDashboardService(repo, NewStatusEvaluator(10), 7)

	wideSummary, err := wide.Summary(today)
	require.NoError(t, err)
	narrowSummary, err := narrow.Summary(today)
	require.NoError(t, err)

	assert.Equal(t, 1, wideSummary.CertificationsDueOrExpired)
	assert.Equal(t, 0, narrowSummary.CertificationsDueOrExpired)
}

func TestSummary_RepositoryError(t *testing.T) {
	repo := &stubRepository{err: errors.New("connection lost")}
	svc := NewDashboardService(repo, NewStatusEvaluator(60), 7)

	_, err := svc.Summary(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load staff")
}
