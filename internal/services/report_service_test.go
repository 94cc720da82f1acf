package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/careops/staff-dashboard-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStaffReport(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubRepository{
		staff: []models.Staff{
			{ID: uuid.New(), Name: "Alice", Email: "alice@clinic.test", Role: strPtr("Nurse"), CertificationName: strPtr("CPR"), CertificationExpiry: strPtr("2023-12-01")},
			{ID: uuid.New(), Name: "Dave", Email: "dave@clinic.test"},
		},
	}
	svc := NewReportService(repo, NewStatusEvaluator(60))

	var buf bytes.Buffer
	require.NoError(t, svc.WriteStaffReport(&buf, today))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"name", "email", "role", "certification_name", "certification_expiry", "training_due", "certification_status"}, records[0])
	assert.Equal(t, []string{"Alice", "alice@clinic.test", "Nurse", "CPR", "2023-12-01", "", "Expired"}, records[1])
	assert.Equal(t, []string{"Dave", "dave@clinic.test", "", "", "", "", "N/A"}, records[2])
}

func TestWriteCertificationsDueReport_FiltersValidStaff(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubRepository{
		staff: []models.Staff{
			{ID: uuid.New(), Name: "Alice", Email: "alice@clinic.test", CertificationName: strPtr("CPR"), CertificationExpiry: strPtr("2024-01-31")},
			{ID: uuid.New(), Name: "Carol", Email: "carol@clinic.test", CertificationName: strPtr("ACLS"), CertificationExpiry: strPtr("2030-01-01")},
			{ID: uuid.New(), Name: "Dave", Email: "dave@clinic.test"},
		},
	}
	svc := NewReportService(repo, NewStatusEvaluator(60))

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCertificationsDueReport(&buf, today))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Alice", "alice@clinic.test", "CPR", "2024-01-31", "Due soon", "30"}, records[1])
}

func TestWriteInventoryReport(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubRepository{
		inventory: []models.InventoryItem{
			{ID: uuid.New(), ItemName: "Gloves", Quantity: 100, MinQuantity: 20},
			{ID: uuid.New(), ItemName: "Saline", Quantity: 100, MinQuantity: 20, Expiry: strPtr("2023-11-01")},
		},
	}
	svc := NewReportService(repo, NewStatusEvaluator(60))

	var buf bytes.Buffer
	require.NoError(t, svc.WriteInventoryReport(&buf, today))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Gloves", "100", "20", "", "OK"}, records[1])
	assert.Equal(t, []string{"Saline", "100", "20", "2023-11-01", "Expired"}, records[2])
}

func TestWriteFeedbackReport(t *testing.T) {
	staffID := uuid.New()
	repo := &stubRepository{
		feedback: []models.FeedbackEntry{
			{ID: uuid.New(), FeedbackDate: "2024-01-10", StaffID: &staffID, Topic: "Scheduling", Rating: 4, Comments: strPtr("More notice please")},
			{ID: uuid.New(), FeedbackDate: "2024-01-11", Topic: "Facilities", Rating: 2},
		},
	}
	svc := NewReportService(repo, NewStatusEvaluator(60))

	var buf bytes.Buffer
	require.NoError(t, svc.WriteFeedbackReport(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"2024-01-10", staffID.String(), "Scheduling", "4", "More notice please"}, records[1])
	assert.Equal(t, []string{"2024-01-11", "", "Facilities", "2", ""}, records[2])
}

func TestWriteSafetyReport(t *testing.T) {
	repo := &stubRepository{
		concerns: []models.SafetyConcern{
			{ID: uuid.New(), ReportedDate: "2024-01-05", Description: "Wet floor", Status: models.SafetyOpen},
		},
	}
	svc := NewReportService(repo, NewStatusEvaluator(60))

	var buf bytes.Buffer
	require.NoError(t, svc.WriteSafetyReport(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"2024-01-05", "", "Wet floor", "Open"}, records[1])
}

func TestWriteStaffReport_RepositoryError(t *testing.T) {
	repo := &stubRepository{err: errors.New("connection lost")}
	svc := NewReportService(repo, NewStatusEvaluator(60))

	var buf bytes.Buffer
	err := svc.WriteStaffReport(&buf, time.Now())
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
