package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/careops/staff-dashboard-backend/internal/database"
	"github.com/careops/staff-dashboard-backend/internal/models"
	"github.com/careops/staff-dashboard-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStaffHandler(db *database.PostgresDB) *StaffHandler {
	return NewStaffHandler(database.NewStaffRepository(db), services.NewStatusEvaluator(60))
}

func jsonRequest(c *gin.Context, method string, body interface{}) {
	payload, _ := json.Marshal(body)
	c.Request = httptest.NewRequest(method, "/", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
}

func TestCreateStaff_Success(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO staff`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	handler := setupStaffHandler(&database.PostgresDB{DB: db})
	c, w := setupTestContext(nil)
	jsonRequest(c, http.MethodPost, models.StaffInput{
		Name:  "Alice",
		Email: "alice@clinic.test",
	})

	handler.CreateStaff(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Staff
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Alice", created.Name)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStaff_RejectsMalformedExpiry(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	handler := setupStaffHandler(&database.PostgresDB{DB: db})
	c, w := setupTestContext(nil)

	expiry := "15/06/2024"
	jsonRequest(c, http.MethodPost, models.StaffInput{
		Name:                "Alice",
		Email:               "alice@clinic.test",
		CertificationExpiry: &expiry,
	})

	handler.CreateStaff(c)

	// Rejected at the boundary, nothing reaches the database
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStaff_MissingName(t *testing.T) {
	db, _ := setupTestDB(t)
	defer db.Close()

	handler := setupStaffHandler(&database.PostgresDB{DB: db})
	c, w := setupTestContext(nil)
	jsonRequest(c, http.MethodPost, map[string]string{"email": "alice@clinic.test"})

	handler.CreateStaff(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStaff_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM staff WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role", "certification_name", "certification_expiry", "training_due", "created_at", "updated_at"}))

	handler := setupStaffHandler(&database.PostgresDB{DB: db})
	c, w := setupTestContext(gin.Params{{Key: "id", Value: id.String()}})

	handler.GetStaff(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListStaff_CarriesEvaluatedStatus(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "role", "certification_name", "certification_expiry", "training_due", "created_at", "updated_at"}).
		AddRow(uuid.New(), "Alice", "alice@clinic.test", nil, "CPR", "2000-01-01", nil, time.Now(), time.Now()).
		AddRow(uuid.New(), "Dave", "dave@clinic.test", nil, nil, nil, nil, time.Now(), time.Now())
	mock.ExpectQuery(`SELECT \* FROM staff ORDER BY created_at`).
		WillReturnRows(rows)

	handler := setupStaffHandler(&database.PostgresDB{DB: db})
	c, w := setupTestContext(nil)

	handler.ListStaff(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var result []models.StaffWithStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result, 2)
	assert.Equal(t, models.CertificationExpired, result[0].CertificationStatus)
	assert.Equal(t, models.CertificationNotApplicable, result[1].CertificationStatus)
}
