package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/careops/staff-dashboard-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewStaffRepository(newMockDatabase(db))

	t.Run("Success", func(t *testing.T) {
		role := "Nurse"
		expiry := "2025-03-01"
		input := &models.StaffInput{
			Name:                "Jane Perera",
			Email:               "jane@clinic.example",
			Role:                &role,
			CertificationExpiry: &expiry,
		}

		mock.ExpectExec(`INSERT INTO staff`).
			WithArgs(
				sqlmock.AnyArg(), input.Name, input.Email, &role,
				nil, &expiry, nil,
				sqlmock.AnyArg(), sqlmock.AnyArg(),
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		staff, err := repo.Create(input)
		require.NoError(t, err)
		assert.NotNil(t, staff)
		assert.NotEqual(t, uuid.Nil, staff.ID)
		assert.Equal(t, input.Name, staff.Name)
		assert.Equal(t, input.Email, staff.Email)
		assert.Equal(t, &expiry, staff.CertificationExpiry)
		assert.Nil(t, staff.TrainingDue)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		input := &models.StaffInput{
			Name:  "Jane Perera",
			Email: "jane@clinic.example",
		}

		mock.ExpectExec(`INSERT INTO staff`).
			WillReturnError(fmt.Errorf("database error"))

		staff, err := repo.Create(input)
		assert.Error(t, err)
		assert.Nil(t, staff)
		assert.Contains(t, err.Error(), "failed to create staff member")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStaffGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewStaffRepository(newMockDatabase(db))

	t.Run("Success", func(t *testing.T) {
		staffID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(`SELECT (.+) FROM staff WHERE id`).
			WithArgs(staffID).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "name", "email", "role",
				"certification_name", "certification_expiry", "training_due",
				"created_at", "updated_at",
			}).AddRow(
				staffID, "Jane Perera", "jane@clinic.example", "Nurse",
				"CPR", "2025-03-01", nil,
				now, now,
			))

		staff, err := repo.GetByID(staffID)
		require.NoError(t, err)
		require.NotNil(t, staff)
		assert.Equal(t, staffID, staff.ID)
		assert.Equal(t, "Jane Perera", staff.Name)
		require.NotNil(t, staff.CertificationExpiry)
		assert.Equal(t, "2025-03-01", *staff.CertificationExpiry)
		assert.Nil(t, staff.TrainingDue)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		staffID := uuid.New()

		mock.ExpectQuery(`SELECT (.+) FROM staff WHERE id`).
			WithArgs(staffID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

		staff, err := repo.GetByID(staffID)
		assert.NoError(t, err)
		assert.Nil(t, staff)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStaffList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewStaffRepository(newMockDatabase(db))

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM staff ORDER BY created_at`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "role",
			"certification_name", "certification_expiry", "training_due",
			"created_at", "updated_at",
		}).AddRow(
			uuid.New(), "Jane Perera", "jane@clinic.example", "Nurse",
			"CPR", "2025-03-01", nil, now, now,
		).AddRow(
			uuid.New(), "Sam Silva", "sam@clinic.example", nil,
			nil, nil, nil, now, now,
		))

	staff, err := repo.List()
	require.NoError(t, err)
	require.Len(t, staff, 2)
	assert.Equal(t, "Jane Perera", staff[0].Name)
	assert.Nil(t, staff[1].Role)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStaffDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewStaffRepository(newMockDatabase(db))

	t.Run("Success", func(t *testing.T) {
		staffID := uuid.New()

		mock.ExpectExec(`DELETE FROM staff WHERE id`).
			WithArgs(staffID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(staffID)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		staffID := uuid.New()

		mock.ExpectExec(`DELETE FROM staff WHERE id`).
			WithArgs(staffID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(staffID)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
