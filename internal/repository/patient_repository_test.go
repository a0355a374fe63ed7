package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onelearning/edusphere-api/internal/models"
)

func TestPatientRepositoryCreatePatient(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewPatientRepository(db)

	mock.ExpectExec("INSERT INTO patients").
		WithArgs("REG-1", int64(5), int64(2), "Jane Doe", 34, "female", "555-0100", "jane@example.com",
			"1 Main St", "555-0101", "John Doe", "spouse", "555-0102", true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	patient := &models.Patient{
		RegistrationID:   "REG-1",
		UserID:           5,
		CourseID:         2,
		Name:             "Jane Doe",
		Age:              34,
		Gender:           "female",
		Phone:            "555-0100",
		Email:            "jane@example.com",
		Address:          "1 Main St",
		EmergencyContact: "555-0101",
		KinName:          "John Doe",
		KinRelation:      "spouse",
		KinPhone:         "555-0102",
		Agreement:        true,
	}
	require.NoError(t, repo.CreatePatient(context.Background(), patient))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepositoryFindByRegistrationIDNoRows(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewPatientRepository(db)

	mock.ExpectQuery("SELECT registration_id, user_id, course_id, name").
		WithArgs("REG-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindPatientByRegistrationID(context.Background(), "REG-404")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepositoryCreateImageAnalysis(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewPatientRepository(db)

	encoded := []byte(`["data:image/png;base64,aGk="]`)
	mock.ExpectQuery("INSERT INTO image_analysis").
		WithArgs(int64(5), "REG-1", "normal study", "no acute findings", encoded).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))

	analysis := &models.ImageAnalysis{
		UserID:         5,
		RegistrationID: "REG-1",
		Finding:        "normal study",
		Impression:     "no acute findings",
		SelectedImage:  encoded,
	}
	require.NoError(t, repo.CreateImageAnalysis(context.Background(), analysis))
	assert.Equal(t, int64(21), analysis.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepositoryListScanImages(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewPatientRepository(db)

	rows := sqlmock.NewRows([]string{"id", "patient_id", "image"}).
		AddRow(1, "REG-1", []byte{0xFF, 0xD8}).
		AddRow(2, "REG-1", nil)
	mock.ExpectQuery("SELECT id, patient_id, image FROM patient_scan_images").
		WithArgs("REG-1").
		WillReturnRows(rows)

	images, err := repo.ListScanImages(context.Background(), "REG-1")
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, []byte{0xFF, 0xD8}, images[0].Image)
	assert.Empty(t, images[1].Image)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepositoryListPatientsByUser(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewPatientRepository(db)

	rows := sqlmock.NewRows([]string{
		"registration_id", "user_id", "course_id", "name", "age", "gender", "phone", "email",
		"address", "emergency_contact", "kin_name", "kin_relation", "kin_phone", "agreement", "created_at",
	}).AddRow("REG-1", 5, 2, "Jane Doe", 34, "female", "", "", "", "", "", "", "", true, time.Now())
	mock.ExpectQuery("SELECT registration_id, user_id, course_id, name").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	patients, err := repo.ListPatientsByUser(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "REG-1", patients[0].RegistrationID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
