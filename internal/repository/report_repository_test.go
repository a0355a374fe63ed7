package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onelearning/edusphere-api/internal/models"
)

func TestReportRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	reportedAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO report_pdfs").
		WithArgs("REG-1", []byte("%PDF-1.4"), reportedAt, "jdoe").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	report := &models.ReportPDF{
		RegistrationID: "REG-1",
		PDFData:        []byte("%PDF-1.4"),
		ReportedAt:     reportedAt,
		Username:       "jdoe",
	}
	require.NoError(t, repo.Create(context.Background(), report))
	assert.Equal(t, int64(42), report.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepositoryListAll(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewReportRepository(db)

	rows := sqlmock.NewRows([]string{"id", "registration_id", "pdf_data", "reported_at", "username", "created_at"}).
		AddRow(2, "REG-2", []byte("%PDF-1.4 b"), time.Now(), "jdoe", time.Now()).
		AddRow(1, "REG-1", []byte("%PDF-1.4 a"), time.Now().Add(-time.Hour), "asmith", time.Now().Add(-time.Hour))
	mock.ExpectQuery("SELECT id, registration_id, pdf_data, reported_at, username, created_at").
		WillReturnRows(rows)

	reports, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, int64(2), reports[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
