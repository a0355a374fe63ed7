package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/onelearning/edusphere-api/internal/models"
)

// ReportRepository persists stored report PDFs.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository constructs the repository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts a report row and returns the generated id.
func (r *ReportRepository) Create(ctx context.Context, report *models.ReportPDF) error {
	const query = `INSERT INTO report_pdfs (registration_id, pdf_data, reported_at, username, created_at)
VALUES ($1, $2, $3, $4, NOW()) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		report.RegistrationID, report.PDFData, report.ReportedAt, report.Username,
	).Scan(&report.ID); err != nil {
		return fmt.Errorf("create report pdf: %w", err)
	}
	return nil
}

// ListAll returns every stored report, newest first.
func (r *ReportRepository) ListAll(ctx context.Context) ([]models.ReportPDF, error) {
	const query = `SELECT id, registration_id, pdf_data, reported_at, username, created_at
        FROM report_pdfs ORDER BY created_at DESC`
	reports := []models.ReportPDF{}
	if err := r.db.SelectContext(ctx, &reports, query); err != nil {
		return nil, fmt.Errorf("list report pdfs: %w", err)
	}
	return reports, nil
}
