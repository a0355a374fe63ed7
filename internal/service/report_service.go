package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/onelearning/edusphere-api/internal/models"
	"github.com/onelearning/edusphere-api/pkg/datauri"
	appErrors "github.com/onelearning/edusphere-api/pkg/errors"
)

const reportPDFMIME = "application/pdf"

type reportRepository interface {
	Create(ctx context.Context, report *models.ReportPDF) error
	ListAll(ctx context.Context) ([]models.ReportPDF, error)
}

// ReportService stores and lists report PDFs.
type ReportService struct {
	repo   reportRepository
	logger *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(repo reportRepository, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{repo: repo, logger: logger}
}

// Save decodes the inbound PDF (full data URI or bare base64) and stores the
// raw bytes. A missing timestamp defaults to now and a missing username to a
// placeholder.
func (s *ReportService) Save(ctx context.Context, req models.SaveReportRequest) (int64, error) {
	if req.RegistrationID == "" || req.PDFData == "" {
		return 0, appErrors.Clone(appErrors.ErrValidation, "Missing required fields")
	}
	if req.Username == "" {
		req.Username = "UnknownUser"
	}

	raw, err := datauri.DecodePayload(req.PDFData)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "pdf_data is not valid base64")
	}

	reportedAt := time.Now()
	if req.ReportedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.ReportedAt)
		if err != nil {
			return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "reported_at must be RFC3339")
		}
		reportedAt = parsed
	}

	report := &models.ReportPDF{
		RegistrationID: req.RegistrationID,
		PDFData:        raw,
		ReportedAt:     reportedAt,
		Username:       req.Username,
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to save report")
	}

	s.logger.Info("report pdf stored",
		zap.Int64("report_id", report.ID),
		zap.String("registration_id", report.RegistrationID),
		zap.Int("bytes", len(raw)))
	return report.ID, nil
}

// ListAll returns every stored report with its PDF re-encoded as a data URI.
func (s *ReportService) ListAll(ctx context.Context) ([]models.ReportPDFView, error) {
	reports, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch reports")
	}

	views := make([]models.ReportPDFView, 0, len(reports))
	for _, r := range reports {
		views = append(views, models.ReportPDFView{
			ID:             r.ID,
			RegistrationID: r.RegistrationID,
			PDFData:        datauri.Format(reportPDFMIME, r.PDFData),
			ReportedAt:     r.ReportedAt,
			Username:       r.Username,
			CreatedAt:      r.CreatedAt,
		})
	}
	return views, nil
}
