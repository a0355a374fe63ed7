package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/onelearning/edusphere-api/internal/dto"
	appErrors "github.com/onelearning/edusphere-api/pkg/errors"
	"github.com/onelearning/edusphere-api/pkg/export"
	"github.com/onelearning/edusphere-api/pkg/jobs"
	"github.com/onelearning/edusphere-api/pkg/storage"
)

const cleanupJobType = "export_cleanup"

type exportRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type exportStore interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

// ExportService renders the report registry into downloadable files and hands
// out signed URLs for them. Expired files are swept by a background queue.
type ExportService struct {
	reports reportRepository
	store   exportStore
	signer  *storage.SignedURLSigner
	logger  *zap.Logger

	csv exportRenderer
	pdf exportRenderer

	metrics *MetricsService
	ttl     time.Duration
	queue   *jobs.Queue
}

// NewExportService wires renderers, storage, and the cleanup queue.
func NewExportService(reports reportRepository, store exportStore, signer *storage.SignedURLSigner, metrics *MetricsService, ttl time.Duration, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	s := &ExportService{
		reports: reports,
		store:   store,
		signer:  signer,
		metrics: metrics,
		logger:  logger,
		csv:     export.NewCSVRenderer(),
		pdf:     export.NewPDFRenderer(),
		ttl:     ttl,
	}
	s.queue = jobs.NewQueue("exports", s.handleCleanup, jobs.QueueConfig{Workers: 1, Logger: logger})
	return s
}

// Start launches the cleanup workers.
func (s *ExportService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains the cleanup workers.
func (s *ExportService) Stop() {
	s.queue.Stop()
}

// ExportReports renders the full report registry in the requested format,
// persists the file, schedules a sweep, and returns a signed download link.
func (s *ExportService) ExportReports(ctx context.Context, format dto.ExportFormat) (*dto.ExportResponse, error) {
	reports, err := s.reports.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch reports")
	}

	dataset := export.Dataset{
		Title:   "Report Registry",
		Headers: []string{"ID", "Registration ID", "Username", "Reported At", "Size (bytes)"},
		Rows:    make([][]string, 0, len(reports)),
	}
	for _, r := range reports {
		dataset.Rows = append(dataset.Rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.RegistrationID,
			r.Username,
			r.ReportedAt.Format(time.RFC3339),
			strconv.Itoa(len(r.PDFData)),
		})
	}

	var renderer exportRenderer
	switch format {
	case dto.ExportFormatCSV:
		renderer = s.csv
	case dto.ExportFormatPDF:
		renderer = s.pdf
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	data, err := renderer.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to render export")
	}

	exportID := uuid.NewString()
	filename := fmt.Sprintf("reports-%s.%s", exportID, format)
	relPath, err := s.store.Save(filename, data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to store export")
	}

	token, expiresAt, err := s.signer.Generate(exportID, relPath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to sign download link")
	}

	if err := s.queue.Enqueue(jobs.Job{ID: exportID, Type: cleanupJobType}); err != nil {
		s.logger.Warn("could not schedule export cleanup", zap.Error(err))
	}

	s.metrics.RecordExport(string(format))
	s.logger.Info("export generated",
		zap.String("export_id", exportID),
		zap.String("format", string(format)),
		zap.Int("rows", len(dataset.Rows)))

	return &dto.ExportResponse{
		URL:       "/api/reports/download?token=" + token,
		Format:    format,
		ExpiresAt: expiresAt,
	}, nil
}

// OpenDownload validates a signed token and opens the referenced file.
// The caller owns the returned handle.
func (s *ExportService) OpenDownload(token string) (*os.File, string, error) {
	exportID, relPath, _, err := s.signer.Parse(token)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid or expired download link")
	}
	file, err := s.store.Open(relPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", appErrors.Clone(appErrors.ErrNotFound, "Export no longer available")
		}
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to open export")
	}
	s.logger.Debug("export download", zap.String("export_id", exportID))
	return file, relPath, nil
}

func (s *ExportService) handleCleanup(_ context.Context, job jobs.Job) error {
	deleted, err := s.store.CleanupOlderThan(s.ttl)
	if err != nil {
		return err
	}
	if len(deleted) > 0 {
		s.logger.Info("expired exports removed",
			zap.String("job_id", job.ID),
			zap.Int("count", len(deleted)))
	}
	return nil
}
