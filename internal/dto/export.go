package dto

import "time"

// ExportFormat enumerates supported report-registry export formats.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportResponse describes a generated export and its signed download link.
type ExportResponse struct {
	URL       string       `json:"url"`
	Format    ExportFormat `json:"format"`
	ExpiresAt time.Time    `json:"expiresAt"`
}
