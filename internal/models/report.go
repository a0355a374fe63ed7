package models

import "time"

// ReportPDF is a stored report row; PDFData holds the raw decoded bytes.
type ReportPDF struct {
	ID             int64     `db:"id"`
	RegistrationID string    `db:"registration_id"`
	PDFData        []byte    `db:"pdf_data"`
	ReportedAt     time.Time `db:"reported_at"`
	Username       string    `db:"username"`
	CreatedAt      time.Time `db:"created_at"`
}

// ReportPDFView is the API shape of a stored report: bytes re-encoded as an
// application/pdf data URI.
type ReportPDFView struct {
	ID             int64     `json:"id"`
	RegistrationID string    `json:"registration_id"`
	PDFData        string    `json:"pdf_data"`
	ReportedAt     time.Time `json:"reported_at"`
	Username       string    `json:"username"`
	CreatedAt      time.Time `json:"created_at"`
}

// SaveReportRequest carries an inbound report. PDFData may be a full data URI
// or bare base64; ReportedAt is optional RFC3339.
type SaveReportRequest struct {
	RegistrationID string `json:"registration_id"`
	PDFData        string `json:"pdf_data"`
	ReportedAt     string `json:"reported_at"`
	Username       string `json:"username"`
}
