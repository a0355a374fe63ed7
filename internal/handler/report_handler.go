package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/onelearning/edusphere-api/internal/dto"
	"github.com/onelearning/edusphere-api/internal/models"
	"github.com/onelearning/edusphere-api/internal/service"
	appErrors "github.com/onelearning/edusphere-api/pkg/errors"
	"github.com/onelearning/edusphere-api/pkg/response"
)

// ReportHandler serves report PDF storage, retrieval, and registry exports.
type ReportHandler struct {
	reports *service.ReportService
	exports *service.ExportService
}

// NewReportHandler creates a new handler.
func NewReportHandler(reports *service.ReportService, exports *service.ExportService) *ReportHandler {
	return &ReportHandler{reports: reports, exports: exports}
}

// Save godoc
// @Summary Store a report PDF
// @Description Accepts pdf_data as a data URI or bare base64
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body models.SaveReportRequest true "Report payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /save-report-pdf [post]
func (h *ReportHandler) Save(c *gin.Context) {
	var req models.SaveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Registration ID and PDF data are required"))
		return
	}

	id, err := h.reports.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"message": "PDF report saved successfully",
		"id":      id,
	})
}

// ListAll godoc
// @Summary List every stored report
// @Tags Reports
// @Produce json
// @Success 200 {array} models.ReportPDFView
// @Router /get-all-report-pdfs [get]
func (h *ReportHandler) ListAll(c *gin.Context) {
	reports, err := h.reports.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reports)
}

// Export godoc
// @Summary Export the report registry
// @Description Renders the registry to CSV or PDF and returns a signed download link
// @Tags Reports
// @Produce json
// @Param format query string true "csv or pdf"
// @Success 200 {object} dto.ExportResponse
// @Failure 400 {object} map[string]string
// @Router /reports/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	format := dto.ExportFormat(c.Query("format"))
	res, err := h.exports.ExportReports(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// Download godoc
// @Summary Download a generated export
// @Tags Reports
// @Produce octet-stream
// @Param token query string true "Signed download token"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reports/download [get]
func (h *ReportHandler) Download(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "token query parameter is required"))
		return
	}

	file, relPath, err := h.exports.OpenDownload(token)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	c.FileAttachment(file.Name(), filepath.Base(relPath))
}
