package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/onelearning/edusphere-api/internal/models"
	"github.com/onelearning/edusphere-api/internal/service"
	appErrors "github.com/onelearning/edusphere-api/pkg/errors"
	"github.com/onelearning/edusphere-api/pkg/response"
)

// PatientHandler serves registrations, consent forms, analyses, and scans.
type PatientHandler struct {
	service *service.PatientService
}

// NewPatientHandler creates a new handler.
func NewPatientHandler(svc *service.PatientService) *PatientHandler {
	return &PatientHandler{service: svc}
}

// Register godoc
// @Summary Register a patient
// @Tags Patients
// @Accept json
// @Produce json
// @Param payload body models.PatientRegistrationRequest true "Registration payload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /patient-registration [post]
func (h *PatientHandler) Register(c *gin.Context) {
	var req models.PatientRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid registration payload"))
		return
	}

	if err := h.service.Register(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"message": "Patient registered successfully!"})
}

// ListByUser godoc
// @Summary List registrations created by a user
// @Tags Patients
// @Produce json
// @Param userId query int true "User id"
// @Success 200 {array} models.Patient
// @Failure 400 {object} map[string]string
// @Router /patient-registrations [get]
func (h *PatientHandler) ListByUser(c *gin.Context) {
	raw := c.Query("userId")
	if raw == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Missing userId parameter"))
		return
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "userId must be a valid number"))
		return
	}

	patients, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, patients)
}

// GetByRegistrationID godoc
// @Summary Fetch one registration
// @Tags Patients
// @Produce json
// @Param registration_id path string true "Registration id"
// @Success 200 {object} models.Patient
// @Failure 404 {object} map[string]string
// @Router /patient-registration/{registration_id} [get]
func (h *PatientHandler) GetByRegistrationID(c *gin.Context) {
	patient, err := h.service.GetByRegistrationID(c.Request.Context(), c.Param("registration_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, patient)
}

// SubmitConsentForm godoc
// @Summary Submit a CT consent form
// @Tags Patients
// @Accept json
// @Produce json
// @Param payload body models.ConsentFormRequest true "Consent form payload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /consent-form [post]
func (h *PatientHandler) SubmitConsentForm(c *gin.Context) {
	var req models.ConsentFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid consent form payload"))
		return
	}

	if err := h.service.SubmitConsentForm(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"message": "Consent form submitted successfully!"})
}

// SubmitImageAnalysis godoc
// @Summary Submit an image analysis with its encoded images
// @Tags Patients
// @Accept json
// @Produce json
// @Param payload body models.ImageAnalysisRequest true "Analysis payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /image-analysis [post]
func (h *PatientHandler) SubmitImageAnalysis(c *gin.Context) {
	var req models.ImageAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "Missing required fields"))
		return
	}

	id, err := h.service.SubmitImageAnalysis(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"message": "Image analysis data submitted successfully",
		"id":      id,
	})
}

// GetImageAnalysis godoc
// @Summary Fetch the image analysis for a registration
// @Tags Patients
// @Produce json
// @Param registration_id path string true "Registration id"
// @Success 200 {object} models.ImageAnalysis
// @Failure 404 {object} map[string]string
// @Router /image-analysis/{registration_id} [get]
func (h *PatientHandler) GetImageAnalysis(c *gin.Context) {
	analysis, err := h.service.GetImageAnalysis(c.Request.Context(), c.Param("registration_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, analysis)
}

// ListScanImages godoc
// @Summary List a patient's scans as data URIs
// @Tags Patients
// @Produce json
// @Param patient_id path string true "Patient id"
// @Success 200 {array} string
// @Failure 404 {object} map[string]string
// @Router /patient-scan-images/{patient_id} [get]
func (h *PatientHandler) ListScanImages(c *gin.Context) {
	images, err := h.service.ListScanImages(c.Request.Context(), c.Param("patient_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, images)
}

// AddScanImage godoc
// @Summary Store a scan image for a patient
// @Tags Patients
// @Accept json
// @Produce json
// @Param payload body models.AddScanImageRequest true "Scan payload as a data URI"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /patient-scan-images [post]
func (h *PatientHandler) AddScanImage(c *gin.Context) {
	var req models.AddScanImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid scan payload"))
		return
	}

	if err := h.service.AddScanImage(c.Request.Context(), req.PatientID, req.Image); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"message": "Scan image saved successfully!"})
}
