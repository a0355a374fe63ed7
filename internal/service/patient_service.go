package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/onelearning/edusphere-api/internal/models"
	"github.com/onelearning/edusphere-api/pkg/datauri"
	appErrors "github.com/onelearning/edusphere-api/pkg/errors"
)

// scanImageMIME is assumed for stored scan payloads; the table carries raw
// bytes with no recorded type.
const scanImageMIME = "image/jpeg"

type patientRepository interface {
	CreatePatient(ctx context.Context, p *models.Patient) error
	ListPatientsByUser(ctx context.Context, userID int64) ([]models.Patient, error)
	FindPatientByRegistrationID(ctx context.Context, registrationID string) (*models.Patient, error)
	CreateConsentForm(ctx context.Context, f *models.ConsentForm) error
	CreateImageAnalysis(ctx context.Context, a *models.ImageAnalysis) error
	FindImageAnalysis(ctx context.Context, registrationID string) (*models.ImageAnalysis, error)
	ListScanImages(ctx context.Context, patientID string) ([]models.ScanImage, error)
	CreateScanImage(ctx context.Context, patientID string, image []byte) error
}

// PatientService handles registrations, consent forms, scans, and analyses.
type PatientService struct {
	repo      patientRepository
	validator *validator.Validate
	logger    *zap.Logger
	maxImages int
}

// NewPatientService constructs a PatientService.
func NewPatientService(repo patientRepository, validate *validator.Validate, logger *zap.Logger, maxImages int) *PatientService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if maxImages <= 0 {
		maxImages = 10
	}
	return &PatientService{repo: repo, validator: validate, logger: logger, maxImages: maxImages}
}

// Register stores a patient registration.
func (s *PatientService) Register(ctx context.Context, req models.PatientRegistrationRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}

	patient := &models.Patient{
		RegistrationID:   req.RegistrationID,
		UserID:           req.UserID,
		CourseID:         req.CourseID,
		Name:             req.Name,
		Age:              req.Age,
		Gender:           req.Gender,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		KinName:          req.KinName,
		KinRelation:      req.KinRelation,
		KinPhone:         req.KinPhone,
		Agreement:        req.Agreement,
	}
	if err := s.repo.CreatePatient(ctx, patient); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to register patient")
	}
	return nil
}

// ListByUser returns the registrations created by a user.
func (s *PatientService) ListByUser(ctx context.Context, userID int64) ([]models.Patient, error) {
	patients, err := s.repo.ListPatientsByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch patient registrations")
	}
	return patients, nil
}

// GetByRegistrationID returns one registration or NotFound.
func (s *PatientService) GetByRegistrationID(ctx context.Context, registrationID string) (*models.Patient, error) {
	patient, err := s.repo.FindPatientByRegistrationID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "No registration data found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch registration")
	}
	return patient, nil
}

// SubmitConsentForm stores a consent form.
func (s *PatientService) SubmitConsentForm(ctx context.Context, req models.ConsentFormRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid consent form payload")
	}

	form := &models.ConsentForm{
		PatientName:        req.PatientName,
		Age:                req.Age,
		Sex:                req.Sex,
		HospitalID:         req.HospitalID,
		CTNumber:           req.CTNumber,
		OpdIpd:             req.OpdIpd,
		BedNumber:          req.BedNumber,
		RefPhysician:       req.RefPhysician,
		Date:               req.Date,
		Pregnancy:          req.Pregnancy,
		DateOfLMP:          req.DateOfLMP,
		ClinicalHistory:    req.ClinicalHistory,
		PreviousScans:      req.PreviousScans,
		AreaOfInterest:     req.AreaOfInterest,
		MedicalHistory:     req.MedicalHistory,
		ChemoRadioTherapy:  req.ChemoRadioTherapy,
		SerumCreatinine:    req.SerumCreatinine,
		CreatinineTestDate: req.CreatinineTestDate,
		PatientSignature:   req.PatientSignature,
		TechSignature:      req.TechSignature,
		RadiologistSign:    req.RadiologistSign,
		PatientDate:        req.PatientDate,
		TechDate:           req.TechDate,
		RadiologistDate:    req.RadiologistDate,
		RegistrationID:     req.RegistrationID,
	}
	if err := s.repo.CreateConsentForm(ctx, form); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to submit consent form")
	}
	return nil
}

// SubmitImageAnalysis validates the image set (1 to maxImages data URIs) and
// stores the analysis with its images JSON-encoded into one column.
func (s *PatientService) SubmitImageAnalysis(ctx context.Context, req models.ImageAnalysisRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Missing required fields")
	}
	if len(req.SelectedImages) == 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "No images uploaded")
	}
	if len(req.SelectedImages) > s.maxImages {
		return 0, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("At most %d images are allowed", s.maxImages))
	}
	for i, image := range req.SelectedImages {
		if _, _, err := datauri.Parse(image); err != nil {
			return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("image %d is not a valid data URI", i+1))
		}
	}

	encoded, err := json.Marshal(req.SelectedImages)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode image set")
	}

	analysis := &models.ImageAnalysis{
		UserID:         req.UserID,
		RegistrationID: req.RegistrationID,
		Finding:        req.Finding,
		Impression:     req.Impression,
		SelectedImage:  encoded,
	}
	if err := s.repo.CreateImageAnalysis(ctx, analysis); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store image analysis")
	}

	s.logger.Info("image analysis stored",
		zap.Int64("analysis_id", analysis.ID),
		zap.String("registration_id", req.RegistrationID),
		zap.Int("images", len(req.SelectedImages)))
	return analysis.ID, nil
}

// GetImageAnalysis returns the analysis for a registration or NotFound.
func (s *PatientService) GetImageAnalysis(ctx context.Context, registrationID string) (*models.ImageAnalysis, error) {
	analysis, err := s.repo.FindImageAnalysis(ctx, registrationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "No image analysis data found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch image analysis")
	}
	return analysis, nil
}

// ListScanImages returns the patient's scans encoded as data URIs. Rows with
// NULL payloads are filtered out rather than surfaced as null entries; a
// patient with no rows at all is NotFound.
func (s *PatientService) ListScanImages(ctx context.Context, patientID string) ([]string, error) {
	rows, err := s.repo.ListScanImages(ctx, patientID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch scan images")
	}
	if len(rows) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "No scan image found for this patient")
	}

	images := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row.Image) == 0 {
			continue
		}
		images = append(images, datauri.Format(scanImageMIME, row.Image))
	}
	return images, nil
}

// AddScanImage decodes one data URI and stores the raw bytes for the patient.
func (s *PatientService) AddScanImage(ctx context.Context, patientID, image string) error {
	if patientID == "" {
		return appErrors.Clone(appErrors.ErrValidation, "patient id is required")
	}
	_, raw, err := datauri.Parse(image)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "image is not a valid data URI")
	}
	if err := s.repo.CreateScanImage(ctx, patientID, raw); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store scan image")
	}
	return nil
}
