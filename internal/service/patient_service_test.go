package service

import (
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onelearning/edusphere-api/internal/models"
	appErrors "github.com/onelearning/edusphere-api/pkg/errors"
)

type fakePatientRepo struct {
	createdPatient  *models.Patient
	patients        []models.Patient
	patient         *models.Patient
	findPatientErr  error
	createdForm     *models.ConsentForm
	createdAnalysis *models.ImageAnalysis
	analysis        *models.ImageAnalysis
	findAnalysisErr error
	scans           []models.ScanImage
	scansErr        error
	storedScanID    string
	storedScan      []byte
	createScanErr   error
}

func (f *fakePatientRepo) CreatePatient(_ context.Context, p *models.Patient) error {
	f.createdPatient = p
	return nil
}

func (f *fakePatientRepo) ListPatientsByUser(context.Context, int64) ([]models.Patient, error) {
	return f.patients, nil
}

func (f *fakePatientRepo) FindPatientByRegistrationID(context.Context, string) (*models.Patient, error) {
	if f.findPatientErr != nil {
		return nil, f.findPatientErr
	}
	return f.patient, nil
}

func (f *fakePatientRepo) CreateConsentForm(_ context.Context, form *models.ConsentForm) error {
	f.createdForm = form
	return nil
}

func (f *fakePatientRepo) CreateImageAnalysis(_ context.Context, a *models.ImageAnalysis) error {
	a.ID = 21
	f.createdAnalysis = a
	return nil
}

func (f *fakePatientRepo) FindImageAnalysis(context.Context, string) (*models.ImageAnalysis, error) {
	if f.findAnalysisErr != nil {
		return nil, f.findAnalysisErr
	}
	return f.analysis, nil
}

func (f *fakePatientRepo) ListScanImages(context.Context, string) ([]models.ScanImage, error) {
	return f.scans, f.scansErr
}

func (f *fakePatientRepo) CreateScanImage(_ context.Context, patientID string, image []byte) error {
	f.storedScanID = patientID
	f.storedScan = image
	return f.createScanErr
}

func pngDataURI(payload string) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte(payload))
}

func analysisRequest(images []string) models.ImageAnalysisRequest {
	return models.ImageAnalysisRequest{
		UserID:         5,
		RegistrationID: "REG-1",
		Finding:        "normal study",
		Impression:     "no acute findings",
		SelectedImages: images,
	}
}

func TestPatientServiceSubmitImageAnalysis(t *testing.T) {
	repo := &fakePatientRepo{}
	svc := NewPatientService(repo, nil, nil, 10)

	id, err := svc.SubmitImageAnalysis(context.Background(), analysisRequest([]string{
		pngDataURI("one"), pngDataURI("two"),
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(21), id)

	require.NotNil(t, repo.createdAnalysis)
	var stored []string
	require.NoError(t, json.Unmarshal(repo.createdAnalysis.SelectedImage, &stored))
	assert.Len(t, stored, 2)
	assert.True(t, strings.HasPrefix(stored[0], "data:image/png;base64,"))
}

func TestPatientServiceSubmitImageAnalysisNoImages(t *testing.T) {
	svc := NewPatientService(&fakePatientRepo{}, nil, nil, 10)

	_, err := svc.SubmitImageAnalysis(context.Background(), analysisRequest(nil))
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErr.Status)
	assert.Equal(t, "No images uploaded", appErr.Message)
}

func TestPatientServiceSubmitImageAnalysisTooManyImages(t *testing.T) {
	svc := NewPatientService(&fakePatientRepo{}, nil, nil, 2)

	_, err := svc.SubmitImageAnalysis(context.Background(), analysisRequest([]string{
		pngDataURI("a"), pngDataURI("b"), pngDataURI("c"),
	}))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
}

func TestPatientServiceSubmitImageAnalysisBadEntry(t *testing.T) {
	repo := &fakePatientRepo{}
	svc := NewPatientService(repo, nil, nil, 10)

	_, err := svc.SubmitImageAnalysis(context.Background(), analysisRequest([]string{
		pngDataURI("ok"), "not-a-data-uri",
	}))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
	assert.Nil(t, repo.createdAnalysis)
}

func TestPatientServiceGetByRegistrationIDNotFound(t *testing.T) {
	svc := NewPatientService(&fakePatientRepo{findPatientErr: sql.ErrNoRows}, nil, nil, 10)

	_, err := svc.GetByRegistrationID(context.Background(), "REG-404")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErr.Status)
	assert.Equal(t, "No registration data found", appErr.Message)
}

func TestPatientServiceGetImageAnalysisNotFound(t *testing.T) {
	svc := NewPatientService(&fakePatientRepo{findAnalysisErr: sql.ErrNoRows}, nil, nil, 10)

	_, err := svc.GetImageAnalysis(context.Background(), "REG-404")
	require.Error(t, err)
	assert.Equal(t, "No image analysis data found", appErrors.FromError(err).Message)
}

func TestPatientServiceListScanImagesFiltersNullPayloads(t *testing.T) {
	repo := &fakePatientRepo{scans: []models.ScanImage{
		{ID: 1, PatientID: "REG-1", Image: []byte{0xFF, 0xD8}},
		{ID: 2, PatientID: "REG-1", Image: nil},
	}}
	svc := NewPatientService(repo, nil, nil, 10)

	images, err := svc.ListScanImages(context.Background(), "REG-1")
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.True(t, strings.HasPrefix(images[0], "data:image/jpeg;base64,"))
}

func TestPatientServiceListScanImagesEmpty(t *testing.T) {
	svc := NewPatientService(&fakePatientRepo{}, nil, nil, 10)

	_, err := svc.ListScanImages(context.Background(), "REG-1")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErr.Status)
	assert.Equal(t, "No scan image found for this patient", appErr.Message)
}

func TestPatientServiceRegister(t *testing.T) {
	repo := &fakePatientRepo{}
	svc := NewPatientService(repo, nil, nil, 10)

	err := svc.Register(context.Background(), models.PatientRegistrationRequest{
		RegistrationID: "REG-1",
		UserID:         5,
		CourseID:       2,
		Name:           "Jane Doe",
		Agreement:      true,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.createdPatient)
	assert.Equal(t, "REG-1", repo.createdPatient.RegistrationID)
	assert.True(t, repo.createdPatient.Agreement)
}

func TestPatientServiceAddScanImage(t *testing.T) {
	repo := &fakePatientRepo{}
	svc := NewPatientService(repo, nil, nil, 10)

	err := svc.AddScanImage(context.Background(), "REG-1", pngDataURI("scan-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "REG-1", repo.storedScanID)
	assert.Equal(t, []byte("scan-bytes"), repo.storedScan)
}

func TestPatientServiceAddScanImageRejectsBadPayload(t *testing.T) {
	repo := &fakePatientRepo{}
	svc := NewPatientService(repo, nil, nil, 10)

	err := svc.AddScanImage(context.Background(), "REG-1", "not-a-data-uri")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErr.Status)
	assert.Empty(t, repo.storedScanID)
}

func TestPatientServiceAddScanImageRequiresPatientID(t *testing.T) {
	svc := NewPatientService(&fakePatientRepo{}, nil, nil, 10)

	err := svc.AddScanImage(context.Background(), "", pngDataURI("scan-bytes"))
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErr.Status)
}
