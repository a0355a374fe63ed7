package handler

import (
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/onelearning/edusphere-api/internal/models"
	"github.com/onelearning/edusphere-api/internal/service"
)

type stubUserRepo struct {
	exists bool
	user   *models.User
}

func (s *stubUserRepo) ExistsByUsernameOrEmail(context.Context, string, string) (bool, error) {
	return s.exists, nil
}

func (s *stubUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = 1
	return nil
}

func (s *stubUserRepo) FindByEmailAndRole(context.Context, string, models.UserRole) (*models.User, error) {
	if s.user == nil {
		return nil, sql.ErrNoRows
	}
	return s.user, nil
}

func (s *stubUserRepo) ListStudentsByYear(context.Context, int) ([]models.Student, error) {
	return []models.Student{{ID: 1, Name: "Alice", Username: "alice"}}, nil
}

type stubPatientRepo struct {
	scanPatientID string
	scanImage     []byte
}

func (s *stubPatientRepo) CreatePatient(context.Context, *models.Patient) error { return nil }
func (s *stubPatientRepo) ListPatientsByUser(context.Context, int64) ([]models.Patient, error) {
	return nil, nil
}
func (s *stubPatientRepo) FindPatientByRegistrationID(context.Context, string) (*models.Patient, error) {
	return nil, sql.ErrNoRows
}
func (s *stubPatientRepo) CreateConsentForm(context.Context, *models.ConsentForm) error { return nil }
func (s *stubPatientRepo) CreateImageAnalysis(context.Context, *models.ImageAnalysis) error {
	return nil
}
func (s *stubPatientRepo) FindImageAnalysis(context.Context, string) (*models.ImageAnalysis, error) {
	return nil, sql.ErrNoRows
}
func (s *stubPatientRepo) ListScanImages(context.Context, string) ([]models.ScanImage, error) {
	return nil, nil
}
func (s *stubPatientRepo) CreateScanImage(_ context.Context, patientID string, image []byte) error {
	s.scanPatientID = patientID
	s.scanImage = image
	return nil
}

type stubDashboardRepo struct{}

func (stubDashboardRepo) CountAssignedCourses(context.Context, string) (int, error) { return 3, nil }
func (stubDashboardRepo) CountAvailableCourses(context.Context) (int, error)        { return 12, nil }
func (stubDashboardRepo) AmendmentsTableExists(context.Context) (bool, error)       { return false, nil }
func (stubDashboardRepo) CountAmendments(context.Context, string) (int, error)      { return 0, nil }

func testContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	return c, rec
}

func TestAuthHandlerSignupConflictBody(t *testing.T) {
	svc := service.NewAuthService(&stubUserRepo{exists: true}, nil, nil)
	h := NewAuthHandler(svc)

	c, rec := testContext(t, http.MethodPost, "/api/signup",
		`{"username":"alice","name":"Alice","email":"alice@example.com","password":"secret","role":"teacher"}`)
	h.Signup(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Username or Email already exists. Choose another one.", body["error"])
}

func TestAuthHandlerSignupCreated(t *testing.T) {
	svc := service.NewAuthService(&stubUserRepo{}, nil, nil)
	h := NewAuthHandler(svc)

	c, rec := testContext(t, http.MethodPost, "/api/signup",
		`{"username":"alice","name":"Alice","email":"alice@example.com","password":"secret","role":"student","academic_year":"2024"}`)
	h.Signup(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User created successfully!", body["message"])
}

func TestAuthHandlerLoginOmitsPasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := service.NewAuthService(&stubUserRepo{user: &models.User{
		ID: 7, Name: "Alice", Email: "alice@example.com", Role: models.RoleStudent, PasswordHash: string(hash),
	}}, nil, nil)
	h := NewAuthHandler(svc)

	c, rec := testContext(t, http.MethodPost, "/api/login",
		`{"email":"alice@example.com","password":"secret","role":"student"}`)
	h.Login(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	var body struct {
		Message string                `json:"message"`
		User    models.UserProjection `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Login successful", body.Message)
	assert.Equal(t, int64(7), body.User.ID)
}

func TestAuthHandlerListStudentsRequiresYear(t *testing.T) {
	svc := service.NewAuthService(&stubUserRepo{}, nil, nil)
	h := NewAuthHandler(svc)

	c, rec := testContext(t, http.MethodGet, "/api/students", "")
	h.ListStudents(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Year query parameter is required.")
}

func TestPatientHandlerAddScanImage(t *testing.T) {
	repo := &stubPatientRepo{}
	svc := service.NewPatientService(repo, nil, nil, 10)
	h := NewPatientHandler(svc)

	payload := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8})
	c, rec := testContext(t, http.MethodPost, "/api/patient-scan-images",
		`{"patient_id":"REG-1","image":"`+payload+`"}`)
	h.AddScanImage(c)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Scan image saved successfully!", body["message"])
	assert.Equal(t, "REG-1", repo.scanPatientID)
	assert.Equal(t, []byte{0xFF, 0xD8}, repo.scanImage)
}

func TestPatientHandlerAddScanImageRejectsBadPayload(t *testing.T) {
	repo := &stubPatientRepo{}
	svc := service.NewPatientService(repo, nil, nil, 10)
	h := NewPatientHandler(svc)

	c, rec := testContext(t, http.MethodPost, "/api/patient-scan-images",
		`{"patient_id":"REG-1","image":"not-a-data-uri"}`)
	h.AddScanImage(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.scanPatientID)
}

func TestDashboardHandlerRequiresUsername(t *testing.T) {
	svc := service.NewDashboardService(stubDashboardRepo{}, nil, nil, false, 0, nil)
	h := NewDashboardHandler(svc)

	c, rec := testContext(t, http.MethodGet, "/api/dashboard-stats", "")
	h.Stats(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username is required")
}

func TestDashboardHandlerStats(t *testing.T) {
	svc := service.NewDashboardService(stubDashboardRepo{}, nil, nil, false, 0, nil)
	h := NewDashboardHandler(svc)

	c, rec := testContext(t, http.MethodGet, "/api/dashboard-stats?username=jdoe", "")
	h.Stats(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "jdoe", body["username"])
	assert.Equal(t, float64(3), body["assignedCourses"])
	assert.Equal(t, float64(12), body["availableCourses"])
	assert.Equal(t, float64(0), body["amendments"])
}
