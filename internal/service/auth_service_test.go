package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/onelearning/edusphere-api/internal/models"
	appErrors "github.com/onelearning/edusphere-api/pkg/errors"
)

type fakeUserRepo struct {
	exists    bool
	existsErr error
	createErr error
	created   *models.User
	user      *models.User
	findErr   error
	students  []models.Student
}

func (f *fakeUserRepo) ExistsByUsernameOrEmail(context.Context, string, string) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = 1
	f.created = user
	return nil
}

func (f *fakeUserRepo) FindByEmailAndRole(context.Context, string, models.UserRole) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.user, nil
}

func (f *fakeUserRepo) ListStudentsByYear(context.Context, int) ([]models.Student, error) {
	return f.students, nil
}

func rawJSON(s string) *json.RawMessage {
	raw := json.RawMessage(s)
	return &raw
}

func signupRequest(role models.UserRole, year *json.RawMessage) models.SignupRequest {
	return models.SignupRequest{
		Username:     "alice",
		Name:         "Alice",
		Email:        "alice@example.com",
		Password:     "secret",
		Role:         role,
		AcademicYear: year,
	}
}

func TestAuthServiceSignupStudent(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo, nil, nil)

	user, err := svc.Signup(context.Background(), signupRequest(models.RoleStudent, rawJSON(`2024`)))
	require.NoError(t, err)

	require.NotNil(t, user.AcademicYear)
	assert.Equal(t, 2024, *user.AcademicYear)
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
}

func TestAuthServiceSignupStudentStringYear(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo, nil, nil)

	user, err := svc.Signup(context.Background(), signupRequest(models.RoleStudent, rawJSON(`"2025"`)))
	require.NoError(t, err)
	require.NotNil(t, user.AcademicYear)
	assert.Equal(t, 2025, *user.AcademicYear)
}

func TestAuthServiceSignupStudentMissingYear(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{}, nil, nil)

	_, err := svc.Signup(context.Background(), signupRequest(models.RoleStudent, nil))
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "Academic year is required and must be a valid number for students.", appErr.Message)
}

func TestAuthServiceSignupTeacherIgnoresYear(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo, nil, nil)

	// Junk year values are irrelevant for non-student roles.
	user, err := svc.Signup(context.Background(), signupRequest(models.RoleTeacher, rawJSON(`"not-a-number"`)))
	require.NoError(t, err)
	assert.Nil(t, user.AcademicYear)
}

func TestAuthServiceSignupDuplicate(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{exists: true}, nil, nil)

	_, err := svc.Signup(context.Background(), signupRequest(models.RoleTeacher, nil))
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Status, appErr.Status)
	assert.Equal(t, "Username or Email already exists. Choose another one.", appErr.Message)
}

func TestAuthServiceLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{findErr: sql.ErrNoRows}, nil, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email: "ghost@example.com", Password: "secret", Role: models.RoleStudent,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErr.Status)
	assert.Equal(t, "User not found.", appErr.Message)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewAuthService(&fakeUserRepo{user: &models.User{PasswordHash: string(hash)}}, nil, nil)

	_, err = svc.Login(context.Background(), models.LoginRequest{
		Email: "alice@example.com", Password: "wrong", Role: models.RoleStudent,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Status, appErr.Status)
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{user: &models.User{
		ID: 7, Name: "Alice", Email: "alice@example.com", Role: models.RoleStudent,
		PasswordHash: string(hash),
	}}
	svc := NewAuthService(repo, nil, nil)

	projection, err := svc.Login(context.Background(), models.LoginRequest{
		Email: "alice@example.com", Password: "secret", Role: models.RoleStudent,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), projection.ID)
	assert.Equal(t, models.RoleStudent, projection.Role)
}
