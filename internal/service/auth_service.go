package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/onelearning/edusphere-api/internal/models"
	appErrors "github.com/onelearning/edusphere-api/pkg/errors"
)

// bcryptCost matches the cost factor the stored hashes were created with.
const bcryptCost = 10

type authUserRepository interface {
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, user *models.User) error
	FindByEmailAndRole(ctx context.Context, email string, role models.UserRole) (*models.User, error)
	ListStudentsByYear(ctx context.Context, year int) ([]models.Student, error)
}

// AuthService provides signup and login use cases. It issues no sessions or
// tokens; authentication yields only a sanitized user projection.
type AuthService struct {
	repo      authUserRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo authUserRepository, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{repo: repo, validator: validate, logger: logger}
}

// Signup creates a user. academic_year is required and numeric for students
// and stored NULL for every other role regardless of input.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid signup payload")
	}

	var academicYear *int
	if req.Role == models.RoleStudent {
		year, err := parseAcademicYear(req.AcademicYear)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "Academic year is required and must be a valid number for students.")
		}
		academicYear = &year
	}

	taken, err := s.repo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check existing users")
	}
	if taken {
		return nil, appErrors.Clone(appErrors.ErrConflict, "Username or Email already exists. Choose another one.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	user := &models.User{
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		AcademicYear: academicYear,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create user")
	}

	s.logger.Info("user created", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	return user, nil
}

// Login authenticates by (email, role). An unknown pair is NotFound; a hash
// mismatch is Unauthorized. Neither path mutates state.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.UserProjection, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	user, err := s.repo.FindByEmailAndRole(ctx, req.Email, req.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "User not found.")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "Invalid email or password.")
	}

	return &models.UserProjection{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

// ListStudents returns the roster for one academic year.
func (s *AuthService) ListStudents(ctx context.Context, year int) ([]models.Student, error) {
	students, err := s.repo.ListStudentsByYear(ctx, year)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch students")
	}
	return students, nil
}

func parseAcademicYear(raw *json.RawMessage) (int, error) {
	if raw == nil {
		return 0, errors.New("academic year missing")
	}
	var year models.FlexInt
	if err := json.Unmarshal(*raw, &year); err != nil {
		return 0, err
	}
	return int(year), nil
}
