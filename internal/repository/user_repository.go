package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/onelearning/edusphere-api/internal/models"
)

// UserRepository provides database access for accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// ExistsByUsernameOrEmail reports whether a user already holds either key.
func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	const query = `SELECT 1 FROM users WHERE username = $1 OR email = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, username, email); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check user existence: %w", err)
	}
	return true, nil
}

// Create inserts a new user and returns the generated id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	const query = `INSERT INTO users (username, name, email, password_hash, role, academic_year)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		user.Username, user.Name, user.Email, user.PasswordHash, user.Role, user.AcademicYear,
	).Scan(&user.ID); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindByEmailAndRole returns the user matching both keys; login scopes its
// lookup by role so the same email may exist once per role.
func (r *UserRepository) FindByEmailAndRole(ctx context.Context, email string, role models.UserRole) (*models.User, error) {
	const query = `SELECT id, username, name, email, password_hash, role, academic_year FROM users WHERE email = $1 AND role = $2 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email, role); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by email and role: %w", err)
	}
	return &user, nil
}

// ListStudentsByYear returns the student roster for an academic year.
func (r *UserRepository) ListStudentsByYear(ctx context.Context, year int) ([]models.Student, error) {
	const query = `SELECT id, name, username FROM users WHERE role = 'student' AND academic_year = $1`
	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query, year); err != nil {
		return nil, fmt.Errorf("list students by year: %w", err)
	}
	return students, nil
}
