package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// UserRole enumerates the account roles.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// User is a row of the users table. AcademicYear is NULL for every role but
// student.
type User struct {
	ID           int64    `db:"id" json:"id"`
	Username     string   `db:"username" json:"username"`
	Name         string   `db:"name" json:"name"`
	Email        string   `db:"email" json:"email"`
	PasswordHash string   `db:"password_hash" json:"-"`
	Role         UserRole `db:"role" json:"role"`
	AcademicYear *int     `db:"academic_year" json:"academic_year,omitempty"`
}

// UserProjection is the sanitized login payload; the hash never leaves the
// auth service.
type UserProjection struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// Student is the roster projection returned by the students listing.
type Student struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Username string `db:"username" json:"username"`
}

// FlexInt accepts a JSON number or a numeric string; signup clients send
// academic_year in both forms.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler. String tokens must carry a
// matched pair of quotes; a stray quote on either side is rejected.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if strings.HasPrefix(raw, `"`) || strings.HasSuffix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("malformed numeric string: %s", raw)
		}
		raw = strings.TrimSpace(unquoted)
	}
	if raw == "" || raw == "null" {
		return fmt.Errorf("empty numeric value")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("not a number: %q", raw)
	}
	*f = FlexInt(n)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

// SignupRequest carries the signup payload. AcademicYear stays a raw message
// so the service can report a precise validation error for students.
type SignupRequest struct {
	Username     string           `json:"username" validate:"required"`
	Name         string           `json:"name" validate:"required"`
	Email        string           `json:"email" validate:"required,email"`
	Password     string           `json:"password" validate:"required"`
	Role         UserRole         `json:"role" validate:"required,oneof=admin teacher student"`
	AcademicYear *json.RawMessage `json:"academic_year"`
}

// LoginRequest carries the login payload; role scopes the lookup.
type LoginRequest struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required"`
	Role     UserRole `json:"role" validate:"required,oneof=admin teacher student"`
}
