package types

import (
	"github.com/go-playground/validator/v10"
)

// Role distinguishes the two account kinds on the job board.
type Role string

// Account roles.
const (
	RoleJobSeeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleJobSeeker || r == RoleEmployer
}

// User represents the authenticated account as returned by signin/signup.
type User struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role,omitempty"`
}

// LoginRequest is the body for POST /api/users/signin.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest is the body for POST /api/users/signup.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     Role   `json:"role" validate:"required"`
}

// LoginResponse is the signin/signup response: the bearer token plus the
// user record it identifies.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UpdateRoleRequest is the body for PUT /api/users/{id}/role.
type UpdateRoleRequest struct {
	Role Role `json:"role" validate:"required"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate checks required fields and that the role is a known value.
func (r *SignupRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if !r.Role.Valid() {
		return &InvalidRoleError{Role: string(r.Role)}
	}
	return nil
}

// Validate checks that the requested role is a known value.
func (r *UpdateRoleRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if !r.Role.Valid() {
		return &InvalidRoleError{Role: string(r.Role)}
	}
	return nil
}

// InvalidRoleError reports a role outside the known set.
type InvalidRoleError struct {
	Role string
}

func (e *InvalidRoleError) Error() string {
	return "invalid role: " + e.Role
}
