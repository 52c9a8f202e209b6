package auth

import (
	"github.com/bashyamgroup/employee-console/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// User is the upstream profile returned by auth/login/ and kept for the
// lifetime of the session.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Credentials is what the upstream API hands back on a successful login: the
// bearer token every subsequent call carries plus the user profile.
type Credentials struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type LoginResponse struct {
	User User `json:"user"`
}
