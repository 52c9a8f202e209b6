package response

import (
	"errors"
	"net/http"

	"github.com/bashyamgroup/employee-console/internal/domain/auth"
	"github.com/bashyamgroup/employee-console/internal/domain/employee"
	"github.com/bashyamgroup/employee-console/internal/domain/leave"
	"github.com/bashyamgroup/employee-console/internal/pkg/validator"
	"github.com/bashyamgroup/employee-console/internal/upstream"
)

// HandleError maps domain errors to HTTP responses. Validation failures,
// whether local or relayed from the upstream API, surface per-field;
// everything else degrades to a single human-readable message.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrSessionNotFound),
		errors.Is(err, auth.ErrSessionExpired):
		Unauthorized(w, "Session expired, please log in again")
	case errors.Is(err, auth.ErrUpstreamRejected),
		errors.Is(err, upstream.ErrUnauthorized):
		Unauthorized(w, "Upstream session rejected, please log in again")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidFilter):
		BadRequest(w, "Unknown search filter", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrRecordNotFound):
		NotFound(w, "Leave record not found")
	case errors.Is(err, leave.ErrNoEmployee):
		BadRequest(w, "No employee selected", nil)

	// Upstream transport
	case errors.Is(err, upstream.ErrNotFound):
		NotFound(w, "Resource not found")
	case errors.Is(err, upstream.ErrUnavailable):
		BadGateway(w, "The HR service is unavailable, please try again")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
