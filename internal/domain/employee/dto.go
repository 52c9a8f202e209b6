package employee

import (
	"github.com/bashyamgroup/employee-console/internal/pkg/validator"
)

// Filter limits full-text search to a single attribute.
type Filter string

const (
	FilterAll         Filter = "all"
	FilterName        Filter = "name"
	FilterEmail       Filter = "email"
	FilterDepartment  Filter = "department"
	FilterDesignation Filter = "designation"
)

var filterNames = []string{
	string(FilterAll),
	string(FilterName),
	string(FilterEmail),
	string(FilterDepartment),
	string(FilterDesignation),
}

func ParseFilter(s string) (Filter, error) {
	if validator.IsInSlice(s, filterNames) {
		return Filter(s), nil
	}
	return "", ErrInvalidFilter
}

// SearchOptions carries the listing query the console sends upstream.
type SearchOptions struct {
	Term   string
	Filter Filter
	// Expand asks the upstream API to inline department/designation objects
	// instead of returning bare identifiers.
	Expand bool
}

type SaveEmployeeRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	JoinDate    string `json:"join_date"`
	Department  *int64 `json:"department"`
	Designation *int64 `json:"designation"`
}

// Validate performs the client-side checks that block a save before any
// network call. orgDomain includes the leading "@".
func (r *SaveEmployeeRequest) Validate(orgDomain string) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	} else if !validator.HasOrgDomain(r.Email, orgDomain) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must end with " + orgDomain,
		})
	}

	if validator.IsEmpty(r.JoinDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
