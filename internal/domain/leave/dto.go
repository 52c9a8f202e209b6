package leave

import (
	"github.com/bashyamgroup/employee-console/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var (
	halfDay = decimal.NewFromFloat(0.5)
	maxDays = decimal.NewFromInt(12)
)

type CreateRecordRequest struct {
	Employee  int64           `json:"employee"`
	Type      Type            `json:"leave_type"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	DaysTaken decimal.Decimal `json:"days_taken"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Employee <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee",
			Message: "employee is required",
		})
	}

	if !r.Type.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be CL or SL",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 1900 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	switch {
	case r.DaysTaken.LessThan(halfDay):
		errs = append(errs, validator.ValidationError{
			Field:   "days_taken",
			Message: "days_taken must be at least 0.5",
		})
	case r.DaysTaken.GreaterThan(maxDays):
		errs = append(errs, validator.ValidationError{
			Field:   "days_taken",
			Message: "days_taken must not exceed 12",
		})
	case !r.DaysTaken.Mod(halfDay).IsZero():
		errs = append(errs, validator.ValidationError{
			Field:   "days_taken",
			Message: "days_taken must be in half-day increments",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SelectRequest switches the leave view to another (employee, year) pair.
type SelectRequest struct {
	EmployeeID int64 `json:"employee_id"`
	Year       int   `json:"year"`
}

func (r *SelectRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.Year < 1900 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MonthSummary is one row of the 12-month grid.
type MonthSummary struct {
	Month  int             `json:"month"`
	Sick   decimal.Decimal `json:"sick_days"`
	Casual decimal.Decimal `json:"casual_days"`
}

// Summary is the derived view rendered alongside the fixed entitlements.
type Summary struct {
	EmployeeID        int64           `json:"employee_id"`
	Year              int             `json:"year"`
	Months            []MonthSummary  `json:"months"`
	SickTotal         decimal.Decimal `json:"sick_total"`
	CasualTotal       decimal.Decimal `json:"casual_total"`
	SickEntitlement   decimal.Decimal `json:"sick_entitlement"`
	CasualEntitlement decimal.Decimal `json:"casual_entitlement"`
	SickBalance       decimal.Decimal `json:"sick_balance"`
	CasualBalance     decimal.Decimal `json:"casual_balance"`
}
