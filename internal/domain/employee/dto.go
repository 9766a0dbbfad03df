package employee

import (
	"github.com/peoplehub/hr-portal-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	DepartmentID *string `json:"department_id"`
	JobTitle     string  `json:"job_title"`
	HourlyRate   string  `json:"hourly_rate"`
	Status       string  `json:"status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters of letters, digits, '.', '_' or '-'",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email address",
		})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}
	if validator.IsEmpty(r.JobTitle) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_title",
			Message: "job_title is required",
		})
	}

	if rate, err := decimal.NewFromString(r.HourlyRate); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be a decimal number",
		})
	} else if rate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if r.Status != "" && !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Active, Inactive, On Leave, Deactivated",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	DepartmentID *string `json:"department_id"`
	JobTitle     *string `json:"job_title"`
	HourlyRate   *string `json:"hourly_rate"`
	Status       *string `json:"status"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.JobTitle != nil && validator.IsEmpty(*r.JobTitle) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_title",
			Message: "job_title must not be empty",
		})
	}
	if r.HourlyRate != nil {
		if rate, err := decimal.NewFromString(*r.HourlyRate); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "hourly_rate",
				Message: "hourly_rate must be a decimal number",
			})
		} else if rate.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "hourly_rate",
				Message: "hourly_rate must not be negative",
			})
		}
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Active, Inactive, On Leave, Deactivated",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	EmployeeCode   string  `json:"employee_code"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	FullName       string  `json:"full_name"`
	DepartmentID   *string `json:"department_id"`
	DepartmentName *string `json:"department_name"`
	JobTitle       string  `json:"job_title"`
	HourlyRate     string  `json:"hourly_rate"`
	Status         string  `json:"status"`
	AvatarURL      *string `json:"avatar_url"`
	CreatedAt      string  `json:"created_at"`
}

// DirectoryEntry is a row of the admin employee directory, including
// today's attendance if any.
type DirectoryEntry struct {
	EmployeeResponse
	TodayCheckIn  *string `json:"today_check_in"`
	TodayCheckOut *string `json:"today_check_out"`
}

type DirectoryResponse struct {
	Employees      []DirectoryEntry `json:"employees"`
	TotalEmployees int64            `json:"total_employees"`
	TotalActive    int64            `json:"total_active"`
}

// ExistenceResponse answers the registration-form availability probe.
type ExistenceResponse struct {
	UsernameTaken bool `json:"username_taken"`
	EmailTaken    bool `json:"email_taken"`
}
