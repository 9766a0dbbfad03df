package leave

import (
	"context"

	"github.com/peoplehub/hr-portal-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	Reason    string `json:"reason"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Reason       string  `json:"reason"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

// QuotaSummary is informational only: it never blocks a submission.
type QuotaSummary struct {
	MonthlyQuotaDays int `json:"monthly_quota_days"`
	TakenDays        int `json:"taken_days"`
	AvailablePaid    int `json:"available_paid"`
}

type MyLeavesResponse struct {
	Quota  QuotaSummary    `json:"quota"`
	Leaves []LeaveResponse `json:"leaves"`
}

type LeaveService interface {
	Apply(ctx context.Context, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error)
	MyLeaves(ctx context.Context, employeeID string) (MyLeavesResponse, error)
	ListAll(ctx context.Context) ([]LeaveResponse, error)

	// Decide transitions a Pending request to Approved or Rejected.
	// Approval also sets the employee's status to On Leave. Any other
	// target status is a no-op.
	Decide(ctx context.Context, id string, status Status, approvedBy string) (LeaveResponse, error)
}
