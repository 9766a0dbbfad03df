package exception

import (
	"context"

	"github.com/peoplehub/hr-portal-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	Reason string `json:"reason"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EarlyOutResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	ShiftID      string  `json:"shift_id"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	RequestedAt  string  `json:"requested_at"`
}

type LateArrivalResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	RequestedAt  string  `json:"requested_at"`
}

// DecisionResponse reports an adjudication outcome. Warning is set when
// approval succeeded but the expected attendance mutation was skipped.
type DecisionResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Warning string `json:"warning,omitempty"`
}

type ExceptionService interface {
	CreateEarlyOut(ctx context.Context, employeeID string, req CreateRequestRequest) (EarlyOutResponse, error)
	CreateLateArrival(ctx context.Context, employeeID string, req CreateRequestRequest) (LateArrivalResponse, error)

	ListPendingEarlyOuts(ctx context.Context) ([]EarlyOutResponse, error)
	ListPendingLateArrivals(ctx context.Context) ([]LateArrivalResponse, error)

	DecideEarlyOut(ctx context.Context, id string, status Status) (DecisionResponse, error)
	DecideLateArrival(ctx context.Context, id string, status Status) (DecisionResponse, error)
}
