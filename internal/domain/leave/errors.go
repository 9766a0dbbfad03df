package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrAlreadyProcessed     = errors.New("leave request has already been approved or rejected")
	ErrInvalidDateRange     = errors.New("end date must not be before start date")
	ErrInvalidTargetStatus  = errors.New("target status must be Approved or Rejected")
)
