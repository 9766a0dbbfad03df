package exception

import "errors"

var (
	ErrRequestNotFound     = errors.New("exception request not found")
	ErrAlreadyProcessed    = errors.New("request has already been approved or rejected")
	ErrNoOpenShift         = errors.New("no open shift found for an early-out request")
	ErrInvalidTargetStatus = errors.New("target status must be Approved or Rejected")
)
