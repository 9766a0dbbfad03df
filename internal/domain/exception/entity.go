package exception

import "time"

// Status is the shared lifecycle of both exception request kinds.
// Pending is the only state that may transition, and only to Approved
// or Rejected.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// EarlyOutRequest asks permission to close a specific open shift before
// the mandatory clock-out threshold. The shift is captured by reference
// at creation time and never re-resolved.
type EarlyOutRequest struct {
	ID          string
	EmployeeID  string
	ShiftID     string
	Reason      string
	Status      Status
	RequestedAt time.Time

	// Joined read fields
	EmployeeName *string
	EmployeeCode *string
}

// LateArrivalRequest asks permission to be clocked in retroactively at
// the moment the request was made. No shift exists until approval.
type LateArrivalRequest struct {
	ID          string
	EmployeeID  string
	Reason      string
	Status      Status
	RequestedAt time.Time

	// Joined read fields
	EmployeeName *string
	EmployeeCode *string
}
