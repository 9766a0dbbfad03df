package leave

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Request is a multi-day leave request with an inclusive date range.
type Request struct {
	ID         string
	EmployeeID string
	Reason     string
	StartDate  time.Time
	EndDate    time.Time
	Status     Status
	ApprovedBy *string
	CreatedAt  time.Time

	// Joined read fields
	EmployeeName *string
	EmployeeCode *string
}

// Days is the inclusive span of the leave: (end - start) + 1.
func (r Request) Days() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}
