package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)

	// ListByEmployee returns the employee's requests, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)

	// ListAll returns every request, newest first.
	ListAll(ctx context.Context) ([]Request, error)

	// ListApprovedStartingIn returns Approved leaves whose start date
	// falls inside the given calendar month. A leave spanning a month
	// boundary is attributed wholly to its start month.
	ListApprovedStartingIn(ctx context.Context, employeeID string, year, month int) ([]Request, error)

	CountPending(ctx context.Context) (int64, error)

	// UpdateStatus writes the new status and approver only when the row
	// is still Pending; the boolean reports whether the transition happened.
	UpdateStatus(ctx context.Context, id string, status Status, approvedBy string) (bool, error)
}
