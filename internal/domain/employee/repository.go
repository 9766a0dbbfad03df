package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	UpdateAvatarURL(ctx context.Context, id string, avatarURL string) error

	// Delete removes the employee row; shifts, leave and exception
	// requests go with it via ON DELETE CASCADE.
	Delete(ctx context.Context, id string) error

	List(ctx context.Context) ([]Employee, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)

	// LastEmployeeCode returns the code of the most recently created
	// employee, or "" when the table is empty. Ordered by insertion
	// sequence, not by code, so gaps from deletions do not reset numbering.
	LastEmployeeCode(ctx context.Context) (string, error)
}
