package employee

import (
	"context"
	"io"
)

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Directory(ctx context.Context) (DirectoryResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	UploadAvatar(ctx context.Context, id string, file io.Reader, filename string) (EmployeeResponse, error)

	// CheckUserExistence reports whether a username or email is already
	// taken, matching case-insensitively. Empty values are simply not
	// checked.
	CheckUserExistence(ctx context.Context, username, email string) (ExistenceResponse, error)
}
