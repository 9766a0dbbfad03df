package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)

	// GetByLogin resolves a username or an email address to a user.
	GetByLogin(ctx context.Context, login string) (User, error)

	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error

	// ExistsByUsername and ExistsByEmail match case-insensitively.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
