package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/peoplehub/hr-portal-go/internal/domain/user"
	"github.com/peoplehub/hr-portal-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, user.UserRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewUserRepository(database.NewFromPool(mock))
}

func userRows() *pgxmock.Rows {
	now := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	return pgxmock.NewRows([]string{
		"id", "username", "email", "password_hash",
		"first_name", "last_name", "is_admin", "created_at", "updated_at",
	}).AddRow("user-1", "asha.nair", "asha@example.com", "hash", "Asha", "Nair", false, now, now)
}

func TestUserRepository_GetByLogin(t *testing.T) {
	t.Parallel()

	t.Run("matches username or email case-insensitively", func(t *testing.T) {
		t.Parallel()

		mock, repo := newMockRepo(t)
		mock.ExpectQuery(`(?s)SELECT .+ FROM users\s+WHERE LOWER\(username\) = LOWER\(\$1\) OR LOWER\(email\) = LOWER\(\$1\)`).
			WithArgs("Asha.Nair").
			WillReturnRows(userRows())

		u, err := repo.GetByLogin(context.Background(), "Asha.Nair")
		require.NoError(t, err)
		assert.Equal(t, "user-1", u.ID)
		assert.Equal(t, "asha.nair", u.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown login", func(t *testing.T) {
		t.Parallel()

		mock, repo := newMockRepo(t)
		mock.ExpectQuery(`(?s)SELECT .+ FROM users`).
			WithArgs("nobody").
			WillReturnRows(pgxmock.NewRows([]string{"id"}))

		_, err := repo.GetByLogin(context.Background(), "nobody")
		assert.ErrorIs(t, err, user.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Create(t *testing.T) {
	t.Parallel()

	mock, repo := newMockRepo(t)
	now := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "asha.nair", "asha@example.com", "hash", "Asha", "Nair", false).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), user.User{
		Username:     "asha.nair",
		Email:        "asha@example.com",
		PasswordHash: "hash",
		FirstName:    "Asha",
		LastName:     "Nair",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "an id is generated when none is supplied")
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ExistsByUsername(t *testing.T) {
	t.Parallel()

	mock, repo := newMockRepo(t)
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users WHERE LOWER\(username\) = LOWER\(\$1\)\)`).
		WithArgs("asha.nair").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	taken, err := repo.ExistsByUsername(context.Background(), "asha.nair")
	require.NoError(t, err)
	assert.True(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deletes the row", func(t *testing.T) {
		t.Parallel()

		mock, repo := newMockRepo(t)
		mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
			WithArgs("user-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(context.Background(), "user-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		t.Parallel()

		mock, repo := newMockRepo(t)
		mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
			WithArgs("user-9").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), "user-9"), user.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
