package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/peoplehub/hr-portal-go/internal/domain/attendance"
	"github.com/peoplehub/hr-portal-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockShiftRepo(t *testing.T) (pgxmock.PgxPoolIface, attendance.ShiftRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewShiftRepository(database.NewFromPool(mock))
}

func TestShiftRepository_SetCheckOut(t *testing.T) {
	t.Parallel()

	checkOut := time.Date(2026, time.March, 2, 12, 30, 0, 0, time.UTC)

	t.Run("closes an open shift", func(t *testing.T) {
		t.Parallel()

		mock, repo := newMockShiftRepo(t)
		mock.ExpectExec(`UPDATE shifts SET check_out = \$1 WHERE id = \$2 AND check_out IS NULL`).
			WithArgs(checkOut, "shift-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		closed, err := repo.SetCheckOut(context.Background(), "shift-1", checkOut)
		require.NoError(t, err)
		assert.True(t, closed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports a lost race without erroring", func(t *testing.T) {
		t.Parallel()

		mock, repo := newMockShiftRepo(t)
		mock.ExpectExec(`UPDATE shifts SET check_out = \$1 WHERE id = \$2 AND check_out IS NULL`).
			WithArgs(checkOut, "shift-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		closed, err := repo.SetCheckOut(context.Background(), "shift-1", checkOut)
		require.NoError(t, err)
		assert.False(t, closed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestShiftRepository_GetOpenShift(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		checkIn := time.Date(2026, time.March, 2, 3, 30, 0, 0, time.UTC)
		name := "Asha Nair"
		code := "EMP001"

		mock, repo := newMockShiftRepo(t)
		mock.ExpectQuery(`(?s)SELECT .+ FROM shifts s\s+JOIN employees e ON e\.id = s\.employee_id\s+JOIN users u ON u\.id = e\.user_id`).
			WithArgs("emp-1").
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "employee_id", "check_in", "check_out", "created_at", "employee_name", "employee_code",
			}).AddRow("shift-1", "emp-1", &checkIn, (*time.Time)(nil), checkIn, &name, &code))

		s, err := repo.GetOpenShift(context.Background(), "emp-1")
		require.NoError(t, err)
		assert.Equal(t, "shift-1", s.ID)
		assert.Nil(t, s.CheckOut)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no open shift", func(t *testing.T) {
		t.Parallel()

		mock, repo := newMockShiftRepo(t)
		mock.ExpectQuery(`(?s)SELECT .+ FROM shifts s`).
			WithArgs("emp-1").
			WillReturnRows(pgxmock.NewRows([]string{"id"}))

		_, err := repo.GetOpenShift(context.Background(), "emp-1")
		assert.ErrorIs(t, err, attendance.ErrNoOpenShift)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
