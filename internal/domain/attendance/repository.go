package attendance

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, shift Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)

	// GetOpenShift returns the employee's open shift, or ErrNoOpenShift.
	// The invariant is at most one open shift per employee.
	GetOpenShift(ctx context.Context, employeeID string) (Shift, error)

	// SetCheckOut closes a shift. It only writes when check_out is still
	// NULL, so a concurrent close wins exactly once; the boolean reports
	// whether this call did the write.
	SetCheckOut(ctx context.Context, shiftID string, checkOut time.Time) (bool, error)

	// GetByEmployeeAndDay returns the shift whose check-in falls inside
	// [dayStart, dayEnd), or ErrShiftNotFound.
	GetByEmployeeAndDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (Shift, error)

	// ListClosedInRange returns closed shifts whose check-in falls inside
	// [from, to), oldest first.
	ListClosedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]Shift, error)

	// CountCheckedInBetween counts distinct employees with a check-in
	// inside [from, to).
	CountCheckedInBetween(ctx context.Context, from, to time.Time) (int64, error)

	// RecentCheckIns returns the latest check-ins across all employees.
	RecentCheckIns(ctx context.Context, limit int) ([]Shift, error)
}
