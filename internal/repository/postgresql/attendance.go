package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/hr-portal-go/internal/domain/attendance"
	"github.com/peoplehub/hr-portal-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) attendance.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftSelect = `
	SELECT s.id, s.employee_id, s.check_in, s.check_out, s.created_at,
	       TRIM(u.first_name || ' ' || u.last_name) AS employee_name,
	       e.employee_code
	FROM shifts s
	JOIN employees e ON e.id = s.employee_id
	JOIN users u ON u.id = e.user_id
`

func scanShift(row pgx.Row) (attendance.Shift, error) {
	var s attendance.Shift
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.CheckIn, &s.CheckOut, &s.CreatedAt,
		&s.EmployeeName, &s.EmployeeCode,
	)
	if err != nil {
		return attendance.Shift{}, err
	}
	return s, nil
}

// Create implements attendance.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, shift attendance.Shift) (attendance.Shift, error) {
	q := GetQuerier(ctx, r.db)

	if shift.ID == "" {
		shift.ID = uuid.New().String()
	}

	query := `
		INSERT INTO shifts (id, employee_id, check_in, check_out)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := q.QueryRow(ctx, query, shift.ID, shift.EmployeeID, shift.CheckIn, shift.CheckOut).
		Scan(&shift.CreatedAt)
	if err != nil {
		return attendance.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return shift, nil
}

// GetByID implements attendance.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (attendance.Shift, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanShift(q.QueryRow(ctx, shiftSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Shift{}, attendance.ErrShiftNotFound
		}
		return attendance.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return s, nil
}

// GetOpenShift implements attendance.ShiftRepository.
func (r *shiftRepository) GetOpenShift(ctx context.Context, employeeID string) (attendance.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := shiftSelect + `
		WHERE s.employee_id = $1 AND s.check_in IS NOT NULL AND s.check_out IS NULL
		ORDER BY s.check_in DESC
		LIMIT 1
	`
	s, err := scanShift(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Shift{}, attendance.ErrNoOpenShift
		}
		return attendance.Shift{}, fmt.Errorf("failed to get open shift: %w", err)
	}
	return s, nil
}

// SetCheckOut implements attendance.ShiftRepository.
func (r *shiftRepository) SetCheckOut(ctx context.Context, shiftID string, checkOut time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE shifts SET check_out = $1 WHERE id = $2 AND check_out IS NULL`
	tag, err := q.Exec(ctx, query, checkOut, shiftID)
	if err != nil {
		return false, fmt.Errorf("failed to set check-out: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetByEmployeeAndDay implements attendance.ShiftRepository.
func (r *shiftRepository) GetByEmployeeAndDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (attendance.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := shiftSelect + `
		WHERE s.employee_id = $1 AND s.check_in >= $2 AND s.check_in < $3
		ORDER BY s.check_in DESC
		LIMIT 1
	`
	s, err := scanShift(q.QueryRow(ctx, query, employeeID, dayStart, dayEnd))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Shift{}, attendance.ErrShiftNotFound
		}
		return attendance.Shift{}, fmt.Errorf("failed to get shift for day: %w", err)
	}
	return s, nil
}

// ListClosedInRange implements attendance.ShiftRepository.
func (r *shiftRepository) ListClosedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := shiftSelect + `
		WHERE s.employee_id = $1
		  AND s.check_in >= $2 AND s.check_in < $3
		  AND s.check_out IS NOT NULL
		ORDER BY s.check_in
	`
	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []attendance.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// CountCheckedInBetween implements attendance.ShiftRepository.
func (r *shiftRepository) CountCheckedInBetween(ctx context.Context, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	query := `SELECT COUNT(DISTINCT employee_id) FROM shifts WHERE check_in >= $1 AND check_in < $2`
	if err := q.QueryRow(ctx, query, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count check-ins: %w", err)
	}
	return count, nil
}

// RecentCheckIns implements attendance.ShiftRepository.
func (r *shiftRepository) RecentCheckIns(ctx context.Context, limit int) ([]attendance.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := shiftSelect + `
		WHERE s.check_in IS NOT NULL
		ORDER BY s.check_in DESC
		LIMIT $1
	`
	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent check-ins: %w", err)
	}
	defer rows.Close()

	var shifts []attendance.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}
