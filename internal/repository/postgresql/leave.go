package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/hr-portal-go/internal/domain/leave"
	"github.com/peoplehub/hr-portal-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveSelect = `
	SELECT l.id, l.employee_id, l.reason, l.start_date, l.end_date,
	       l.status, l.approved_by, l.created_at,
	       TRIM(u.first_name || ' ' || u.last_name) AS employee_name,
	       e.employee_code
	FROM leave_requests l
	JOIN employees e ON e.id = l.employee_id
	JOIN users u ON u.id = e.user_id
`

func scanLeave(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Reason, &req.StartDate, &req.EndDate,
		&req.Status, &req.ApprovedBy, &req.CreatedAt,
		&req.EmployeeName, &req.EmployeeCode,
	)
	if err != nil {
		return leave.Request{}, err
	}
	return req, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leave_requests (id, employee_id, reason, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.Reason, req.StartDate, req.EndDate, req.Status,
	).Scan(&req.CreatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	req, err := scanLeave(q.QueryRow(ctx, leaveSelect+` WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return req, nil
}

func (r *leaveRepository) list(ctx context.Context, query string, args ...any) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var reqs []leave.Request
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Request, error) {
	return r.list(ctx, leaveSelect+` WHERE l.employee_id = $1 ORDER BY l.created_at DESC`, employeeID)
}

// ListAll implements leave.LeaveRepository.
func (r *leaveRepository) ListAll(ctx context.Context) ([]leave.Request, error) {
	return r.list(ctx, leaveSelect+` ORDER BY l.created_at DESC`)
}

// ListApprovedStartingIn implements leave.LeaveRepository.
func (r *leaveRepository) ListApprovedStartingIn(ctx context.Context, employeeID string, year, month int) ([]leave.Request, error) {
	query := leaveSelect + `
		WHERE l.employee_id = $1
		  AND l.status = $2
		  AND EXTRACT(YEAR FROM l.start_date) = $3
		  AND EXTRACT(MONTH FROM l.start_date) = $4
		ORDER BY l.start_date
	`
	return r.list(ctx, query, employeeID, leave.StatusApproved, year, month)
}

// CountPending implements leave.LeaveRepository.
func (r *leaveRepository) CountPending(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	query := `SELECT COUNT(*) FROM leave_requests WHERE status = $1`
	if err := q.QueryRow(ctx, query, leave.StatusPending).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}
	return count, nil
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, approvedBy string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE leave_requests SET status = $1, approved_by = $2 WHERE id = $3 AND status = $4`
	tag, err := q.Exec(ctx, query, status, approvedBy, id, leave.StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to update leave status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
