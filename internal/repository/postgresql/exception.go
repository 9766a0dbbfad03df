package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplehub/hr-portal-go/internal/domain/exception"
	"github.com/peoplehub/hr-portal-go/internal/pkg/database"
)

type earlyOutRepository struct {
	db *database.DB
}

func NewEarlyOutRepository(db *database.DB) exception.EarlyOutRepository {
	return &earlyOutRepository{db: db}
}

const earlyOutSelect = `
	SELECT r.id, r.employee_id, r.shift_id, r.reason, r.status, r.requested_at,
	       TRIM(u.first_name || ' ' || u.last_name) AS employee_name,
	       e.employee_code
	FROM early_out_requests r
	JOIN employees e ON e.id = r.employee_id
	JOIN users u ON u.id = e.user_id
`

func scanEarlyOut(row pgx.Row) (exception.EarlyOutRequest, error) {
	var req exception.EarlyOutRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.ShiftID, &req.Reason, &req.Status, &req.RequestedAt,
		&req.EmployeeName, &req.EmployeeCode,
	)
	if err != nil {
		return exception.EarlyOutRequest{}, err
	}
	return req, nil
}

// Create implements exception.EarlyOutRepository.
func (r *earlyOutRepository) Create(ctx context.Context, req exception.EarlyOutRequest) (exception.EarlyOutRequest, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	query := `
		INSERT INTO early_out_requests (id, employee_id, shift_id, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING requested_at
	`
	err := q.QueryRow(ctx, query, req.ID, req.EmployeeID, req.ShiftID, req.Reason, req.Status).
		Scan(&req.RequestedAt)
	if err != nil {
		return exception.EarlyOutRequest{}, fmt.Errorf("failed to create early-out request: %w", err)
	}

	return req, nil
}

// GetByID implements exception.EarlyOutRepository.
func (r *earlyOutRepository) GetByID(ctx context.Context, id string) (exception.EarlyOutRequest, error) {
	q := GetQuerier(ctx, r.db)

	req, err := scanEarlyOut(q.QueryRow(ctx, earlyOutSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return exception.EarlyOutRequest{}, exception.ErrRequestNotFound
		}
		return exception.EarlyOutRequest{}, fmt.Errorf("failed to get early-out request: %w", err)
	}
	return req, nil
}

// ListPending implements exception.EarlyOutRepository.
func (r *earlyOutRepository) ListPending(ctx context.Context) ([]exception.EarlyOutRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := earlyOutSelect + ` WHERE r.status = $1 ORDER BY r.requested_at`
	rows, err := q.Query(ctx, query, exception.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list early-out requests: %w", err)
	}
	defer rows.Close()

	var reqs []exception.EarlyOutRequest
	for rows.Next() {
		req, err := scanEarlyOut(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan early-out request: %w", err)
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

// UpdateStatus implements exception.EarlyOutRepository.
func (r *earlyOutRepository) UpdateStatus(ctx context.Context, id string, status exception.Status) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE early_out_requests SET status = $1 WHERE id = $2 AND status = $3`
	tag, err := q.Exec(ctx, query, status, id, exception.StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to update early-out status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

type lateArrivalRepository struct {
	db *database.DB
}

func NewLateArrivalRepository(db *database.DB) exception.LateArrivalRepository {
	return &lateArrivalRepository{db: db}
}

const lateArrivalSelect = `
	SELECT r.id, r.employee_id, r.reason, r.status, r.requested_at,
	       TRIM(u.first_name || ' ' || u.last_name) AS employee_name,
	       e.employee_code
	FROM late_arrival_requests r
	JOIN employees e ON e.id = r.employee_id
	JOIN users u ON u.id = e.user_id
`

func scanLateArrival(row pgx.Row) (exception.LateArrivalRequest, error) {
	var req exception.LateArrivalRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Reason, &req.Status, &req.RequestedAt,
		&req.EmployeeName, &req.EmployeeCode,
	)
	if err != nil {
		return exception.LateArrivalRequest{}, err
	}
	return req, nil
}

// Create implements exception.LateArrivalRepository.
func (r *lateArrivalRepository) Create(ctx context.Context, req exception.LateArrivalRequest) (exception.LateArrivalRequest, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	query := `
		INSERT INTO late_arrival_requests (id, employee_id, reason, status)
		VALUES ($1, $2, $3, $4)
		RETURNING requested_at
	`
	err := q.QueryRow(ctx, query, req.ID, req.EmployeeID, req.Reason, req.Status).
		Scan(&req.RequestedAt)
	if err != nil {
		return exception.LateArrivalRequest{}, fmt.Errorf("failed to create late-arrival request: %w", err)
	}

	return req, nil
}

// GetByID implements exception.LateArrivalRepository.
func (r *lateArrivalRepository) GetByID(ctx context.Context, id string) (exception.LateArrivalRequest, error) {
	q := GetQuerier(ctx, r.db)

	req, err := scanLateArrival(q.QueryRow(ctx, lateArrivalSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return exception.LateArrivalRequest{}, exception.ErrRequestNotFound
		}
		return exception.LateArrivalRequest{}, fmt.Errorf("failed to get late-arrival request: %w", err)
	}
	return req, nil
}

// ListPending implements exception.LateArrivalRepository.
func (r *lateArrivalRepository) ListPending(ctx context.Context) ([]exception.LateArrivalRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := lateArrivalSelect + ` WHERE r.status = $1 ORDER BY r.requested_at`
	rows, err := q.Query(ctx, query, exception.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list late-arrival requests: %w", err)
	}
	defer rows.Close()

	var reqs []exception.LateArrivalRequest
	for rows.Next() {
		req, err := scanLateArrival(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan late-arrival request: %w", err)
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

// UpdateStatus implements exception.LateArrivalRepository.
func (r *lateArrivalRepository) UpdateStatus(ctx context.Context, id string, status exception.Status) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE late_arrival_requests SET status = $1 WHERE id = $2 AND status = $3`
	tag, err := q.Exec(ctx, query, status, id, exception.StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to update late-arrival status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
