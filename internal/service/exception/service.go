package exception

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/peoplehub/hr-portal-go/internal/domain/attendance"
	"github.com/peoplehub/hr-portal-go/internal/domain/exception"
	"github.com/peoplehub/hr-portal-go/internal/pkg/database"
)

type ExceptionServiceImpl struct {
	tx database.TxManager
	exception.EarlyOutRepository
	exception.LateArrivalRepository
	attendance.ShiftRepository
	now func() time.Time
}

func toEarlyOutResponse(req exception.EarlyOutRequest) exception.EarlyOutResponse {
	return exception.EarlyOutResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		ShiftID:      req.ShiftID,
		Reason:       req.Reason,
		Status:       string(req.Status),
		RequestedAt:  req.RequestedAt.Format("2006-01-02 15:04:05"),
	}
}

func toLateArrivalResponse(req exception.LateArrivalRequest) exception.LateArrivalResponse {
	return exception.LateArrivalResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Reason:       req.Reason,
		Status:       string(req.Status),
		RequestedAt:  req.RequestedAt.Format("2006-01-02 15:04:05"),
	}
}

// CreateEarlyOut implements exception.ExceptionService.
func (s *ExceptionServiceImpl) CreateEarlyOut(ctx context.Context, employeeID string, req exception.CreateRequestRequest) (exception.EarlyOutResponse, error) {
	if err := req.Validate(); err != nil {
		return exception.EarlyOutResponse{}, err
	}

	// The shift is captured by ID now; a request outlives the shift's
	// open state and is never re-pointed.
	open, err := s.ShiftRepository.GetOpenShift(ctx, employeeID)
	if err != nil {
		if errors.Is(err, attendance.ErrNoOpenShift) {
			return exception.EarlyOutResponse{}, exception.ErrNoOpenShift
		}
		return exception.EarlyOutResponse{}, fmt.Errorf("failed to get open shift: %w", err)
	}

	created, err := s.EarlyOutRepository.Create(ctx, exception.EarlyOutRequest{
		EmployeeID: employeeID,
		ShiftID:    open.ID,
		Reason:     req.Reason,
		Status:     exception.StatusPending,
	})
	if err != nil {
		return exception.EarlyOutResponse{}, fmt.Errorf("failed to create early-out request: %w", err)
	}
	return toEarlyOutResponse(created), nil
}

// CreateLateArrival implements exception.ExceptionService.
func (s *ExceptionServiceImpl) CreateLateArrival(ctx context.Context, employeeID string, req exception.CreateRequestRequest) (exception.LateArrivalResponse, error) {
	if err := req.Validate(); err != nil {
		return exception.LateArrivalResponse{}, err
	}

	created, err := s.LateArrivalRepository.Create(ctx, exception.LateArrivalRequest{
		EmployeeID: employeeID,
		Reason:     req.Reason,
		Status:     exception.StatusPending,
	})
	if err != nil {
		return exception.LateArrivalResponse{}, fmt.Errorf("failed to create late-arrival request: %w", err)
	}
	return toLateArrivalResponse(created), nil
}

// ListPendingEarlyOuts implements exception.ExceptionService.
func (s *ExceptionServiceImpl) ListPendingEarlyOuts(ctx context.Context) ([]exception.EarlyOutResponse, error) {
	reqs, err := s.EarlyOutRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list early-out requests: %w", err)
	}
	responses := make([]exception.EarlyOutResponse, 0, len(reqs))
	for _, req := range reqs {
		responses = append(responses, toEarlyOutResponse(req))
	}
	return responses, nil
}

// ListPendingLateArrivals implements exception.ExceptionService.
func (s *ExceptionServiceImpl) ListPendingLateArrivals(ctx context.Context) ([]exception.LateArrivalResponse, error) {
	reqs, err := s.LateArrivalRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list late-arrival requests: %w", err)
	}
	responses := make([]exception.LateArrivalResponse, 0, len(reqs))
	for _, req := range reqs {
		responses = append(responses, toLateArrivalResponse(req))
	}
	return responses, nil
}

// DecideEarlyOut implements exception.ExceptionService.
func (s *ExceptionServiceImpl) DecideEarlyOut(ctx context.Context, id string, status exception.Status) (exception.DecisionResponse, error) {
	if status != exception.StatusApproved && status != exception.StatusRejected {
		return exception.DecisionResponse{}, exception.ErrInvalidTargetStatus
	}

	req, err := s.EarlyOutRepository.GetByID(ctx, id)
	if err != nil {
		return exception.DecisionResponse{}, err
	}
	if req.Status != exception.StatusPending {
		return exception.DecisionResponse{}, exception.ErrAlreadyProcessed
	}

	resp := exception.DecisionResponse{ID: id, Status: string(status)}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		updated, err := s.EarlyOutRepository.UpdateStatus(ctx, id, status)
		if err != nil {
			return fmt.Errorf("failed to update request status: %w", err)
		}
		if !updated {
			return exception.ErrAlreadyProcessed
		}

		if status == exception.StatusRejected {
			resp.Message = "early-out request rejected"
			return nil
		}

		closed, err := s.ShiftRepository.SetCheckOut(ctx, req.ShiftID, s.now().UTC())
		if err != nil {
			return fmt.Errorf("failed to close shift: %w", err)
		}
		if closed {
			resp.Message = "early-out request approved, employee clocked out"
		} else {
			// Approval stands even when the shift is already closed.
			resp.Message = "early-out request approved"
			resp.Warning = "shift was already checked out, no clock-out applied"
		}
		return nil
	})
	if err != nil {
		return exception.DecisionResponse{}, err
	}
	return resp, nil
}

// DecideLateArrival implements exception.ExceptionService.
func (s *ExceptionServiceImpl) DecideLateArrival(ctx context.Context, id string, status exception.Status) (exception.DecisionResponse, error) {
	if status != exception.StatusApproved && status != exception.StatusRejected {
		return exception.DecisionResponse{}, exception.ErrInvalidTargetStatus
	}

	req, err := s.LateArrivalRepository.GetByID(ctx, id)
	if err != nil {
		return exception.DecisionResponse{}, err
	}
	if req.Status != exception.StatusPending {
		return exception.DecisionResponse{}, exception.ErrAlreadyProcessed
	}

	resp := exception.DecisionResponse{ID: id, Status: string(status)}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		updated, err := s.LateArrivalRepository.UpdateStatus(ctx, id, status)
		if err != nil {
			return fmt.Errorf("failed to update request status: %w", err)
		}
		if !updated {
			return exception.ErrAlreadyProcessed
		}

		if status == exception.StatusRejected {
			resp.Message = "late-arrival request rejected"
			return nil
		}

		// Check-in is backdated to the moment the request was filed, not
		// the approval moment.
		checkIn := req.RequestedAt
		if _, err := s.ShiftRepository.Create(ctx, attendance.Shift{
			EmployeeID: req.EmployeeID,
			CheckIn:    &checkIn,
		}); err != nil {
			return fmt.Errorf("failed to create shift: %w", err)
		}
		resp.Message = "late-arrival request approved, employee clocked in"
		return nil
	})
	if err != nil {
		return exception.DecisionResponse{}, err
	}
	return resp, nil
}

func NewExceptionService(
	tx database.TxManager,
	earlyOutRepo exception.EarlyOutRepository,
	lateArrivalRepo exception.LateArrivalRepository,
	shiftRepo attendance.ShiftRepository,
	now func() time.Time,
) exception.ExceptionService {
	if now == nil {
		now = time.Now
	}
	return &ExceptionServiceImpl{
		tx:                    tx,
		EarlyOutRepository:    earlyOutRepo,
		LateArrivalRepository: lateArrivalRepo,
		ShiftRepository:       shiftRepo,
		now:                   now,
	}
}
