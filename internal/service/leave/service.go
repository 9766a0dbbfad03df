package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplehub/hr-portal-go/internal/config"
	"github.com/peoplehub/hr-portal-go/internal/domain/employee"
	"github.com/peoplehub/hr-portal-go/internal/domain/leave"
	"github.com/peoplehub/hr-portal-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	tx database.TxManager
	leave.LeaveRepository
	employee.EmployeeRepository
	quota config.LeaveConfig
	now   func() time.Time
}

func toLeaveResponse(req leave.Request) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Reason:       req.Reason,
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		Days:         req.Days(),
		Status:       string(req.Status),
		CreatedAt:    req.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, employeeID string, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	// Validate re-parsed these; errors are unreachable here.
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.LeaveRepository.Create(ctx, leave.Request{
		EmployeeID: employeeID,
		Reason:     req.Reason,
		StartDate:  start,
		EndDate:    end,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return toLeaveResponse(created), nil
}

// MyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) MyLeaves(ctx context.Context, employeeID string) (leave.MyLeavesResponse, error) {
	requests, err := s.LeaveRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return leave.MyLeavesResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	quota, err := s.quotaSummary(ctx, employeeID)
	if err != nil {
		return leave.MyLeavesResponse{}, err
	}

	leaves := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		leaves = append(leaves, toLeaveResponse(req))
	}
	return leave.MyLeavesResponse{Quota: quota, Leaves: leaves}, nil
}

// quotaSummary sums the spans of this month's Approved leaves, attributed
// by start date. The summary informs the employee; it never blocks a
// submission.
func (s *LeaveServiceImpl) quotaSummary(ctx context.Context, employeeID string) (leave.QuotaSummary, error) {
	now := s.now().UTC()
	approved, err := s.LeaveRepository.ListApprovedStartingIn(ctx, employeeID, now.Year(), int(now.Month()))
	if err != nil {
		return leave.QuotaSummary{}, fmt.Errorf("failed to list approved leaves: %w", err)
	}

	taken := 0
	for _, req := range approved {
		taken += req.Days()
	}
	available := s.quota.MonthlyPaidQuotaDays - taken
	if available < 0 {
		available = 0
	}
	return leave.QuotaSummary{
		MonthlyQuotaDays: s.quota.MonthlyPaidQuotaDays,
		TakenDays:        taken,
		AvailablePaid:    available,
	}, nil
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.LeaveResponse, error) {
	requests, err := s.LeaveRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	leaves := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		leaves = append(leaves, toLeaveResponse(req))
	}
	return leaves, nil
}

// Decide implements leave.LeaveService.
func (s *LeaveServiceImpl) Decide(ctx context.Context, id string, status leave.Status, approvedBy string) (leave.LeaveResponse, error) {
	if status != leave.StatusApproved && status != leave.StatusRejected {
		return leave.LeaveResponse{}, leave.ErrInvalidTargetStatus
	}

	req, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if req.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		updated, err := s.LeaveRepository.UpdateStatus(ctx, id, status, approvedBy)
		if err != nil {
			return fmt.Errorf("failed to update leave status: %w", err)
		}
		if !updated {
			return leave.ErrAlreadyProcessed
		}

		if status == leave.StatusApproved {
			// Marked On Leave immediately; there is no automatic
			// reversion when the leave ends.
			if err := s.EmployeeRepository.UpdateStatus(ctx, req.EmployeeID, employee.StatusOnLeave); err != nil {
				return fmt.Errorf("failed to update employee status: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	decided, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return toLeaveResponse(decided), nil
}

func NewLeaveService(
	tx database.TxManager,
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	quota config.LeaveConfig,
	now func() time.Time,
) leave.LeaveService {
	if now == nil {
		now = time.Now
	}
	return &LeaveServiceImpl{
		tx:                 tx,
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
		quota:              quota,
		now:                now,
	}
}
