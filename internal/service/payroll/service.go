package payroll

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/peoplehub/hr-portal-go/internal/config"
	"github.com/peoplehub/hr-portal-go/internal/domain/attendance"
	"github.com/peoplehub/hr-portal-go/internal/domain/employee"
	"github.com/peoplehub/hr-portal-go/internal/domain/leave"
	"github.com/peoplehub/hr-portal-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	attendance.ShiftRepository
	leave.LeaveRepository
	employee.EmployeeRepository
	calculator Calculator
	location   *time.Location
	now        func() time.Time
}

// resolvePeriod parses the requested month and year, silently falling
// back to the current period on unparseable input.
func (s *PayrollServiceImpl) resolvePeriod(req payroll.ReportRequest) (int, int) {
	localNow := s.now().UTC().In(s.location)
	year, month := localNow.Year(), int(localNow.Month())

	if y, err := strconv.Atoi(req.Year); err == nil && y > 0 {
		year = y
	}
	if m, err := strconv.Atoi(req.Month); err == nil && m >= 1 && m <= 12 {
		month = m
	}
	return year, month
}

// monthBounds returns the [start, end) of the office-local calendar
// month in UTC.
func (s *PayrollServiceImpl) monthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, s.location)
	return start.UTC(), start.AddDate(0, 1, 0).UTC()
}

// MonthlyReport implements payroll.PayrollService.
func (s *PayrollServiceImpl) MonthlyReport(ctx context.Context, employeeID string, req payroll.ReportRequest) (payroll.ReportResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.ReportResponse{}, err
	}

	year, month := s.resolvePeriod(req)
	from, to := s.monthBounds(year, month)

	shifts, err := s.ShiftRepository.ListClosedInRange(ctx, employeeID, from, to)
	if err != nil {
		return payroll.ReportResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	var workedHours float64
	lines := make([]payroll.ShiftLine, 0, len(shifts))
	for _, shift := range shifts {
		hours := shift.Duration().Hours()
		workedHours += hours
		lines = append(lines, payroll.ShiftLine{
			CheckIn:      shift.CheckIn.Format("2006-01-02 15:04:05"),
			CheckOut:     shift.CheckOut.Format("2006-01-02 15:04:05"),
			WorkingHours: roundHours(hours),
		})
	}

	approved, err := s.LeaveRepository.ListApprovedStartingIn(ctx, employeeID, year, month)
	if err != nil {
		return payroll.ReportResponse{}, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	leaveDays := 0
	for _, l := range approved {
		leaveDays += l.Days()
	}

	b := s.calculator.Compute(workedHours, leaveDays, emp.HourlyRate)

	return payroll.ReportResponse{
		EmployeeID:        employeeID,
		Year:              year,
		Month:             month,
		MonthName:         time.Month(month).String(),
		Shifts:            lines,
		WorkedHours:       b.WorkedHours,
		LeaveDays:         b.LeaveDays,
		PaidLeaveDays:     b.PaidLeaveDays,
		UnpaidLeaveDays:   b.UnpaidLeaveDays,
		PaidLeaveHours:    b.PaidLeaveHours,
		TotalPayableHours: b.TotalPayableHours,
		GrossPay:          b.GrossPay.StringFixed(2),
	}, nil
}

// MonthlyWorkedTotal implements payroll.PayrollService.
func (s *PayrollServiceImpl) MonthlyWorkedTotal(ctx context.Context, employeeID string, req payroll.ReportRequest) (payroll.WorkedTotalResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.WorkedTotalResponse{}, err
	}

	year, month := s.resolvePeriod(req)
	from, to := s.monthBounds(year, month)

	shifts, err := s.ShiftRepository.ListClosedInRange(ctx, employeeID, from, to)
	if err != nil {
		return payroll.WorkedTotalResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	var workedHours float64
	for _, shift := range shifts {
		workedHours += shift.Duration().Hours()
	}

	return payroll.WorkedTotalResponse{
		EmployeeID:  employeeID,
		Year:        year,
		Month:       month,
		WorkedHours: roundHours(workedHours),
		GrossPay:    s.calculator.ComputeWorkedOnly(workedHours, emp.HourlyRate).StringFixed(2),
	}, nil
}

func NewPayrollService(
	shiftRepo attendance.ShiftRepository,
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	quota config.LeaveConfig,
	office config.OfficeConfig,
	now func() time.Time,
) (payroll.PayrollService, error) {
	loc, err := time.LoadLocation(office.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid office timezone: %w", err)
	}
	if now == nil {
		now = time.Now
	}
	return &PayrollServiceImpl{
		ShiftRepository:    shiftRepo,
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
		calculator: Calculator{
			MonthlyPaidQuotaDays: quota.MonthlyPaidQuotaDays,
			PaidLeaveDailyHours:  quota.PaidLeaveDailyHours,
		},
		location: loc,
		now:      now,
	}, nil
}
