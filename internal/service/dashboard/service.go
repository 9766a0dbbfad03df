package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/peoplehub/hr-portal-go/internal/config"
	"github.com/peoplehub/hr-portal-go/internal/domain/announcement"
	"github.com/peoplehub/hr-portal-go/internal/domain/attendance"
	"github.com/peoplehub/hr-portal-go/internal/domain/dashboard"
	"github.com/peoplehub/hr-portal-go/internal/domain/employee"
	"github.com/peoplehub/hr-portal-go/internal/domain/leave"
	"github.com/peoplehub/hr-portal-go/internal/pkg/utils"
	employeesvc "github.com/peoplehub/hr-portal-go/internal/service/employee"

	attendancesvc "github.com/peoplehub/hr-portal-go/internal/service/attendance"
)

const (
	dashboardAnnouncements = 5
	recentCheckInLimit     = 5
)

type DashboardServiceImpl struct {
	attendance.ShiftRepository
	employee.EmployeeRepository
	announcement.AnnouncementRepository
	leave.LeaveRepository
	endOfDay int // seconds since midnight, office time zone
	location *time.Location
	now      func() time.Time
}

// EmployeeDashboard implements dashboard.DashboardService.
func (d *DashboardServiceImpl) EmployeeDashboard(ctx context.Context, employeeID string) (dashboard.EmployeeDashboardResponse, error) {
	emp, err := d.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	notice, err := d.autoClockOut(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}

	var currentShift *attendance.ShiftResponse
	open, err := d.ShiftRepository.GetOpenShift(ctx, employeeID)
	if err != nil && !errors.Is(err, attendance.ErrNoOpenShift) {
		return dashboard.EmployeeDashboardResponse{}, fmt.Errorf("failed to get open shift: %w", err)
	}
	if err == nil {
		resp := attendancesvc.ToShiftResponse(open)
		currentShift = &resp
	}

	var todayRecord *attendance.ShiftResponse
	dayStart, dayEnd := d.todayBounds()
	today, err := d.ShiftRepository.GetByEmployeeAndDay(ctx, employeeID, dayStart, dayEnd)
	if err != nil && !errors.Is(err, attendance.ErrShiftNotFound) {
		return dashboard.EmployeeDashboardResponse{}, fmt.Errorf("failed to get today's shift: %w", err)
	}
	if err == nil {
		resp := attendancesvc.ToShiftResponse(today)
		todayRecord = &resp
	}

	latest, err := d.AnnouncementRepository.Latest(ctx, dashboardAnnouncements)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, fmt.Errorf("failed to get announcements: %w", err)
	}
	announcements := make([]announcement.AnnouncementResponse, 0, len(latest))
	for _, a := range latest {
		announcements = append(announcements, announcement.AnnouncementResponse{
			ID:         a.ID,
			Title:      a.Title,
			Content:    a.Content,
			DatePosted: a.DatePosted.Format("2006-01-02 15:04:05"),
		})
	}

	return dashboard.EmployeeDashboardResponse{
		Profile:       employeesvc.ToEmployeeResponse(emp),
		CurrentShift:  currentShift,
		TodayRecord:   todayRecord,
		Announcements: announcements,
		Notice:        notice,
	}, nil
}

// autoClockOut closes a forgotten open shift once local time is strictly
// past the end-of-day threshold. The checkout is pinned to today's
// threshold, not to the evaluation moment, so the recorded duration does
// not grow with how late the dashboard is opened.
func (d *DashboardServiceImpl) autoClockOut(ctx context.Context, employeeID string) (string, error) {
	open, err := d.ShiftRepository.GetOpenShift(ctx, employeeID)
	if err != nil {
		if errors.Is(err, attendance.ErrNoOpenShift) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get open shift: %w", err)
	}

	localNow := d.now().UTC().In(d.location)
	if utils.SecondsOfDay(localNow) <= d.endOfDay {
		return "", nil
	}

	checkOut := time.Date(
		localNow.Year(), localNow.Month(), localNow.Day(),
		d.endOfDay/3600, d.endOfDay/60%60, d.endOfDay%60, 0,
		d.location,
	).UTC()

	closed, err := d.ShiftRepository.SetCheckOut(ctx, open.ID, checkOut)
	if err != nil {
		return "", fmt.Errorf("failed to auto clock out: %w", err)
	}
	if !closed {
		return "", nil
	}
	return "you were automatically clocked out at end of day", nil
}

// AdminDashboard implements dashboard.DashboardService.
func (d *DashboardServiceImpl) AdminDashboard(ctx context.Context) (dashboard.AdminDashboardResponse, error) {
	total, err := d.EmployeeRepository.Count(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	dayStart, dayEnd := d.todayBounds()
	present, err := d.ShiftRepository.CountCheckedInBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to count present employees: %w", err)
	}

	pendingLeaves, err := d.LeaveRepository.CountPending(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to count pending leaves: %w", err)
	}

	recent, err := d.ShiftRepository.RecentCheckIns(ctx, recentCheckInLimit)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to list recent check-ins: %w", err)
	}
	recentResponses := make([]attendance.ShiftResponse, 0, len(recent))
	for _, s := range recent {
		recentResponses = append(recentResponses, attendancesvc.ToShiftResponse(s))
	}

	return dashboard.AdminDashboardResponse{
		TotalEmployees: total,
		PresentToday:   present,
		PendingLeaves:  pendingLeaves,
		RecentCheckIns: recentResponses,
	}, nil
}

// todayBounds returns today's [start, end) in UTC, computed from the
// office time zone's calendar day.
func (d *DashboardServiceImpl) todayBounds() (time.Time, time.Time) {
	localNow := d.now().UTC().In(d.location)
	start := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, d.location)
	return start.UTC(), start.Add(24 * time.Hour).UTC()
}

func NewDashboardService(
	shiftRepo attendance.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	announcementRepo announcement.AnnouncementRepository,
	leaveRepo leave.LeaveRepository,
	office config.OfficeConfig,
	now func() time.Time,
) (dashboard.DashboardService, error) {
	endOfDay, err := utils.ParseWallClock(office.ClockOutThreshold)
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(office.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid office timezone: %w", err)
	}
	if now == nil {
		now = time.Now
	}
	return &DashboardServiceImpl{
		ShiftRepository:        shiftRepo,
		EmployeeRepository:     employeeRepo,
		AnnouncementRepository: announcementRepo,
		LeaveRepository:        leaveRepo,
		endOfDay:               endOfDay,
		location:               loc,
		now:                    now,
	}, nil
}
