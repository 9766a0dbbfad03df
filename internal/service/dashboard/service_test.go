package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/peoplehub/hr-portal-go/internal/config"
	"github.com/peoplehub/hr-portal-go/internal/domain/announcement"
	"github.com/peoplehub/hr-portal-go/internal/domain/attendance"
	"github.com/peoplehub/hr-portal-go/internal/domain/employee"
	"github.com/peoplehub/hr-portal-go/internal/domain/leave"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmployeeID = "emp-1"

var testOffice = config.OfficeConfig{
	Latitude:          11.258845355278732,
	Longitude:         75.78368254232883,
	RadiusMeters:      200,
	ClockInStart:      "09:00:00",
	ClockInEnd:        "09:10:00",
	ClockOutThreshold: "18:00:00",
	Timezone:          "Asia/Kolkata",
}

type fakeShiftRepo struct {
	attendance.ShiftRepository

	open   *attendance.Shift
	closed []attendance.Shift
}

func (f *fakeShiftRepo) GetOpenShift(ctx context.Context, employeeID string) (attendance.Shift, error) {
	if f.open == nil || f.open.EmployeeID != employeeID {
		return attendance.Shift{}, attendance.ErrNoOpenShift
	}
	return *f.open, nil
}

func (f *fakeShiftRepo) SetCheckOut(ctx context.Context, shiftID string, checkOut time.Time) (bool, error) {
	if f.open == nil || f.open.ID != shiftID {
		return false, nil
	}
	s := *f.open
	s.CheckOut = &checkOut
	f.closed = append(f.closed, s)
	f.open = nil
	return true, nil
}

func (f *fakeShiftRepo) GetByEmployeeAndDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (attendance.Shift, error) {
	for _, s := range f.closed {
		if s.EmployeeID == employeeID {
			return s, nil
		}
	}
	return attendance.Shift{}, attendance.ErrShiftNotFound
}

func (f *fakeShiftRepo) CountCheckedInBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return int64(len(f.closed)), nil
}

func (f *fakeShiftRepo) RecentCheckIns(ctx context.Context, limit int) ([]attendance.Shift, error) {
	return f.closed, nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	emp   employee.Employee
	total int64
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if f.emp.ID != id {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return f.emp, nil
}

func (f *fakeEmployeeRepo) Count(ctx context.Context) (int64, error) { return f.total, nil }

type fakeAnnouncementRepo struct {
	announcement.AnnouncementRepository
	items []announcement.Announcement
}

func (f *fakeAnnouncementRepo) Latest(ctx context.Context, limit int) ([]announcement.Announcement, error) {
	if limit > 0 && limit < len(f.items) {
		return f.items[:limit], nil
	}
	return f.items, nil
}

type fakeLeaveRepo struct {
	leave.LeaveRepository
	pending int64
}

func (f *fakeLeaveRepo) CountPending(ctx context.Context) (int64, error) { return f.pending, nil }

func officeTime(t *testing.T, hour, min, sec int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(testOffice.Timezone)
	require.NoError(t, err)
	return time.Date(2026, time.March, 2, hour, min, sec, 0, loc).UTC()
}

func testEmployee() employee.Employee {
	name := "Asha Nair"
	return employee.Employee{
		ID:         testEmployeeID,
		FullName:   &name,
		Status:     employee.StatusActive,
		HourlyRate: decimal.NewFromInt(20),
	}
}

func newTestService(t *testing.T, shifts *fakeShiftRepo, now time.Time) *DashboardServiceImpl {
	t.Helper()
	svc, err := NewDashboardService(
		shifts,
		&fakeEmployeeRepo{emp: testEmployee(), total: 12},
		&fakeAnnouncementRepo{},
		&fakeLeaveRepo{pending: 3},
		testOffice,
		func() time.Time { return now },
	)
	require.NoError(t, err)
	return svc.(*DashboardServiceImpl)
}

func TestEmployeeDashboard_AutoClockOut(t *testing.T) {
	t.Parallel()

	checkIn := officeTime(t, 9, 0, 0)
	shifts := &fakeShiftRepo{
		open: &attendance.Shift{ID: "shift-1", EmployeeID: testEmployeeID, CheckIn: &checkIn},
	}

	// Dashboard opened well after the threshold: the forgotten shift is
	// closed at exactly 18:00 office time, not at 22:30.
	svc := newTestService(t, shifts, officeTime(t, 22, 30, 0))

	resp, err := svc.EmployeeDashboard(context.Background(), testEmployeeID)
	require.NoError(t, err)

	assert.Equal(t, "you were automatically clocked out at end of day", resp.Notice)
	assert.Nil(t, resp.CurrentShift)

	require.Len(t, shifts.closed, 1)
	assert.Equal(t, officeTime(t, 18, 0, 0), *shifts.closed[0].CheckOut)

	require.NotNil(t, resp.TodayRecord)
	assert.InDelta(t, 9.0, resp.TodayRecord.WorkingHours, 1e-9)
}

func TestEmployeeDashboard_NoAutoClockOutAtThreshold(t *testing.T) {
	t.Parallel()

	checkIn := officeTime(t, 9, 0, 0)
	shifts := &fakeShiftRepo{
		open: &attendance.Shift{ID: "shift-1", EmployeeID: testEmployeeID, CheckIn: &checkIn},
	}

	svc := newTestService(t, shifts, officeTime(t, 18, 0, 0))

	resp, err := svc.EmployeeDashboard(context.Background(), testEmployeeID)
	require.NoError(t, err)

	assert.Empty(t, resp.Notice)
	assert.Empty(t, shifts.closed, "exactly the threshold is not past it")
	require.NotNil(t, resp.CurrentShift)
	assert.Equal(t, "shift-1", resp.CurrentShift.ID)
}

func TestEmployeeDashboard_Profile(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &fakeShiftRepo{}, officeTime(t, 10, 0, 0))

	resp, err := svc.EmployeeDashboard(context.Background(), testEmployeeID)
	require.NoError(t, err)

	assert.Equal(t, "Asha Nair", resp.Profile.FullName)
	assert.Nil(t, resp.CurrentShift)
	assert.Nil(t, resp.TodayRecord)
}

func TestAdminDashboard(t *testing.T) {
	t.Parallel()

	out := officeTime(t, 18, 0, 0)
	in := officeTime(t, 9, 2, 0)
	shifts := &fakeShiftRepo{
		closed: []attendance.Shift{{ID: "shift-1", EmployeeID: testEmployeeID, CheckIn: &in, CheckOut: &out}},
	}

	svc := newTestService(t, shifts, officeTime(t, 19, 0, 0))

	resp, err := svc.AdminDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), resp.TotalEmployees)
	assert.Equal(t, int64(1), resp.PresentToday)
	assert.Equal(t, int64(3), resp.PendingLeaves)
	require.Len(t, resp.RecentCheckIns, 1)
	assert.Equal(t, "shift-1", resp.RecentCheckIns[0].ID)
}
