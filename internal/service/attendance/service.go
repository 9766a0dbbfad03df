package attendance

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/peoplehub/hr-portal-go/internal/config"
	"github.com/peoplehub/hr-portal-go/internal/domain/attendance"
	"github.com/peoplehub/hr-portal-go/internal/domain/employee"
	"github.com/peoplehub/hr-portal-go/internal/pkg/utils"
)

type AttendanceServiceImpl struct {
	attendance.ShiftRepository
	employee.EmployeeRepository
	rules clockRules
	now   func() time.Time
}

// clockRules is the office clock policy with the window strings parsed
// once at construction.
type clockRules struct {
	officeLat    float64
	officeLon    float64
	radiusMeters float64
	clockInStart int // seconds since midnight, office time zone
	clockInEnd   int
	endOfDay     int
	location     *time.Location
}

func newClockRules(office config.OfficeConfig) (clockRules, error) {
	start, err := utils.ParseWallClock(office.ClockInStart)
	if err != nil {
		return clockRules{}, err
	}
	end, err := utils.ParseWallClock(office.ClockInEnd)
	if err != nil {
		return clockRules{}, err
	}
	endOfDay, err := utils.ParseWallClock(office.ClockOutThreshold)
	if err != nil {
		return clockRules{}, err
	}
	loc, err := time.LoadLocation(office.Timezone)
	if err != nil {
		return clockRules{}, fmt.Errorf("invalid office timezone: %w", err)
	}
	return clockRules{
		officeLat:    office.Latitude,
		officeLon:    office.Longitude,
		radiusMeters: office.RadiusMeters,
		clockInStart: start,
		clockInEnd:   end,
		endOfDay:     endOfDay,
		location:     loc,
	}, nil
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// ToShiftResponse converts a shift entity into its API shape.
func ToShiftResponse(s attendance.Shift) attendance.ShiftResponse {
	return attendance.ShiftResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		CheckIn:      timePtrToString(s.CheckIn),
		CheckOut:     timePtrToString(s.CheckOut),
		WorkingHours: s.Duration().Hours(),
	}
}

// Clock implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Clock(ctx context.Context, employeeID string, req attendance.ClockRequest) (attendance.ClockResponse, error) {
	nowUTC := a.now().UTC()

	open, err := a.ShiftRepository.GetOpenShift(ctx, employeeID)
	if err != nil && !errors.Is(err, attendance.ErrNoOpenShift) {
		return attendance.ClockResponse{}, fmt.Errorf("failed to get open shift: %w", err)
	}

	if err == nil {
		return a.clockOut(ctx, open, nowUTC)
	}
	return a.clockIn(ctx, employeeID, req, nowUTC)
}

func (a *AttendanceServiceImpl) clockOut(ctx context.Context, open attendance.Shift, nowUTC time.Time) (attendance.ClockResponse, error) {
	localNow := nowUTC.In(a.rules.location)
	if utils.SecondsOfDay(localNow) < a.rules.endOfDay {
		return attendance.ClockResponse{}, attendance.ErrEarlyOutRequired
	}

	closed, err := a.ShiftRepository.SetCheckOut(ctx, open.ID, nowUTC)
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to clock out: %w", err)
	}
	if !closed {
		// A concurrent close (auto clock-out or an approved early-out)
		// already ended this shift.
		return attendance.ClockResponse{}, attendance.ErrNoOpenShift
	}

	shift, err := a.ShiftRepository.GetByID(ctx, open.ID)
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to reload shift: %w", err)
	}

	resp := ToShiftResponse(shift)
	return attendance.ClockResponse{
		Action:  attendance.ActionClockOut,
		Message: "clocked out successfully",
		Shift:   &resp,
	}, nil
}

func (a *AttendanceServiceImpl) clockIn(ctx context.Context, employeeID string, req attendance.ClockRequest, nowUTC time.Time) (attendance.ClockResponse, error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.Status != employee.StatusActive {
		return attendance.ClockResponse{}, attendance.ErrEmployeeNotActive
	}

	lat, lon, err := parseCoordinates(req.Latitude, req.Longitude)
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	distance := utils.CalculateHaversineDistance(a.rules.officeLat, a.rules.officeLon, lat, lon)
	if distance > a.rules.radiusMeters {
		return attendance.ClockResponse{}, attendance.ErrOutsideOfficeRadius
	}

	localNow := nowUTC.In(a.rules.location)
	secs := utils.SecondsOfDay(localNow)
	switch {
	case secs < a.rules.clockInStart:
		return attendance.ClockResponse{}, attendance.ErrBeforeClockInWindow
	case secs > a.rules.clockInEnd:
		return attendance.ClockResponse{}, attendance.ErrLateArrivalRequired
	}

	shift, err := a.ShiftRepository.Create(ctx, attendance.Shift{
		EmployeeID: employeeID,
		CheckIn:    &nowUTC,
	})
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to clock in: %w", err)
	}

	resp := ToShiftResponse(shift)
	return attendance.ClockResponse{
		Action:  attendance.ActionClockIn,
		Message: "clocked in successfully",
		Shift:   &resp,
	}, nil
}

func parseCoordinates(latStr, lonStr string) (float64, float64, error) {
	if strings.TrimSpace(latStr) == "" || strings.TrimSpace(lonStr) == "" {
		return 0, 0, attendance.ErrLocationMissing
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return 0, 0, attendance.ErrInvalidLocation
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return 0, 0, attendance.ErrInvalidLocation
	}
	return lat, lon, nil
}

func NewAttendanceService(
	shiftRepo attendance.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	office config.OfficeConfig,
	now func() time.Time,
) (attendance.AttendanceService, error) {
	rules, err := newClockRules(office)
	if err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	return &AttendanceServiceImpl{
		ShiftRepository:    shiftRepo,
		EmployeeRepository: employeeRepo,
		rules:              rules,
		now:                now,
	}, nil
}
