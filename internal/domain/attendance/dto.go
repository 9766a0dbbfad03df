package attendance

import "context"

// ClockRequest carries the caller-supplied geolocation. Coordinates
// arrive as decimal strings straight from the browser geolocation form
// fields; the service parses and refuses non-numeric values.
type ClockRequest struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type ClockAction string

const (
	ActionClockIn  ClockAction = "clock_in"
	ActionClockOut ClockAction = "clock_out"
)

type ClockResponse struct {
	Action  ClockAction    `json:"action"`
	Message string         `json:"message"`
	Shift   *ShiftResponse `json:"shift,omitempty"`
}

type ShiftResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	WorkingHours float64 `json:"working_hours"`
}

type AttendanceService interface {
	// Clock resolves a single toggle action: clock-out when an open shift
	// exists, clock-in otherwise.
	Clock(ctx context.Context, employeeID string, req ClockRequest) (ClockResponse, error)
}
