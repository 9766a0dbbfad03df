package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/peoplehub/hr-portal-go/internal/domain/attendance"
	"github.com/peoplehub/hr-portal-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Clock(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

// Clock implements AttendanceHandler. One endpoint toggles between
// clock-in and clock-out based on the caller's open shift.
func (a *AttendanceHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := requireEmployeeID(w, r)
	if !ok {
		return
	}

	var clockReq attendance.ClockRequest
	if err := json.NewDecoder(r.Body).Decode(&clockReq); err != nil {
		slog.Error("Clock decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.attendanceService.Clock(r.Context(), employeeID, clockReq)
	if err != nil {
		slog.Error("Clock service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Clock action resolved", "employee_id", employeeID, "action", result.Action)
	response.SuccessWithMessage(w, result.Message, result)
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}
