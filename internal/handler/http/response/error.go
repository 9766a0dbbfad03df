package response

import (
	"errors"
	"net/http"

	"github.com/peoplehub/hr-portal-go/internal/domain/announcement"
	"github.com/peoplehub/hr-portal-go/internal/domain/attendance"
	"github.com/peoplehub/hr-portal-go/internal/domain/auth"
	"github.com/peoplehub/hr-portal-go/internal/domain/department"
	"github.com/peoplehub/hr-portal-go/internal/domain/employee"
	"github.com/peoplehub/hr-portal-go/internal/domain/exception"
	"github.com/peoplehub/hr-portal-go/internal/domain/leave"
	"github.com/peoplehub/hr-portal-go/internal/domain/user"
	"github.com/peoplehub/hr-portal-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth / user domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameTaken):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrEmailTaken):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, err.Error())

	// Attendance domain errors. The *_REQUIRED codes steer the client
	// into the matching exception-request flow.
	case errors.Is(err, attendance.ErrEmployeeNotActive):
		Forbidden(w, err.Error())
	case errors.Is(err, attendance.ErrLocationMissing):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrInvalidLocation):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrOutsideOfficeRadius):
		Forbidden(w, err.Error())
	case errors.Is(err, attendance.ErrBeforeClockInWindow):
		UnprocessableEntity(w, "BEFORE_CLOCK_IN_WINDOW", err.Error())
	case errors.Is(err, attendance.ErrLateArrivalRequired):
		UnprocessableEntity(w, "LATE_ARRIVAL_REQUIRED", err.Error())
	case errors.Is(err, attendance.ErrEarlyOutRequired):
		UnprocessableEntity(w, "EARLY_OUT_REQUIRED", err.Error())
	case errors.Is(err, attendance.ErrShiftNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoOpenShift):
		NotFound(w, "No open shift found")

	// Exception domain errors
	case errors.Is(err, exception.ErrRequestNotFound):
		NotFound(w, "Exception request not found")
	case errors.Is(err, exception.ErrAlreadyProcessed):
		Conflict(w, "Request already processed")
	case errors.Is(err, exception.ErrNoOpenShift):
		NotFound(w, "No open shift found for an early-out request")
	case errors.Is(err, exception.ErrInvalidTargetStatus):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidTargetStatus):
		BadRequest(w, err.Error(), nil)

	// Employee and master data errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
