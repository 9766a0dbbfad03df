package attendance

import "errors"

// Attendance domain errors. The *Required errors are policy refusals that
// steer the caller into a remediation flow rather than hard failures.
var (
	// Clock-in refusals
	ErrEmployeeNotActive    = errors.New("you cannot clock in unless your status is Active")
	ErrLocationMissing      = errors.New("could not detect your location, please allow GPS access")
	ErrInvalidLocation      = errors.New("invalid location data received")
	ErrOutsideOfficeRadius  = errors.New("you are away from the office")
	ErrBeforeClockInWindow  = errors.New("you cannot clock in before the clock-in window opens")
	ErrLateArrivalRequired  = errors.New("you are late, please submit a late-arrival request")

	// Clock-out refusals
	ErrEarlyOutRequired = errors.New("it is before end of day, you must submit an early-out request")

	// General errors
	ErrShiftNotFound = errors.New("attendance record not found")
	ErrNoOpenShift   = errors.New("no open shift found")
)
