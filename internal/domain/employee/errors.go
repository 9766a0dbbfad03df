package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrInvalidStatus      = errors.New("invalid employee status")
	ErrNegativeHourlyRate = errors.New("hourly rate must not be negative")
)
