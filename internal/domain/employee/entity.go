package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	UserID       string
	EmployeeCode string
	DepartmentID *string
	JobTitle     string
	HourlyRate   decimal.Decimal
	Status       Status
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined read fields
	FullName       *string
	Username       *string
	Email          *string
	DepartmentName *string
}

type Status string

const (
	StatusActive      Status = "Active"
	StatusInactive    Status = "Inactive"
	StatusOnLeave     Status = "On Leave"
	StatusDeactivated Status = "Deactivated"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusOnLeave, StatusDeactivated:
		return true
	}
	return false
}
