package attendance

import "time"

// Shift is one attendance record. Timestamps are stored in UTC; a shift
// is open while CheckIn is set and CheckOut is not.
type Shift struct {
	ID         string
	EmployeeID string
	CheckIn    *time.Time
	CheckOut   *time.Time
	CreatedAt  time.Time

	// Joined read fields
	EmployeeName *string
	EmployeeCode *string
}

func (s Shift) Open() bool {
	return s.CheckIn != nil && s.CheckOut == nil
}

// Duration is check-out minus check-in, zero unless both are set.
func (s Shift) Duration() time.Duration {
	if s.CheckIn == nil || s.CheckOut == nil {
		return 0
	}
	return s.CheckOut.Sub(*s.CheckIn)
}
