package payroll

import "context"

// ReportRequest selects the target month. Month and Year arrive as raw
// query strings; unparseable values silently fall back to the current
// month and year.
type ReportRequest struct {
	Month string
	Year  string
}

type ShiftLine struct {
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	WorkingHours float64 `json:"working_hours"`
}

// ReportResponse is the canonical, leave-aware salary estimate.
type ReportResponse struct {
	EmployeeID        string      `json:"employee_id"`
	Year              int         `json:"year"`
	Month             int         `json:"month"`
	MonthName         string      `json:"month_name"`
	Shifts            []ShiftLine `json:"shifts"`
	WorkedHours       float64     `json:"worked_hours"`
	LeaveDays         int         `json:"leave_days"`
	PaidLeaveDays     int         `json:"paid_leave_days"`
	UnpaidLeaveDays   int         `json:"unpaid_leave_days"`
	PaidLeaveHours    int         `json:"paid_leave_hours"`
	TotalPayableHours float64     `json:"total_payable_hours"`
	GrossPay          string      `json:"gross_pay"`
}

// WorkedTotalResponse is the legacy month-only figure: worked hours times
// the hourly rate with no paid-leave credit. It coexists with the report
// above and intentionally disagrees with it whenever approved leave
// exists; the report is the canonical number.
type WorkedTotalResponse struct {
	EmployeeID  string  `json:"employee_id"`
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	WorkedHours float64 `json:"worked_hours"`
	GrossPay    string  `json:"gross_pay"`
}

type PayrollService interface {
	// MonthlyReport computes the leave-aware estimate for the calling
	// employee.
	MonthlyReport(ctx context.Context, employeeID string, req ReportRequest) (ReportResponse, error)

	// MonthlyWorkedTotal computes the legacy worked-hours-only figure for
	// any employee (admin use).
	MonthlyWorkedTotal(ctx context.Context, employeeID string, req ReportRequest) (WorkedTotalResponse, error)
}
