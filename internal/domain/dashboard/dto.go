package dashboard

import (
	"context"

	"github.com/peoplehub/hr-portal-go/internal/domain/announcement"
	"github.com/peoplehub/hr-portal-go/internal/domain/attendance"
	"github.com/peoplehub/hr-portal-go/internal/domain/employee"
)

// EmployeeDashboardResponse is the employee home view. Notice carries the
// auto-clock-out message when the lazy correction fired during this
// evaluation.
type EmployeeDashboardResponse struct {
	Profile       employee.EmployeeResponse           `json:"profile"`
	CurrentShift  *attendance.ShiftResponse           `json:"current_shift"`
	TodayRecord   *attendance.ShiftResponse           `json:"today_record"`
	Announcements []announcement.AnnouncementResponse `json:"announcements"`
	Notice        string                              `json:"notice,omitempty"`
}

type AdminDashboardResponse struct {
	TotalEmployees int64                      `json:"total_employees"`
	PresentToday   int64                      `json:"present_today"`
	PendingLeaves  int64                      `json:"pending_leaves"`
	RecentCheckIns []attendance.ShiftResponse `json:"recent_check_ins"`
}

type DashboardService interface {
	// EmployeeDashboard applies the end-of-day auto-clock-out correction
	// before assembling the view.
	EmployeeDashboard(ctx context.Context, employeeID string) (EmployeeDashboardResponse, error)
	AdminDashboard(ctx context.Context) (AdminDashboardResponse, error)
}
