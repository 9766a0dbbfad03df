package http

import (
	"log/slog"
	"net/http"

	"github.com/peoplehub/hr-portal-go/internal/domain/dashboard"
	"github.com/peoplehub/hr-portal-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Employee(w http.ResponseWriter, r *http.Request)
	Admin(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

// Employee implements DashboardHandler.
func (d *DashboardHandlerImpl) Employee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := requireEmployeeID(w, r)
	if !ok {
		return
	}

	view, err := d.dashboardService.EmployeeDashboard(r.Context(), employeeID)
	if err != nil {
		slog.Error("EmployeeDashboard service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

// Admin implements DashboardHandler.
func (d *DashboardHandlerImpl) Admin(w http.ResponseWriter, r *http.Request) {
	view, err := d.dashboardService.AdminDashboard(r.Context())
	if err != nil {
		slog.Error("AdminDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}
