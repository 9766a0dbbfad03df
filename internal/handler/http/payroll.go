package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peoplehub/hr-portal-go/internal/domain/payroll"
	"github.com/peoplehub/hr-portal-go/internal/handler/http/response"
)

type PayrollHandler interface {
	MyReport(w http.ResponseWriter, r *http.Request)
	WorkedTotal(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

// MyReport implements PayrollHandler.
func (h *PayrollHandlerImpl) MyReport(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := requireEmployeeID(w, r)
	if !ok {
		return
	}

	req := payroll.ReportRequest{
		Month: r.URL.Query().Get("month"),
		Year:  r.URL.Query().Get("year"),
	}

	report, err := h.payrollService.MonthlyReport(r.Context(), employeeID, req)
	if err != nil {
		slog.Error("MyReport service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// WorkedTotal implements PayrollHandler. Admin view of the legacy
// worked-hours-only figure for any employee.
func (h *PayrollHandlerImpl) WorkedTotal(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	req := payroll.ReportRequest{
		Month: r.URL.Query().Get("month"),
		Year:  r.URL.Query().Get("year"),
	}

	total, err := h.payrollService.MonthlyWorkedTotal(r.Context(), employeeID, req)
	if err != nil {
		slog.Error("WorkedTotal service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}
	response.Success(w, total)
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}
