package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peoplehub/hr-portal-go/internal/domain/exception"
	"github.com/peoplehub/hr-portal-go/internal/handler/http/response"
)

type ExceptionHandler interface {
	CreateEarlyOut(w http.ResponseWriter, r *http.Request)
	CreateLateArrival(w http.ResponseWriter, r *http.Request)
	ListPendingEarlyOuts(w http.ResponseWriter, r *http.Request)
	ListPendingLateArrivals(w http.ResponseWriter, r *http.Request)
	DecideEarlyOut(w http.ResponseWriter, r *http.Request)
	DecideLateArrival(w http.ResponseWriter, r *http.Request)
}

type ExceptionHandlerImpl struct {
	exceptionService exception.ExceptionService
}

// decisionRequest carries an admin verdict on a pending request.
type decisionRequest struct {
	Status string `json:"status"`
}

// CreateEarlyOut implements ExceptionHandler.
func (h *ExceptionHandlerImpl) CreateEarlyOut(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := requireEmployeeID(w, r)
	if !ok {
		return
	}

	var createReq exception.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateEarlyOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.exceptionService.CreateEarlyOut(r.Context(), employeeID, createReq)
	if err != nil {
		slog.Error("CreateEarlyOut service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Early-out request submitted", created)
}

// CreateLateArrival implements ExceptionHandler.
func (h *ExceptionHandlerImpl) CreateLateArrival(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := requireEmployeeID(w, r)
	if !ok {
		return
	}

	var createReq exception.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateLateArrival decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.exceptionService.CreateLateArrival(r.Context(), employeeID, createReq)
	if err != nil {
		slog.Error("CreateLateArrival service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Late-arrival request submitted", created)
}

// ListPendingEarlyOuts implements ExceptionHandler.
func (h *ExceptionHandlerImpl) ListPendingEarlyOuts(w http.ResponseWriter, r *http.Request) {
	pending, err := h.exceptionService.ListPendingEarlyOuts(r.Context())
	if err != nil {
		slog.Error("ListPendingEarlyOuts service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, pending)
}

// ListPendingLateArrivals implements ExceptionHandler.
func (h *ExceptionHandlerImpl) ListPendingLateArrivals(w http.ResponseWriter, r *http.Request) {
	pending, err := h.exceptionService.ListPendingLateArrivals(r.Context())
	if err != nil {
		slog.Error("ListPendingLateArrivals service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, pending)
}

// DecideEarlyOut implements ExceptionHandler.
func (h *ExceptionHandlerImpl) DecideEarlyOut(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var decideReq decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		slog.Error("DecideEarlyOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	decision, err := h.exceptionService.DecideEarlyOut(r.Context(), id, exception.Status(decideReq.Status))
	if err != nil {
		slog.Error("DecideEarlyOut service error", "error", err, "request_id", id)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, decision.Message, decision)
}

// DecideLateArrival implements ExceptionHandler.
func (h *ExceptionHandlerImpl) DecideLateArrival(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var decideReq decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		slog.Error("DecideLateArrival decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	decision, err := h.exceptionService.DecideLateArrival(r.Context(), id, exception.Status(decideReq.Status))
	if err != nil {
		slog.Error("DecideLateArrival service error", "error", err, "request_id", id)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, decision.Message, decision)
}

func NewExceptionHandler(exceptionService exception.ExceptionService) ExceptionHandler {
	return &ExceptionHandlerImpl{exceptionService: exceptionService}
}
