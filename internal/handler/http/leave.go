package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peoplehub/hr-portal-go/internal/domain/leave"
	"github.com/peoplehub/hr-portal-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	MyLeaves(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

// Apply implements LeaveHandler.
func (h *LeaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := requireEmployeeID(w, r)
	if !ok {
		return
	}

	var applyReq leave.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&applyReq); err != nil {
		slog.Error("Apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.Apply(r.Context(), employeeID, applyReq)
	if err != nil {
		slog.Error("Apply service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted", created)
}

// MyLeaves implements LeaveHandler.
func (h *LeaveHandlerImpl) MyLeaves(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := requireEmployeeID(w, r)
	if !ok {
		return
	}

	leaves, err := h.leaveService.MyLeaves(r.Context(), employeeID)
	if err != nil {
		slog.Error("MyLeaves service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}
	response.Success(w, leaves)
}

// ListAll implements LeaveHandler.
func (h *LeaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.leaveService.ListAll(r.Context())
	if err != nil {
		slog.Error("ListAll service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, leaves)
}

// Decide implements LeaveHandler.
func (h *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var decideReq decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		slog.Error("Decide decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	decided, err := h.leaveService.Decide(r.Context(), id, leave.Status(decideReq.Status), userID)
	if err != nil {
		slog.Error("Decide service error", "error", err, "request_id", id)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request "+decided.Status, decided)
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}
