package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peoplehub/hr-portal-go/internal/domain/announcement"
	"github.com/peoplehub/hr-portal-go/internal/domain/department"
	"github.com/peoplehub/hr-portal-go/internal/handler/http/response"
)

type MasterHandler interface {
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	CreateAnnouncement(w http.ResponseWriter, r *http.Request)
	ListAnnouncements(w http.ResponseWriter, r *http.Request)
	DeleteAnnouncement(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	departmentService   department.DepartmentService
	announcementService announcement.AnnouncementService
}

// CreateDepartment implements MasterHandler.
func (h *MasterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var createReq department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateDepartment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.departmentService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateDepartment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Department created", created)
}

// ListDepartments implements MasterHandler.
func (h *MasterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentService.List(r.Context())
	if err != nil {
		slog.Error("ListDepartments service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, departments)
}

// CreateAnnouncement implements MasterHandler.
func (h *MasterHandlerImpl) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var createReq announcement.CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateAnnouncement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.announcementService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateAnnouncement service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Announcement posted", created)
}

// ListAnnouncements implements MasterHandler.
func (h *MasterHandlerImpl) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcementService.List(r.Context())
	if err != nil {
		slog.Error("ListAnnouncements service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, announcements)
}

// DeleteAnnouncement implements MasterHandler.
func (h *MasterHandlerImpl) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.announcementService.Delete(r.Context(), id); err != nil {
		slog.Error("DeleteAnnouncement service error", "error", err, "announcement_id", id)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Announcement deleted", nil)
}

func NewMasterHandler(
	departmentService department.DepartmentService,
	announcementService announcement.AnnouncementService,
) MasterHandler {
	return &MasterHandlerImpl{
		departmentService:   departmentService,
		announcementService: announcementService,
	}
}
