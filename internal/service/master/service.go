// Package master implements the admin-maintained reference data:
// departments and company announcements.
package master

import (
	"context"
	"fmt"

	"github.com/peoplehub/hr-portal-go/internal/domain/announcement"
	"github.com/peoplehub/hr-portal-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	exists, err := s.DepartmentRepository.ExistsByName(ctx, req.Name)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to check department name: %w", err)
	}
	if exists {
		return department.DepartmentResponse{}, department.ErrNameExists
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return toDepartmentResponse(created), nil
}

// List implements department.DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, toDepartmentResponse(dept))
	}
	return responses, nil
}

func toDepartmentResponse(dept department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		Description: dept.Description,
	}
}

func NewDepartmentService(repo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{DepartmentRepository: repo}
}

type AnnouncementServiceImpl struct {
	announcement.AnnouncementRepository
}

// Create implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	created, err := s.AnnouncementRepository.Create(ctx, announcement.Announcement{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to create announcement: %w", err)
	}
	return toAnnouncementResponse(created), nil
}

// List implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) List(ctx context.Context) ([]announcement.AnnouncementResponse, error) {
	announcements, err := s.AnnouncementRepository.Latest(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	responses := make([]announcement.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		responses = append(responses, toAnnouncementResponse(a))
	}
	return responses, nil
}

// Delete implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Delete(ctx context.Context, id string) error {
	return s.AnnouncementRepository.Delete(ctx, id)
}

func toAnnouncementResponse(a announcement.Announcement) announcement.AnnouncementResponse {
	return announcement.AnnouncementResponse{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		DatePosted: a.DatePosted.Format("2006-01-02 15:04:05"),
	}
}

func NewAnnouncementService(repo announcement.AnnouncementRepository) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{AnnouncementRepository: repo}
}
