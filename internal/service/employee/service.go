package employee

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/peoplehub/hr-portal-go/internal/config"
	"github.com/peoplehub/hr-portal-go/internal/domain/attendance"
	"github.com/peoplehub/hr-portal-go/internal/domain/employee"
	"github.com/peoplehub/hr-portal-go/internal/domain/user"
	"github.com/peoplehub/hr-portal-go/internal/pkg/database"
	"github.com/peoplehub/hr-portal-go/internal/pkg/storage"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const employeeCodePrefix = "EMP"

var ErrUnsupportedImageType = errors.New("avatar must be a jpg, jpeg or png image")

type EmployeeServiceImpl struct {
	tx database.TxManager
	employee.EmployeeRepository
	user.UserRepository
	attendance.ShiftRepository
	fileStorage storage.FileStorage
	location    *time.Location
	now         func() time.Time
}

// ToEmployeeResponse converts an employee entity into its API shape.
func ToEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:             emp.ID,
		EmployeeCode:   emp.EmployeeCode,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		JobTitle:       emp.JobTitle,
		HourlyRate:     emp.HourlyRate.StringFixed(2),
		Status:         string(emp.Status),
		AvatarURL:      emp.AvatarURL,
		CreatedAt:      emp.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if emp.FullName != nil {
		resp.FullName = *emp.FullName
	}
	if emp.Username != nil {
		resp.Username = *emp.Username
	}
	if emp.Email != nil {
		resp.Email = *emp.Email
	}
	return resp
}

// nextEmployeeCode derives the next sequential code from the most recent
// one. An unparsable suffix falls back to count+1 so a manually entered
// code cannot wedge onboarding.
func nextEmployeeCode(lastCode string, count int64) string {
	if lastCode == "" {
		return fmt.Sprintf("%s%03d", employeeCodePrefix, 1)
	}
	n, err := strconv.Atoi(strings.TrimPrefix(lastCode, employeeCodePrefix))
	if err != nil || !strings.HasPrefix(lastCode, employeeCodePrefix) {
		return fmt.Sprintf("%s%03d", employeeCodePrefix, count+1)
	}
	return fmt.Sprintf("%s%03d", employeeCodePrefix, n+1)
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	rate, err := decimal.NewFromString(req.HourlyRate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hourly rate: %w", err)
	}

	status := employee.StatusActive
	if req.Status != "" {
		status = employee.Status(req.Status)
	}

	var created employee.Employee
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		usernameTaken, err := s.UserRepository.ExistsByUsername(ctx, req.Username)
		if err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if usernameTaken {
			return user.ErrUsernameTaken
		}
		emailTaken, err := s.UserRepository.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if emailTaken {
			return user.ErrEmailTaken
		}

		newUser, err := s.UserRepository.Create(ctx, user.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: string(hash),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		lastCode, err := s.EmployeeRepository.LastEmployeeCode(ctx)
		if err != nil {
			return fmt.Errorf("failed to get last employee code: %w", err)
		}
		count, err := s.EmployeeRepository.Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}

		created, err = s.EmployeeRepository.Create(ctx, employee.Employee{
			UserID:       newUser.ID,
			EmployeeCode: nextEmployeeCode(lastCode, count),
			DepartmentID: req.DepartmentID,
			JobTitle:     req.JobTitle,
			HourlyRate:   rate,
			Status:       status,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, created.ID)
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return ToEmployeeResponse(emp), nil
}

// Directory implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Directory(ctx context.Context) (employee.DirectoryResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return employee.DirectoryResponse{}, err
	}

	localNow := s.now().UTC().In(s.location)
	dayStart := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, s.location).UTC()
	dayEnd := dayStart.Add(24 * time.Hour)

	entries := make([]employee.DirectoryEntry, 0, len(employees))
	for _, emp := range employees {
		entry := employee.DirectoryEntry{EmployeeResponse: ToEmployeeResponse(emp)}

		shift, err := s.ShiftRepository.GetByEmployeeAndDay(ctx, emp.ID, dayStart, dayEnd)
		if err != nil && !errors.Is(err, attendance.ErrShiftNotFound) {
			return employee.DirectoryResponse{}, fmt.Errorf("failed to get today's shift: %w", err)
		}
		if err == nil {
			entry.TodayCheckIn = formatTimePtr(shift.CheckIn)
			entry.TodayCheckOut = formatTimePtr(shift.CheckOut)
		}
		entries = append(entries, entry)
	}

	total, err := s.EmployeeRepository.Count(ctx)
	if err != nil {
		return employee.DirectoryResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}
	active, err := s.EmployeeRepository.CountByStatus(ctx, employee.StatusActive)
	if err != nil {
		return employee.DirectoryResponse{}, fmt.Errorf("failed to count active employees: %w", err)
	}

	return employee.DirectoryResponse{
		Employees:      entries,
		TotalEmployees: total,
		TotalActive:    active,
	}, nil
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.DepartmentID != nil {
		emp.DepartmentID = req.DepartmentID
	}
	if req.JobTitle != nil {
		emp.JobTitle = *req.JobTitle
	}
	if req.HourlyRate != nil {
		rate, err := decimal.NewFromString(*req.HourlyRate)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hourly rate: %w", err)
		}
		emp.HourlyRate = rate
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.Get(ctx, emp.ID)
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Deleting the user row cascades through employees, shifts, leave
	// and exception requests.
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.UserRepository.Delete(ctx, emp.UserID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}

// UploadAvatar implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UploadAvatar(ctx context.Context, id string, file io.Reader, filename string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := map[string]string{
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
	}[ext]
	if !ok {
		return employee.EmployeeResponse{}, ErrUnsupportedImageType
	}

	path := fmt.Sprintf("avatars/%s%s", emp.ID, ext)
	stored, err := s.fileStorage.Upload(ctx, file, path, contentType)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to upload avatar: %w", err)
	}

	url, err := s.fileStorage.GetURL(ctx, stored, 0)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to resolve avatar url: %w", err)
	}
	if err := s.EmployeeRepository.UpdateAvatarURL(ctx, emp.ID, url); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, emp.ID)
}

// CheckUserExistence implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CheckUserExistence(ctx context.Context, username, email string) (employee.ExistenceResponse, error) {
	var resp employee.ExistenceResponse

	if username != "" {
		taken, err := s.UserRepository.ExistsByUsername(ctx, username)
		if err != nil {
			return employee.ExistenceResponse{}, fmt.Errorf("failed to check username: %w", err)
		}
		resp.UsernameTaken = taken
	}
	if email != "" {
		taken, err := s.UserRepository.ExistsByEmail(ctx, email)
		if err != nil {
			return employee.ExistenceResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
		resp.EmailTaken = taken
	}
	return resp, nil
}

func NewEmployeeService(
	tx database.TxManager,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	shiftRepo attendance.ShiftRepository,
	fileStorage storage.FileStorage,
	office config.OfficeConfig,
	now func() time.Time,
) (employee.EmployeeService, error) {
	loc, err := time.LoadLocation(office.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid office timezone: %w", err)
	}
	if now == nil {
		now = time.Now
	}
	return &EmployeeServiceImpl{
		tx:                 tx,
		EmployeeRepository: employeeRepo,
		UserRepository:     userRepo,
		ShiftRepository:    shiftRepo,
		fileStorage:        fileStorage,
		location:           loc,
		now:                now,
	}, nil
}
