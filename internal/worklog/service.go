package worklog

import (
	"log/slog"
	"time"

	"github.com/hgiang7193/hr-management/internal"
)

type RepositoryAPI interface {
	GetAll() ([]*Worklog, error)
	GetByID(id int64) (*Worklog, error)
	GetByEmployeeID(employeeID int64) ([]*Worklog, error)
	GetForDay(employeeID, projectID int64, day time.Time) (*Worklog, error)
	Create(wl *Worklog) error
	Update(wl *Worklog, loadedUpdatedAt time.Time) error
	Delete(id int64) error
}

type EmployeeDirectory interface {
	Exists(id int64) (bool, error)
}

// AssignmentDirectory reports whether an employee is assigned to a
// project; a worklog may only be filed against an active assignment.
type AssignmentDirectory interface {
	IsAssigned(employeeID, projectID int64) (bool, error)
}

type Service struct {
	repo        RepositoryAPI
	employees   EmployeeDirectory
	assignments AssignmentDirectory
	logger      *slog.Logger
}

func NewService(repo RepositoryAPI, employees EmployeeDirectory, assignments AssignmentDirectory, logger *slog.Logger) *Service {
	return &Service{repo: repo, employees: employees, assignments: assignments, logger: logger}
}

func (s *Service) GetAll() ([]*Worklog, error) {
	return s.repo.GetAll()
}

func (s *Service) GetByID(id int64) (*Worklog, error) {
	wl, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wl == nil {
		return nil, internal.ErrWorklogNotFound
	}
	return wl, nil
}

func (s *Service) GetForEmployee(employeeID int64) ([]*Worklog, error) {
	return s.repo.GetByEmployeeID(employeeID)
}

// Create files a worklog. The date is truncated to the calendar day and
// at most one row per (employee, project, day) is allowed.
func (s *Service) Create(dto CreateWorklogDTO) (*Worklog, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	empExists, err := s.employees.Exists(dto.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !empExists {
		return nil, internal.ErrEmployeeNotFound
	}

	assigned, err := s.assignments.IsAssigned(dto.EmployeeID, dto.ProjectID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, internal.ErrAssignmentNotFound
	}

	day := truncateToDay(dto.WorkDate)

	existing, err := s.repo.GetForDay(dto.EmployeeID, dto.ProjectID, day)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, internal.ErrDuplicateWorklog
	}

	now := time.Now()
	wl := &Worklog{
		EmployeeID:  dto.EmployeeID,
		ProjectID:   dto.ProjectID,
		WorkDate:    day,
		Hours:       dto.Hours,
		Description: dto.Description,
		Status:      StatusSubmitted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(wl); err != nil {
		return nil, err
	}
	return wl, nil
}

// Update changes hours, description and status. The employee, project
// and day identify the row and stay fixed.
func (s *Service) Update(id int64, dto UpdateWorklogDTO) (*Worklog, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	wl, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wl == nil {
		return nil, internal.ErrWorklogNotFound
	}

	loadedUpdatedAt := wl.UpdatedAt

	if dto.Hours != nil {
		wl.Hours = *dto.Hours
	}
	if dto.Description != nil {
		wl.Description = *dto.Description
	}
	if dto.Status != nil {
		wl.Status = *dto.Status
	}
	wl.UpdatedAt = time.Now()

	if err := s.repo.Update(wl, loadedUpdatedAt); err != nil {
		return nil, err
	}
	return wl, nil
}

func (s *Service) Delete(id int64) error {
	wl, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if wl == nil {
		return internal.ErrWorklogNotFound
	}
	return s.repo.Delete(id)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
