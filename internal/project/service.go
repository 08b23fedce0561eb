package project

import (
	"log/slog"
	"time"

	"github.com/hgiang7193/hr-management/internal"
)

type RepositoryAPI interface {
	GetAll() ([]*Project, error)
	GetByID(id int64) (*Project, error)
	GetByEmployeeID(employeeID int64) ([]*Project, error)
	Create(p *Project) error
	Update(p *Project, loadedUpdatedAt time.Time) error
	Delete(id int64) error
}

type AssignmentRepositoryAPI interface {
	GetAll() ([]*Assignment, error)
	GetByID(id int64) (*Assignment, error)
	GetByPair(employeeID, projectID int64) (*Assignment, error)
	GetByEmployeeID(employeeID int64) ([]*Assignment, error)
	GetByProjectID(projectID int64) ([]*Assignment, error)
	Create(a *Assignment) error
	Update(a *Assignment, loadedUpdatedAt time.Time) error
	Delete(id int64) error
}

type EmployeeDirectory interface {
	Exists(id int64) (bool, error)
}

// WorklogDirectory answers whether any worklog rows reference an
// employee/project pair; removing an assignment is blocked while they do.
type WorklogDirectory interface {
	ExistsForEmployeeAndProject(employeeID, projectID int64) (bool, error)
}

type Service struct {
	repo        RepositoryAPI
	assignments AssignmentRepositoryAPI
	employees   EmployeeDirectory
	worklogs    WorklogDirectory
	logger      *slog.Logger
}

func NewService(
	repo RepositoryAPI,
	assignments AssignmentRepositoryAPI,
	employees EmployeeDirectory,
	worklogs WorklogDirectory,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:        repo,
		assignments: assignments,
		employees:   employees,
		worklogs:    worklogs,
		logger:      logger,
	}
}

func (s *Service) GetAll() ([]*Project, error) {
	return s.repo.GetAll()
}

func (s *Service) GetByID(id int64) (*Project, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, internal.ErrProjectNotFound
	}
	return p, nil
}

// GetForEmployee returns the projects an employee is assigned to.
func (s *Service) GetForEmployee(employeeID int64) ([]*Project, error) {
	return s.repo.GetByEmployeeID(employeeID)
}

func (s *Service) Create(dto CreateProjectDTO) (*Project, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	status := dto.Status
	if status == "" {
		status = StatusActive
	}
	projectType := dto.ProjectType
	if projectType == "" {
		projectType = TypeSoftware
	}

	now := time.Now()
	p := &Project{
		Name:             dto.Name,
		Code:             dto.Code,
		Description:      dto.Description,
		StartDate:        dto.StartDate,
		EndDate:          dto.EndDate,
		Status:           status,
		ProjectType:      projectType,
		ProjectManagerID: dto.ProjectManagerID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(id int64, dto UpdateProjectDTO) (*Project, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, internal.ErrProjectNotFound
	}

	loadedUpdatedAt := p.UpdatedAt

	if dto.Name != nil {
		p.Name = *dto.Name
	}
	if dto.Code != nil {
		p.Code = *dto.Code
	}
	if dto.Description != nil {
		p.Description = *dto.Description
	}
	if dto.StartDate != nil {
		p.StartDate = dto.StartDate
	}
	if dto.EndDate != nil {
		p.EndDate = dto.EndDate
	}
	if dto.Status != nil {
		p.Status = *dto.Status
	}
	if dto.ProjectType != nil {
		p.ProjectType = *dto.ProjectType
	}
	if dto.ProjectManagerID != nil {
		p.ProjectManagerID = dto.ProjectManagerID
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(p, loadedUpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Replace(id int64, dto ReplaceProjectDTO) (*Project, error) {
	if id != dto.ID {
		return nil, internal.NewValidationError("path id and body id do not match", internal.ErrCodeIDMismatch)
	}
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, internal.ErrProjectNotFound
	}

	loadedUpdatedAt := p.UpdatedAt

	p.Name = dto.Name
	p.Code = dto.Code
	p.Description = dto.Description
	p.StartDate = dto.StartDate
	p.EndDate = dto.EndDate
	p.Status = dto.Status
	p.ProjectType = dto.ProjectType
	p.ProjectManagerID = dto.ProjectManagerID
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(p, loadedUpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(id int64) error {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return internal.ErrProjectNotFound
	}
	return s.repo.Delete(id)
}

// --- assignments ---

func (s *Service) GetAssignments() ([]*Assignment, error) {
	return s.assignments.GetAll()
}

func (s *Service) GetAssignmentByID(id int64) (*Assignment, error) {
	a, err := s.assignments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, internal.ErrAssignmentNotFound
	}
	return a, nil
}

func (s *Service) GetAssignmentsForEmployee(employeeID int64) ([]*Assignment, error) {
	return s.assignments.GetByEmployeeID(employeeID)
}

func (s *Service) GetAssignmentsForProject(projectID int64) ([]*Assignment, error) {
	return s.assignments.GetByProjectID(projectID)
}

// Assign puts an employee on a project. The pair must not already be
// assigned, and both sides must exist.
func (s *Service) Assign(dto CreateAssignmentDTO) (*Assignment, error) {
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

	p, err := s.repo.GetByID(dto.ProjectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, internal.ErrProjectNotFound
	}

	existing, err := s.assignments.GetByPair(dto.EmployeeID, dto.ProjectID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, internal.ErrDuplicateAssignment
	}

	assignedDate := time.Now()
	if dto.AssignedDate != nil {
		assignedDate = *dto.AssignedDate
	}
	status := dto.Status
	if status == "" {
		status = AssignmentStatusActive
	}

	now := time.Now()
	a := &Assignment{
		EmployeeID:    dto.EmployeeID,
		ProjectID:     dto.ProjectID,
		RoleInProject: dto.RoleInProject,
		AssignedDate:  assignedDate,
		EndDate:       dto.EndDate,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.assignments.Create(a); err != nil {
		return nil, err
	}

	s.logger.Info("employee assigned to project",
		"employee_id", dto.EmployeeID, "project_id", dto.ProjectID)
	return a, nil
}

// UpdateAssignment changes the role label, dates and status of an
// assignment. The employee/project pair stays fixed.
func (s *Service) UpdateAssignment(id int64, dto UpdateAssignmentDTO) (*Assignment, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	a, err := s.assignments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, internal.ErrAssignmentNotFound
	}

	loadedUpdatedAt := a.UpdatedAt

	if dto.RoleInProject != nil {
		a.RoleInProject = *dto.RoleInProject
	}
	if dto.AssignedDate != nil {
		a.AssignedDate = *dto.AssignedDate
	}
	if dto.EndDate != nil {
		a.EndDate = dto.EndDate
	}
	if dto.Status != nil {
		a.Status = *dto.Status
	}
	a.UpdatedAt = time.Now()

	if err := s.assignments.Update(a, loadedUpdatedAt); err != nil {
		return nil, err
	}
	return a, nil
}

// RemoveAssignment deletes an assignment unless worklogs already
// reference the employee/project pair.
func (s *Service) RemoveAssignment(id int64) error {
	a, err := s.assignments.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return internal.ErrAssignmentNotFound
	}

	hasWorklogs, err := s.worklogs.ExistsForEmployeeAndProject(a.EmployeeID, a.ProjectID)
	if err != nil {
		return err
	}
	if hasWorklogs {
		return internal.ErrAssignmentHasWorklogs
	}

	return s.assignments.Delete(id)
}
