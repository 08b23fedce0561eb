package department

import (
	"log/slog"
	"time"

	"github.com/hgiang7193/hr-management/internal"
)

type RepositoryAPI interface {
	GetAll() ([]*Department, error)
	GetByID(id int64) (*Department, error)
	GetChildren(parentID int64) ([]*Department, error)
	Create(d *Department) error
	Update(d *Department, loadedUpdatedAt time.Time) error
	Delete(id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetAll() ([]*Department, error) {
	return s.repo.GetAll()
}

func (s *Service) GetByID(id int64) (*Department, error) {
	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, internal.ErrDepartmentNotFound
	}
	return d, nil
}

func (s *Service) GetChildren(parentID int64) ([]*Department, error) {
	return s.repo.GetChildren(parentID)
}

func (s *Service) Create(dto CreateDepartmentDTO) (*Department, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	status := dto.Status
	if status == "" {
		status = "active"
	}

	now := time.Now()
	d := &Department{
		Name:        dto.Name,
		Code:        dto.Code,
		Description: dto.Description,
		ParentID:    dto.ParentID,
		ManagerID:   dto.ManagerID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Update(id int64, dto UpdateDepartmentDTO) (*Department, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	if dto.ParentID != nil && *dto.ParentID == id {
		return nil, internal.NewValidationError("a department cannot be its own parent", internal.ErrCodeValidationFailed)
	}

	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, internal.ErrDepartmentNotFound
	}

	loadedUpdatedAt := d.UpdatedAt

	if dto.Name != nil {
		d.Name = *dto.Name
	}
	if dto.Code != nil {
		d.Code = *dto.Code
	}
	if dto.Description != nil {
		d.Description = *dto.Description
	}
	if dto.ParentID != nil {
		d.ParentID = dto.ParentID
	}
	if dto.ManagerID != nil {
		d.ManagerID = dto.ManagerID
	}
	if dto.Status != nil {
		d.Status = *dto.Status
	}
	d.UpdatedAt = time.Now()

	if err := s.repo.Update(d, loadedUpdatedAt); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Replace(id int64, dto ReplaceDepartmentDTO) (*Department, error) {
	if id != dto.ID {
		return nil, internal.NewValidationError("path id and body id do not match", internal.ErrCodeIDMismatch)
	}
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}
	if dto.ParentID != nil && *dto.ParentID == id {
		return nil, internal.NewValidationError("a department cannot be its own parent", internal.ErrCodeValidationFailed)
	}

	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, internal.ErrDepartmentNotFound
	}

	loadedUpdatedAt := d.UpdatedAt

	d.Name = dto.Name
	d.Code = dto.Code
	d.Description = dto.Description
	d.ParentID = dto.ParentID
	d.ManagerID = dto.ManagerID
	d.Status = dto.Status
	d.UpdatedAt = time.Now()

	if err := s.repo.Update(d, loadedUpdatedAt); err != nil {
		return nil, err
	}
	return d, nil
}

// Delete removes a department. Child departments referencing it as parent
// make the store raise a foreign key error, which propagates as a fatal
// error: there is no cascading delete anywhere in the system.
func (s *Service) Delete(id int64) error {
	d, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return internal.ErrDepartmentNotFound
	}
	return s.repo.Delete(id)
}
