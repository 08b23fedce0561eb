package permission

import (
	"log/slog"
	"time"

	"github.com/hgiang7193/hr-management/internal"
)

type RepositoryAPI interface {
	GetAll() ([]*Permission, error)
	GetByID(id int64) (*Permission, error)
	Exists(id int64) (bool, error)
	Create(p *Permission) error
	Update(p *Permission, loadedUpdatedAt time.Time) error
	Delete(id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetAll() ([]*Permission, error) {
	return s.repo.GetAll()
}

func (s *Service) GetByID(id int64) (*Permission, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, internal.ErrPermissionNotFound
	}
	return p, nil
}

func (s *Service) Create(dto CreatePermissionDTO) (*Permission, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	now := time.Now()
	p := &Permission{
		Name:        dto.Name,
		Description: dto.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(id int64, dto UpdatePermissionDTO) (*Permission, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, internal.ErrPermissionNotFound
	}

	loadedUpdatedAt := p.UpdatedAt

	if dto.Name != nil {
		p.Name = *dto.Name
	}
	if dto.Description != nil {
		p.Description = *dto.Description
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(p, loadedUpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Replace(id int64, dto ReplacePermissionDTO) (*Permission, error) {
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
		return nil, internal.ErrPermissionNotFound
	}

	loadedUpdatedAt := p.UpdatedAt

	p.Name = dto.Name
	p.Description = dto.Description
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
		return internal.ErrPermissionNotFound
	}
	return s.repo.Delete(id)
}
