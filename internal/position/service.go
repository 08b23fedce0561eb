package position

import (
	"log/slog"
	"time"

	"github.com/hgiang7193/hr-management/internal"
)

type RepositoryAPI interface {
	GetAll() ([]*Position, error)
	GetByID(id int64) (*Position, error)
	Create(p *Position) error
	Update(p *Position, loadedUpdatedAt time.Time) error
	Delete(id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetAll() ([]*Position, error) {
	return s.repo.GetAll()
}

func (s *Service) GetByID(id int64) (*Position, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, internal.ErrPositionNotFound
	}
	return p, nil
}

func (s *Service) Create(dto CreatePositionDTO) (*Position, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	status := dto.Status
	if status == "" {
		status = "active"
	}

	now := time.Now()
	p := &Position{
		Name:        dto.Name,
		Description: dto.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(id int64, dto UpdatePositionDTO) (*Position, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, internal.ErrPositionNotFound
	}

	loadedUpdatedAt := p.UpdatedAt

	if dto.Name != nil {
		p.Name = *dto.Name
	}
	if dto.Description != nil {
		p.Description = *dto.Description
	}
	if dto.Status != nil {
		p.Status = *dto.Status
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(p, loadedUpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Replace(id int64, dto ReplacePositionDTO) (*Position, error) {
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
		return nil, internal.ErrPositionNotFound
	}

	loadedUpdatedAt := p.UpdatedAt

	p.Name = dto.Name
	p.Description = dto.Description
	p.Status = dto.Status
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
		return internal.ErrPositionNotFound
	}
	return s.repo.Delete(id)
}
