package shift

import (
	"log/slog"
	"time"

	"github.com/hgiang7193/hr-management/internal"
)

type RepositoryAPI interface {
	GetAll() ([]*Shift, error)
	GetByID(id int64) (*Shift, error)
	Create(sh *Shift) error
	Update(sh *Shift, loadedUpdatedAt time.Time) error
	Delete(id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetAll() ([]*Shift, error) {
	return s.repo.GetAll()
}

func (s *Service) GetByID(id int64) (*Shift, error) {
	sh, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, internal.ErrShiftNotFound
	}
	return sh, nil
}

func (s *Service) Create(dto CreateShiftDTO) (*Shift, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	now := time.Now()
	sh := &Shift{
		Name:        dto.Name,
		StartTime:   dto.StartTime,
		EndTime:     dto.EndTime,
		Description: dto.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(sh); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *Service) Update(id int64, dto UpdateShiftDTO) (*Shift, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	sh, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, internal.ErrShiftNotFound
	}

	loadedUpdatedAt := sh.UpdatedAt

	if dto.Name != nil {
		sh.Name = *dto.Name
	}
	if dto.StartTime != nil {
		sh.StartTime = *dto.StartTime
	}
	if dto.EndTime != nil {
		sh.EndTime = *dto.EndTime
	}
	if dto.Description != nil {
		sh.Description = *dto.Description
	}
	sh.UpdatedAt = time.Now()

	if err := s.repo.Update(sh, loadedUpdatedAt); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *Service) Replace(id int64, dto ReplaceShiftDTO) (*Shift, error) {
	if id != dto.ID {
		return nil, internal.NewValidationError("path id and body id do not match", internal.ErrCodeIDMismatch)
	}
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	sh, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, internal.ErrShiftNotFound
	}

	loadedUpdatedAt := sh.UpdatedAt

	sh.Name = dto.Name
	sh.StartTime = dto.StartTime
	sh.EndTime = dto.EndTime
	sh.Description = dto.Description
	sh.UpdatedAt = time.Now()

	if err := s.repo.Update(sh, loadedUpdatedAt); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *Service) Delete(id int64) error {
	sh, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if sh == nil {
		return internal.ErrShiftNotFound
	}
	return s.repo.Delete(id)
}
