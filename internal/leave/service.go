package leave

import (
	"log/slog"
	"time"

	"github.com/hgiang7193/hr-management/internal"
)

type RepositoryAPI interface {
	GetAll() ([]*Request, error)
	GetByID(id int64) (*Request, error)
	GetByEmployeeID(employeeID int64) ([]*Request, error)
	Create(req *Request) error
	Update(req *Request, loadedUpdatedAt time.Time) error
	Delete(id int64) error
}

type EmployeeDirectory interface {
	Exists(id int64) (bool, error)
}

type Service struct {
	repo      RepositoryAPI
	employees EmployeeDirectory
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, employees EmployeeDirectory, logger *slog.Logger) *Service {
	return &Service{repo: repo, employees: employees, logger: logger}
}

func (s *Service) GetAll() ([]*Request, error) {
	return s.repo.GetAll()
}

func (s *Service) GetByID(id int64) (*Request, error) {
	req, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, internal.ErrLeaveNotFound
	}
	return req, nil
}

func (s *Service) GetForEmployee(employeeID int64) ([]*Request, error) {
	return s.repo.GetByEmployeeID(employeeID)
}

func (s *Service) Create(dto CreateLeaveRequestDTO) (*Request, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}
	if dto.EndDate.Before(dto.StartDate) {
		return nil, internal.NewValidationError("end date must not be before start date", internal.ErrCodeValidationFailed)
	}

	exists, err := s.employees.Exists(dto.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, internal.ErrEmployeeNotFound
	}

	now := time.Now()
	req := &Request{
		EmployeeID: dto.EmployeeID,
		StartDate:  dto.StartDate,
		EndDate:    dto.EndDate,
		LeaveType:  dto.LeaveType,
		Reason:     dto.Reason,
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Update edits the request fields. Only pending requests can change;
// reviewed ones are immutable apart from their status transitions.
func (s *Service) Update(id int64, dto UpdateLeaveRequestDTO) (*Request, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	req, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, internal.ErrLeaveNotFound
	}
	if req.Status != StatusPending {
		return nil, internal.NewConflictError("only pending leave requests can be edited", internal.ErrCodeValidationFailed)
	}

	loadedUpdatedAt := req.UpdatedAt

	if dto.StartDate != nil {
		req.StartDate = *dto.StartDate
	}
	if dto.EndDate != nil {
		req.EndDate = *dto.EndDate
	}
	if dto.LeaveType != nil {
		req.LeaveType = *dto.LeaveType
	}
	if dto.Reason != nil {
		req.Reason = *dto.Reason
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, internal.NewValidationError("end date must not be before start date", internal.ErrCodeValidationFailed)
	}
	req.UpdatedAt = time.Now()

	if err := s.repo.Update(req, loadedUpdatedAt); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *Service) Approve(id, reviewerID int64) (*Request, error) {
	return s.review(id, reviewerID, StatusApproved)
}

func (s *Service) Reject(id, reviewerID int64) (*Request, error) {
	return s.review(id, reviewerID, StatusRejected)
}

func (s *Service) review(id, reviewerID int64, status string) (*Request, error) {
	req, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, internal.ErrLeaveNotFound
	}
	if req.Status != StatusPending {
		return nil, internal.NewConflictError("leave request has already been reviewed", internal.ErrCodeValidationFailed)
	}

	loadedUpdatedAt := req.UpdatedAt
	now := time.Now()

	req.Status = status
	req.ReviewedBy = &reviewerID
	req.ReviewedAt = &now
	req.UpdatedAt = now

	if err := s.repo.Update(req, loadedUpdatedAt); err != nil {
		return nil, err
	}

	s.logger.Info("leave request reviewed",
		"leave_request_id", id, "status", status, "reviewer_id", reviewerID)
	return req, nil
}

func (s *Service) Delete(id int64) error {
	req, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if req == nil {
		return internal.ErrLeaveNotFound
	}
	return s.repo.Delete(id)
}
