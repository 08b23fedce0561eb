package employee

import (
	"log/slog"
	"time"

	"github.com/hgiang7193/hr-management/internal"
)

// RepositoryAPI is the store surface for employees. GetByID returns nil, nil
// when the row does not exist. Update is optimistic: it only writes when the
// row still carries loadedUpdatedAt, returning internal.ErrEmployeeNotFound
// if the row vanished and internal.ErrConcurrentUpdate otherwise.
type RepositoryAPI interface {
	GetAll() ([]*User, error)
	GetByID(id int64) (*User, error)
	Exists(id int64) (bool, error)
	Create(u *User) error
	Update(u *User, loadedUpdatedAt time.Time) error
	Delete(id int64) error
}

// PasswordHasher is the narrow piece of the auth service employees need.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type Service struct {
	repo   RepositoryAPI
	hasher PasswordHasher
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, hasher PasswordHasher, logger *slog.Logger) *Service {
	return &Service{repo: repo, hasher: hasher, logger: logger}
}

func (s *Service) GetAll() ([]*User, error) {
	return s.repo.GetAll()
}

func (s *Service) GetByID(id int64) (*User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, internal.ErrEmployeeNotFound
	}
	return u, nil
}

func (s *Service) Create(dto CreateEmployeeDTO) (*User, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	hash, err := s.hasher.HashPassword(dto.Password)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	status := dto.Status
	if status == "" {
		status = StatusActive
	}

	now := time.Now()
	u := &User{
		Username:           dto.Username,
		Email:              dto.Email,
		PasswordHash:       hash,
		FirstName:          dto.FirstName,
		LastName:           dto.LastName,
		EmployeeCode:       dto.EmployeeCode,
		DepartmentID:       dto.DepartmentID,
		PositionID:         dto.PositionID,
		ManagerID:          dto.ManagerID,
		HireDate:           dto.HireDate,
		Phone:              dto.Phone,
		Notes:              dto.Notes,
		Status:             status,
		MustChangePassword: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(u); err != nil {
		return nil, err
	}

	s.logger.Info("employee created", "employee_id", u.ID, "username", u.Username)
	return u, nil
}

// Update applies only the fields present in the payload, then writes back
// guarded by the previously read updated_at.
func (s *Service) Update(id int64, dto UpdateEmployeeDTO) (*User, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, internal.ErrEmployeeNotFound
	}

	loadedUpdatedAt := u.UpdatedAt

	if dto.Username != nil {
		u.Username = *dto.Username
	}
	if dto.Email != nil {
		u.Email = *dto.Email
	}
	if dto.FirstName != nil {
		u.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		u.LastName = *dto.LastName
	}
	if dto.EmployeeCode != nil {
		u.EmployeeCode = *dto.EmployeeCode
	}
	if dto.DepartmentID != nil {
		u.DepartmentID = dto.DepartmentID
	}
	if dto.PositionID != nil {
		u.PositionID = dto.PositionID
	}
	if dto.ManagerID != nil {
		u.ManagerID = dto.ManagerID
	}
	if dto.HireDate != nil {
		u.HireDate = dto.HireDate
	}
	if dto.Phone != nil {
		u.Phone = *dto.Phone
	}
	if dto.Notes != nil {
		u.Notes = *dto.Notes
	}
	if dto.Status != nil {
		u.Status = *dto.Status
	}
	u.UpdatedAt = time.Now()

	if err := s.repo.Update(u, loadedUpdatedAt); err != nil {
		return nil, err
	}
	return u, nil
}

// Replace is the page-surface edit: the whole entity is overwritten.
func (s *Service) Replace(id int64, dto ReplaceEmployeeDTO) (*User, error) {
	if id != dto.ID {
		return nil, internal.NewValidationError("path id and body id do not match", internal.ErrCodeIDMismatch)
	}
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, internal.ErrEmployeeNotFound
	}

	loadedUpdatedAt := u.UpdatedAt

	u.Username = dto.Username
	u.Email = dto.Email
	u.FirstName = dto.FirstName
	u.LastName = dto.LastName
	u.EmployeeCode = dto.EmployeeCode
	u.DepartmentID = dto.DepartmentID
	u.PositionID = dto.PositionID
	u.ManagerID = dto.ManagerID
	u.HireDate = dto.HireDate
	u.Phone = dto.Phone
	u.Notes = dto.Notes
	u.Status = dto.Status
	u.UpdatedAt = time.Now()

	if err := s.repo.Update(u, loadedUpdatedAt); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Delete(id int64) error {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return internal.ErrEmployeeNotFound
	}
	return s.repo.Delete(id)
}
