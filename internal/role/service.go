package role

import (
	"log/slog"
	"time"

	"github.com/hgiang7193/hr-management/internal"
)

type RepositoryAPI interface {
	GetAll() ([]*Role, error)
	GetByID(id int64) (*Role, error)
	Exists(id int64) (bool, error)
	Create(role *Role) error
	Update(role *Role, loadedUpdatedAt time.Time) error
	Delete(id int64) error
}

type UserRoleRepositoryAPI interface {
	GetAll() ([]*UserRole, error)
	GetByID(id int64) (*UserRole, error)
	GetByPair(userID, roleID int64) (*UserRole, error)
	GetByUserID(userID int64) ([]*UserRole, error)
	Create(ur *UserRole) error
	Delete(id int64) error
	DeleteByPair(userID, roleID int64) (bool, error)
}

type RolePermissionRepositoryAPI interface {
	GetAll() ([]*RolePermission, error)
	GetByID(id int64) (*RolePermission, error)
	GetByPair(roleID, permissionID int64) (*RolePermission, error)
	GetByRoleID(roleID int64) ([]*RolePermission, error)
	Create(rp *RolePermission) error
	Delete(id int64) error
	DeleteByPair(roleID, permissionID int64) (bool, error)
}

// EmployeeDirectory and PermissionDirectory are the slices of the
// employee and permission repositories the join operations need.
type EmployeeDirectory interface {
	Exists(id int64) (bool, error)
}

type PermissionDirectory interface {
	Exists(id int64) (bool, error)
}

type Service struct {
	repo        RepositoryAPI
	userRoles   UserRoleRepositoryAPI
	rolePerms   RolePermissionRepositoryAPI
	employees   EmployeeDirectory
	permissions PermissionDirectory
	logger      *slog.Logger
}

func NewService(
	repo RepositoryAPI,
	userRoles UserRoleRepositoryAPI,
	rolePerms RolePermissionRepositoryAPI,
	employees EmployeeDirectory,
	permissions PermissionDirectory,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:        repo,
		userRoles:   userRoles,
		rolePerms:   rolePerms,
		employees:   employees,
		permissions: permissions,
		logger:      logger,
	}
}

func (s *Service) GetAll() ([]*Role, error) {
	return s.repo.GetAll()
}

func (s *Service) GetByID(id int64) (*Role, error) {
	role, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, internal.ErrRoleNotFound
	}
	return role, nil
}

func (s *Service) Create(dto CreateRoleDTO) (*Role, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	now := time.Now()
	role := &Role{
		Name:        dto.Name,
		Description: dto.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *Service) Update(id int64, dto UpdateRoleDTO) (*Role, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	role, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, internal.ErrRoleNotFound
	}

	loadedUpdatedAt := role.UpdatedAt

	if dto.Name != nil {
		role.Name = *dto.Name
	}
	if dto.Description != nil {
		role.Description = *dto.Description
	}
	role.UpdatedAt = time.Now()

	if err := s.repo.Update(role, loadedUpdatedAt); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *Service) Replace(id int64, dto ReplaceRoleDTO) (*Role, error) {
	if id != dto.ID {
		return nil, internal.NewValidationError("path id and body id do not match", internal.ErrCodeIDMismatch)
	}
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	role, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, internal.ErrRoleNotFound
	}

	loadedUpdatedAt := role.UpdatedAt

	role.Name = dto.Name
	role.Description = dto.Description
	role.UpdatedAt = time.Now()

	if err := s.repo.Update(role, loadedUpdatedAt); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *Service) Delete(id int64) error {
	role, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if role == nil {
		return internal.ErrRoleNotFound
	}
	return s.repo.Delete(id)
}

// --- user role assignments ---

func (s *Service) GetUserRoles() ([]*UserRole, error) {
	return s.userRoles.GetAll()
}

func (s *Service) GetUserRoleByID(id int64) (*UserRole, error) {
	ur, err := s.userRoles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ur == nil {
		return nil, internal.NewNotFoundError("user role assignment not found", internal.ErrCodeRoleNotFound)
	}
	return ur, nil
}

func (s *Service) GetRolesForUser(userID int64) ([]*UserRole, error) {
	return s.userRoles.GetByUserID(userID)
}

// AssignRole adds a role to a user. Both sides must exist and the pair
// must not already be present.
func (s *Service) AssignRole(dto CreateUserRoleDTO) (*UserRole, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	userExists, err := s.employees.Exists(dto.UserID)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, internal.ErrEmployeeNotFound
	}

	roleExists, err := s.repo.Exists(dto.RoleID)
	if err != nil {
		return nil, err
	}
	if !roleExists {
		return nil, internal.ErrRoleNotFound
	}

	existing, err := s.userRoles.GetByPair(dto.UserID, dto.RoleID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, internal.ErrDuplicateUserRole
	}

	ur := &UserRole{
		UserID:    dto.UserID,
		RoleID:    dto.RoleID,
		CreatedAt: time.Now(),
	}
	if err := s.userRoles.Create(ur); err != nil {
		return nil, err
	}

	s.logger.Info("role assigned to user", "user_id", dto.UserID, "role_id", dto.RoleID)
	return ur, nil
}

func (s *Service) RemoveUserRole(id int64) error {
	ur, err := s.userRoles.GetByID(id)
	if err != nil {
		return err
	}
	if ur == nil {
		return internal.NewNotFoundError("user role assignment not found", internal.ErrCodeRoleNotFound)
	}
	return s.userRoles.Delete(id)
}

// RemoveUserRoleByPair deletes by (user, role) instead of row id, for
// callers that never saw the join row.
func (s *Service) RemoveUserRoleByPair(userID, roleID int64) error {
	deleted, err := s.userRoles.DeleteByPair(userID, roleID)
	if err != nil {
		return err
	}
	if !deleted {
		return internal.NewNotFoundError("user role assignment not found", internal.ErrCodeRoleNotFound)
	}
	return nil
}

// --- role permission assignments ---

func (s *Service) GetRolePermissions() ([]*RolePermission, error) {
	return s.rolePerms.GetAll()
}

func (s *Service) GetRolePermissionByID(id int64) (*RolePermission, error) {
	rp, err := s.rolePerms.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rp == nil {
		return nil, internal.NewNotFoundError("role permission assignment not found", internal.ErrCodePermissionNotFound)
	}
	return rp, nil
}

func (s *Service) GetPermissionsForRole(roleID int64) ([]*RolePermission, error) {
	return s.rolePerms.GetByRoleID(roleID)
}

func (s *Service) GrantPermission(dto CreateRolePermissionDTO) (*RolePermission, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	roleExists, err := s.repo.Exists(dto.RoleID)
	if err != nil {
		return nil, err
	}
	if !roleExists {
		return nil, internal.ErrRoleNotFound
	}

	permExists, err := s.permissions.Exists(dto.PermissionID)
	if err != nil {
		return nil, err
	}
	if !permExists {
		return nil, internal.ErrPermissionNotFound
	}

	existing, err := s.rolePerms.GetByPair(dto.RoleID, dto.PermissionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, internal.ErrDuplicateRolePermission
	}

	rp := &RolePermission{
		RoleID:       dto.RoleID,
		PermissionID: dto.PermissionID,
		CreatedAt:    time.Now(),
	}
	if err := s.rolePerms.Create(rp); err != nil {
		return nil, err
	}

	s.logger.Info("permission granted to role", "role_id", dto.RoleID, "permission_id", dto.PermissionID)
	return rp, nil
}

func (s *Service) RevokeRolePermission(id int64) error {
	rp, err := s.rolePerms.GetByID(id)
	if err != nil {
		return err
	}
	if rp == nil {
		return internal.NewNotFoundError("role permission assignment not found", internal.ErrCodePermissionNotFound)
	}
	return s.rolePerms.Delete(id)
}

func (s *Service) RevokeRolePermissionByPair(roleID, permissionID int64) error {
	deleted, err := s.rolePerms.DeleteByPair(roleID, permissionID)
	if err != nil {
		return err
	}
	if !deleted {
		return internal.NewNotFoundError("role permission assignment not found", internal.ErrCodePermissionNotFound)
	}
	return nil
}
