package postgres

import (
	"gorm.io/gorm"

	"github.com/hgiang7193/hr-management/internal/role"
)

type UserRoleRepository struct {
	db *gorm.DB
}

func NewUserRoleRepository(db *gorm.DB) role.UserRoleRepositoryAPI {
	return &UserRoleRepository{db: db}
}

func (r *UserRoleRepository) GetAll() ([]*role.UserRole, error) {
	var userRoles []*role.UserRole
	err := r.db.Order("id ASC").Find(&userRoles).Error
	return userRoles, err
}

func (r *UserRoleRepository) GetByID(id int64) (*role.UserRole, error) {
	var ur role.UserRole
	err := r.db.Where("id = ?", id).First(&ur).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &ur, nil
}

func (r *UserRoleRepository) GetByPair(userID, roleID int64) (*role.UserRole, error) {
	var ur role.UserRole
	err := r.db.Where("user_id = ? AND role_id = ?", userID, roleID).First(&ur).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &ur, nil
}

func (r *UserRoleRepository) GetByUserID(userID int64) ([]*role.UserRole, error) {
	var userRoles []*role.UserRole
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&userRoles).Error
	return userRoles, err
}

func (r *UserRoleRepository) Create(ur *role.UserRole) error {
	return r.db.Create(ur).Error
}

func (r *UserRoleRepository) Delete(id int64) error {
	return r.db.Delete(&role.UserRole{}, id).Error
}

func (r *UserRoleRepository) DeleteByPair(userID, roleID int64) (bool, error) {
	res := r.db.Where("user_id = ? AND role_id = ?", userID, roleID).Delete(&role.UserRole{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

type RolePermissionRepository struct {
	db *gorm.DB
}

func NewRolePermissionRepository(db *gorm.DB) role.RolePermissionRepositoryAPI {
	return &RolePermissionRepository{db: db}
}

func (r *RolePermissionRepository) GetAll() ([]*role.RolePermission, error) {
	var rolePerms []*role.RolePermission
	err := r.db.Order("id ASC").Find(&rolePerms).Error
	return rolePerms, err
}

func (r *RolePermissionRepository) GetByID(id int64) (*role.RolePermission, error) {
	var rp role.RolePermission
	err := r.db.Where("id = ?", id).First(&rp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &rp, nil
}

func (r *RolePermissionRepository) GetByPair(roleID, permissionID int64) (*role.RolePermission, error) {
	var rp role.RolePermission
	err := r.db.Where("role_id = ? AND permission_id = ?", roleID, permissionID).First(&rp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &rp, nil
}

func (r *RolePermissionRepository) GetByRoleID(roleID int64) ([]*role.RolePermission, error) {
	var rolePerms []*role.RolePermission
	err := r.db.Where("role_id = ?", roleID).Order("id ASC").Find(&rolePerms).Error
	return rolePerms, err
}

func (r *RolePermissionRepository) Create(rp *role.RolePermission) error {
	return r.db.Create(rp).Error
}

func (r *RolePermissionRepository) Delete(id int64) error {
	return r.db.Delete(&role.RolePermission{}, id).Error
}

func (r *RolePermissionRepository) DeleteByPair(roleID, permissionID int64) (bool, error) {
	res := r.db.Where("role_id = ? AND permission_id = ?", roleID, permissionID).Delete(&role.RolePermission{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
