package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/role"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) role.RepositoryAPI {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) GetAll() ([]*role.Role, error) {
	var roles []*role.Role
	err := r.db.Order("name ASC").Find(&roles).Error
	return roles, err
}

func (r *RoleRepository) GetByID(id int64) (*role.Role, error) {
	var rl role.Role
	err := r.db.Where("id = ?", id).First(&rl).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &rl, nil
}

func (r *RoleRepository) Exists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&role.Role{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *RoleRepository) Create(rl *role.Role) error {
	return r.db.Create(rl).Error
}

func (r *RoleRepository) Update(rl *role.Role, loadedUpdatedAt time.Time) error {
	res := r.db.Model(&role.Role{}).
		Where("id = ? AND updated_at = ?", rl.ID, loadedUpdatedAt).
		Select("*").Omit("id", "created_at").
		Updates(rl)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&role.Role{}).Where("id = ?", rl.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return internal.ErrRoleNotFound
		}
		return internal.ErrConcurrentUpdate
	}
	return nil
}

func (r *RoleRepository) Delete(id int64) error {
	res := r.db.Delete(&role.Role{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return internal.ErrRoleNotFound
	}
	return nil
}
