package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/permission"
)

type PermissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) permission.RepositoryAPI {
	return &PermissionRepository{db: db}
}

func (r *PermissionRepository) GetAll() ([]*permission.Permission, error) {
	var permissions []*permission.Permission
	err := r.db.Order("name ASC").Find(&permissions).Error
	return permissions, err
}

func (r *PermissionRepository) GetByID(id int64) (*permission.Permission, error) {
	var p permission.Permission
	err := r.db.Where("id = ?", id).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PermissionRepository) Exists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&permission.Permission{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *PermissionRepository) Create(p *permission.Permission) error {
	return r.db.Create(p).Error
}

func (r *PermissionRepository) Update(p *permission.Permission, loadedUpdatedAt time.Time) error {
	res := r.db.Model(&permission.Permission{}).
		Where("id = ? AND updated_at = ?", p.ID, loadedUpdatedAt).
		Select("*").Omit("id", "created_at").
		Updates(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&permission.Permission{}).Where("id = ?", p.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return internal.ErrPermissionNotFound
		}
		return internal.ErrConcurrentUpdate
	}
	return nil
}

func (r *PermissionRepository) Delete(id int64) error {
	res := r.db.Delete(&permission.Permission{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return internal.ErrPermissionNotFound
	}
	return nil
}
