package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/department"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) department.RepositoryAPI {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) GetAll() ([]*department.Department, error) {
	var departments []*department.Department
	err := r.db.Order("name ASC").Find(&departments).Error
	return departments, err
}

func (r *DepartmentRepository) GetByID(id int64) (*department.Department, error) {
	var d department.Department
	err := r.db.Where("id = ?", id).First(&d).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *DepartmentRepository) GetChildren(parentID int64) ([]*department.Department, error) {
	var children []*department.Department
	err := r.db.Where("parent_id = ?", parentID).Order("name ASC").Find(&children).Error
	return children, err
}

func (r *DepartmentRepository) Create(d *department.Department) error {
	return r.db.Create(d).Error
}

func (r *DepartmentRepository) Update(d *department.Department, loadedUpdatedAt time.Time) error {
	res := r.db.Model(&department.Department{}).
		Where("id = ? AND updated_at = ?", d.ID, loadedUpdatedAt).
		Select("*").Omit("id", "created_at").
		Updates(d)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&department.Department{}).Where("id = ?", d.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return internal.ErrDepartmentNotFound
		}
		return internal.ErrConcurrentUpdate
	}
	return nil
}

// Delete does not cascade: a child row referencing this department makes
// the store reject the delete and the error propagates untouched.
func (r *DepartmentRepository) Delete(id int64) error {
	res := r.db.Delete(&department.Department{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return internal.ErrDepartmentNotFound
	}
	return nil
}
