package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/employee"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetAll() ([]*employee.User, error) {
	var users []*employee.User
	err := r.db.Order("id ASC").Find(&users).Error
	return users, err
}

func (r *EmployeeRepository) GetByID(id int64) (*employee.User, error) {
	var u employee.User
	err := r.db.Where("id = ?", id).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *EmployeeRepository) Exists(id int64) (bool, error) {
	var count int64
	err := r.db.Model(&employee.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *EmployeeRepository) Create(u *employee.User) error {
	return r.db.Create(u).Error
}

// Update writes the full row guarded by the previously read updated_at.
// Zero rows affected means the row was either deleted or changed
// concurrently; the two cases are distinguished by re-checking existence.
func (r *EmployeeRepository) Update(u *employee.User, loadedUpdatedAt time.Time) error {
	res := r.db.Model(&employee.User{}).
		Where("id = ? AND updated_at = ?", u.ID, loadedUpdatedAt).
		Select("*").Omit("id", "created_at").
		Updates(u)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		exists, err := r.Exists(u.ID)
		if err != nil {
			return err
		}
		if !exists {
			return internal.ErrEmployeeNotFound
		}
		return internal.ErrConcurrentUpdate
	}
	return nil
}

func (r *EmployeeRepository) Delete(id int64) error {
	res := r.db.Delete(&employee.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return internal.ErrEmployeeNotFound
	}
	return nil
}
