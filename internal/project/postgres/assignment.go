package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/project"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// IsAssigned backs the worklog precondition that hours can only be
// filed against an existing assignment.
func (r *AssignmentRepository) IsAssigned(employeeID, projectID int64) (bool, error) {
	var count int64
	err := r.db.Model(&project.Assignment{}).
		Where("employee_id = ? AND project_id = ?", employeeID, projectID).
		Count(&count).Error
	return count > 0, err
}

func (r *AssignmentRepository) GetAll() ([]*project.Assignment, error) {
	var assignments []*project.Assignment
	err := r.db.Order("id ASC").Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) GetByID(id int64) (*project.Assignment, error) {
	var a project.Assignment
	err := r.db.Where("id = ?", id).First(&a).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentRepository) GetByPair(employeeID, projectID int64) (*project.Assignment, error) {
	var a project.Assignment
	err := r.db.Where("employee_id = ? AND project_id = ?", employeeID, projectID).First(&a).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentRepository) GetByEmployeeID(employeeID int64) ([]*project.Assignment, error) {
	var assignments []*project.Assignment
	err := r.db.Where("employee_id = ?", employeeID).Order("id ASC").Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) GetByProjectID(projectID int64) ([]*project.Assignment, error) {
	var assignments []*project.Assignment
	err := r.db.Where("project_id = ?", projectID).Order("id ASC").Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) Create(a *project.Assignment) error {
	return r.db.Create(a).Error
}

func (r *AssignmentRepository) Update(a *project.Assignment, loadedUpdatedAt time.Time) error {
	res := r.db.Model(&project.Assignment{}).
		Where("id = ? AND updated_at = ?", a.ID, loadedUpdatedAt).
		Select("*").Omit("id", "created_at").
		Updates(a)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&project.Assignment{}).Where("id = ?", a.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return internal.ErrAssignmentNotFound
		}
		return internal.ErrConcurrentUpdate
	}
	return nil
}

func (r *AssignmentRepository) Delete(id int64) error {
	return r.db.Delete(&project.Assignment{}, id).Error
}
