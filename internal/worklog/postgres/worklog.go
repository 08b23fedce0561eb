package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/worklog"
)

type WorklogRepository struct {
	db *gorm.DB
}

func NewWorklogRepository(db *gorm.DB) *WorklogRepository {
	return &WorklogRepository{db: db}
}

func (r *WorklogRepository) GetAll() ([]*worklog.Worklog, error) {
	var worklogs []*worklog.Worklog
	err := r.db.Order("work_date DESC, id DESC").Find(&worklogs).Error
	return worklogs, err
}

func (r *WorklogRepository) GetByID(id int64) (*worklog.Worklog, error) {
	var wl worklog.Worklog
	err := r.db.Where("id = ?", id).First(&wl).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &wl, nil
}

func (r *WorklogRepository) GetByEmployeeID(employeeID int64) ([]*worklog.Worklog, error) {
	var worklogs []*worklog.Worklog
	err := r.db.Where("employee_id = ?", employeeID).Order("work_date DESC, id DESC").Find(&worklogs).Error
	return worklogs, err
}

func (r *WorklogRepository) GetForDay(employeeID, projectID int64, day time.Time) (*worklog.Worklog, error) {
	var wl worklog.Worklog
	err := r.db.
		Where("employee_id = ? AND project_id = ? AND work_date = ?", employeeID, projectID, day).
		First(&wl).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &wl, nil
}

// ExistsForEmployeeAndProject backs the assignment removal guard.
func (r *WorklogRepository) ExistsForEmployeeAndProject(employeeID, projectID int64) (bool, error) {
	var count int64
	err := r.db.Model(&worklog.Worklog{}).
		Where("employee_id = ? AND project_id = ?", employeeID, projectID).
		Count(&count).Error
	return count > 0, err
}

func (r *WorklogRepository) Create(wl *worklog.Worklog) error {
	return r.db.Create(wl).Error
}

func (r *WorklogRepository) Update(wl *worklog.Worklog, loadedUpdatedAt time.Time) error {
	res := r.db.Model(&worklog.Worklog{}).
		Where("id = ? AND updated_at = ?", wl.ID, loadedUpdatedAt).
		Select("*").Omit("id", "created_at").
		Updates(wl)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&worklog.Worklog{}).Where("id = ?", wl.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return internal.ErrWorklogNotFound
		}
		return internal.ErrConcurrentUpdate
	}
	return nil
}

func (r *WorklogRepository) Delete(id int64) error {
	res := r.db.Delete(&worklog.Worklog{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return internal.ErrWorklogNotFound
	}
	return nil
}
