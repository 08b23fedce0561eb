package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/leave"
)

type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) leave.RepositoryAPI {
	return &LeaveRepository{db: db}
}

func (r *LeaveRepository) GetAll() ([]*leave.Request, error) {
	var requests []*leave.Request
	err := r.db.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *LeaveRepository) GetByID(id int64) (*leave.Request, error) {
	var req leave.Request
	err := r.db.Where("id = ?", id).First(&req).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *LeaveRepository) GetByEmployeeID(employeeID int64) ([]*leave.Request, error) {
	var requests []*leave.Request
	err := r.db.Where("employee_id = ?", employeeID).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *LeaveRepository) Create(req *leave.Request) error {
	return r.db.Create(req).Error
}

func (r *LeaveRepository) Update(req *leave.Request, loadedUpdatedAt time.Time) error {
	res := r.db.Model(&leave.Request{}).
		Where("id = ? AND updated_at = ?", req.ID, loadedUpdatedAt).
		Select("*").Omit("id", "created_at").
		Updates(req)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&leave.Request{}).Where("id = ?", req.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return internal.ErrLeaveNotFound
		}
		return internal.ErrConcurrentUpdate
	}
	return nil
}

func (r *LeaveRepository) Delete(id int64) error {
	res := r.db.Delete(&leave.Request{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return internal.ErrLeaveNotFound
	}
	return nil
}
