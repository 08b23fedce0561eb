package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/attendance"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) attendance.RepositoryAPI {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) GetAll() ([]*attendance.Attendance, error) {
	var records []*attendance.Attendance
	err := r.db.Order("work_date DESC, id DESC").Find(&records).Error
	return records, err
}

func (r *AttendanceRepository) GetByID(id int64) (*attendance.Attendance, error) {
	var a attendance.Attendance
	err := r.db.Where("id = ?", id).First(&a).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AttendanceRepository) GetByEmployeeID(employeeID int64) ([]*attendance.Attendance, error) {
	var records []*attendance.Attendance
	err := r.db.Where("employee_id = ?", employeeID).Order("work_date DESC").Find(&records).Error
	return records, err
}

// GetForDay picks the most recent row when duplicates exist for the
// same employee and day, so check-out always lands on the latest one.
func (r *AttendanceRepository) GetForDay(employeeID int64, day time.Time) (*attendance.Attendance, error) {
	var a attendance.Attendance
	err := r.db.
		Where("employee_id = ? AND work_date = ?", employeeID, day).
		Order("id DESC").
		First(&a).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AttendanceRepository) GetRange(from, to time.Time) ([]*attendance.Attendance, error) {
	q := r.db.Order("work_date ASC, employee_id ASC")
	if !from.IsZero() {
		q = q.Where("work_date >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("work_date <= ?", to)
	}
	var records []*attendance.Attendance
	err := q.Find(&records).Error
	return records, err
}

func (r *AttendanceRepository) Create(a *attendance.Attendance) error {
	return r.db.Create(a).Error
}

func (r *AttendanceRepository) Update(a *attendance.Attendance, loadedUpdatedAt time.Time) error {
	res := r.db.Model(&attendance.Attendance{}).
		Where("id = ? AND updated_at = ?", a.ID, loadedUpdatedAt).
		Select("*").Omit("id", "created_at").
		Updates(a)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&attendance.Attendance{}).Where("id = ?", a.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return internal.ErrAttendanceNotFound
		}
		return internal.ErrConcurrentUpdate
	}
	return nil
}

func (r *AttendanceRepository) Delete(id int64) error {
	res := r.db.Delete(&attendance.Attendance{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return internal.ErrAttendanceNotFound
	}
	return nil
}
