package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/shift"
)

type ShiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) shift.RepositoryAPI {
	return &ShiftRepository{db: db}
}

func (r *ShiftRepository) GetAll() ([]*shift.Shift, error) {
	var shifts []*shift.Shift
	err := r.db.Order("start_time ASC").Find(&shifts).Error
	return shifts, err
}

func (r *ShiftRepository) GetByID(id int64) (*shift.Shift, error) {
	var sh shift.Shift
	err := r.db.Where("id = ?", id).First(&sh).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sh, nil
}

func (r *ShiftRepository) Create(sh *shift.Shift) error {
	return r.db.Create(sh).Error
}

func (r *ShiftRepository) Update(sh *shift.Shift, loadedUpdatedAt time.Time) error {
	res := r.db.Model(&shift.Shift{}).
		Where("id = ? AND updated_at = ?", sh.ID, loadedUpdatedAt).
		Select("*").Omit("id", "created_at").
		Updates(sh)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&shift.Shift{}).Where("id = ?", sh.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return internal.ErrShiftNotFound
		}
		return internal.ErrConcurrentUpdate
	}
	return nil
}

func (r *ShiftRepository) Delete(id int64) error {
	res := r.db.Delete(&shift.Shift{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return internal.ErrShiftNotFound
	}
	return nil
}
