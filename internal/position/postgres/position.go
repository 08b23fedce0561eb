package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/position"
)

type PositionRepository struct {
	db *gorm.DB
}

func NewPositionRepository(db *gorm.DB) position.RepositoryAPI {
	return &PositionRepository{db: db}
}

func (r *PositionRepository) GetAll() ([]*position.Position, error) {
	var positions []*position.Position
	err := r.db.Order("name ASC").Find(&positions).Error
	return positions, err
}

func (r *PositionRepository) GetByID(id int64) (*position.Position, error) {
	var p position.Position
	err := r.db.Where("id = ?", id).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PositionRepository) Create(p *position.Position) error {
	return r.db.Create(p).Error
}

func (r *PositionRepository) Update(p *position.Position, loadedUpdatedAt time.Time) error {
	res := r.db.Model(&position.Position{}).
		Where("id = ? AND updated_at = ?", p.ID, loadedUpdatedAt).
		Select("*").Omit("id", "created_at").
		Updates(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&position.Position{}).Where("id = ?", p.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return internal.ErrPositionNotFound
		}
		return internal.ErrConcurrentUpdate
	}
	return nil
}

func (r *PositionRepository) Delete(id int64) error {
	res := r.db.Delete(&position.Position{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return internal.ErrPositionNotFound
	}
	return nil
}
