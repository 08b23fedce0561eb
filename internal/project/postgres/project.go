package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/project"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) project.RepositoryAPI {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) GetAll() ([]*project.Project, error) {
	var projects []*project.Project
	err := r.db.Order("name ASC").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) GetByID(id int64) (*project.Project, error) {
	var p project.Project
	err := r.db.Where("id = ?", id).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) GetByEmployeeID(employeeID int64) ([]*project.Project, error) {
	var projects []*project.Project
	err := r.db.
		Joins("JOIN project_assignments ON project_assignments.project_id = projects.id").
		Where("project_assignments.employee_id = ?", employeeID).
		Order("projects.name ASC").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) Create(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *ProjectRepository) Update(p *project.Project, loadedUpdatedAt time.Time) error {
	res := r.db.Model(&project.Project{}).
		Where("id = ? AND updated_at = ?", p.ID, loadedUpdatedAt).
		Select("*").Omit("id", "created_at").
		Updates(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&project.Project{}).Where("id = ?", p.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return internal.ErrProjectNotFound
		}
		return internal.ErrConcurrentUpdate
	}
	return nil
}

func (r *ProjectRepository) Delete(id int64) error {
	res := r.db.Delete(&project.Project{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return internal.ErrProjectNotFound
	}
	return nil
}
