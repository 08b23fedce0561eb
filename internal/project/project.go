package project

import "time"

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	TypeSoftware = "software"
	TypeWork     = "work"
	TypeService  = "service"
)

type Project struct {
	ID               int64      `json:"id" gorm:"primaryKey"`
	Name             string     `json:"name" gorm:"column:name;not null"`
	Code             string     `json:"code" gorm:"column:code;not null"`
	Description      string     `json:"description" gorm:"column:description"`
	StartDate        *time.Time `json:"start_date,omitempty" gorm:"column:start_date;type:date"`
	EndDate          *time.Time `json:"end_date,omitempty" gorm:"column:end_date;type:date"`
	Status           string     `json:"status" gorm:"column:status;default:active"`
	ProjectType      string     `json:"project_type" gorm:"column:project_type;default:software"`
	ProjectManagerID *int64     `json:"project_manager_id,omitempty" gorm:"column:project_manager_id"`
	CreatedAt        time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

const (
	AssignmentStatusActive    = "active"
	AssignmentStatusCompleted = "completed"
)

// Assignment puts an employee on a project. One row per (employee,
// project) pair; the worklog removal guard lives in the service.
type Assignment struct {
	ID            int64      `json:"id" gorm:"primaryKey"`
	EmployeeID    int64      `json:"employee_id" gorm:"column:employee_id;not null"`
	ProjectID     int64      `json:"project_id" gorm:"column:project_id;not null"`
	RoleInProject string     `json:"role_in_project" gorm:"column:role_in_project"`
	AssignedDate  time.Time  `json:"assigned_date" gorm:"column:assigned_date;type:date"`
	EndDate       *time.Time `json:"end_date,omitempty" gorm:"column:end_date;type:date"`
	Status        string     `json:"status" gorm:"column:status;default:active"`
	CreatedAt     time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (Assignment) TableName() string {
	return "project_assignments"
}
