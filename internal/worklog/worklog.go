package worklog

import "time"

const (
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

// Worklog records hours an employee spent on a project on one calendar
// day. One row per (employee, project, day). New entries start out
// submitted; the status only moves when someone updates it.
type Worklog struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	EmployeeID  int64     `json:"employee_id" gorm:"column:employee_id;not null"`
	ProjectID   int64     `json:"project_id" gorm:"column:project_id;not null"`
	WorkDate    time.Time `json:"work_date" gorm:"column:work_date;type:date;not null"`
	Hours       float64   `json:"hours" gorm:"column:hours;not null"`
	Description string    `json:"description" gorm:"column:description"`
	Status      string    `json:"status" gorm:"column:status;default:submitted"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Worklog) TableName() string {
	return "worklogs"
}

type CreateWorklogDTO struct {
	EmployeeID  int64     `json:"employee_id" validate:"required"`
	ProjectID   int64     `json:"project_id" validate:"required"`
	WorkDate    time.Time `json:"work_date" validate:"required"`
	Hours       float64   `json:"hours" validate:"required,gt=0,lte=24"`
	Description string    `json:"description" validate:"omitempty,max=500"`
}

type UpdateWorklogDTO struct {
	Hours       *float64 `json:"hours,omitempty" validate:"omitempty,gt=0,lte=24"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=submitted approved rejected"`
}
