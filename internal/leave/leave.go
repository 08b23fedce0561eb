package leave

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Request struct {
	ID         int64      `json:"id" gorm:"primaryKey"`
	EmployeeID int64      `json:"employee_id" gorm:"column:employee_id;not null"`
	StartDate  time.Time  `json:"start_date" gorm:"column:start_date;type:date;not null"`
	EndDate    time.Time  `json:"end_date" gorm:"column:end_date;type:date;not null"`
	LeaveType  string     `json:"leave_type" gorm:"column:leave_type;not null"`
	Reason     string     `json:"reason" gorm:"column:reason"`
	Status     string     `json:"status" gorm:"column:status;default:pending"`
	ReviewedBy *int64     `json:"reviewed_by,omitempty" gorm:"column:reviewed_by"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty" gorm:"column:reviewed_at"`
	CreatedAt  time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (Request) TableName() string {
	return "leave_requests"
}

type CreateLeaveRequestDTO struct {
	EmployeeID int64     `json:"employee_id" validate:"required"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required"`
	LeaveType  string    `json:"leave_type" validate:"required,max=50"`
	Reason     string    `json:"reason" validate:"omitempty,max=500"`
}

type UpdateLeaveRequestDTO struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	LeaveType *string    `json:"leave_type,omitempty" validate:"omitempty,max=50"`
	Reason    *string    `json:"reason,omitempty" validate:"omitempty,max=500"`
}
