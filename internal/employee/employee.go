package employee

import (
	"time"
)

// User is an employee account. The same row backs authentication, the
// employee directory and ownership checks on personal records.
type User struct {
	ID                 int64      `json:"id" gorm:"primaryKey"`
	Username           string     `json:"username" gorm:"column:username;not null"`
	Email              string     `json:"email" gorm:"column:email;not null"`
	PasswordHash       string     `json:"-" gorm:"column:password_hash;not null"`
	FirstName          string     `json:"first_name" gorm:"column:first_name;not null"`
	LastName           string     `json:"last_name" gorm:"column:last_name;not null"`
	EmployeeCode       string     `json:"employee_code" gorm:"column:employee_code;not null"`
	DepartmentID       *int64     `json:"department_id,omitempty" gorm:"column:department_id"`
	PositionID         *int64     `json:"position_id,omitempty" gorm:"column:position_id"`
	ManagerID          *int64     `json:"manager_id,omitempty" gorm:"column:manager_id"`
	HireDate           *time.Time `json:"hire_date,omitempty" gorm:"column:hire_date;type:date"`
	Phone              string     `json:"phone" gorm:"column:phone"`
	Notes              string     `json:"notes" gorm:"column:notes"`
	Status             string     `json:"status" gorm:"column:status;default:active"`
	MustChangePassword bool       `json:"must_change_password" gorm:"column:must_change_password;default:true"`
	PasswordChangedAt  *time.Time `json:"password_changed_at,omitempty" gorm:"column:password_changed_at"`
	CreatedAt          time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt          time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
