package role

import "time"

// Role names are matched case-sensitively by the authorization layer,
// so the seeded names ("admin", "employee") are lowercase by convention.
type Role struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"column:name;not null"`
	Description string    `json:"description" gorm:"column:description"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Role) TableName() string {
	return "roles"
}

type CreateRoleDTO struct {
	Name        string `json:"name" validate:"required,max=80"`
	Description string `json:"description"`
}

type UpdateRoleDTO struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=80"`
	Description *string `json:"description,omitempty"`
}

type ReplaceRoleDTO struct {
	ID          int64  `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required,max=80"`
	Description string `json:"description"`
}
