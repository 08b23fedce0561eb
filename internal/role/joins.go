package role

import "time"

// UserRole links an employee account to a role. The (user, role) pair is
// unique; attempting to add it twice is a conflict, not an upsert.
type UserRole struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"column:user_id;not null"`
	RoleID    int64     `json:"role_id" gorm:"column:role_id;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

// RolePermission links a role to a permission, unique per pair.
type RolePermission struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	RoleID       int64     `json:"role_id" gorm:"column:role_id;not null"`
	PermissionID int64     `json:"permission_id" gorm:"column:permission_id;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

type CreateUserRoleDTO struct {
	UserID int64 `json:"user_id" validate:"required"`
	RoleID int64 `json:"role_id" validate:"required"`
}

type CreateRolePermissionDTO struct {
	RoleID       int64 `json:"role_id" validate:"required"`
	PermissionID int64 `json:"permission_id" validate:"required"`
}
