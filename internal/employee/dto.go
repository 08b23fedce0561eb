package employee

import "time"

// CreateEmployeeDTO carries the full shape required to create an employee.
type CreateEmployeeDTO struct {
	Username     string     `json:"username" validate:"required,max=80"`
	Email        string     `json:"email" validate:"required,email,max=120"`
	Password     string     `json:"password" validate:"required,min=8"`
	FirstName    string     `json:"first_name" validate:"required,max=50"`
	LastName     string     `json:"last_name" validate:"required,max=50"`
	EmployeeCode string     `json:"employee_code" validate:"required,max=20"`
	DepartmentID *int64     `json:"department_id,omitempty"`
	PositionID   *int64     `json:"position_id,omitempty"`
	ManagerID    *int64     `json:"manager_id,omitempty"`
	HireDate     *time.Time `json:"hire_date,omitempty"`
	Phone        string     `json:"phone" validate:"omitempty,max=30"`
	Notes        string     `json:"notes"`
	Status       string     `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateEmployeeDTO uses pointer fields: only fields present in the payload
// are applied (partial update semantics on the API surface).
type UpdateEmployeeDTO struct {
	Username     *string    `json:"username,omitempty" validate:"omitempty,max=80"`
	Email        *string    `json:"email,omitempty" validate:"omitempty,email,max=120"`
	FirstName    *string    `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName     *string    `json:"last_name,omitempty" validate:"omitempty,max=50"`
	EmployeeCode *string    `json:"employee_code,omitempty" validate:"omitempty,max=20"`
	DepartmentID *int64     `json:"department_id,omitempty"`
	PositionID   *int64     `json:"position_id,omitempty"`
	ManagerID    *int64     `json:"manager_id,omitempty"`
	HireDate     *time.Time `json:"hire_date,omitempty"`
	Phone        *string    `json:"phone,omitempty" validate:"omitempty,max=30"`
	Notes        *string    `json:"notes,omitempty"`
	Status       *string    `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// ReplaceEmployeeDTO is the page-surface edit shape: full-entity replace,
// the path id and body id must match.
type ReplaceEmployeeDTO struct {
	ID           int64      `json:"id" validate:"required"`
	Username     string     `json:"username" validate:"required,max=80"`
	Email        string     `json:"email" validate:"required,email,max=120"`
	FirstName    string     `json:"first_name" validate:"required,max=50"`
	LastName     string     `json:"last_name" validate:"required,max=50"`
	EmployeeCode string     `json:"employee_code" validate:"required,max=20"`
	DepartmentID *int64     `json:"department_id,omitempty"`
	PositionID   *int64     `json:"position_id,omitempty"`
	ManagerID    *int64     `json:"manager_id,omitempty"`
	HireDate     *time.Time `json:"hire_date,omitempty"`
	Phone        string     `json:"phone" validate:"omitempty,max=30"`
	Notes        string     `json:"notes"`
	Status       string     `json:"status" validate:"required,oneof=active inactive"`
}
