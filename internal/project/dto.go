package project

import "time"

type CreateProjectDTO struct {
	Name             string     `json:"name" validate:"required,max=200"`
	Code             string     `json:"code" validate:"required,max=50"`
	Description      string     `json:"description"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	Status           string     `json:"status" validate:"omitempty,oneof=active completed cancelled"`
	ProjectType      string     `json:"project_type" validate:"omitempty,oneof=software work service"`
	ProjectManagerID *int64     `json:"project_manager_id,omitempty"`
}

type UpdateProjectDTO struct {
	Name             *string    `json:"name,omitempty" validate:"omitempty,max=200"`
	Code             *string    `json:"code,omitempty" validate:"omitempty,max=50"`
	Description      *string    `json:"description,omitempty"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	Status           *string    `json:"status,omitempty" validate:"omitempty,oneof=active completed cancelled"`
	ProjectType      *string    `json:"project_type,omitempty" validate:"omitempty,oneof=software work service"`
	ProjectManagerID *int64     `json:"project_manager_id,omitempty"`
}

type ReplaceProjectDTO struct {
	ID               int64      `json:"id" validate:"required"`
	Name             string     `json:"name" validate:"required,max=200"`
	Code             string     `json:"code" validate:"required,max=50"`
	Description      string     `json:"description"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	Status           string     `json:"status" validate:"required,oneof=active completed cancelled"`
	ProjectType      string     `json:"project_type" validate:"required,oneof=software work service"`
	ProjectManagerID *int64     `json:"project_manager_id,omitempty"`
}

type CreateAssignmentDTO struct {
	EmployeeID    int64      `json:"employee_id" validate:"required"`
	ProjectID     int64      `json:"project_id" validate:"required"`
	RoleInProject string     `json:"role_in_project" validate:"omitempty,max=100"`
	AssignedDate  *time.Time `json:"assigned_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Status        string     `json:"status" validate:"omitempty,oneof=active completed"`
}

type UpdateAssignmentDTO struct {
	RoleInProject *string    `json:"role_in_project,omitempty" validate:"omitempty,max=100"`
	AssignedDate  *time.Time `json:"assigned_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Status        *string    `json:"status,omitempty" validate:"omitempty,oneof=active completed"`
}
