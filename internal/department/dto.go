package department

type CreateDepartmentDTO struct {
	Name        string `json:"name" validate:"required,max=100"`
	Code        string `json:"code" validate:"required,max=20"`
	Description string `json:"description"`
	ParentID    *int64 `json:"parent_id,omitempty"`
	ManagerID   *int64 `json:"manager_id,omitempty"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateDepartmentDTO struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Code        *string `json:"code,omitempty" validate:"omitempty,max=20"`
	Description *string `json:"description,omitempty"`
	ParentID    *int64  `json:"parent_id,omitempty"`
	ManagerID   *int64  `json:"manager_id,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

type ReplaceDepartmentDTO struct {
	ID          int64  `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
	Code        string `json:"code" validate:"required,max=20"`
	Description string `json:"description"`
	ParentID    *int64 `json:"parent_id,omitempty"`
	ManagerID   *int64 `json:"manager_id,omitempty"`
	Status      string `json:"status" validate:"required,oneof=active inactive"`
}
