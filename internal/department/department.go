package department

import "time"

// Department is a node in the organizational hierarchy. Parent is a
// self-reference by id; no cycle validation is performed beyond rejecting a
// department naming itself as its own parent.
type Department struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"column:name;not null"`
	Code        string    `json:"code" gorm:"column:code;not null"`
	Description string    `json:"description" gorm:"column:description"`
	ParentID    *int64    `json:"parent_id,omitempty" gorm:"column:parent_id"`
	ManagerID   *int64    `json:"manager_id,omitempty" gorm:"column:manager_id"`
	Status      string    `json:"status" gorm:"column:status;default:active"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Department) TableName() string {
	return "departments"
}
