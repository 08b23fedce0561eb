package shift

import "time"

// Shift describes a named working window, e.g. "Morning 08:00-17:00".
// Start and end are stored as HH:MM:SS strings since the window has no
// date component.
type Shift struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"column:name;not null"`
	StartTime   string    `json:"start_time" gorm:"column:start_time;not null"`
	EndTime     string    `json:"end_time" gorm:"column:end_time;not null"`
	Description string    `json:"description" gorm:"column:description"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Shift) TableName() string {
	return "shifts"
}

type CreateShiftDTO struct {
	Name        string `json:"name" validate:"required,max=100"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04:05"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04:05"`
	Description string `json:"description"`
}

type UpdateShiftDTO struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	StartTime   *string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04:05"`
	EndTime     *string `json:"end_time,omitempty" validate:"omitempty,datetime=15:04:05"`
	Description *string `json:"description,omitempty"`
}

type ReplaceShiftDTO struct {
	ID          int64  `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04:05"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04:05"`
	Description string `json:"description"`
}
