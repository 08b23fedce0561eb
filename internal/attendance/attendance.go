package attendance

import "time"

const (
	StatusOnTime  = "on_time"
	StatusLate    = "late"
	StatusAbsent  = "absent"
	StatusLeave   = "leave"
	StatusHoliday = "holiday"
)

// Attendance is one employee's record for one calendar day. Check-in at
// or before 08:00:00 counts as on time, anything later is late. A row
// may exist without a check-in when an admin records an absence, leave
// or holiday for the day.
type Attendance struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	EmployeeID   int64      `json:"employee_id" gorm:"column:employee_id;not null"`
	WorkDate     time.Time  `json:"work_date" gorm:"column:work_date;type:date;not null"`
	CheckInTime  *time.Time `json:"check_in_time,omitempty" gorm:"column:check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty" gorm:"column:check_out_time"`
	Status       string     `json:"status" gorm:"column:status;not null"`
	CreatedAt    time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type CreateAttendanceDTO struct {
	EmployeeID   int64      `json:"employee_id" validate:"required"`
	WorkDate     time.Time  `json:"work_date" validate:"required"`
	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	Status       string     `json:"status" validate:"omitempty,oneof=on_time late absent leave holiday"`
}

type UpdateAttendanceDTO struct {
	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	Status       *string    `json:"status,omitempty" validate:"omitempty,oneof=on_time late absent leave holiday"`
}

// Outcome reports what a check-in or check-out attempt did. The repeat
// cases are notices rather than errors so the UI can show a banner
// instead of failing the request.
type Outcome string

const (
	OutcomeCheckedIn         Outcome = "checked_in"
	OutcomeAlreadyCheckedIn  Outcome = "already_checked_in"
	OutcomeCheckedOut        Outcome = "checked_out"
	OutcomeNotCheckedIn      Outcome = "not_checked_in"
	OutcomeAlreadyCheckedOut Outcome = "already_checked_out"
)

type CheckResult struct {
	Outcome    Outcome     `json:"outcome"`
	Attendance *Attendance `json:"attendance,omitempty"`
}
