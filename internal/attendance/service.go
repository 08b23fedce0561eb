package attendance

import (
	"log/slog"
	"time"

	"github.com/hgiang7193/hr-management/internal"
)

type RepositoryAPI interface {
	GetAll() ([]*Attendance, error)
	GetByID(id int64) (*Attendance, error)
	GetByEmployeeID(employeeID int64) ([]*Attendance, error)
	GetForDay(employeeID int64, day time.Time) (*Attendance, error)
	GetRange(from, to time.Time) ([]*Attendance, error)
	Create(a *Attendance) error
	Update(a *Attendance, loadedUpdatedAt time.Time) error
	Delete(id int64) error
}

type EmployeeDirectory interface {
	Exists(id int64) (bool, error)
}

type Service struct {
	repo      RepositoryAPI
	employees EmployeeDirectory
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(repo RepositoryAPI, employees EmployeeDirectory, logger *slog.Logger) *Service {
	return &Service{repo: repo, employees: employees, logger: logger, now: time.Now}
}

// WithClock overrides the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetAll() ([]*Attendance, error) {
	return s.repo.GetAll()
}

func (s *Service) GetByID(id int64) (*Attendance, error) {
	a, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, internal.ErrAttendanceNotFound
	}
	return a, nil
}

func (s *Service) GetForEmployee(employeeID int64) ([]*Attendance, error) {
	return s.repo.GetByEmployeeID(employeeID)
}

// CheckIn opens today's attendance record for the employee. A second
// check-in on the same day is reported, not rejected.
func (s *Service) CheckIn(employeeID int64) (*CheckResult, error) {
	exists, err := s.employees.Exists(employeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, internal.ErrEmployeeNotFound
	}

	now := s.now()
	day := truncateToDay(now)

	existing, err := s.repo.GetForDay(employeeID, day)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.CheckInTime != nil {
			return &CheckResult{Outcome: OutcomeAlreadyCheckedIn, Attendance: existing}, nil
		}

		// Day already has a row without a check-in (an absence or
		// leave entry). Fill it in instead of creating a second row.
		loadedUpdatedAt := existing.UpdatedAt
		existing.CheckInTime = &now
		existing.Status = statusFor(now)
		existing.UpdatedAt = now
		if err := s.repo.Update(existing, loadedUpdatedAt); err != nil {
			return nil, err
		}

		s.logger.Info("employee checked in", "employee_id", employeeID, "status", existing.Status)
		return &CheckResult{Outcome: OutcomeCheckedIn, Attendance: existing}, nil
	}

	a := &Attendance{
		EmployeeID:  employeeID,
		WorkDate:    day,
		CheckInTime: &now,
		Status:      statusFor(now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(a); err != nil {
		return nil, err
	}

	s.logger.Info("employee checked in", "employee_id", employeeID, "status", a.Status)
	return &CheckResult{Outcome: OutcomeCheckedIn, Attendance: a}, nil
}

// CheckOut closes today's record. Checking out without a prior check-in
// or checking out twice are reported, not rejected.
func (s *Service) CheckOut(employeeID int64) (*CheckResult, error) {
	exists, err := s.employees.Exists(employeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, internal.ErrEmployeeNotFound
	}

	now := s.now()
	day := truncateToDay(now)

	existing, err := s.repo.GetForDay(employeeID, day)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.CheckInTime == nil {
		return &CheckResult{Outcome: OutcomeNotCheckedIn, Attendance: existing}, nil
	}
	if existing.CheckOutTime != nil {
		return &CheckResult{Outcome: OutcomeAlreadyCheckedOut, Attendance: existing}, nil
	}

	loadedUpdatedAt := existing.UpdatedAt
	existing.CheckOutTime = &now
	existing.UpdatedAt = now

	if err := s.repo.Update(existing, loadedUpdatedAt); err != nil {
		return nil, err
	}

	s.logger.Info("employee checked out", "employee_id", employeeID)
	return &CheckResult{Outcome: OutcomeCheckedOut, Attendance: existing}, nil
}

func (s *Service) Create(dto CreateAttendanceDTO) (*Attendance, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	exists, err := s.employees.Exists(dto.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, internal.ErrEmployeeNotFound
	}

	status := dto.Status
	if status == "" {
		if dto.CheckInTime == nil {
			return nil, internal.NewValidationError("status is required when no check-in time is given", internal.ErrCodeValidationFailed)
		}
		status = statusFor(*dto.CheckInTime)
	}

	now := s.now()
	a := &Attendance{
		EmployeeID:   dto.EmployeeID,
		WorkDate:     truncateToDay(dto.WorkDate),
		CheckInTime:  dto.CheckInTime,
		CheckOutTime: dto.CheckOutTime,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Update(id int64, dto UpdateAttendanceDTO) (*Attendance, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	a, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, internal.ErrAttendanceNotFound
	}

	loadedUpdatedAt := a.UpdatedAt

	if dto.CheckInTime != nil {
		a.CheckInTime = dto.CheckInTime
		a.Status = statusFor(*dto.CheckInTime)
	}
	if dto.CheckOutTime != nil {
		a.CheckOutTime = dto.CheckOutTime
	}
	if dto.Status != nil {
		a.Status = *dto.Status
	}
	a.UpdatedAt = s.now()

	if err := s.repo.Update(a, loadedUpdatedAt); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(id int64) error {
	a, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return internal.ErrAttendanceNotFound
	}
	return s.repo.Delete(id)
}

// statusFor classifies a check-in instant against the 08:00:00 cutoff,
// inclusive: checking in at exactly eight is still on time.
func statusFor(t time.Time) string {
	cutoff := time.Date(t.Year(), t.Month(), t.Day(), 8, 0, 0, 0, t.Location())
	if t.After(cutoff) {
		return StatusLate
	}
	return StatusOnTime
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
