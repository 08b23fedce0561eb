package attendance_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/attendance"
)

func TestAttendanceService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Attendance Service Suite")
}

// Mock repository for testing
type mockAttendanceRepository struct {
	records     map[int64]*attendance.Attendance
	createError error
	updateError error
	nextID      int64
}

func newMockAttendanceRepository() *mockAttendanceRepository {
	return &mockAttendanceRepository{
		records: make(map[int64]*attendance.Attendance),
		nextID:  1,
	}
}

func (m *mockAttendanceRepository) GetAll() ([]*attendance.Attendance, error) {
	out := make([]*attendance.Attendance, 0, len(m.records))
	for _, a := range m.records {
		out = append(out, a)
	}
	return out, nil
}

func (m *mockAttendanceRepository) GetByID(id int64) (*attendance.Attendance, error) {
	return m.records[id], nil
}

func (m *mockAttendanceRepository) GetByEmployeeID(employeeID int64) ([]*attendance.Attendance, error) {
	var out []*attendance.Attendance
	for _, a := range m.records {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepository) GetForDay(employeeID int64, day time.Time) (*attendance.Attendance, error) {
	for _, a := range m.records {
		if a.EmployeeID == employeeID && a.WorkDate.Equal(day) {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockAttendanceRepository) GetRange(from, to time.Time) ([]*attendance.Attendance, error) {
	var out []*attendance.Attendance
	for _, a := range m.records {
		if !a.WorkDate.Before(from) && !a.WorkDate.After(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepository) Create(a *attendance.Attendance) error {
	if m.createError != nil {
		return m.createError
	}
	a.ID = m.nextID
	m.nextID++
	m.records[a.ID] = a
	return nil
}

func (m *mockAttendanceRepository) Update(a *attendance.Attendance, loadedUpdatedAt time.Time) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.records[a.ID] = a
	return nil
}

func (m *mockAttendanceRepository) Delete(id int64) error {
	delete(m.records, id)
	return nil
}

type mockEmployeeDirectory struct {
	existing map[int64]bool
	err      error
}

func (m *mockEmployeeDirectory) Exists(id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.existing[id], nil
}

var _ = Describe("AttendanceService", func() {
	var (
		service   *attendance.Service
		mockRepo  *mockAttendanceRepository
		employees *mockEmployeeDirectory
		logger    *slog.Logger
		clock     time.Time
	)

	setClock := func(t time.Time) {
		clock = t
		service.WithClock(func() time.Time { return clock })
	}

	BeforeEach(func() {
		mockRepo = newMockAttendanceRepository()
		employees = &mockEmployeeDirectory{existing: map[int64]bool{1: true, 2: true}}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = attendance.NewService(mockRepo, employees, logger)
		setClock(time.Date(2025, 3, 10, 7, 45, 0, 0, time.UTC))
	})

	Describe("CheckIn", func() {
		Context("when checking in before the cutoff", func() {
			It("should create an on_time record for today", func() {
				result, err := service.CheckIn(1)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Outcome).To(Equal(attendance.OutcomeCheckedIn))
				Expect(result.Attendance.Status).To(Equal(attendance.StatusOnTime))
				Expect(result.Attendance.WorkDate).To(Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
				Expect(result.Attendance.CheckOutTime).To(BeNil())
			})
		})

		Context("when checking in at exactly 08:00:00", func() {
			It("should still count as on time", func() {
				setClock(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))

				result, err := service.CheckIn(1)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Attendance.Status).To(Equal(attendance.StatusOnTime))
			})
		})

		Context("when checking in one second past 08:00:00", func() {
			It("should count as late", func() {
				setClock(time.Date(2025, 3, 10, 8, 0, 1, 0, time.UTC))

				result, err := service.CheckIn(1)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Attendance.Status).To(Equal(attendance.StatusLate))
			})
		})

		Context("when already checked in today", func() {
			It("should report a notice instead of creating a second record", func() {
				first, err := service.CheckIn(1)
				Expect(err).ToNot(HaveOccurred())

				second, err := service.CheckIn(1)

				Expect(err).ToNot(HaveOccurred())
				Expect(second.Outcome).To(Equal(attendance.OutcomeAlreadyCheckedIn))
				Expect(second.Attendance.ID).To(Equal(first.Attendance.ID))
				Expect(mockRepo.records).To(HaveLen(1))
			})
		})

		Context("when the same employee checks in on a different day", func() {
			It("should create a fresh record", func() {
				_, err := service.CheckIn(1)
				Expect(err).ToNot(HaveOccurred())

				setClock(time.Date(2025, 3, 11, 7, 30, 0, 0, time.UTC))
				result, err := service.CheckIn(1)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Outcome).To(Equal(attendance.OutcomeCheckedIn))
				Expect(mockRepo.records).To(HaveLen(2))
			})
		})

		Context("when the employee does not exist", func() {
			It("should return not found", func() {
				result, err := service.CheckIn(99)

				Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
				Expect(result).To(BeNil())
			})
		})

		Context("when today's record exists without a check-in", func() {
			It("should fill in the existing record instead of duplicating it", func() {
				seeded := &attendance.Attendance{
					EmployeeID: 1,
					WorkDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
					Status:     attendance.StatusAbsent,
				}
				Expect(mockRepo.Create(seeded)).To(Succeed())

				result, err := service.CheckIn(1)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Outcome).To(Equal(attendance.OutcomeCheckedIn))
				Expect(result.Attendance.ID).To(Equal(seeded.ID))
				Expect(result.Attendance.CheckInTime).ToNot(BeNil())
				Expect(*result.Attendance.CheckInTime).To(Equal(clock))
				Expect(result.Attendance.Status).To(Equal(attendance.StatusOnTime))
				Expect(mockRepo.records).To(HaveLen(1))
			})
		})
	})

	Describe("CheckOut", func() {
		Context("when checked in earlier today", func() {
			It("should close the record with the current time", func() {
				_, err := service.CheckIn(1)
				Expect(err).ToNot(HaveOccurred())

				setClock(time.Date(2025, 3, 10, 17, 5, 0, 0, time.UTC))
				result, err := service.CheckOut(1)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Outcome).To(Equal(attendance.OutcomeCheckedOut))
				Expect(result.Attendance.CheckOutTime).ToNot(BeNil())
				Expect(*result.Attendance.CheckOutTime).To(Equal(clock))
			})
		})

		Context("when there is no check-in today", func() {
			It("should report not_checked_in without touching the store", func() {
				result, err := service.CheckOut(1)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Outcome).To(Equal(attendance.OutcomeNotCheckedIn))
				Expect(result.Attendance).To(BeNil())
				Expect(mockRepo.records).To(BeEmpty())
			})
		})

		Context("when today's record has no check-in", func() {
			It("should report not_checked_in", func() {
				seeded := &attendance.Attendance{
					EmployeeID: 1,
					WorkDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
					Status:     attendance.StatusLeave,
				}
				Expect(mockRepo.Create(seeded)).To(Succeed())

				result, err := service.CheckOut(1)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Outcome).To(Equal(attendance.OutcomeNotCheckedIn))
				Expect(seeded.CheckOutTime).To(BeNil())
			})
		})

		Context("when already checked out today", func() {
			It("should report a notice and keep the original check-out time", func() {
				_, err := service.CheckIn(1)
				Expect(err).ToNot(HaveOccurred())

				setClock(time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC))
				first, err := service.CheckOut(1)
				Expect(err).ToNot(HaveOccurred())
				firstOut := *first.Attendance.CheckOutTime

				setClock(time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC))
				second, err := service.CheckOut(1)

				Expect(err).ToNot(HaveOccurred())
				Expect(second.Outcome).To(Equal(attendance.OutcomeAlreadyCheckedOut))
				Expect(*second.Attendance.CheckOutTime).To(Equal(firstOut))
			})
		})
	})

	Describe("Create", func() {
		Context("when no status is supplied", func() {
			It("should derive the status from the check-in time", func() {
				checkIn := time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC)
				dto := attendance.CreateAttendanceDTO{
					EmployeeID:  1,
					WorkDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
					CheckInTime: &checkIn,
				}

				result, err := service.Create(dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Status).To(Equal(attendance.StatusLate))
			})
		})

		Context("when an explicit status is supplied", func() {
			It("should keep the supplied status", func() {
				checkIn := time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC)
				dto := attendance.CreateAttendanceDTO{
					EmployeeID:  1,
					WorkDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
					CheckInTime: &checkIn,
					Status:      attendance.StatusOnTime,
				}

				result, err := service.Create(dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Status).To(Equal(attendance.StatusOnTime))
			})
		})

		Context("when recording an absence", func() {
			It("should accept a record without a check-in time", func() {
				dto := attendance.CreateAttendanceDTO{
					EmployeeID: 1,
					WorkDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
					Status:     attendance.StatusAbsent,
				}

				result, err := service.Create(dto)

				Expect(err).ToNot(HaveOccurred())
				Expect(result.CheckInTime).To(BeNil())
				Expect(result.Status).To(Equal(attendance.StatusAbsent))
			})
		})

		Context("when neither a status nor a check-in time is given", func() {
			It("should return a validation error", func() {
				dto := attendance.CreateAttendanceDTO{
					EmployeeID: 1,
					WorkDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				}

				_, err := service.Create(dto)

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("status is required"))
			})
		})

		Context("when the status is not a known label", func() {
			It("should return a validation error", func() {
				dto := attendance.CreateAttendanceDTO{
					EmployeeID: 1,
					WorkDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
					Status:     "vacationing",
				}

				_, err := service.Create(dto)

				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Update", func() {
		Context("when the check-in time changes", func() {
			It("should recompute the status", func() {
				_, err := service.CheckIn(1)
				Expect(err).ToNot(HaveOccurred())

				late := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
				result, err := service.Update(1, attendance.UpdateAttendanceDTO{CheckInTime: &late})

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Status).To(Equal(attendance.StatusLate))
			})
		})

		Context("when the record does not exist", func() {
			It("should return not found", func() {
				_, err := service.Update(42, attendance.UpdateAttendanceDTO{})

				Expect(err).To(MatchError(internal.ErrAttendanceNotFound))
			})
		})

		Context("when the row changed underneath", func() {
			It("should surface the conflict from the repository", func() {
				_, err := service.CheckIn(1)
				Expect(err).ToNot(HaveOccurred())
				mockRepo.updateError = internal.ErrConcurrentUpdate

				late := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
				_, err = service.Update(1, attendance.UpdateAttendanceDTO{CheckInTime: &late})

				Expect(err).To(MatchError(internal.ErrConcurrentUpdate))
			})
		})
	})

	Describe("GetByID", func() {
		Context("when the record is missing", func() {
			It("should return not found", func() {
				_, err := service.GetByID(5)

				Expect(err).To(MatchError(internal.ErrAttendanceNotFound))
			})
		})

		Context("when the directory lookup fails", func() {
			It("should surface the error from check-in", func() {
				employees.err = errors.New("directory down")

				_, err := service.CheckIn(1)

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("directory down"))
			})
		})
	})
})
