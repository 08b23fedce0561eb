package leave_test

import (
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/leave"
)

func TestLeaveService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Leave Service Suite")
}

type mockLeaveRepository struct {
	requests map[int64]*leave.Request
	nextID   int64
}

func newMockLeaveRepository() *mockLeaveRepository {
	return &mockLeaveRepository{requests: make(map[int64]*leave.Request), nextID: 1}
}

func (m *mockLeaveRepository) GetAll() ([]*leave.Request, error) {
	out := make([]*leave.Request, 0, len(m.requests))
	for _, r := range m.requests {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockLeaveRepository) GetByID(id int64) (*leave.Request, error) {
	return m.requests[id], nil
}

func (m *mockLeaveRepository) GetByEmployeeID(employeeID int64) ([]*leave.Request, error) {
	var out []*leave.Request
	for _, r := range m.requests {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockLeaveRepository) Create(req *leave.Request) error {
	req.ID = m.nextID
	m.nextID++
	m.requests[req.ID] = req
	return nil
}

func (m *mockLeaveRepository) Update(req *leave.Request, loadedUpdatedAt time.Time) error {
	m.requests[req.ID] = req
	return nil
}

func (m *mockLeaveRepository) Delete(id int64) error {
	delete(m.requests, id)
	return nil
}

type mockEmployeeDirectory struct {
	existing map[int64]bool
}

func (m *mockEmployeeDirectory) Exists(id int64) (bool, error) {
	return m.existing[id], nil
}

var _ = Describe("LeaveService", func() {
	var (
		service  *leave.Service
		mockRepo *mockLeaveRepository
	)

	newRequest := func() *leave.Request {
		req, err := service.Create(leave.CreateLeaveRequestDTO{
			EmployeeID: 1,
			StartDate:  time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
			LeaveType:  "annual",
			Reason:     "family trip",
		})
		Expect(err).ToNot(HaveOccurred())
		return req
	}

	BeforeEach(func() {
		mockRepo = newMockLeaveRepository()
		employees := &mockEmployeeDirectory{existing: map[int64]bool{1: true}}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = leave.NewService(mockRepo, employees, logger)
	})

	Describe("Create", func() {
		It("should start requests in pending status", func() {
			req := newRequest()

			Expect(req.Status).To(Equal(leave.StatusPending))
			Expect(req.ReviewedBy).To(BeNil())
			Expect(req.ReviewedAt).To(BeNil())
		})

		Context("when end date precedes start date", func() {
			It("should return a validation error", func() {
				_, err := service.Create(leave.CreateLeaveRequestDTO{
					EmployeeID: 1,
					StartDate:  time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
					EndDate:    time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
					LeaveType:  "annual",
				})

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("end date"))
			})
		})

		Context("when the leave type is free-form", func() {
			It("should accept any short label", func() {
				req, err := service.Create(leave.CreateLeaveRequestDTO{
					EmployeeID: 1,
					StartDate:  time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
					EndDate:    time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
					LeaveType:  "personal",
				})

				Expect(err).ToNot(HaveOccurred())
				Expect(req.LeaveType).To(Equal("personal"))
			})
		})

		Context("when the leave type exceeds 50 characters", func() {
			It("should return a validation error", func() {
				_, err := service.Create(leave.CreateLeaveRequestDTO{
					EmployeeID: 1,
					StartDate:  time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
					EndDate:    time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
					LeaveType:  strings.Repeat("x", 51),
				})

				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Approve", func() {
		It("should stamp the reviewer and time on a pending request", func() {
			req := newRequest()

			result, err := service.Approve(req.ID, 42)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(leave.StatusApproved))
			Expect(result.ReviewedBy).ToNot(BeNil())
			Expect(*result.ReviewedBy).To(Equal(int64(42)))
			Expect(result.ReviewedAt).ToNot(BeNil())
		})

		Context("when the request was already reviewed", func() {
			It("should refuse a second review", func() {
				req := newRequest()
				_, err := service.Approve(req.ID, 42)
				Expect(err).ToNot(HaveOccurred())

				_, err = service.Reject(req.ID, 43)

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("already been reviewed"))
			})
		})

		Context("when the request does not exist", func() {
			It("should return not found", func() {
				_, err := service.Approve(999, 42)

				Expect(err).To(MatchError(internal.ErrLeaveNotFound))
			})
		})
	})

	Describe("Reject", func() {
		It("should move a pending request to rejected", func() {
			req := newRequest()

			result, err := service.Reject(req.ID, 42)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(leave.StatusRejected))
		})
	})

	Describe("Update", func() {
		It("should edit fields while the request is pending", func() {
			req := newRequest()
			newEnd := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)

			result, err := service.Update(req.ID, leave.UpdateLeaveRequestDTO{EndDate: &newEnd})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.EndDate).To(Equal(newEnd))
		})

		Context("when the request has been reviewed", func() {
			It("should refuse the edit", func() {
				req := newRequest()
				_, err := service.Approve(req.ID, 42)
				Expect(err).ToNot(HaveOccurred())

				newEnd := time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC)
				_, err = service.Update(req.ID, leave.UpdateLeaveRequestDTO{EndDate: &newEnd})

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("pending"))
			})
		})

		Context("when the edit would invert the date range", func() {
			It("should return a validation error", func() {
				req := newRequest()
				badEnd := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

				_, err := service.Update(req.ID, leave.UpdateLeaveRequestDTO{EndDate: &badEnd})

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("end date"))
			})
		})
	})
})
