package web_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/attendance"
	"github.com/hgiang7193/hr-management/internal/web"
)

func TestAttendancePages(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Attendance Pages Suite")
}

type stubAttendanceService struct {
	record *attendance.Attendance
}

func (s *stubAttendanceService) GetAll() ([]*attendance.Attendance, error) {
	return []*attendance.Attendance{s.record}, nil
}

func (s *stubAttendanceService) GetByID(id int64) (*attendance.Attendance, error) {
	if s.record == nil || s.record.ID != id {
		return nil, internal.ErrAttendanceNotFound
	}
	return s.record, nil
}

func (s *stubAttendanceService) GetForEmployee(employeeID int64) ([]*attendance.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceService) CheckIn(employeeID int64) (*attendance.CheckResult, error) {
	return &attendance.CheckResult{Outcome: attendance.OutcomeCheckedIn}, nil
}

func (s *stubAttendanceService) CheckOut(employeeID int64) (*attendance.CheckResult, error) {
	return &attendance.CheckResult{Outcome: attendance.OutcomeCheckedOut}, nil
}

func (s *stubAttendanceService) Create(dto attendance.CreateAttendanceDTO) (*attendance.Attendance, error) {
	return s.record, nil
}

func (s *stubAttendanceService) Update(id int64, dto attendance.UpdateAttendanceDTO) (*attendance.Attendance, error) {
	return s.record, nil
}

func (s *stubAttendanceService) Delete(id int64) error {
	return nil
}

func (s *stubAttendanceService) ExportXLSX(from, to time.Time, w io.Writer) error {
	return nil
}

var _ = Describe("AttendancePages", func() {
	var (
		router  *chi.Mux
		service *stubAttendanceService
	)

	get := func(path string, user *internal.SessionUser) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if user != nil {
			req = req.WithContext(internal.ContextWithUser(req.Context(), user))
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		renderer, err := web.NewRenderer("a-session-secret-of-decent-length", false, logger)
		Expect(err).ToNot(HaveOccurred())

		checkIn := time.Date(2025, 3, 10, 7, 50, 0, 0, time.UTC)
		service = &stubAttendanceService{record: &attendance.Attendance{
			ID:          7,
			EmployeeID:  5,
			WorkDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			CheckInTime: &checkIn,
			Status:      attendance.StatusOnTime,
		}}

		pages := web.NewAttendancePages(renderer, service)
		router = chi.NewRouter()
		router.Get("/Attendance/Details/{id}", pages.Details)
	})

	Describe("Details", func() {
		Context("when the owning employee opens their record", func() {
			It("should render the page", func() {
				w := get("/Attendance/Details/7", &internal.SessionUser{ID: 5, Roles: []string{"employee"}})

				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("on_time"))
			})
		})

		Context("when an admin opens someone else's record", func() {
			It("should render the page", func() {
				w := get("/Attendance/Details/7", &internal.SessionUser{ID: 1, Roles: []string{"admin"}})

				Expect(w.Code).To(Equal(http.StatusOK))
			})
		})

		Context("when another employee opens the record", func() {
			It("should redirect to the access denied page", func() {
				w := get("/Attendance/Details/7", &internal.SessionUser{ID: 9, Roles: []string{"employee"}})

				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(w.Header().Get("Location")).To(Equal("/Auth/AccessDenied"))
			})
		})

		Context("when the record does not exist", func() {
			It("should return 404", func() {
				w := get("/Attendance/Details/99", &internal.SessionUser{ID: 1, Roles: []string{"admin"}})

				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
