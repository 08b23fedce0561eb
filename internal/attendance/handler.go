package attendance

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/transport"
)

type ServiceAPI interface {
	GetAll() ([]*Attendance, error)
	GetByID(id int64) (*Attendance, error)
	GetForEmployee(employeeID int64) ([]*Attendance, error)
	CheckIn(employeeID int64) (*CheckResult, error)
	CheckOut(employeeID int64) (*CheckResult, error)
	Create(dto CreateAttendanceDTO) (*Attendance, error)
	Update(id int64, dto UpdateAttendanceDTO) (*Attendance, error)
	Delete(id int64) error
	ExportXLSX(from, to time.Time, w io.Writer) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{BaseHandler: baseHandler, Service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.GetAll()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	a, err := h.Service.GetByID(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	user, ok := internal.UserFromContext(r.Context())
	if !ok || !user.CanAccessRecordOf(a.EmployeeID) {
		h.WriteAppError(w, internal.ErrAccessDenied)
		return
	}
	h.WriteJSON(w, http.StatusOK, a)
}

// Mine lists the session user's own attendance records.
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrInvalidSession)
		return
	}

	records, err := h.Service.GetForEmployee(user.ID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, records)
}

// CheckIn opens today's record for the session user.
func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrInvalidSession)
		return
	}

	result, err := h.Service.CheckIn(user.ID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrInvalidSession)
		return
	}

	result, err := h.Service.CheckOut(user.ID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateAttendanceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.Create(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/Attendance/%d", a.ID))
	h.WriteJSON(w, http.StatusCreated, a)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var dto UpdateAttendanceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.Service.Update(id, dto); err != nil {
		h.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export streams the attendance sheet as xlsx. Optional from/to query
// params bound the date range (YYYY-MM-DD).
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var from, to time.Time
	var err error

	if v := r.URL.Query().Get("from"); v != "" {
		from, err = time.Parse("2006-01-02", v)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid from date")
			return
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		to, err = time.Parse("2006-01-02", v)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid to date")
			return
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="attendance.xlsx"`)

	if err := h.Service.ExportXLSX(from, to, w); err != nil {
		h.Logger.Error("attendance export failed", "error", err)
	}
}
