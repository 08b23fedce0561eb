package worklog

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/transport"
)

type ServiceAPI interface {
	GetAll() ([]*Worklog, error)
	GetByID(id int64) (*Worklog, error)
	GetForEmployee(employeeID int64) ([]*Worklog, error)
	Create(dto CreateWorklogDTO) (*Worklog, error)
	Update(id int64, dto UpdateWorklogDTO) (*Worklog, error)
	Delete(id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{BaseHandler: baseHandler, Service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	worklogs, err := h.Service.GetAll()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, worklogs)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	wl, err := h.Service.GetByID(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	user, ok := internal.UserFromContext(r.Context())
	if !ok || !user.CanAccessRecordOf(wl.EmployeeID) {
		h.WriteAppError(w, internal.ErrAccessDenied)
		return
	}
	h.WriteJSON(w, http.StatusOK, wl)
}

// Mine lists the session user's own worklogs.
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrInvalidSession)
		return
	}

	worklogs, err := h.Service.GetForEmployee(user.ID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, worklogs)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateWorklogDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// non-admins may only file worklogs for themselves
	user, ok := internal.UserFromContext(r.Context())
	if !ok || !user.CanAccessRecordOf(dto.EmployeeID) {
		h.WriteAppError(w, internal.ErrAccessDenied)
		return
	}

	wl, err := h.Service.Create(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/Worklog/%d", wl.ID))
	h.WriteJSON(w, http.StatusCreated, wl)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var dto UpdateWorklogDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wl, err := h.Service.GetByID(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	user, ok := internal.UserFromContext(r.Context())
	if !ok || !user.CanAccessRecordOf(wl.EmployeeID) {
		h.WriteAppError(w, internal.ErrAccessDenied)
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

	wl, err := h.Service.GetByID(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	user, ok := internal.UserFromContext(r.Context())
	if !ok || !user.CanAccessRecordOf(wl.EmployeeID) {
		h.WriteAppError(w, internal.ErrAccessDenied)
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
