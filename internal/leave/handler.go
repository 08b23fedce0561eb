package leave

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/transport"
)

type ServiceAPI interface {
	GetAll() ([]*Request, error)
	GetByID(id int64) (*Request, error)
	GetForEmployee(employeeID int64) ([]*Request, error)
	Create(dto CreateLeaveRequestDTO) (*Request, error)
	Update(id int64, dto UpdateLeaveRequestDTO) (*Request, error)
	Approve(id, reviewerID int64) (*Request, error)
	Reject(id, reviewerID int64) (*Request, error)
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
	requests, err := h.Service.GetAll()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, requests)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	req, err := h.Service.GetByID(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	user, ok := internal.UserFromContext(r.Context())
	if !ok || !user.CanAccessRecordOf(req.EmployeeID) {
		h.WriteAppError(w, internal.ErrAccessDenied)
		return
	}
	h.WriteJSON(w, http.StatusOK, req)
}

// Mine lists the session user's own leave requests.
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrInvalidSession)
		return
	}

	requests, err := h.Service.GetForEmployee(user.ID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, requests)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateLeaveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// non-admins may only request leave for themselves
	user, ok := internal.UserFromContext(r.Context())
	if !ok || !user.CanAccessRecordOf(dto.EmployeeID) {
		h.WriteAppError(w, internal.ErrAccessDenied)
		return
	}

	req, err := h.Service.Create(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/LeaveRequest/%d", req.ID))
	h.WriteJSON(w, http.StatusCreated, req)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var dto UpdateLeaveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.GetByID(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	user, ok := internal.UserFromContext(r.Context())
	if !ok || !user.CanAccessRecordOf(req.EmployeeID) {
		h.WriteAppError(w, internal.ErrAccessDenied)
		return
	}

	if _, err := h.Service.Update(id, dto); err != nil {
		h.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.Service.Approve)
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.Service.Reject)
}

func (h *Handler) review(w http.ResponseWriter, r *http.Request, fn func(id, reviewerID int64) (*Request, error)) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	user, ok := internal.UserFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrInvalidSession)
		return
	}

	req, err := fn(id, user.ID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	req, err := h.Service.GetByID(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	user, ok := internal.UserFromContext(r.Context())
	if !ok || !user.CanAccessRecordOf(req.EmployeeID) {
		h.WriteAppError(w, internal.ErrAccessDenied)
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
