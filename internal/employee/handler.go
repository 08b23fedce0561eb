package employee

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/transport"
)

type ServiceAPI interface {
	GetAll() ([]*User, error)
	GetByID(id int64) (*User, error)
	Create(dto CreateEmployeeDTO) (*User, error)
	Update(id int64, dto UpdateEmployeeDTO) (*User, error)
	Replace(id int64, dto ReplaceEmployeeDTO) (*User, error)
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
	employees, err := h.Service.GetAll()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, employees)
}

// Get applies the ownership check: an employee may read their own profile,
// anything else needs the admin role.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	user, _ := internal.UserFromContext(r.Context())
	if user != nil && !user.CanAccessRecordOf(id) {
		h.WriteAppError(w, internal.ErrAccessDenied)
		return
	}

	emp, err := h.Service.GetByID(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.Create(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/Employee/%d", emp.ID))
	h.WriteJSON(w, http.StatusCreated, emp)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var dto UpdateEmployeeDTO
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
