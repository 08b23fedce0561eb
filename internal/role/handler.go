package role

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hgiang7193/hr-management/internal/transport"
)

type ServiceAPI interface {
	GetAll() ([]*Role, error)
	GetByID(id int64) (*Role, error)
	Create(dto CreateRoleDTO) (*Role, error)
	Update(id int64, dto UpdateRoleDTO) (*Role, error)
	Replace(id int64, dto ReplaceRoleDTO) (*Role, error)
	Delete(id int64) error

	GetUserRoles() ([]*UserRole, error)
	GetUserRoleByID(id int64) (*UserRole, error)
	GetRolesForUser(userID int64) ([]*UserRole, error)
	AssignRole(dto CreateUserRoleDTO) (*UserRole, error)
	RemoveUserRole(id int64) error
	RemoveUserRoleByPair(userID, roleID int64) error

	GetRolePermissions() ([]*RolePermission, error)
	GetRolePermissionByID(id int64) (*RolePermission, error)
	GetPermissionsForRole(roleID int64) ([]*RolePermission, error)
	GrantPermission(dto CreateRolePermissionDTO) (*RolePermission, error)
	RevokeRolePermission(id int64) error
	RevokeRolePermissionByPair(roleID, permissionID int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{BaseHandler: baseHandler, Service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.Service.GetAll()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, roles)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	role, err := h.Service.GetByID(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, role)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateRoleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	role, err := h.Service.Create(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/Role/%d", role.ID))
	h.WriteJSON(w, http.StatusCreated, role)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var dto UpdateRoleDTO
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

// --- user role assignments ---

func (h *Handler) ListUserRoles(w http.ResponseWriter, r *http.Request) {
	userRoles, err := h.Service.GetUserRoles()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, userRoles)
}

func (h *Handler) GetUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ur, err := h.Service.GetUserRoleByID(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, ur)
}

func (h *Handler) ListRolesForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := transport.URLID(r, "userId")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	userRoles, err := h.Service.GetRolesForUser(userID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, userRoles)
}

func (h *Handler) CreateUserRole(w http.ResponseWriter, r *http.Request) {
	var dto CreateUserRoleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ur, err := h.Service.AssignRole(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/UserRole/%d", ur.ID))
	h.WriteJSON(w, http.StatusCreated, ur)
}

func (h *Handler) DeleteUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.Service.RemoveUserRole(id); err != nil {
		h.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteUserRoleByPair(w http.ResponseWriter, r *http.Request) {
	userID, err := transport.URLID(r, "userId")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	roleID, err := transport.URLID(r, "roleId")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid role id")
		return
	}

	if err := h.Service.RemoveUserRoleByPair(userID, roleID); err != nil {
		h.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- role permission assignments ---

func (h *Handler) ListRolePermissions(w http.ResponseWriter, r *http.Request) {
	rolePerms, err := h.Service.GetRolePermissions()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, rolePerms)
}

func (h *Handler) GetRolePermission(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	rp, err := h.Service.GetRolePermissionByID(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, rp)
}

func (h *Handler) ListPermissionsForRole(w http.ResponseWriter, r *http.Request) {
	roleID, err := transport.URLID(r, "roleId")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid role id")
		return
	}

	rolePerms, err := h.Service.GetPermissionsForRole(roleID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, rolePerms)
}

func (h *Handler) CreateRolePermission(w http.ResponseWriter, r *http.Request) {
	var dto CreateRolePermissionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rp, err := h.Service.GrantPermission(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/RolePermission/%d", rp.ID))
	h.WriteJSON(w, http.StatusCreated, rp)
}

func (h *Handler) DeleteRolePermission(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.Service.RevokeRolePermission(id); err != nil {
		h.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteRolePermissionByPair(w http.ResponseWriter, r *http.Request) {
	roleID, err := transport.URLID(r, "roleId")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid role id")
		return
	}
	permissionID, err := transport.URLID(r, "permissionId")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid permission id")
		return
	}

	if err := h.Service.RevokeRolePermissionByPair(roleID, permissionID); err != nil {
		h.WriteAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
