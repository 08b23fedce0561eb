package web

import (
	"net/http"

	"github.com/hgiang7193/hr-management/internal/role"
	"github.com/hgiang7193/hr-management/internal/transport"
)

type RolePages struct {
	renderer *Renderer
	service  role.ServiceAPI
}

func NewRolePages(renderer *Renderer, service role.ServiceAPI) *RolePages {
	return &RolePages{renderer: renderer, service: service}
}

func (p *RolePages) Index(w http.ResponseWriter, r *http.Request) {
	roles, err := p.service.GetAll()
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	p.renderer.Render(w, r, "role/index", "Roles", roles)
}

type roleDetailsView struct {
	Role        *role.Role
	Permissions []*role.RolePermission
}

func (p *RolePages) Details(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	rl, err := p.service.GetByID(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	perms, err := p.service.GetPermissionsForRole(id)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	p.renderer.Render(w, r, "role/details", rl.Name, roleDetailsView{Role: rl, Permissions: perms})
}

func (p *RolePages) CreateForm(w http.ResponseWriter, r *http.Request) {
	p.renderer.Render(w, r, "role/form", "New role", nil)
}

func (p *RolePages) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	dto := role.CreateRoleDTO{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
	}

	if _, err := p.service.Create(dto); err != nil {
		p.renderer.FlashError(w, r, err)
		http.Redirect(w, r, "/Role/Create", http.StatusSeeOther)
		return
	}

	p.renderer.Flash(w, r, "Role created.")
	http.Redirect(w, r, "/Role", http.StatusSeeOther)
}

func (p *RolePages) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	rl, err := p.service.GetByID(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	p.renderer.Render(w, r, "role/form", "Edit role", rl)
}

func (p *RolePages) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	bodyID, err := formInt64(r, "id")
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	dto := role.ReplaceRoleDTO{
		ID:          bodyID,
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
	}

	if _, err := p.service.Replace(id, dto); err != nil {
		p.renderer.FlashError(w, r, err)
		http.Redirect(w, r, "/Role/Edit/"+r.PostFormValue("id"), http.StatusSeeOther)
		return
	}

	p.renderer.Flash(w, r, "Role updated.")
	http.Redirect(w, r, "/Role", http.StatusSeeOther)
}

func (p *RolePages) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := p.service.Delete(id); err != nil {
		p.renderer.FlashError(w, r, err)
	} else {
		p.renderer.Flash(w, r, "Role deleted.")
	}
	http.Redirect(w, r, "/Role", http.StatusSeeOther)
}
