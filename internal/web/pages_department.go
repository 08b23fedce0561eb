package web

import (
	"net/http"

	"github.com/hgiang7193/hr-management/internal/department"
	"github.com/hgiang7193/hr-management/internal/transport"
)

type DepartmentPages struct {
	renderer *Renderer
	service  department.ServiceAPI
}

func NewDepartmentPages(renderer *Renderer, service department.ServiceAPI) *DepartmentPages {
	return &DepartmentPages{renderer: renderer, service: service}
}

func (p *DepartmentPages) Index(w http.ResponseWriter, r *http.Request) {
	departments, err := p.service.GetAll()
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	p.renderer.Render(w, r, "department/index", "Departments", departments)
}

func (p *DepartmentPages) Details(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	d, err := p.service.GetByID(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	p.renderer.Render(w, r, "department/details", d.Name, d)
}

func (p *DepartmentPages) CreateForm(w http.ResponseWriter, r *http.Request) {
	p.renderer.Render(w, r, "department/form", "New department", nil)
}

func (p *DepartmentPages) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	dto := department.CreateDepartmentDTO{
		Name:        r.PostFormValue("name"),
		Code:        r.PostFormValue("code"),
		Description: r.PostFormValue("description"),
		ParentID:    formOptionalInt64(r, "parent_id"),
		ManagerID:   formOptionalInt64(r, "manager_id"),
		Status:      r.PostFormValue("status"),
	}

	if _, err := p.service.Create(dto); err != nil {
		p.renderer.FlashError(w, r, err)
		http.Redirect(w, r, "/Department/Create", http.StatusSeeOther)
		return
	}

	p.renderer.Flash(w, r, "Department created.")
	http.Redirect(w, r, "/Department", http.StatusSeeOther)
}

func (p *DepartmentPages) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	d, err := p.service.GetByID(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	p.renderer.Render(w, r, "department/form", "Edit department", d)
}

func (p *DepartmentPages) Edit(w http.ResponseWriter, r *http.Request) {
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

	dto := department.ReplaceDepartmentDTO{
		ID:          bodyID,
		Name:        r.PostFormValue("name"),
		Code:        r.PostFormValue("code"),
		Description: r.PostFormValue("description"),
		ParentID:    formOptionalInt64(r, "parent_id"),
		ManagerID:   formOptionalInt64(r, "manager_id"),
		Status:      r.PostFormValue("status"),
	}

	if _, err := p.service.Replace(id, dto); err != nil {
		p.renderer.FlashError(w, r, err)
		http.Redirect(w, r, "/Department/Edit/"+r.PostFormValue("id"), http.StatusSeeOther)
		return
	}

	p.renderer.Flash(w, r, "Department updated.")
	http.Redirect(w, r, "/Department", http.StatusSeeOther)
}

func (p *DepartmentPages) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := p.service.Delete(id); err != nil {
		p.renderer.FlashError(w, r, err)
	} else {
		p.renderer.Flash(w, r, "Department deleted.")
	}
	http.Redirect(w, r, "/Department", http.StatusSeeOther)
}
