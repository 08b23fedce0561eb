package web

import (
	"net/http"

	"github.com/hgiang7193/hr-management/internal/employee"
	"github.com/hgiang7193/hr-management/internal/transport"
)

type EmployeePages struct {
	renderer *Renderer
	service  employee.ServiceAPI
}

func NewEmployeePages(renderer *Renderer, service employee.ServiceAPI) *EmployeePages {
	return &EmployeePages{renderer: renderer, service: service}
}

func (p *EmployeePages) Index(w http.ResponseWriter, r *http.Request) {
	employees, err := p.service.GetAll()
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	p.renderer.Render(w, r, "employee/index", "Employees", employees)
}

func (p *EmployeePages) Details(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	u, err := p.service.GetByID(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	p.renderer.Render(w, r, "employee/details", u.FullName(), u)
}

func (p *EmployeePages) CreateForm(w http.ResponseWriter, r *http.Request) {
	p.renderer.Render(w, r, "employee/form", "New employee", nil)
}

func (p *EmployeePages) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	dto := employee.CreateEmployeeDTO{
		Username:     r.PostFormValue("username"),
		Email:        r.PostFormValue("email"),
		Password:     r.PostFormValue("password"),
		FirstName:    r.PostFormValue("first_name"),
		LastName:     r.PostFormValue("last_name"),
		EmployeeCode: r.PostFormValue("employee_code"),
		DepartmentID: formOptionalInt64(r, "department_id"),
		PositionID:   formOptionalInt64(r, "position_id"),
		ManagerID:    formOptionalInt64(r, "manager_id"),
		HireDate:     formOptionalDate(r, "hire_date"),
		Phone:        r.PostFormValue("phone"),
		Notes:        r.PostFormValue("notes"),
		Status:       r.PostFormValue("status"),
	}

	if _, err := p.service.Create(dto); err != nil {
		p.renderer.FlashError(w, r, err)
		http.Redirect(w, r, "/Employee/Create", http.StatusSeeOther)
		return
	}

	p.renderer.Flash(w, r, "Employee created.")
	http.Redirect(w, r, "/Employee", http.StatusSeeOther)
}

func (p *EmployeePages) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	u, err := p.service.GetByID(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	p.renderer.Render(w, r, "employee/form", "Edit employee", u)
}

func (p *EmployeePages) Edit(w http.ResponseWriter, r *http.Request) {
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

	dto := employee.ReplaceEmployeeDTO{
		ID:           bodyID,
		Username:     r.PostFormValue("username"),
		Email:        r.PostFormValue("email"),
		FirstName:    r.PostFormValue("first_name"),
		LastName:     r.PostFormValue("last_name"),
		EmployeeCode: r.PostFormValue("employee_code"),
		DepartmentID: formOptionalInt64(r, "department_id"),
		PositionID:   formOptionalInt64(r, "position_id"),
		ManagerID:    formOptionalInt64(r, "manager_id"),
		HireDate:     formOptionalDate(r, "hire_date"),
		Phone:        r.PostFormValue("phone"),
		Notes:        r.PostFormValue("notes"),
		Status:       r.PostFormValue("status"),
	}

	if _, err := p.service.Replace(id, dto); err != nil {
		p.renderer.FlashError(w, r, err)
		http.Redirect(w, r, "/Employee/Edit/"+r.PostFormValue("id"), http.StatusSeeOther)
		return
	}

	p.renderer.Flash(w, r, "Employee updated.")
	http.Redirect(w, r, "/Employee", http.StatusSeeOther)
}

func (p *EmployeePages) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := p.service.Delete(id); err != nil {
		p.renderer.FlashError(w, r, err)
	} else {
		p.renderer.Flash(w, r, "Employee deleted.")
	}
	http.Redirect(w, r, "/Employee", http.StatusSeeOther)
}
