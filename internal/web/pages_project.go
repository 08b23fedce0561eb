package web

import (
	"net/http"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/project"
	"github.com/hgiang7193/hr-management/internal/transport"
)

type ProjectPages struct {
	renderer *Renderer
	service  project.ServiceAPI
}

func NewProjectPages(renderer *Renderer, service project.ServiceAPI) *ProjectPages {
	return &ProjectPages{renderer: renderer, service: service}
}

func (p *ProjectPages) Index(w http.ResponseWriter, r *http.Request) {
	projects, err := p.service.GetAll()
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	p.renderer.Render(w, r, "project/index", "Projects", projects)
}

type projectDetailsView struct {
	Project     *project.Project
	Assignments []*project.Assignment
}

func (p *ProjectPages) Details(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	pr, err := p.service.GetByID(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	assignments, err := p.service.GetAssignmentsForProject(id)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	p.renderer.Render(w, r, "project/details", pr.Name, projectDetailsView{Project: pr, Assignments: assignments})
}

// My lists the projects the signed-in employee is assigned to.
func (p *ProjectPages) My(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok {
		redirectToLogin(w, r)
		return
	}

	projects, err := p.service.GetForEmployee(user.ID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	p.renderer.Render(w, r, "project/my", "My projects", projects)
}

func (p *ProjectPages) CreateForm(w http.ResponseWriter, r *http.Request) {
	p.renderer.Render(w, r, "project/form", "New project", nil)
}

func (p *ProjectPages) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	dto := project.CreateProjectDTO{
		Name:             r.PostFormValue("name"),
		Code:             r.PostFormValue("code"),
		Description:      r.PostFormValue("description"),
		StartDate:        formOptionalDate(r, "start_date"),
		EndDate:          formOptionalDate(r, "end_date"),
		Status:           r.PostFormValue("status"),
		ProjectType:      r.PostFormValue("project_type"),
		ProjectManagerID: formOptionalInt64(r, "project_manager_id"),
	}

	if _, err := p.service.Create(dto); err != nil {
		p.renderer.FlashError(w, r, err)
		http.Redirect(w, r, "/Project/Create", http.StatusSeeOther)
		return
	}

	p.renderer.Flash(w, r, "Project created.")
	http.Redirect(w, r, "/Project", http.StatusSeeOther)
}

func (p *ProjectPages) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	pr, err := p.service.GetByID(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	p.renderer.Render(w, r, "project/form", "Edit project", pr)
}

func (p *ProjectPages) Edit(w http.ResponseWriter, r *http.Request) {
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

	dto := project.ReplaceProjectDTO{
		ID:               bodyID,
		Name:             r.PostFormValue("name"),
		Code:             r.PostFormValue("code"),
		Description:      r.PostFormValue("description"),
		StartDate:        formOptionalDate(r, "start_date"),
		EndDate:          formOptionalDate(r, "end_date"),
		Status:           r.PostFormValue("status"),
		ProjectType:      r.PostFormValue("project_type"),
		ProjectManagerID: formOptionalInt64(r, "project_manager_id"),
	}

	if _, err := p.service.Replace(id, dto); err != nil {
		p.renderer.FlashError(w, r, err)
		http.Redirect(w, r, "/Project/Edit/"+r.PostFormValue("id"), http.StatusSeeOther)
		return
	}

	p.renderer.Flash(w, r, "Project updated.")
	http.Redirect(w, r, "/Project", http.StatusSeeOther)
}

func (p *ProjectPages) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := p.service.Delete(id); err != nil {
		p.renderer.FlashError(w, r, err)
	} else {
		p.renderer.Flash(w, r, "Project deleted.")
	}
	http.Redirect(w, r, "/Project", http.StatusSeeOther)
}

// AssignForm shows the assignment form for a project.
func (p *ProjectPages) AssignForm(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	pr, err := p.service.GetByID(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	p.renderer.Render(w, r, "project/assign", "Assign employee", pr)
}

func (p *ProjectPages) Assign(w http.ResponseWriter, r *http.Request) {
	projectID, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	employeeID, err := formInt64(r, "employee_id")
	if err != nil {
		p.renderer.Flash(w, r, "Employee is required.")
		http.Redirect(w, r, "/Project/Assign/"+formatID(projectID), http.StatusSeeOther)
		return
	}

	dto := project.CreateAssignmentDTO{
		EmployeeID:    employeeID,
		ProjectID:     projectID,
		RoleInProject: r.PostFormValue("role_in_project"),
		AssignedDate:  formOptionalDate(r, "assigned_date"),
		EndDate:       formOptionalDate(r, "end_date"),
	}

	if _, err := p.service.Assign(dto); err != nil {
		p.renderer.FlashError(w, r, err)
	} else {
		p.renderer.Flash(w, r, "Employee assigned.")
	}
	http.Redirect(w, r, "/Project/Details/"+formatID(projectID), http.StatusSeeOther)
}

func (p *ProjectPages) RemoveAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := transport.URLID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	a, err := p.service.GetAssignmentByID(id)
	if err != nil {
		p.renderer.FlashError(w, r, err)
		http.Redirect(w, r, "/Project", http.StatusSeeOther)
		return
	}

	if err := p.service.RemoveAssignment(id); err != nil {
		p.renderer.FlashError(w, r, err)
	} else {
		p.renderer.Flash(w, r, "Assignment removed.")
	}
	http.Redirect(w, r, "/Project/Details/"+formatID(a.ProjectID), http.StatusSeeOther)
}
