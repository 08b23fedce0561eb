package web

import (
	"github.com/go-chi/chi"
	"github.com/gorilla/csrf"

	"github.com/hgiang7193/hr-management/internal/auth"
)

// Pages bundles the handlers the page router mounts.
type Pages struct {
	Auth       *AuthPages
	Home       *HomePage
	Attendance *AttendancePages
	Department *DepartmentPages
	Employee   *EmployeePages
	Position   *PositionPages
	Project    *ProjectPages
	Role       *RolePages
}

// RegisterPageRoutes mounts the server-rendered surface. Every POST is
// behind anti-forgery; everything except the login page needs a
// session, and management screens need the admin role.
func RegisterPageRoutes(r chi.Router, p *Pages, authService *auth.Service, csrfKey []byte, secureCookies bool) {
	protect := csrf.Protect(csrfKey,
		csrf.Secure(secureCookies),
		csrf.Path("/"),
	)

	r.Group(func(pages chi.Router) {
		pages.Use(protect)

		pages.Get("/Auth/Login", p.Auth.LoginForm)
		pages.Post("/Auth/Login", p.Auth.Login)

		pages.Group(func(authed chi.Router) {
			authed.Use(RequireLogin(authService))

			authed.Get("/", p.Home.Index)
			authed.Get("/Auth/Logout", p.Auth.Logout)
			authed.Post("/Auth/Logout", p.Auth.Logout)
			authed.Get("/Auth/AccessDenied", p.Auth.AccessDenied)

			authed.Get("/Attendance", p.Attendance.Index)
			authed.Get("/Attendance/Details/{id}", p.Attendance.Details)
			authed.Post("/Attendance/CheckIn", p.Attendance.CheckIn)
			authed.Post("/Attendance/CheckOut", p.Attendance.CheckOut)

			authed.Get("/Project/MyProjects", p.Project.My)

			authed.Group(func(admin chi.Router) {
				admin.Use(RequireAdminPage())

				admin.Get("/Attendance/Create", p.Attendance.CreateForm)
				admin.Post("/Attendance/Create", p.Attendance.Create)
				admin.Get("/Attendance/Edit/{id}", p.Attendance.EditForm)
				admin.Post("/Attendance/Edit/{id}", p.Attendance.Edit)
				admin.Post("/Attendance/Delete/{id}", p.Attendance.Delete)

				admin.Get("/Department", p.Department.Index)
				admin.Get("/Department/Details/{id}", p.Department.Details)
				admin.Get("/Department/Create", p.Department.CreateForm)
				admin.Post("/Department/Create", p.Department.Create)
				admin.Get("/Department/Edit/{id}", p.Department.EditForm)
				admin.Post("/Department/Edit/{id}", p.Department.Edit)
				admin.Post("/Department/Delete/{id}", p.Department.Delete)

				admin.Get("/Employee", p.Employee.Index)
				admin.Get("/Employee/Details/{id}", p.Employee.Details)
				admin.Get("/Employee/Create", p.Employee.CreateForm)
				admin.Post("/Employee/Create", p.Employee.Create)
				admin.Get("/Employee/Edit/{id}", p.Employee.EditForm)
				admin.Post("/Employee/Edit/{id}", p.Employee.Edit)
				admin.Post("/Employee/Delete/{id}", p.Employee.Delete)

				admin.Get("/Position", p.Position.Index)
				admin.Get("/Position/Details/{id}", p.Position.Details)
				admin.Get("/Position/Create", p.Position.CreateForm)
				admin.Post("/Position/Create", p.Position.Create)
				admin.Get("/Position/Edit/{id}", p.Position.EditForm)
				admin.Post("/Position/Edit/{id}", p.Position.Edit)
				admin.Post("/Position/Delete/{id}", p.Position.Delete)

				admin.Get("/Project", p.Project.Index)
				admin.Get("/Project/Details/{id}", p.Project.Details)
				admin.Get("/Project/Create", p.Project.CreateForm)
				admin.Post("/Project/Create", p.Project.Create)
				admin.Get("/Project/Edit/{id}", p.Project.EditForm)
				admin.Post("/Project/Edit/{id}", p.Project.Edit)
				admin.Post("/Project/Delete/{id}", p.Project.Delete)
				admin.Get("/Project/Assign/{id}", p.Project.AssignForm)
				admin.Post("/Project/Assign/{id}", p.Project.Assign)
				admin.Post("/Project/RemoveAssignment/{id}", p.Project.RemoveAssignment)

				admin.Get("/Role", p.Role.Index)
				admin.Get("/Role/Details/{id}", p.Role.Details)
				admin.Get("/Role/Create", p.Role.CreateForm)
				admin.Post("/Role/Create", p.Role.Create)
				admin.Get("/Role/Edit/{id}", p.Role.EditForm)
				admin.Post("/Role/Edit/{id}", p.Role.Edit)
				admin.Post("/Role/Delete/{id}", p.Role.Delete)
			})
		})
	})
}
