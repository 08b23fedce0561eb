package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/hgiang7193/hr-management/internal/attendance"
	"github.com/hgiang7193/hr-management/internal/auth"
	"github.com/hgiang7193/hr-management/internal/department"
	"github.com/hgiang7193/hr-management/internal/employee"
	"github.com/hgiang7193/hr-management/internal/leave"
	"github.com/hgiang7193/hr-management/internal/permission"
	"github.com/hgiang7193/hr-management/internal/position"
	"github.com/hgiang7193/hr-management/internal/project"
	"github.com/hgiang7193/hr-management/internal/role"
	"github.com/hgiang7193/hr-management/internal/shift"
	"github.com/hgiang7193/hr-management/internal/transport/middleware"
	"github.com/hgiang7193/hr-management/internal/transport/swagger"
	"github.com/hgiang7193/hr-management/internal/worklog"
)

// Handlers bundles everything the API router mounts.
type Handlers struct {
	Auth       *auth.Handler
	Employee   *employee.Handler
	Department *department.Handler
	Position   *position.Handler
	Role       *role.Handler
	Permission *permission.Handler
	Project    *project.Handler
	Attendance *attendance.Handler
	Leave      *leave.Handler
	Worklog    *worklog.Handler
	Shift      *shift.Handler
	Health     *HealthHandler
}

// RegisterRoutes mounts the JSON API. Everything under /api except the
// login endpoint requires a session; admin-only groups are guarded per
// route group.
func RegisterRoutes(r *chi.Mux, h *Handlers, logger *slog.Logger, allowedOrigins string) {
	rbac := auth.NewRBACAuthorization(logger)

	r.Use(middleware.RequestID)
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.CORS(allowedOrigins))

	r.Get("/ping", h.Health.PingHandler)
	r.Get("/healthz", h.Health.HealthCheckHandler)
	r.Mount("/swagger", swagger.Handler())
	r.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "api/openapi.yml")
	})

	r.Route("/api", func(api chi.Router) {
		api.Post("/Auth/login", h.Auth.Login)

		api.Group(func(authed chi.Router) {
			authed.Use(h.Auth.AuthMiddleware)

			authed.Post("/Auth/logout", h.Auth.Logout)

			// self-service endpoints, any signed-in employee
			authed.Post("/Attendance/check-in", h.Attendance.CheckIn)
			authed.Post("/Attendance/check-out", h.Attendance.CheckOut)
			authed.Get("/Attendance/mine", h.Attendance.Mine)
			authed.Get("/Attendance/{id}", h.Attendance.Get)
			authed.Get("/Project/mine", h.Project.Mine)
			authed.Get("/ProjectAssignment/mine", h.Project.MyAssignments)
			authed.Get("/LeaveRequest/mine", h.Leave.Mine)
			authed.Post("/LeaveRequest", h.Leave.Create)
			authed.Get("/LeaveRequest/{id}", h.Leave.Get)
			authed.Put("/LeaveRequest/{id}", h.Leave.Update)
			authed.Delete("/LeaveRequest/{id}", h.Leave.Delete)
			authed.Get("/Worklog/mine", h.Worklog.Mine)
			authed.Post("/Worklog", h.Worklog.Create)
			authed.Get("/Worklog/{id}", h.Worklog.Get)
			authed.Put("/Worklog/{id}", h.Worklog.Update)
			authed.Delete("/Worklog/{id}", h.Worklog.Delete)
			authed.Get("/Employee/{id}", h.Employee.Get)

			// reference data readable by everyone signed in
			authed.Get("/Department", h.Department.List)
			authed.Get("/Department/{id}", h.Department.Get)
			authed.Get("/Position", h.Position.List)
			authed.Get("/Position/{id}", h.Position.Get)
			authed.Get("/Project", h.Project.List)
			authed.Get("/Project/{id}", h.Project.Get)
			authed.Get("/Shift", h.Shift.List)
			authed.Get("/Shift/{id}", h.Shift.Get)

			authed.Group(func(admin chi.Router) {
				admin.Use(rbac.RequireAdmin())

				admin.Get("/Employee", h.Employee.List)
				admin.Post("/Employee", h.Employee.Create)
				admin.Put("/Employee/{id}", h.Employee.Update)
				admin.Delete("/Employee/{id}", h.Employee.Delete)

				admin.Post("/Department", h.Department.Create)
				admin.Put("/Department/{id}", h.Department.Update)
				admin.Delete("/Department/{id}", h.Department.Delete)

				admin.Post("/Position", h.Position.Create)
				admin.Put("/Position/{id}", h.Position.Update)
				admin.Delete("/Position/{id}", h.Position.Delete)

				admin.Get("/Role", h.Role.List)
				admin.Post("/Role", h.Role.Create)
				admin.Get("/Role/{id}", h.Role.Get)
				admin.Put("/Role/{id}", h.Role.Update)
				admin.Delete("/Role/{id}", h.Role.Delete)

				admin.Get("/Permission", h.Permission.List)
				admin.Post("/Permission", h.Permission.Create)
				admin.Get("/Permission/{id}", h.Permission.Get)
				admin.Put("/Permission/{id}", h.Permission.Update)
				admin.Delete("/Permission/{id}", h.Permission.Delete)

				admin.Get("/UserRole", h.Role.ListUserRoles)
				admin.Post("/UserRole", h.Role.CreateUserRole)
				admin.Get("/UserRole/{id}", h.Role.GetUserRole)
				admin.Delete("/UserRole/{id}", h.Role.DeleteUserRole)
				admin.Get("/UserRole/user/{userId}", h.Role.ListRolesForUser)
				admin.Delete("/UserRole/user/{userId}/role/{roleId}", h.Role.DeleteUserRoleByPair)

				admin.Get("/RolePermission", h.Role.ListRolePermissions)
				admin.Post("/RolePermission", h.Role.CreateRolePermission)
				admin.Get("/RolePermission/{id}", h.Role.GetRolePermission)
				admin.Delete("/RolePermission/{id}", h.Role.DeleteRolePermission)
				admin.Get("/RolePermission/role/{roleId}", h.Role.ListPermissionsForRole)
				admin.Delete("/RolePermission/role/{roleId}/permission/{permissionId}", h.Role.DeleteRolePermissionByPair)

				admin.Post("/Project", h.Project.Create)
				admin.Put("/Project/{id}", h.Project.Update)
				admin.Delete("/Project/{id}", h.Project.Delete)

				admin.Get("/ProjectAssignment", h.Project.ListAssignments)
				admin.Post("/ProjectAssignment", h.Project.CreateAssignment)
				admin.Get("/ProjectAssignment/{id}", h.Project.GetAssignment)
				admin.Put("/ProjectAssignment/{id}", h.Project.UpdateAssignment)
				admin.Delete("/ProjectAssignment/{id}", h.Project.DeleteAssignment)
				admin.Get("/ProjectAssignment/project/{projectId}", h.Project.ListAssignmentsForProject)

				admin.Get("/Attendance", h.Attendance.List)
				admin.Post("/Attendance", h.Attendance.Create)
				admin.Put("/Attendance/{id}", h.Attendance.Update)
				admin.Delete("/Attendance/{id}", h.Attendance.Delete)
				admin.Get("/Attendance/export", h.Attendance.Export)

				admin.Get("/LeaveRequest", h.Leave.List)
				admin.Post("/LeaveRequest/{id}/approve", h.Leave.Approve)
				admin.Post("/LeaveRequest/{id}/reject", h.Leave.Reject)

				admin.Get("/Worklog", h.Worklog.List)

				admin.Post("/Shift", h.Shift.Create)
				admin.Put("/Shift/{id}", h.Shift.Update)
				admin.Delete("/Shift/{id}", h.Shift.Delete)
			})
		})
	})
}
