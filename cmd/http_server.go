package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/attendance"
	attendancerepo "github.com/hgiang7193/hr-management/internal/attendance/postgres"
	"github.com/hgiang7193/hr-management/internal/auth"
	authrepo "github.com/hgiang7193/hr-management/internal/auth/postgres"
	"github.com/hgiang7193/hr-management/internal/department"
	departmentrepo "github.com/hgiang7193/hr-management/internal/department/postgres"
	"github.com/hgiang7193/hr-management/internal/employee"
	employeerepo "github.com/hgiang7193/hr-management/internal/employee/postgres"
	"github.com/hgiang7193/hr-management/internal/leave"
	leaverepo "github.com/hgiang7193/hr-management/internal/leave/postgres"
	"github.com/hgiang7193/hr-management/internal/permission"
	permissionrepo "github.com/hgiang7193/hr-management/internal/permission/postgres"
	"github.com/hgiang7193/hr-management/internal/position"
	positionrepo "github.com/hgiang7193/hr-management/internal/position/postgres"
	"github.com/hgiang7193/hr-management/internal/project"
	projectrepo "github.com/hgiang7193/hr-management/internal/project/postgres"
	"github.com/hgiang7193/hr-management/internal/role"
	rolerepo "github.com/hgiang7193/hr-management/internal/role/postgres"
	"github.com/hgiang7193/hr-management/internal/shift"
	shiftrepo "github.com/hgiang7193/hr-management/internal/shift/postgres"
	"github.com/hgiang7193/hr-management/internal/transport"
	"github.com/hgiang7193/hr-management/internal/transport/rest"
	"github.com/hgiang7193/hr-management/internal/web"
	"github.com/hgiang7193/hr-management/internal/worklog"
	worklogrepo "github.com/hgiang7193/hr-management/internal/worklog/postgres"
	"github.com/hgiang7193/hr-management/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server for the page surface and the JSON API`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Env)
	lg := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	router := chi.NewRouter()
	base := transport.NewBaseHandler(lg)

	// repositories
	employeeRepo := employeerepo.NewEmployeeRepository(gormDB)
	departmentRepo := departmentrepo.NewDepartmentRepository(gormDB)
	positionRepo := positionrepo.NewPositionRepository(gormDB)
	shiftRepo := shiftrepo.NewShiftRepository(gormDB)
	permissionRepo := permissionrepo.NewPermissionRepository(gormDB)
	roleRepo := rolerepo.NewRoleRepository(gormDB)
	userRoleRepo := rolerepo.NewUserRoleRepository(gormDB)
	rolePermRepo := rolerepo.NewRolePermissionRepository(gormDB)
	projectRepo := projectrepo.NewProjectRepository(gormDB)
	assignmentRepo := projectrepo.NewAssignmentRepository(gormDB)
	attendanceRepo := attendancerepo.NewAttendanceRepository(gormDB)
	leaveRepo := leaverepo.NewLeaveRepository(gormDB)
	worklogRepo := worklogrepo.NewWorklogRepository(gormDB)
	authRepo := authrepo.NewAuthRepository(gormDB)

	// services
	authService := auth.NewService(authRepo, lg,
		config.Security.SessionSecret,
		config.Security.SessionDuration,
		config.Security.BCryptCost)
	employeeService := employee.NewService(employeeRepo, authService, lg)
	departmentService := department.NewService(departmentRepo, lg)
	positionService := position.NewService(positionRepo, lg)
	shiftService := shift.NewService(shiftRepo, lg)
	permissionService := permission.NewService(permissionRepo, lg)
	roleService := role.NewService(roleRepo, userRoleRepo, rolePermRepo, employeeRepo, permissionRepo, lg)
	projectService := project.NewService(projectRepo, assignmentRepo, employeeRepo, worklogRepo, lg)
	attendanceService := attendance.NewService(attendanceRepo, employeeRepo, lg)
	leaveService := leave.NewService(leaveRepo, employeeRepo, lg)
	worklogService := worklog.NewService(worklogRepo, employeeRepo, assignmentRepo, lg)

	// API handlers
	authHandler := auth.NewHandler(authService, config.Security.SecureCookies)
	handlers := &rest.Handlers{
		Auth:       authHandler,
		Employee:   employee.NewHandler(base, employeeService),
		Department: department.NewHandler(base, departmentService),
		Position:   position.NewHandler(base, positionService),
		Role:       role.NewHandler(base, roleService),
		Permission: permission.NewHandler(base, permissionService),
		Project:    project.NewHandler(base, projectService),
		Attendance: attendance.NewHandler(base, attendanceService),
		Leave:      leave.NewHandler(base, leaveService),
		Worklog:    worklog.NewHandler(base, worklogService),
		Shift:      shift.NewHandler(base, shiftService),
		Health:     rest.NewHealthHandler(db.DB),
	}
	rest.RegisterRoutes(router, handlers, lg, config.Server.AllowedOrigins)

	// page surface
	renderer, err := web.NewRenderer(config.Security.SessionSecret, config.Security.SecureCookies, lg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize page renderer: %w", err)
	}
	pages := &web.Pages{
		Auth:       web.NewAuthPages(renderer, authHandler),
		Home:       web.NewHomePage(renderer),
		Attendance: web.NewAttendancePages(renderer, attendanceService),
		Department: web.NewDepartmentPages(renderer, departmentService),
		Employee:   web.NewEmployeePages(renderer, employeeService),
		Position:   web.NewPositionPages(renderer, positionService),
		Project:    web.NewProjectPages(renderer, projectService),
		Role:       web.NewRolePages(renderer, roleService),
	}
	web.RegisterPageRoutes(router, pages, authService, []byte(config.Security.CSRFKey), config.Security.SecureCookies)

	return &Dependencies{
		Config: config,
		Logger: lg,
		DB:     db,
		Router: router,
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the already-open pgx connection pool so
// both share one pool.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
}
