package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with roles, permissions, an admin account and sample org data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		db, err := initGorm(sqlDB)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			clearTables(db)
		}

		seedRoles(db)
		seedPermissions(db)
		seedDepartments(db)
		seedPositions(db)
		seedShifts(db)
		seedAdmin(db, cfg.Security.BCryptCost)

		fmt.Println("Seeding complete.")
	},
}

// clearTables wipes seedable data in FK order. Only used with --clear.
func clearTables(db *gorm.DB) {
	tables := []string{
		"worklogs", "project_assignments", "attendances", "leave_requests",
		"user_roles", "role_permissions", "users", "projects",
		"departments", "positions", "shifts", "roles", "permissions",
	}
	for _, t := range tables {
		if err := db.Exec("DELETE FROM " + t).Error; err != nil {
			log.Fatalf("failed to clear table %s: %v", t, err)
		}
	}
	fmt.Println("Cleared existing data.")
}

func seedRoles(db *gorm.DB) {
	roles := []struct {
		Name string
		Desc string
	}{
		{"admin", "full administrator"},
		{"employee", "regular employee"},
		{"hr", "human resources staff"},
		{"pm", "project manager"},
	}

	for _, r := range roles {
		var id int64
		row := db.Raw("SELECT id FROM roles WHERE name = ?", r.Name).Row()
		if err := row.Scan(&id); err != nil {
			if err := db.Exec("INSERT INTO roles (name, description, created_at, updated_at) VALUES (?, ?, now(), now())", r.Name, r.Desc).Error; err != nil {
				log.Fatalf("failed to insert role %s: %v", r.Name, err)
			}
			fmt.Println("Seeded role:", r.Name)
		}
	}
}

func seedPermissions(db *gorm.DB) {
	permissions := []struct {
		Name string
		Desc string
	}{
		{"manage_employees", "Can create, edit and delete employees"},
		{"manage_departments", "Can manage the department tree"},
		{"manage_projects", "Can manage projects and assignments"},
		{"manage_roles", "Can manage roles and permissions"},
		{"view_attendance", "Can view all attendance records"},
		{"approve_leave", "Can approve or reject leave requests"},
	}

	for _, p := range permissions {
		var id int64
		row := db.Raw("SELECT id FROM permissions WHERE name = ?", p.Name).Row()
		if err := row.Scan(&id); err != nil {
			if err := db.Exec("INSERT INTO permissions (name, description, created_at, updated_at) VALUES (?, ?, now(), now())", p.Name, p.Desc).Error; err != nil {
				log.Fatalf("failed to insert permission %s: %v", p.Name, err)
			}
		}
	}

	// admin role gets every permission
	var adminRoleID int64
	if err := db.Raw("SELECT id FROM roles WHERE name = 'admin'").Row().Scan(&adminRoleID); err != nil {
		log.Fatalf("admin role not found: %v", err)
	}
	for _, p := range permissions {
		var pid int64
		if err := db.Raw("SELECT id FROM permissions WHERE name = ?", p.Name).Row().Scan(&pid); err != nil {
			log.Fatalf("permission not found after insert %s: %v", p.Name, err)
		}
		var exists int
		if err := db.Raw("SELECT 1 FROM role_permissions WHERE role_id = ? AND permission_id = ?", adminRoleID, pid).Row().Scan(&exists); err == nil {
			continue
		}
		if err := db.Exec("INSERT INTO role_permissions (role_id, permission_id, created_at) VALUES (?, ?, now())", adminRoleID, pid).Error; err != nil {
			log.Fatalf("failed to grant permission %s to admin role: %v", p.Name, err)
		}
	}
	fmt.Println("Granted all permissions to the admin role.")
}

func seedDepartments(db *gorm.DB) {
	departments := []struct {
		Name string
		Code string
	}{
		{"Engineering", "ENG"},
		{"Human Resources", "HR"},
		{"Finance", "FIN"},
	}
	for _, d := range departments {
		var id int64
		if err := db.Raw("SELECT id FROM departments WHERE code = ?", d.Code).Row().Scan(&id); err != nil {
			if err := db.Exec("INSERT INTO departments (name, code, status, created_at, updated_at) VALUES (?, ?, 'active', now(), now())", d.Name, d.Code).Error; err != nil {
				log.Fatalf("failed to insert department %s: %v", d.Name, err)
			}
			fmt.Println("Seeded department:", d.Name)
		}
	}
}

func seedPositions(db *gorm.DB) {
	positions := []string{"Software Engineer", "HR Specialist", "Accountant", "Engineering Manager"}
	for _, name := range positions {
		var id int64
		if err := db.Raw("SELECT id FROM positions WHERE name = ?", name).Row().Scan(&id); err != nil {
			if err := db.Exec("INSERT INTO positions (name, status, created_at, updated_at) VALUES (?, 'active', now(), now())", name).Error; err != nil {
				log.Fatalf("failed to insert position %s: %v", name, err)
			}
		}
	}
}

func seedShifts(db *gorm.DB) {
	shifts := []struct {
		Name  string
		Start string
		End   string
	}{
		{"Morning", "08:00:00", "17:00:00"},
		{"Evening", "14:00:00", "23:00:00"},
	}
	for _, sh := range shifts {
		var id int64
		if err := db.Raw("SELECT id FROM shifts WHERE name = ?", sh.Name).Row().Scan(&id); err != nil {
			if err := db.Exec("INSERT INTO shifts (name, start_time, end_time, created_at, updated_at) VALUES (?, ?, ?, now(), now())", sh.Name, sh.Start, sh.End).Error; err != nil {
				log.Fatalf("failed to insert shift %s: %v", sh.Name, err)
			}
		}
	}
}

func seedAdmin(db *gorm.DB, bcryptCost int) {
	const adminUsername = "admin"

	var adminID int64
	if err := db.Raw("SELECT id FROM users WHERE username = ?", adminUsername).Row().Scan(&adminID); err != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcryptCost)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}
		if err := db.Exec(`INSERT INTO users
			(username, email, password_hash, first_name, last_name, employee_code, status, must_change_password, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, 'active', true, now(), now())`,
			adminUsername, "admin@example.com", string(hash), "System", "Administrator", "EMP-0001").Error; err != nil {
			log.Fatalf("failed to insert admin user: %v", err)
		}
		if err := db.Raw("SELECT id FROM users WHERE username = ?", adminUsername).Row().Scan(&adminID); err != nil {
			log.Fatalf("failed to lookup admin user id: %v", err)
		}
		fmt.Println("Seeded admin user:", adminUsername)
	}

	var adminRoleID int64
	if err := db.Raw("SELECT id FROM roles WHERE name = 'admin'").Row().Scan(&adminRoleID); err != nil {
		log.Fatalf("admin role not found: %v", err)
	}

	var exists int
	if err := db.Raw("SELECT 1 FROM user_roles WHERE user_id = ? AND role_id = ?", adminID, adminRoleID).Row().Scan(&exists); err != nil {
		if err := db.Exec("INSERT INTO user_roles (user_id, role_id, created_at) VALUES (?, ?, now())", adminID, adminRoleID).Error; err != nil {
			log.Fatalf("failed to grant admin role: %v", err)
		}
		fmt.Println("Granted admin role to admin user.")
	}
}
