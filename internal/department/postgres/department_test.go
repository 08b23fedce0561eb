package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/department"
	departmentPostgres "github.com/hgiang7193/hr-management/internal/department/postgres"
)

func TestDepartmentPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Department Postgres Suite")
}

// SQLiteDepartment mirrors the departments table for in-memory testing.
type SQLiteDepartment struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Code        string    `gorm:"column:code;uniqueIndex;not null"`
	Description string    `gorm:"column:description"`
	ParentID    *int64    `gorm:"column:parent_id"`
	ManagerID   *int64    `gorm:"column:manager_id"`
	Status      string    `gorm:"column:status;default:active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (SQLiteDepartment) TableName() string {
	return "departments"
}

var _ = Describe("Department Repository", func() {
	var (
		db   *gorm.DB
		repo department.RepositoryAPI
	)

	newDepartment := func(name, code string) *department.Department {
		now := time.Now().UTC().Truncate(time.Second)
		d := &department.Department{
			Name:      name,
			Code:      code,
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		}
		Expect(repo.Create(d)).To(Succeed())
		return d
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.AutoMigrate(&SQLiteDepartment{})).To(Succeed())

		repo = departmentPostgres.NewDepartmentRepository(db)
	})

	Describe("Create and GetByID", func() {
		It("should persist and read back a department", func() {
			d := newDepartment("Engineering", "ENG")
			Expect(d.ID).To(BeNumerically(">", 0))

			got, err := repo.GetByID(d.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("Engineering"))
			Expect(got.Code).To(Equal("ENG"))
		})

		It("should return nil, nil for a missing id", func() {
			got, err := repo.GetByID(12345)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeNil())
		})
	})

	Describe("GetAll", func() {
		It("should order departments by name", func() {
			newDepartment("Finance", "FIN")
			newDepartment("Engineering", "ENG")

			all, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
			Expect(all[0].Name).To(Equal("Engineering"))
			Expect(all[1].Name).To(Equal("Finance"))
		})
	})

	Describe("GetChildren", func() {
		It("should return only the direct children of a parent", func() {
			parent := newDepartment("Engineering", "ENG")
			child := newDepartment("Platform", "PLT")
			child.ParentID = &parent.ID
			Expect(repo.Update(child, child.UpdatedAt)).To(Succeed())
			newDepartment("Finance", "FIN")

			children, err := repo.GetChildren(parent.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(children).To(HaveLen(1))
			Expect(children[0].Code).To(Equal("PLT"))
		})
	})

	Describe("Update", func() {
		It("should write when the loaded timestamp still matches", func() {
			d := newDepartment("Engineering", "ENG")
			loaded := d.UpdatedAt

			d.Name = "Engineering & Research"
			d.UpdatedAt = loaded.Add(time.Second)
			Expect(repo.Update(d, loaded)).To(Succeed())

			got, err := repo.GetByID(d.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("Engineering & Research"))
		})

		It("should report a conflict when the row moved on", func() {
			d := newDepartment("Engineering", "ENG")
			loaded := d.UpdatedAt

			d.UpdatedAt = loaded.Add(time.Second)
			Expect(repo.Update(d, loaded)).To(Succeed())

			d.Name = "Stale write"
			err := repo.Update(d, loaded)
			Expect(err).To(MatchError(internal.ErrConcurrentUpdate))
		})

		It("should report not found when the row vanished", func() {
			d := &department.Department{ID: 777, Name: "Ghost", Code: "GST", UpdatedAt: time.Now()}

			err := repo.Update(d, d.UpdatedAt)
			Expect(err).To(MatchError(internal.ErrDepartmentNotFound))
		})
	})

	Describe("Delete", func() {
		It("should remove the row", func() {
			d := newDepartment("Engineering", "ENG")

			Expect(repo.Delete(d.ID)).To(Succeed())

			got, err := repo.GetByID(d.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeNil())
		})

		It("should report not found for a missing id", func() {
			err := repo.Delete(999)
			Expect(err).To(MatchError(internal.ErrDepartmentNotFound))
		})
	})

	Describe("constraints", func() {
		It("should reject a duplicate code", func() {
			newDepartment("Engineering", "ENG")

			dup := &department.Department{Name: "Other", Code: "ENG", Status: "active"}
			Expect(repo.Create(dup)).NotTo(Succeed())
		})
	})
})
