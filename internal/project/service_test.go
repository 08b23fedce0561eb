package project_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/project"
)

func TestProjectService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Project Service Suite")
}

type mockProjectRepository struct {
	projects map[int64]*project.Project
	nextID   int64
}

func newMockProjectRepository() *mockProjectRepository {
	return &mockProjectRepository{projects: make(map[int64]*project.Project), nextID: 1}
}

func (m *mockProjectRepository) GetAll() ([]*project.Project, error) {
	out := make([]*project.Project, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProjectRepository) GetByID(id int64) (*project.Project, error) {
	return m.projects[id], nil
}

func (m *mockProjectRepository) GetByEmployeeID(employeeID int64) ([]*project.Project, error) {
	return nil, nil
}

func (m *mockProjectRepository) Create(p *project.Project) error {
	p.ID = m.nextID
	m.nextID++
	m.projects[p.ID] = p
	return nil
}

func (m *mockProjectRepository) Update(p *project.Project, loadedUpdatedAt time.Time) error {
	m.projects[p.ID] = p
	return nil
}

func (m *mockProjectRepository) Delete(id int64) error {
	delete(m.projects, id)
	return nil
}

type mockAssignmentRepository struct {
	assignments map[int64]*project.Assignment
	nextID      int64
}

func newMockAssignmentRepository() *mockAssignmentRepository {
	return &mockAssignmentRepository{assignments: make(map[int64]*project.Assignment), nextID: 1}
}

func (m *mockAssignmentRepository) GetAll() ([]*project.Assignment, error) {
	out := make([]*project.Assignment, 0, len(m.assignments))
	for _, a := range m.assignments {
		out = append(out, a)
	}
	return out, nil
}

func (m *mockAssignmentRepository) GetByID(id int64) (*project.Assignment, error) {
	return m.assignments[id], nil
}

func (m *mockAssignmentRepository) GetByPair(employeeID, projectID int64) (*project.Assignment, error) {
	for _, a := range m.assignments {
		if a.EmployeeID == employeeID && a.ProjectID == projectID {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockAssignmentRepository) GetByEmployeeID(employeeID int64) ([]*project.Assignment, error) {
	var out []*project.Assignment
	for _, a := range m.assignments {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAssignmentRepository) GetByProjectID(projectID int64) ([]*project.Assignment, error) {
	var out []*project.Assignment
	for _, a := range m.assignments {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAssignmentRepository) Create(a *project.Assignment) error {
	a.ID = m.nextID
	m.nextID++
	m.assignments[a.ID] = a
	return nil
}

func (m *mockAssignmentRepository) Update(a *project.Assignment, loadedUpdatedAt time.Time) error {
	m.assignments[a.ID] = a
	return nil
}

func (m *mockAssignmentRepository) Delete(id int64) error {
	delete(m.assignments, id)
	return nil
}

type mockEmployeeDirectory struct {
	existing map[int64]bool
}

func (m *mockEmployeeDirectory) Exists(id int64) (bool, error) {
	return m.existing[id], nil
}

type mockWorklogDirectory struct {
	pairs map[[2]int64]bool
}

func (m *mockWorklogDirectory) ExistsForEmployeeAndProject(employeeID, projectID int64) (bool, error) {
	return m.pairs[[2]int64{employeeID, projectID}], nil
}

var _ = Describe("ProjectService", func() {
	var (
		service     *project.Service
		mockRepo    *mockProjectRepository
		assignments *mockAssignmentRepository
		employees   *mockEmployeeDirectory
		worklogs    *mockWorklogDirectory
	)

	BeforeEach(func() {
		mockRepo = newMockProjectRepository()
		assignments = newMockAssignmentRepository()
		employees = &mockEmployeeDirectory{existing: map[int64]bool{1: true, 2: true}}
		worklogs = &mockWorklogDirectory{pairs: make(map[[2]int64]bool)}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = project.NewService(mockRepo, assignments, employees, worklogs, logger)
	})

	Describe("Create", func() {
		Context("when no status or type is supplied", func() {
			It("should default to an active software project", func() {
				result, err := service.Create(project.CreateProjectDTO{Name: "Payroll revamp", Code: "PAY-01"})

				Expect(err).ToNot(HaveOccurred())
				Expect(result.Status).To(Equal(project.StatusActive))
				Expect(result.ProjectType).To(Equal(project.TypeSoftware))
			})
		})

		Context("when the status is invalid", func() {
			It("should return a validation error", func() {
				_, err := service.Create(project.CreateProjectDTO{Name: "Payroll revamp", Code: "PAY-01", Status: "archived"})

				Expect(err).To(HaveOccurred())
			})
		})

		Context("when the code is missing", func() {
			It("should return a validation error", func() {
				_, err := service.Create(project.CreateProjectDTO{Name: "Payroll revamp"})

				Expect(err).To(HaveOccurred())
			})
		})

		Context("when the project type is not a known label", func() {
			It("should return a validation error", func() {
				_, err := service.Create(project.CreateProjectDTO{Name: "Payroll revamp", Code: "PAY-01", ProjectType: "hardware"})

				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Replace", func() {
		Context("when the body id does not match the path id", func() {
			It("should reject the request", func() {
				_, err := service.Replace(1, project.ReplaceProjectDTO{ID: 2, Name: "X", Status: project.StatusActive})

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("do not match"))
			})
		})
	})

	Describe("Assign", func() {
		var projectID int64

		BeforeEach(func() {
			p, err := service.Create(project.CreateProjectDTO{Name: "Payroll revamp", Code: "PAY-01"})
			Expect(err).ToNot(HaveOccurred())
			projectID = p.ID
		})

		Context("when the employee and project exist", func() {
			It("should create an active assignment", func() {
				result, err := service.Assign(project.CreateAssignmentDTO{EmployeeID: 1, ProjectID: projectID})

				Expect(err).ToNot(HaveOccurred())
				Expect(result.EmployeeID).To(Equal(int64(1)))
				Expect(result.ProjectID).To(Equal(projectID))
				Expect(result.AssignedDate).ToNot(BeZero())
				Expect(result.EndDate).To(BeNil())
				Expect(result.Status).To(Equal(project.AssignmentStatusActive))
			})
		})

		Context("when the pair is already assigned", func() {
			It("should return a duplicate error and not add a row", func() {
				_, err := service.Assign(project.CreateAssignmentDTO{EmployeeID: 1, ProjectID: projectID})
				Expect(err).ToNot(HaveOccurred())

				_, err = service.Assign(project.CreateAssignmentDTO{EmployeeID: 1, ProjectID: projectID})

				Expect(err).To(MatchError(internal.ErrDuplicateAssignment))
				Expect(assignments.assignments).To(HaveLen(1))
			})
		})

		Context("when the employee does not exist", func() {
			It("should return employee not found", func() {
				_, err := service.Assign(project.CreateAssignmentDTO{EmployeeID: 99, ProjectID: projectID})

				Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
			})
		})

		Context("when the project does not exist", func() {
			It("should return project not found", func() {
				_, err := service.Assign(project.CreateAssignmentDTO{EmployeeID: 1, ProjectID: 999})

				Expect(err).To(MatchError(internal.ErrProjectNotFound))
			})
		})
	})

	Describe("UpdateAssignment", func() {
		var assignmentID int64

		BeforeEach(func() {
			p, err := service.Create(project.CreateProjectDTO{Name: "Payroll revamp", Code: "PAY-01"})
			Expect(err).ToNot(HaveOccurred())
			a, err := service.Assign(project.CreateAssignmentDTO{EmployeeID: 1, ProjectID: p.ID, RoleInProject: "developer"})
			Expect(err).ToNot(HaveOccurred())
			assignmentID = a.ID
		})

		It("should change the end date and status while keeping the pair", func() {
			end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
			completed := project.AssignmentStatusCompleted

			result, err := service.UpdateAssignment(assignmentID, project.UpdateAssignmentDTO{EndDate: &end, Status: &completed})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.EndDate).ToNot(BeNil())
			Expect(*result.EndDate).To(Equal(end))
			Expect(result.Status).To(Equal(project.AssignmentStatusCompleted))
			Expect(result.EmployeeID).To(Equal(int64(1)))
			Expect(result.RoleInProject).To(Equal("developer"))
		})

		It("should return not found for a missing assignment", func() {
			role := "tester"
			_, err := service.UpdateAssignment(999, project.UpdateAssignmentDTO{RoleInProject: &role})

			Expect(err).To(MatchError(internal.ErrAssignmentNotFound))
		})
	})

	Describe("RemoveAssignment", func() {
		var assignmentID, projectID int64

		BeforeEach(func() {
			p, err := service.Create(project.CreateProjectDTO{Name: "Payroll revamp", Code: "PAY-01"})
			Expect(err).ToNot(HaveOccurred())
			projectID = p.ID
			a, err := service.Assign(project.CreateAssignmentDTO{EmployeeID: 1, ProjectID: projectID})
			Expect(err).ToNot(HaveOccurred())
			assignmentID = a.ID
		})

		Context("when no worklogs reference the pair", func() {
			It("should delete the assignment", func() {
				err := service.RemoveAssignment(assignmentID)

				Expect(err).ToNot(HaveOccurred())
				Expect(assignments.assignments).To(BeEmpty())
			})
		})

		Context("when worklogs reference the pair", func() {
			It("should refuse to delete", func() {
				worklogs.pairs[[2]int64{1, projectID}] = true

				err := service.RemoveAssignment(assignmentID)

				Expect(err).To(MatchError(internal.ErrAssignmentHasWorklogs))
				Expect(assignments.assignments).To(HaveLen(1))
			})
		})

		Context("when the assignment does not exist", func() {
			It("should return not found", func() {
				err := service.RemoveAssignment(999)

				Expect(err).To(MatchError(internal.ErrAssignmentNotFound))
			})
		})
	})
})
