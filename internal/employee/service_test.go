package employee_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/employee"
)

func TestEmployeeService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Service Suite")
}

type mockEmployeeRepository struct {
	users       map[int64]*employee.User
	updateError error
	nextID      int64
}

func newMockEmployeeRepository() *mockEmployeeRepository {
	return &mockEmployeeRepository{users: make(map[int64]*employee.User), nextID: 1}
}

func (m *mockEmployeeRepository) GetAll() ([]*employee.User, error) {
	out := make([]*employee.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockEmployeeRepository) GetByID(id int64) (*employee.User, error) {
	return m.users[id], nil
}

func (m *mockEmployeeRepository) Exists(id int64) (bool, error) {
	_, ok := m.users[id]
	return ok, nil
}

func (m *mockEmployeeRepository) Create(u *employee.User) error {
	u.ID = m.nextID
	m.nextID++
	m.users[u.ID] = u
	return nil
}

func (m *mockEmployeeRepository) Update(u *employee.User, loadedUpdatedAt time.Time) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockEmployeeRepository) Delete(id int64) error {
	delete(m.users, id)
	return nil
}

type mockHasher struct{}

func (mockHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

var _ = Describe("EmployeeService", func() {
	var (
		service  *employee.Service
		mockRepo *mockEmployeeRepository
	)

	createDTO := func() employee.CreateEmployeeDTO {
		return employee.CreateEmployeeDTO{
			Username:     "jdoe",
			Email:        "jdoe@example.com",
			Password:     "s3cret-pass",
			FirstName:    "Jane",
			LastName:     "Doe",
			EmployeeCode: "EMP-0042",
		}
	}

	BeforeEach(func() {
		mockRepo = newMockEmployeeRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = employee.NewService(mockRepo, mockHasher{}, logger)
	})

	Describe("Create", func() {
		It("should hash the password and never store the plaintext", func() {
			result, err := service.Create(createDTO())

			Expect(err).ToNot(HaveOccurred())
			Expect(result.PasswordHash).To(Equal("hashed:s3cret-pass"))
		})

		It("should default to active status and require a password change", func() {
			result, err := service.Create(createDTO())

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Status).To(Equal(employee.StatusActive))
			Expect(result.MustChangePassword).To(BeTrue())
		})

		Context("when the email is malformed", func() {
			It("should return a validation error", func() {
				dto := createDTO()
				dto.Email = "not-an-email"

				_, err := service.Create(dto)

				Expect(err).To(HaveOccurred())
			})
		})

		Context("when the password is too short", func() {
			It("should return a validation error", func() {
				dto := createDTO()
				dto.Password = "short"

				_, err := service.Create(dto)

				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Update", func() {
		var id int64

		BeforeEach(func() {
			u, err := service.Create(createDTO())
			Expect(err).ToNot(HaveOccurred())
			id = u.ID
		})

		It("should only touch the fields present in the payload", func() {
			phone := "+84 912 345 678"
			result, err := service.Update(id, employee.UpdateEmployeeDTO{Phone: &phone})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Phone).To(Equal(phone))
			Expect(result.Username).To(Equal("jdoe"))
			Expect(result.Email).To(Equal("jdoe@example.com"))
		})

		Context("when the row changed underneath", func() {
			It("should surface the conflict", func() {
				mockRepo.updateError = internal.ErrConcurrentUpdate
				name := "Janet"

				_, err := service.Update(id, employee.UpdateEmployeeDTO{FirstName: &name})

				Expect(err).To(MatchError(internal.ErrConcurrentUpdate))
			})
		})

		Context("when the employee does not exist", func() {
			It("should return not found", func() {
				name := "Janet"
				_, err := service.Update(999, employee.UpdateEmployeeDTO{FirstName: &name})

				Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
			})
		})
	})

	Describe("Replace", func() {
		var id int64

		BeforeEach(func() {
			u, err := service.Create(createDTO())
			Expect(err).ToNot(HaveOccurred())
			id = u.ID
		})

		It("should overwrite every writable field", func() {
			result, err := service.Replace(id, employee.ReplaceEmployeeDTO{
				ID:           id,
				Username:     "jdoe2",
				Email:        "jdoe2@example.com",
				FirstName:    "Janet",
				LastName:     "Doe",
				EmployeeCode: "EMP-0042",
				Status:       employee.StatusInactive,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Username).To(Equal("jdoe2"))
			Expect(result.Status).To(Equal(employee.StatusInactive))
		})

		Context("when the body id does not match the path id", func() {
			It("should reject the request", func() {
				_, err := service.Replace(id, employee.ReplaceEmployeeDTO{
					ID:           id + 1,
					Username:     "jdoe2",
					Email:        "jdoe2@example.com",
					FirstName:    "Janet",
					LastName:     "Doe",
					EmployeeCode: "EMP-0042",
					Status:       employee.StatusActive,
				})

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("do not match"))
			})
		})
	})

	Describe("Delete", func() {
		It("should return not found for a missing employee", func() {
			err := service.Delete(12345)

			Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
		})
	})
})
