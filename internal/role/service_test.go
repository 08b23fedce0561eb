package role_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/role"
)

func TestRoleService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Role Service Suite")
}

type mockRoleRepository struct {
	roles  map[int64]*role.Role
	nextID int64
}

func newMockRoleRepository() *mockRoleRepository {
	return &mockRoleRepository{roles: make(map[int64]*role.Role), nextID: 1}
}

func (m *mockRoleRepository) GetAll() ([]*role.Role, error) {
	out := make([]*role.Role, 0, len(m.roles))
	for _, r := range m.roles {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRoleRepository) GetByID(id int64) (*role.Role, error) {
	return m.roles[id], nil
}

func (m *mockRoleRepository) Exists(id int64) (bool, error) {
	_, ok := m.roles[id]
	return ok, nil
}

func (m *mockRoleRepository) Create(r *role.Role) error {
	r.ID = m.nextID
	m.nextID++
	m.roles[r.ID] = r
	return nil
}

func (m *mockRoleRepository) Update(r *role.Role, loadedUpdatedAt time.Time) error {
	m.roles[r.ID] = r
	return nil
}

func (m *mockRoleRepository) Delete(id int64) error {
	delete(m.roles, id)
	return nil
}

type mockUserRoleRepository struct {
	rows   map[int64]*role.UserRole
	nextID int64
}

func newMockUserRoleRepository() *mockUserRoleRepository {
	return &mockUserRoleRepository{rows: make(map[int64]*role.UserRole), nextID: 1}
}

func (m *mockUserRoleRepository) GetAll() ([]*role.UserRole, error) {
	out := make([]*role.UserRole, 0, len(m.rows))
	for _, ur := range m.rows {
		out = append(out, ur)
	}
	return out, nil
}

func (m *mockUserRoleRepository) GetByID(id int64) (*role.UserRole, error) {
	return m.rows[id], nil
}

func (m *mockUserRoleRepository) GetByPair(userID, roleID int64) (*role.UserRole, error) {
	for _, ur := range m.rows {
		if ur.UserID == userID && ur.RoleID == roleID {
			return ur, nil
		}
	}
	return nil, nil
}

func (m *mockUserRoleRepository) GetByUserID(userID int64) ([]*role.UserRole, error) {
	var out []*role.UserRole
	for _, ur := range m.rows {
		if ur.UserID == userID {
			out = append(out, ur)
		}
	}
	return out, nil
}

func (m *mockUserRoleRepository) Create(ur *role.UserRole) error {
	ur.ID = m.nextID
	m.nextID++
	m.rows[ur.ID] = ur
	return nil
}

func (m *mockUserRoleRepository) Delete(id int64) error {
	delete(m.rows, id)
	return nil
}

func (m *mockUserRoleRepository) DeleteByPair(userID, roleID int64) (bool, error) {
	for id, ur := range m.rows {
		if ur.UserID == userID && ur.RoleID == roleID {
			delete(m.rows, id)
			return true, nil
		}
	}
	return false, nil
}

type mockRolePermissionRepository struct {
	rows   map[int64]*role.RolePermission
	nextID int64
}

func newMockRolePermissionRepository() *mockRolePermissionRepository {
	return &mockRolePermissionRepository{rows: make(map[int64]*role.RolePermission), nextID: 1}
}

func (m *mockRolePermissionRepository) GetAll() ([]*role.RolePermission, error) {
	out := make([]*role.RolePermission, 0, len(m.rows))
	for _, rp := range m.rows {
		out = append(out, rp)
	}
	return out, nil
}

func (m *mockRolePermissionRepository) GetByID(id int64) (*role.RolePermission, error) {
	return m.rows[id], nil
}

func (m *mockRolePermissionRepository) GetByPair(roleID, permissionID int64) (*role.RolePermission, error) {
	for _, rp := range m.rows {
		if rp.RoleID == roleID && rp.PermissionID == permissionID {
			return rp, nil
		}
	}
	return nil, nil
}

func (m *mockRolePermissionRepository) GetByRoleID(roleID int64) ([]*role.RolePermission, error) {
	var out []*role.RolePermission
	for _, rp := range m.rows {
		if rp.RoleID == roleID {
			out = append(out, rp)
		}
	}
	return out, nil
}

func (m *mockRolePermissionRepository) Create(rp *role.RolePermission) error {
	rp.ID = m.nextID
	m.nextID++
	m.rows[rp.ID] = rp
	return nil
}

func (m *mockRolePermissionRepository) Delete(id int64) error {
	delete(m.rows, id)
	return nil
}

func (m *mockRolePermissionRepository) DeleteByPair(roleID, permissionID int64) (bool, error) {
	for id, rp := range m.rows {
		if rp.RoleID == roleID && rp.PermissionID == permissionID {
			delete(m.rows, id)
			return true, nil
		}
	}
	return false, nil
}

type mockDirectory struct {
	existing map[int64]bool
}

func (m *mockDirectory) Exists(id int64) (bool, error) {
	return m.existing[id], nil
}

var _ = Describe("RoleService", func() {
	var (
		service     *role.Service
		mockRepo    *mockRoleRepository
		userRoles   *mockUserRoleRepository
		rolePerms   *mockRolePermissionRepository
		employees   *mockDirectory
		permissions *mockDirectory
		roleID      int64
	)

	BeforeEach(func() {
		mockRepo = newMockRoleRepository()
		userRoles = newMockUserRoleRepository()
		rolePerms = newMockRolePermissionRepository()
		employees = &mockDirectory{existing: map[int64]bool{1: true}}
		permissions = &mockDirectory{existing: map[int64]bool{7: true}}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = role.NewService(mockRepo, userRoles, rolePerms, employees, permissions, logger)

		r, err := service.Create(role.CreateRoleDTO{Name: "hr"})
		Expect(err).ToNot(HaveOccurred())
		roleID = r.ID
	})

	Describe("AssignRole", func() {
		It("should create the join row when both sides exist", func() {
			result, err := service.AssignRole(role.CreateUserRoleDTO{UserID: 1, RoleID: roleID})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.UserID).To(Equal(int64(1)))
			Expect(result.RoleID).To(Equal(roleID))
		})

		Context("when the pair already exists", func() {
			It("should return a duplicate error", func() {
				_, err := service.AssignRole(role.CreateUserRoleDTO{UserID: 1, RoleID: roleID})
				Expect(err).ToNot(HaveOccurred())

				_, err = service.AssignRole(role.CreateUserRoleDTO{UserID: 1, RoleID: roleID})

				Expect(err).To(MatchError(internal.ErrDuplicateUserRole))
				Expect(userRoles.rows).To(HaveLen(1))
			})
		})

		Context("when the user does not exist", func() {
			It("should return employee not found", func() {
				_, err := service.AssignRole(role.CreateUserRoleDTO{UserID: 99, RoleID: roleID})

				Expect(err).To(MatchError(internal.ErrEmployeeNotFound))
			})
		})

		Context("when the role does not exist", func() {
			It("should return role not found", func() {
				_, err := service.AssignRole(role.CreateUserRoleDTO{UserID: 1, RoleID: 99})

				Expect(err).To(MatchError(internal.ErrRoleNotFound))
			})
		})
	})

	Describe("RemoveUserRoleByPair", func() {
		It("should delete an existing pair", func() {
			_, err := service.AssignRole(role.CreateUserRoleDTO{UserID: 1, RoleID: roleID})
			Expect(err).ToNot(HaveOccurred())

			err = service.RemoveUserRoleByPair(1, roleID)

			Expect(err).ToNot(HaveOccurred())
			Expect(userRoles.rows).To(BeEmpty())
		})

		It("should return not found for a pair that was never assigned", func() {
			err := service.RemoveUserRoleByPair(1, roleID)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("not found"))
		})
	})

	Describe("GrantPermission", func() {
		It("should create the join row when both sides exist", func() {
			result, err := service.GrantPermission(role.CreateRolePermissionDTO{RoleID: roleID, PermissionID: 7})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.RoleID).To(Equal(roleID))
			Expect(result.PermissionID).To(Equal(int64(7)))
		})

		Context("when the pair already exists", func() {
			It("should return a duplicate error", func() {
				_, err := service.GrantPermission(role.CreateRolePermissionDTO{RoleID: roleID, PermissionID: 7})
				Expect(err).ToNot(HaveOccurred())

				_, err = service.GrantPermission(role.CreateRolePermissionDTO{RoleID: roleID, PermissionID: 7})

				Expect(err).To(MatchError(internal.ErrDuplicateRolePermission))
				Expect(rolePerms.rows).To(HaveLen(1))
			})
		})

		Context("when the permission does not exist", func() {
			It("should return permission not found", func() {
				_, err := service.GrantPermission(role.CreateRolePermissionDTO{RoleID: roleID, PermissionID: 99})

				Expect(err).To(MatchError(internal.ErrPermissionNotFound))
			})
		})
	})

	Describe("RevokeRolePermissionByPair", func() {
		It("should return not found when nothing was granted", func() {
			err := service.RevokeRolePermissionByPair(roleID, 7)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("not found"))
		})
	})

	Describe("Replace", func() {
		Context("when the body id does not match the path id", func() {
			It("should reject the request", func() {
				_, err := service.Replace(roleID, role.ReplaceRoleDTO{ID: roleID + 1, Name: "ops"})

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("do not match"))
			})
		})
	})
})
