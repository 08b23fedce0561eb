package internal_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hgiang7193/hr-management/internal"
)

func TestInternal(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Internal Suite")
}

var _ = Describe("SessionUser", func() {
	Describe("CanAccessRecordOf", func() {
		It("should let an admin read anyone's records", func() {
			admin := &internal.SessionUser{ID: 1, Roles: []string{"admin"}}

			Expect(admin.CanAccessRecordOf(2)).To(BeTrue())
			Expect(admin.CanAccessRecordOf(1)).To(BeTrue())
		})

		It("should let an employee read only their own records", func() {
			emp := &internal.SessionUser{ID: 5, Roles: []string{"employee"}}

			Expect(emp.CanAccessRecordOf(5)).To(BeTrue())
			Expect(emp.CanAccessRecordOf(6)).To(BeFalse())
		})

		It("should not treat unrelated roles as admin", func() {
			emp := &internal.SessionUser{ID: 5, Roles: []string{"hr", "pm"}}

			Expect(emp.CanAccessRecordOf(6)).To(BeFalse())
		})
	})

	Describe("context round trip", func() {
		It("should carry the user through the context", func() {
			user := &internal.SessionUser{ID: 3, Username: "jdoe"}
			ctx := internal.ContextWithUser(context.Background(), user)

			got, ok := internal.UserFromContext(ctx)

			Expect(ok).To(BeTrue())
			Expect(got).To(Equal(user))
		})

		It("should report absence on a bare context", func() {
			_, ok := internal.UserFromContext(context.Background())

			Expect(ok).To(BeFalse())
		})
	})
})
