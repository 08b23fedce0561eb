package auth_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/auth"
)

func TestAuthService(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

type mockUserRepository struct {
	credentials map[string]*auth.Credentials
	err         error
}

func (m *mockUserRepository) GetCredentialsByUsername(username string) (*auth.Credentials, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.credentials[username], nil
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *auth.Service
		mockRepo *mockUserRepository
	)

	ginkgo.BeforeEach(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		mockRepo = &mockUserRepository{credentials: map[string]*auth.Credentials{
			"jdoe": {
				ID:           1,
				Username:     "jdoe",
				FirstName:    "Jane",
				LastName:     "Doe",
				PasswordHash: string(hash),
				Roles:        []string{"employee"},
			},
		}}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = auth.NewService(mockRepo, logger, "test-secret-key-that-is-long-enough", time.Hour, bcrypt.MinCost)
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.It("should return the session identity for valid credentials", func() {
			user, err := service.Authenticate(auth.LoginDTO{Username: "jdoe", Password: "correct-horse"})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(user.ID).To(gomega.Equal(int64(1)))
			gomega.Expect(user.FullName).To(gomega.Equal("Jane Doe"))
			gomega.Expect(user.Roles).To(gomega.ContainElement("employee"))
		})

		ginkgo.It("should reject a wrong password with the generic failure", func() {
			_, err := service.Authenticate(auth.LoginDTO{Username: "jdoe", Password: "wrong"})

			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidCredentials))
		})

		ginkgo.It("should reject an unknown user with the same generic failure", func() {
			_, err := service.Authenticate(auth.LoginDTO{Username: "ghost", Password: "correct-horse"})

			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidCredentials))
		})

		ginkgo.It("should reject empty credentials before hitting the store", func() {
			_, err := service.Authenticate(auth.LoginDTO{})

			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("session tokens", func() {
		ginkgo.It("should round-trip the identity through a signed token", func() {
			user := &internal.SessionUser{ID: 1, Username: "jdoe", FullName: "Jane Doe", Roles: []string{"admin"}}

			token, err := service.IssueSessionToken(user)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			parsed, err := service.ValidateSessionToken(token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(parsed.ID).To(gomega.Equal(user.ID))
			gomega.Expect(parsed.Username).To(gomega.Equal(user.Username))
			gomega.Expect(parsed.Roles).To(gomega.Equal(user.Roles))
		})

		ginkgo.It("should reject a token signed with a different secret", func() {
			other := auth.NewService(mockRepo, slog.Default(), "another-secret-key-also-long-enough", time.Hour, bcrypt.MinCost)
			token, err := other.IssueSessionToken(&internal.SessionUser{ID: 1, Username: "jdoe"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.ValidateSessionToken(token)

			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidSession))
		})

		ginkgo.It("should reject an expired token", func() {
			shortLived := auth.NewService(mockRepo, slog.Default(), "test-secret-key-that-is-long-enough", -time.Minute, bcrypt.MinCost)
			token, err := shortLived.IssueSessionToken(&internal.SessionUser{ID: 1, Username: "jdoe"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.ValidateSessionToken(token)

			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidSession))
		})

		ginkgo.It("should reject garbage input", func() {
			_, err := service.ValidateSessionToken("not-a-token")

			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidSession))
		})
	})

	ginkgo.Describe("HashPassword", func() {
		ginkgo.It("should produce a hash that verifies against the original", func() {
			hash, err := service.HashPassword("new-password-1")

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-password-1"))).To(gomega.Succeed())
		})
	})
})
