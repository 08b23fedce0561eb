package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Credentials is what authentication needs to know about a stored user:
// identity, the salted password hash and the role names held at login time.
type Credentials struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	Roles        []string
}

func (c *Credentials) FullName() string {
	return c.FirstName + " " + c.LastName
}

// UserRepository is the narrow store surface authentication depends on.
type UserRepository interface {
	// GetCredentialsByUsername looks a user up case-insensitively and
	// returns nil, nil when no such user exists.
	GetCredentialsByUsername(username string) (*Credentials, error)
}

// SessionClaims is the JWT payload carried in the session cookie. The role
// list is a denormalized snapshot taken at login.
type SessionClaims struct {
	Username string   `json:"username"`
	FullName string   `json:"full_name"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// SessionCookieName is the cookie both surfaces read the session from.
const SessionCookieName = "hr_session"
