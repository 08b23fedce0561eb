package internal

import (
	"context"
	"time"
)

type ctxKey string

const contextUserKey ctxKey = "sessionUser"

// SessionUser is the authenticated identity carried through request context.
// Roles are the snapshot baked into the session cookie at login; role changes
// only take effect at the next login.
type SessionUser struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	FullName string   `json:"full_name"`
	Roles    []string `json:"roles"`
}

func (u *SessionUser) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (u *SessionUser) IsAdmin() bool {
	return u.HasRole("admin")
}

// CanAccessRecordOf reports whether the user may read a record owned by
// employeeID. Admins see everything, employees only their own records.
func (u *SessionUser) CanAccessRecordOf(employeeID int64) bool {
	return u.IsAdmin() || u.ID == employeeID
}

func UserFromContext(ctx context.Context) (*SessionUser, bool) {
	if ctx == nil {
		return nil, false
	}
	user, ok := ctx.Value(contextUserKey).(*SessionUser)
	return user, ok && user != nil
}

func ContextWithUser(ctx context.Context, user *SessionUser) context.Context {
	return context.WithValue(ctx, contextUserKey, user)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if
// duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
