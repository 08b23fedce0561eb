package web

import (
	"net/http"
	"net/url"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/auth"
)

// SessionValidator is the slice of the auth service the page middleware
// needs.
type SessionValidator interface {
	ValidateSessionToken(token string) (*internal.SessionUser, error)
}

// RequireLogin redirects browsers to the login page instead of writing
// a JSON 401 the way the API middleware does.
func RequireLogin(sessions SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookieName)
			if err != nil {
				redirectToLogin(w, r)
				return
			}

			user, err := sessions.ValidateSessionToken(cookie.Value)
			if err != nil {
				redirectToLogin(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(internal.ContextWithUser(r.Context(), user)))
		})
	}
}

// RequireAdminPage sends non-admins to the access denied page.
func RequireAdminPage() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := internal.UserFromContext(r.Context())
			if !ok {
				redirectToLogin(w, r)
				return
			}
			if !user.IsAdmin() {
				http.Redirect(w, r, "/Auth/AccessDenied", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	returnURL := url.QueryEscape(r.URL.RequestURI())
	http.Redirect(w, r, "/Auth/Login?returnUrl="+returnURL, http.StatusSeeOther)
}
