package web

import (
	"net/http"
	"strings"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/auth"
)

type AuthPages struct {
	renderer *Renderer
	auth     *auth.Handler
}

func NewAuthPages(renderer *Renderer, authHandler *auth.Handler) *AuthPages {
	return &AuthPages{renderer: renderer, auth: authHandler}
}

func (p *AuthPages) LoginForm(w http.ResponseWriter, r *http.Request) {
	p.renderer.Render(w, r, "auth/login", "Sign in", map[string]string{
		"ReturnURL": r.URL.Query().Get("returnUrl"),
	})
}

func (p *AuthPages) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	dto := auth.LoginDTO{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	user, err := p.auth.Service.Authenticate(dto)
	if err != nil {
		p.renderer.Flash(w, r, "Invalid username or password.")
		http.Redirect(w, r, "/Auth/Login", http.StatusSeeOther)
		return
	}

	token, err := p.auth.Service.IssueSessionToken(user)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	p.auth.SetSessionCookie(w, token)

	target := r.PostFormValue("returnUrl")
	if target == "" || !strings.HasPrefix(target, "/") {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (p *AuthPages) Logout(w http.ResponseWriter, r *http.Request) {
	p.auth.ClearSessionCookie(w)
	http.Redirect(w, r, "/Auth/Login", http.StatusSeeOther)
}

func (p *AuthPages) AccessDenied(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusForbidden)
	p.renderer.Render(w, r, "auth/access_denied", "Access denied", nil)
}

// HomePage is the signed-in landing page.
type HomePage struct {
	renderer *Renderer
}

func NewHomePage(renderer *Renderer) *HomePage {
	return &HomePage{renderer: renderer}
}

func (p *HomePage) Index(w http.ResponseWriter, r *http.Request) {
	user, _ := internal.UserFromContext(r.Context())
	p.renderer.Render(w, r, "home", "Home", user)
}
