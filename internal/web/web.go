package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/hgiang7193/hr-management/internal"
)

//go:embed templates/*.html templates/*/*.html
var templateFS embed.FS

const flashSessionName = "hr_flash"

// Renderer parses the embedded templates once and renders pages with
// the shared layout. Flash notices ride a short-lived cookie session.
type Renderer struct {
	templates map[string]*template.Template
	flashes   *sessions.CookieStore
	logger    *slog.Logger
}

// PageData is what every template receives.
type PageData struct {
	Title     string
	User      *internal.SessionUser
	Flashes   []string
	CSRFField template.HTML
	Data      interface{}
}

func NewRenderer(sessionSecret string, secureCookies bool, logger *slog.Logger) (*Renderer, error) {
	store := sessions.NewCookieStore([]byte(sessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secureCookies,
		SameSite: http.SameSiteLaxMode,
	}

	pages := []string{
		"home",
		"auth/login",
		"auth/access_denied",
		"attendance/index",
		"attendance/details",
		"attendance/form",
		"department/index",
		"department/details",
		"department/form",
		"employee/index",
		"employee/details",
		"employee/form",
		"position/index",
		"position/details",
		"position/form",
		"project/index",
		"project/details",
		"project/form",
		"project/my",
		"project/assign",
		"role/index",
		"role/details",
		"role/form",
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = t
	}

	return &Renderer{templates: templates, flashes: store, logger: logger}, nil
}

// Render writes a page. The session user and any pending flashes are
// pulled from the request.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, page, title string, data interface{}) {
	t, ok := rd.templates[page]
	if !ok {
		rd.logger.Error("unknown page template", "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pd := PageData{
		Title:     title,
		Flashes:   rd.popFlashes(w, r),
		CSRFField: csrf.TemplateField(r),
		Data:      data,
	}
	if user, ok := internal.UserFromContext(r.Context()); ok {
		pd.User = user
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "layout", pd); err != nil {
		rd.logger.Error("template render failed", "page", page, "error", err)
	}
}

// FlashError turns a service error into a user-facing notice.
func (rd *Renderer) FlashError(w http.ResponseWriter, r *http.Request, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		rd.Flash(w, r, appErr.GetDetailedMessage())
		return
	}
	rd.Flash(w, r, "Something went wrong.")
}

// Flash queues a notice for the next rendered page.
func (rd *Renderer) Flash(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := rd.flashes.Get(r, flashSessionName)
	session.AddFlash(message)
	if err := session.Save(r, w); err != nil {
		rd.logger.Warn("failed to save flash session", "error", err)
	}
}

func (rd *Renderer) popFlashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := rd.flashes.Get(r, flashSessionName)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(r, w); err != nil {
		rd.logger.Warn("failed to clear flash session", "error", err)
	}
	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
