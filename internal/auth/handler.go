package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hgiang7193/hr-management/internal"
	"github.com/hgiang7193/hr-management/internal/transport"
	"github.com/hgiang7193/hr-management/pkg/logger"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (*internal.SessionUser, error)
	IssueSessionToken(user *internal.SessionUser) (string, error)
	ValidateSessionToken(tokenString string) (*internal.SessionUser, error)
	SessionDuration() time.Duration
}

type Handler struct {
	*transport.BaseHandler
	Service       ServiceAPI
	SecureCookies bool
}

func NewHandler(svc ServiceAPI, secureCookies bool) *Handler {
	return &Handler{
		BaseHandler:   transport.NewBaseHandler(logger.L()),
		Service:       svc,
		SecureCookies: secureCookies,
	}
}

// Login authenticates and sets the session cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Service.Authenticate(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	token, err := h.Service.IssueSessionToken(user)
	if err != nil {
		h.Logger.Error("failed to issue session token", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.SetSessionCookie(w, token)
	h.WriteJSON(w, http.StatusOK, LoginResponse{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Roles:    user.Roles,
	})
}

// Logout clears the session cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.ClearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.Service.SessionDuration().Seconds()),
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// AuthMiddleware validates the session cookie and injects the identity.
// API callers get a structured 401; the page surface has its own
// redirect-to-login variant.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			h.WriteError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		user, err := h.Service.ValidateSessionToken(cookie.Value)
		if err != nil {
			h.WriteError(w, http.StatusUnauthorized, "invalid session")
			return
		}

		ctx := internal.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
