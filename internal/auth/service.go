package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hgiang7193/hr-management/internal"
)

// Service authenticates credentials and mints/validates the signed session
// cookie token. There is no server-side session store.
type Service struct {
	userRepo        UserRepository
	logger          *slog.Logger
	sessionSecret   []byte
	sessionDuration time.Duration
	bcryptCost      int
}

func NewService(userRepo UserRepository, logger *slog.Logger, sessionSecret string, sessionDuration time.Duration, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:        userRepo,
		logger:          logger,
		sessionSecret:   []byte(sessionSecret),
		sessionDuration: sessionDuration,
		bcryptCost:      bcryptCost,
	}
}

// Authenticate validates credentials and returns the session identity.
// Missing user and wrong password both map to the same generic failure.
func (s *Service) Authenticate(dto LoginDTO) (*internal.SessionUser, error) {
	if appErr := internal.ValidateStruct(dto); appErr != nil {
		return nil, appErr
	}

	creds, err := s.userRepo.GetCredentialsByUsername(dto.Username)
	if err != nil {
		return nil, internal.NewInternalError("failed to look up user", err)
	}
	if creds == nil {
		return nil, internal.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	s.logger.Info("user authenticated", "user_id", creds.ID, "roles", creds.Roles)

	return &internal.SessionUser{
		ID:       creds.ID,
		Username: creds.Username,
		FullName: creds.FullName(),
		Roles:    creds.Roles,
	}, nil
}

// IssueSessionToken serializes the identity into a signed JWT for the cookie.
func (s *Service) IssueSessionToken(user *internal.SessionUser) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		Username: user.Username,
		FullName: user.FullName,
		Roles:    user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.sessionSecret)
}

// ValidateSessionToken parses the cookie token back into a session identity.
func (s *Service) ValidateSessionToken(tokenString string) (*internal.SessionUser, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.sessionSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrInvalidSession
		}
		return nil, internal.ErrInvalidSession
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, internal.ErrInvalidSession
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, internal.ErrInvalidSession
	}

	return &internal.SessionUser{
		ID:       id,
		Username: claims.Username,
		FullName: claims.FullName,
		Roles:    claims.Roles,
	}, nil
}

// SessionDuration is exposed so handlers can set the cookie max age.
func (s *Service) SessionDuration() time.Duration {
	return s.sessionDuration
}

// HashPassword creates a bcrypt hash of the password.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
