package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/mueblessanmiguel/catalogo_api/internal/models"
	"github.com/mueblessanmiguel/catalogo_api/internal/utils"
)

// userStore is the slice of the user repository the auth service needs.
type userStore interface {
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
}

// tokenDenylist records signed-out tokens until their natural expiry.
type tokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthService handles registration, login and sign-out. When no JWT secret
// is configured it refuses all operations up front instead of attempting
// work that would fail unpredictably.
type AuthService struct {
	users      userStore
	denylist   tokenDenylist
	configured bool
}

// NewAuthService constructs an AuthService. configured should come from
// Config.AuthConfigured.
func NewAuthService(users userStore, denylist tokenDenylist, configured bool) *AuthService {
	return &AuthService{users: users, denylist: denylist, configured: configured}
}

// Register creates an account and returns a session token.
func (s *AuthService) Register(email, password string) (string, error) {
	if !s.configured {
		return "", utils.ErrAuthNotConfigured
	}
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.users.GetByEmail(email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}
	if existing != nil {
		return "", utils.ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		return "", err
	}

	log.Info().Str("email", email).Msg("Account registered")
	return utils.GenerateJWT(user.ID, user.Email)
}

// Login verifies credentials and returns a session token. A missing account
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, error) {
	if !s.configured {
		return "", utils.ErrAuthNotConfigured
	}
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error().Err(err).Str("email", email).Msg("Failed to get user by email")
		}
		return "", utils.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	log.Info().Str("email", email).Msg("Login successful")
	return utils.GenerateJWT(user.ID, user.Email)
}

// Logout revokes a session token. The JTI goes on the denylist until the
// token would have expired anyway, so the very next request with it fails.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if !s.configured {
		return utils.ErrAuthNotConfigured
	}
	claims, err := utils.ValidateJWT(token)
	if err != nil {
		return utils.ErrInvalidToken
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return s.denylist.Revoke(ctx, claims.ID, ttl)
}

// Session validates a token and returns the authenticated identity, or an
// error when the token is invalid, expired or signed out.
func (s *AuthService) Session(ctx context.Context, token string) (*utils.JWTClaims, error) {
	if !s.configured {
		return nil, utils.ErrAuthNotConfigured
	}
	claims, err := utils.ValidateJWT(token)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}
	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		log.Error().Err(err).Msg("Denylist check failed")
		return nil, err
	}
	if revoked {
		return nil, utils.ErrInvalidToken
	}
	return claims, nil
}
