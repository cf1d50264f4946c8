package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mueblessanmiguel/catalogo_api/internal/access"
	"github.com/mueblessanmiguel/catalogo_api/internal/middleware"
	"github.com/mueblessanmiguel/catalogo_api/internal/service"
	"github.com/mueblessanmiguel/catalogo_api/internal/utils"
)

// AuthHandler serves registration, login, logout and session introspection.
type AuthHandler struct {
	auth      *service.AuthService
	allowlist *access.Allowlist
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth *service.AuthService, allowlist *access.Allowlist) *AuthHandler {
	return &AuthHandler{auth: auth, allowlist: allowlist}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	token, err := h.auth.Register(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrAuthNotConfigured):
			utils.Error(c, 503, "AUTH_NOT_CONFIGURED", "Authentication system is not configured")
		case errors.Is(err, utils.ErrEmailInUse):
			utils.Error(c, 400, "EMAIL_IN_USE", "This email is already registered")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to register")
		}
		return
	}

	utils.Success(c, 201, "Account created", gin.H{"token": token})
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrAuthNotConfigured):
			utils.Error(c, 503, "AUTH_NOT_CONFIGURED", "Authentication system is not configured")
		case errors.Is(err, utils.ErrInvalidCredentials):
			utils.Error(c, 401, "INVALID_CREDENTIALS", "Invalid email or password")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to sign in")
		}
		return
	}

	utils.Success(c, 200, "Login successful", gin.H{"token": token})
}

// Logout handles POST /v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		utils.Error(c, 401, "UNAUTHORIZED", "Missing or invalid authorization header")
		return
	}

	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		switch {
		case errors.Is(err, utils.ErrAuthNotConfigured):
			utils.Error(c, 503, "AUTH_NOT_CONFIGURED", "Authentication system is not configured")
		case errors.Is(err, utils.ErrInvalidToken):
			utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired token")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to sign out")
		}
		return
	}

	utils.Success(c, 200, "Signed out", nil)
}

// Session handles GET /v1/auth/session. Admin capability is recomputed from
// the live allow-list on every call, never baked into the token.
func (h *AuthHandler) Session(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		utils.Error(c, 401, "UNAUTHORIZED", "Missing or invalid authorization header")
		return
	}

	claims, err := h.auth.Session(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrAuthNotConfigured):
			utils.Error(c, 503, "AUTH_NOT_CONFIGURED", "Authentication system is not configured")
		default:
			utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired token")
		}
		return
	}

	utils.Success(c, 200, "Session retrieved", gin.H{
		"userId":  claims.UserID,
		"email":   claims.Email,
		"isAdmin": h.allowlist.IsAdmin(claims.Email),
	})
}
