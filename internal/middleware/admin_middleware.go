package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mueblessanmiguel/catalogo_api/internal/access"
	"github.com/mueblessanmiguel/catalogo_api/internal/utils"
)

// TokenDenylist answers whether a session token has been signed out.
type TokenDenylist interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AdminMiddleware gates administrative routes. It validates the session
// token, rejects revoked sessions, and re-checks the email allow-list on
// every request, so an allow-list change or an external sign-out takes
// effect on the next call.
type AdminMiddleware struct {
	allowlist *access.Allowlist
	denylist  TokenDenylist
}

// NewAdminMiddleware constructs an AdminMiddleware.
func NewAdminMiddleware(allowlist *access.Allowlist, denylist TokenDenylist) *AdminMiddleware {
	return &AdminMiddleware{allowlist: allowlist, denylist: denylist}
}

// Handle returns a Gin middleware function that enforces admin capability.
func (m *AdminMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			utils.Error(c, 401, "UNAUTHORIZED", "Missing or invalid authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ValidateJWT(token)
		if err != nil {
			utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		revoked, err := m.denylist.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil || revoked {
			utils.Error(c, 401, "INVALID_TOKEN", "Session is no longer valid")
			c.Abort()
			return
		}

		if !m.allowlist.IsAdmin(claims.Email) {
			utils.Error(c, 403, "FORBIDDEN", fmt.Sprintf("Admin access denied for %s", claims.Email))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// BearerToken extracts the bearer token from the Authorization header.
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}
