package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mueblessanmiguel/catalogo_api/internal/utils"
)

// Limiter is a per-key request budget; the Redis fixed-window counter in the
// cache package satisfies it.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimitMiddleware throttles a route per client IP. When the limiter
// itself fails (e.g. Redis down) the request is let through: the throttle
// protects against abuse, it must not take the public form down with it.
func RateLimitMiddleware(limiter Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()
		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warn().Err(err).Str("scope", scope).Msg("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if !allowed {
			utils.Error(c, 429, "TOO_MANY_REQUESTS", "Too many submissions, try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
