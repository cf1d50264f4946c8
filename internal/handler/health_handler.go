package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/mueblessanmiguel/catalogo_api/internal/cache"
	"github.com/mueblessanmiguel/catalogo_api/internal/utils"
)

// HealthHandler reports service and dependency health.
type HealthHandler struct {
	db    *sqlx.DB
	redis *cache.RedisClient
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(db *sqlx.DB, redis *cache.RedisClient) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

// GetHealth handles GET /v1/health
func (h *HealthHandler) GetHealth(c *gin.Context) {
	dbStatus := "up"
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		dbStatus = "down"
	}
	redisStatus := "up"
	if err := h.redis.Ping(c.Request.Context()); err != nil {
		redisStatus = "down"
	}

	utils.Success(c, 200, "OK", gin.H{
		"database": dbStatus,
		"redis":    redisStatus,
	})
}
