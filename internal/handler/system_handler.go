package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/packworks/coursecat-backend/internal/response"
)

// SystemHandler serves liveness and dependency health.
type SystemHandler struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(pool *pgxpool.Pool, rdb *redis.Client) *SystemHandler {
	return &SystemHandler{pool: pool, rdb: rdb}
}

// Health godoc
// GET /health
// Reports overall status plus per-dependency reachability.
func (h *SystemHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	status := http.StatusOK
	overall := "ok"
	postgres := "ok"
	redisState := "ok"

	if err := h.pool.Ping(ctx); err != nil {
		postgres = "unreachable"
		overall = "degraded"
		status = http.StatusServiceUnavailable
	}
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		redisState = "unreachable"
		overall = "degraded"
		status = http.StatusServiceUnavailable
	}

	response.Success(c, status, gin.H{
		"status":   overall,
		"postgres": postgres,
		"redis":    redisState,
	})
}
