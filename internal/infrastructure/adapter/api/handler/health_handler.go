package handler

import (
	"context"
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Pinger checks a dependency
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and database reachability
type HealthHandler struct {
	db     Pinger
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db Pinger, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("Health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "ok"})
}
