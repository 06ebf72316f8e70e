// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const checkTimeout = 5 * time.Second

// Pinger reports whether the table store can serve requests.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler handles health check requests.
type Handler struct {
	store   Pinger
	backend string
	logger  *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(store Pinger, backend string, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		store:   store,
		backend: backend,
		logger:  logger,
	}
}

// Response represents health check response.
type Response struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

// Check handles GET /health request.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /health [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warnw("health check failed", "backend", h.backend, "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{Status: "unhealthy", Backend: h.backend})
		return
	}

	c.JSON(http.StatusOK, Response{Status: "ok", Backend: h.backend})
}
