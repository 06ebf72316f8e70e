// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetTeamsStatistics handles GET /statistics/teams request.
// @Summary Get win counts per team
// @Tags Statistics
// @Produce json
// @Success 200 {object} model.TeamsStatisticsResponse
// @Failure 500 {object} ErrorResponse
// @Router /statistics/teams [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetTeamsStatistics(c *gin.Context) {
	resp, err := h.service.GetTeamsStatistics(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error getting team statistics", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetMatchStatistics handles GET /statistics/matches request.
// @Summary Get aggregates over finished matches
// @Tags Statistics
// @Produce json
// @Success 200 {object} model.MatchStatisticsResponse
// @Failure 500 {object} ErrorResponse
// @Router /statistics/matches [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetMatchStatistics(c *gin.Context) {
	resp, err := h.service.GetMatchStatistics(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error getting match statistics", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
