// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListMembers handles GET /team/members request.
// @Summary List the team roster
// @Tags Team
// @Produce json
// @Success 200 {object} teamModel.MembersResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /team/members [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListMembers(c *gin.Context) {
	resp, err := h.service.ListMembers(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing team members", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
