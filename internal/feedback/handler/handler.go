// Package handler provides HTTP handlers for feedback endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/feedback/model"
	"github.com/festy23/training_grounds/internal/feedback/service"
)

// Handler handles HTTP requests for feedback endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new feedback handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Submit handles POST /feedback request.
// @Summary Submit feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body model.SubmitRequest true "Feedback message"
// @Success 201 {object} model.SubmitResponse
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /feedback [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Submit(c *gin.Context) {
	var req model.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	message, err := h.service.Submit(c.Request.Context(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyMessage), errors.Is(err, model.ErrMessageTooLong):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		default:
			h.logger.Errorw("feedback request failed", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, model.SubmitResponse{Message: message})
}
