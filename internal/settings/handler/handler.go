// Package handler provides HTTP handlers for settings endpoints.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/settings/service"
	storeModel "github.com/festy23/training_grounds/internal/store/model"
	"github.com/festy23/training_grounds/internal/table"
)

// Handler handles HTTP requests for settings endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new settings handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Get handles GET /settings request.
// @Summary Get all settings
// @Tags Settings
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /settings [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Get(c *gin.Context) {
	settings, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update handles POST /settings request.
// @Summary Merge settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Settings to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /settings [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Update(c *gin.Context) {
	var patch map[string]json.RawMessage
	if err := c.ShouldBindJSON(&patch); err != nil || len(patch) == 0 {
		errorResponse(c, "INVALID_REQUEST", "body must be a non-empty JSON object", http.StatusBadRequest)
		return
	}

	settings, err := h.service.Update(c.Request.Context(), patch)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// handleError answers 400 only for rejected input. A stored table that fails
// to parse is a server fault and its location is not exposed.
func (h *Handler) handleError(c *gin.Context, err error) {
	var parseErr *table.ParseError
	if errors.As(err, &parseErr) {
		h.logger.Errorw("stored settings are unreadable", "error", err)
		errorResponse(c, "SETTINGS_CORRUPT", "stored settings are unreadable", http.StatusInternalServerError)
		return
	}
	if errors.Is(err, storeModel.ErrInvalidSetting) {
		errorResponse(c, "INVALID_SETTING", err.Error(), http.StatusBadRequest)
		return
	}
	h.logger.Errorw("settings request failed", "error", err)
	errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
}
