// Package handler provides HTTP handlers for scoreboard endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	scoreModel "github.com/festy23/training_grounds/internal/scoreboard/model"
	"github.com/festy23/training_grounds/internal/scoreboard/service"
	storeModel "github.com/festy23/training_grounds/internal/store/model"
)

// Handler handles HTTP requests for scoreboard endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new scoreboard handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Get handles GET /scoreboard request.
// @Summary Get both scoreboard sides
// @Tags Scoreboard
// @Produce json
// @Success 200 {object} scoreModel.ScoreboardResponse
// @Failure 409 {object} ErrorResponse "Scoreboard does not hold two teams"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /scoreboard [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context())
	if err != nil {
		h.handleError(c, "error getting scoreboard", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Save handles POST /scoreboard/save request.
// @Summary Replace both scoreboard sides
// @Tags Scoreboard
// @Accept json
// @Produce json
// @Param request body scoreModel.SaveRequest true "Request"
// @Success 200 {object} scoreModel.ScoreboardResponse
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /scoreboard/save [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Save(c *gin.Context) {
	var req scoreModel.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, "error saving scoreboard", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Adjust handles POST /scoreboard/adjust request.
// @Summary Add or subtract points on one side
// @Tags Scoreboard
// @Accept json
// @Produce json
// @Param request body scoreModel.AdjustRequest true "Request"
// @Success 200 {object} scoreModel.ScoreboardResponse
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /scoreboard/adjust [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Adjust(c *gin.Context) {
	var req scoreModel.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Adjust(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, "error adjusting score", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reset handles POST /scoreboard/reset request.
// @Summary Reset both scores to zero
// @Tags Scoreboard
// @Produce json
// @Success 200 {object} scoreModel.ScoreboardResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /scoreboard/reset [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Reset(c *gin.Context) {
	resp, err := h.service.Reset(c.Request.Context())
	if err != nil {
		h.handleError(c, "error resetting scoreboard", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Finish handles POST /scoreboard/finish request.
// @Summary Record the current match in the history log
// @Tags Scoreboard
// @Accept json
// @Produce json
// @Param request body scoreModel.FinishRequest true "Request"
// @Success 201 {object} scoreModel.FinishResponse
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /scoreboard/finish [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Finish(c *gin.Context) {
	var req scoreModel.FinishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Finish(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, "error finishing match", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// History handles GET /history request.
// @Summary List recorded matches
// @Tags Scoreboard
// @Produce json
// @Success 200 {object} scoreModel.HistoryResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /history [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) History(c *gin.Context) {
	resp, err := h.service.History(c.Request.Context())
	if err != nil {
		h.handleError(c, "error getting history", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

var badRequestErrors = []error{
	storeModel.ErrNegativeScore,
	storeModel.ErrEmptyTeamName,
	storeModel.ErrDuplicateTeam,
	scoreModel.ErrInvalidSide,
	scoreModel.ErrMissingStartTime,
	scoreModel.ErrInvalidTime,
	scoreModel.ErrInvalidTimeRange,
}

func (h *Handler) handleError(c *gin.Context, msg string, err error) {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			errorResponse(c, "INVALID_REQUEST", target.Error(), http.StatusBadRequest)
			return
		}
	}
	if errors.Is(err, storeModel.ErrScoreboardShape) {
		h.logger.Warnw(msg, "error", err)
		errorResponse(c, "SCOREBOARD_INVALID", err.Error(), http.StatusConflict)
		return
	}
	h.logger.Errorw(msg, "error", err)
	errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
}
