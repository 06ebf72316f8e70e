// Package handler provides HTTP handlers for leaderboard endpoints.
package handler

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/leaderboard/model"
	"github.com/festy23/training_grounds/internal/leaderboard/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler handles HTTP requests for leaderboard endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new leaderboard handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetLeaderboard handles GET /leaderboard.
func (h *Handler) GetLeaderboard(c *gin.Context) {
	res, err := h.service.Compute(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewLeaderboardResponse(res))
}

// GetChart handles GET /leaderboard/chart.png?limit=N.
func (h *Handler) GetChart(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			errorResponse(c, "INVALID_REQUEST", "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	var buf bytes.Buffer
	if err := h.service.RenderChart(c.Request.Context(), &buf, limit); err != nil {
		h.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// ExportXLSX handles GET /leaderboard/export.xlsx.
func (h *Handler) ExportXLSX(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.ExportXLSX(c.Request.Context(), &buf); err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="leaderboard.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrNoData):
		errorResponse(c, "NOT_FOUND", "leaderboard is empty", http.StatusNotFound)
	case errors.Is(err, model.ErrOrphanedRecord):
		h.logger.Warnw("leaderboard rejected orphaned score", "error", err)
		errorResponse(c, "ORPHANED_RECORD", err.Error(), http.StatusUnprocessableEntity)
	default:
		h.logger.Errorw("leaderboard request failed", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
