// Package router provides scoreboard module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/scoreboard/handler"
	"github.com/festy23/training_grounds/internal/scoreboard/service"
)

// RegisterRoutes registers scoreboard module routes.
func RegisterRoutes(r gin.IRouter, repo service.Repository, logger *zap.SugaredLogger) {
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/scoreboard", h.Get)
	r.POST("/scoreboard/save", h.Save)
	r.POST("/scoreboard/adjust", h.Adjust)
	r.POST("/scoreboard/reset", h.Reset)
	r.POST("/scoreboard/finish", h.Finish)
	r.GET("/history", h.History)
}
