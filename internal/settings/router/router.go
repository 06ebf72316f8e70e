// Package router provides settings module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/settings/handler"
	"github.com/festy23/training_grounds/internal/settings/service"
	storeModel "github.com/festy23/training_grounds/internal/store/model"
)

// RegisterRoutes registers settings module routes.
func RegisterRoutes(r gin.IRouter, repo service.Repository, logger *zap.SugaredLogger) {
	svc := service.New(repo, storeModel.DefaultSettingsSchema(), logger)
	h := handler.New(svc, logger)

	r.GET("/settings", h.Get)
	r.POST("/settings", h.Update)
}
