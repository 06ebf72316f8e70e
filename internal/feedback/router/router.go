// Package router provides feedback module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/feedback/handler"
	"github.com/festy23/training_grounds/internal/feedback/service"
)

// RegisterRoutes registers feedback module routes. Middlewares, such as a
// rate limiter, run before the handler on POST /feedback only.
func RegisterRoutes(r gin.IRouter, repo service.Repository, logger *zap.SugaredLogger, middlewares ...gin.HandlerFunc) {
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	handlers := append(append([]gin.HandlerFunc{}, middlewares...), h.Submit)
	r.POST("/feedback", handlers...)
}
