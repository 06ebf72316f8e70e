// Package app assembles the HTTP router from the module routers.
package app

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/config"
	feedbackRouter "github.com/festy23/training_grounds/internal/feedback/router"
	"github.com/festy23/training_grounds/internal/health"
	leaderboardRouter "github.com/festy23/training_grounds/internal/leaderboard/router"
	leaderboardService "github.com/festy23/training_grounds/internal/leaderboard/service"
	"github.com/festy23/training_grounds/internal/middleware"
	scoreboardRouter "github.com/festy23/training_grounds/internal/scoreboard/router"
	settingsRouter "github.com/festy23/training_grounds/internal/settings/router"
	statisticsRouter "github.com/festy23/training_grounds/internal/statistics/router"
	"github.com/festy23/training_grounds/internal/store"
	teamRouter "github.com/festy23/training_grounds/internal/team/router"
)

const metricsNamespace = "training_grounds"

// Deps are the long-lived components the router serves.
type Deps struct {
	Config      config.Config
	Store       store.Repository
	Leaderboard leaderboardService.Service
	Logger      *zap.SugaredLogger
}

// NewRouter builds the gin engine with middlewares and every route.
func NewRouter(d Deps) *gin.Engine {
	metrics := middleware.NewMetrics(metricsNamespace)
	limiter := middleware.NewIPRateLimiter(
		middleware.PerMinute(d.Config.RateLimit.FeedbackPerMinute),
		d.Config.RateLimit.FeedbackBurst,
	)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(d.Logger),
		middleware.Logger(d.Logger),
		metrics.Middleware(),
	)

	r.GET("/health", health.New(d.Store, d.Config.Store.Backend, d.Logger).Check)
	r.GET("/metrics", metrics.Handler())

	teamRouter.RegisterRoutes(r, d.Store, d.Logger)
	scoreboardRouter.RegisterRoutes(r, d.Store, d.Logger)
	settingsRouter.RegisterRoutes(r, d.Store, d.Logger)
	statisticsRouter.RegisterRoutes(r, d.Store, d.Logger)
	feedbackRouter.RegisterRoutes(r, d.Store, d.Logger, middleware.RateLimit(limiter, d.Logger))
	leaderboardRouter.RegisterRoutes(r, d.Leaderboard, d.Logger)

	return r
}
