// Package router provides leaderboard module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/config"
	"github.com/festy23/training_grounds/internal/leaderboard/handler"
	"github.com/festy23/training_grounds/internal/leaderboard/model"
	"github.com/festy23/training_grounds/internal/leaderboard/repository"
	"github.com/festy23/training_grounds/internal/leaderboard/service"
)

// NewService wires the leaderboard service from application configuration.
func NewService(storeCfg config.StoreConfig, cfg config.LeaderboardConfig, logger *zap.SugaredLogger) service.Service {
	repo := repository.New(Paths(storeCfg, cfg), logger)
	return service.New(repo, service.Config{
		Policy:     model.Policy(cfg.OrphanPolicy),
		ChartLimit: cfg.ChartLimit,
	}, logger)
}

// Paths resolves the leaderboard tables against the store data directory.
func Paths(storeCfg config.StoreConfig, cfg config.LeaderboardConfig) repository.Paths {
	return repository.Paths{
		Users:  storeCfg.ResolvePath(cfg.UsersFile),
		Scores: storeCfg.ResolvePath(cfg.ScoresFile),
		Output: storeCfg.ResolvePath(cfg.OutputFile),
	}
}

// RegisterRoutes registers leaderboard module routes.
func RegisterRoutes(r gin.IRouter, svc service.Service, logger *zap.SugaredLogger) {
	h := handler.New(svc, logger)

	r.GET("/leaderboard", h.GetLeaderboard)
	r.GET("/leaderboard/chart.png", h.GetChart)
	r.GET("/leaderboard/export.xlsx", h.ExportXLSX)
}
