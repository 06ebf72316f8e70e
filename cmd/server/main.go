// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/app"
	"github.com/festy23/training_grounds/internal/config"
	leaderboardRouter "github.com/festy23/training_grounds/internal/leaderboard/router"
	"github.com/festy23/training_grounds/internal/store"
	"github.com/festy23/training_grounds/pkg/logger"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	sugar, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	if err := run(cfg, sugar); err != nil {
		sugar.Fatalw("server stopped with error", "error", err)
	}
}

func run(cfg config.Config, sugar *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := store.Open(ctx, cfg.Store, sugar)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			sugar.Errorw("failed to close store", "error", err)
		}
	}()

	if err := repo.Initialize(ctx); err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	router := app.NewRouter(app.Deps{
		Config:      cfg,
		Store:       repo,
		Leaderboard: leaderboardRouter.NewService(cfg.Store, cfg.Leaderboard, sugar),
		Logger:      sugar,
	})

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		sugar.Infow("server starting",
			"address", srv.Addr,
			"backend", cfg.Store.Backend,
			"data_dir", cfg.Store.DataDir,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	sugar.Infow("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
