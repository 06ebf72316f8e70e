// Package store selects and opens the persistence backend of the
// training-grounds tables.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/config"
	"github.com/festy23/training_grounds/internal/database/database"
	"github.com/festy23/training_grounds/internal/store/csvstore"
	"github.com/festy23/training_grounds/internal/store/model"
	"github.com/festy23/training_grounds/internal/store/sqlstore"
)

// Repository is the set of table operations every backend provides.
type Repository interface {
	Initialize(ctx context.Context) error
	Ping(ctx context.Context) error
	LoadTeamMembers(ctx context.Context) ([]model.TeamMember, error)
	LoadScoreboard(ctx context.Context) (*model.Scoreboard, error)
	SaveScoreboard(ctx context.Context, aoName string, aoScore int, akaName string, akaScore int) error
	LoadSettings(ctx context.Context) (*model.Settings, error)
	SaveSettings(ctx context.Context, settings *model.Settings) error
	LogFeedback(ctx context.Context, message string) error
	LogGameResult(ctx context.Context, result model.GameResult) error
	GetGameHistory(ctx context.Context) ([]model.GameHistoryRecord, error)
}

var (
	_ Repository = (*csvstore.Store)(nil)
	_ Repository = (*sqlstore.Store)(nil)
)

// Open builds the backend selected by cfg. The returned close function
// releases backend resources and is safe to call once.
func Open(ctx context.Context, cfg config.StoreConfig, logger *zap.SugaredLogger) (Repository, func() error, error) {
	switch cfg.Backend {
	case config.BackendCSV, "":
		s := csvstore.New(csvstore.Config{DataDir: cfg.DataDir}, logger)
		return s, func() error { return nil }, nil
	case config.BackendSQLite:
		path := cfg.DatabasePath()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		db, err := database.Open(ctx, database.Config{Path: path, BusyTimeout: cfg.BusyTimeout})
		if err != nil {
			return nil, nil, err
		}
		logger.Infow("sqlite database opened", "path", path)
		s := sqlstore.New(db, logger)
		return s, func() error { return database.Close(db) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend: %s", cfg.Backend)
	}
}
