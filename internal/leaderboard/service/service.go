// Package service provides business logic layer for the leaderboard job.
package service

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/leaderboard/export"
	"github.com/festy23/training_grounds/internal/leaderboard/model"
	"github.com/festy23/training_grounds/internal/leaderboard/repository"
)

// Service defines the interface for leaderboard operations.
type Service interface {
	// Generate ranks the current scores and writes the leaderboard table.
	Generate(ctx context.Context) (*model.Result, error)

	// Compute ranks the current scores without writing anything.
	Compute(ctx context.Context) (*model.Result, error)

	// ExportXLSX writes the current leaderboard as a spreadsheet.
	ExportXLSX(ctx context.Context, w io.Writer) error

	// RenderChart writes a PNG bar chart of the top limit users.
	// A non-positive limit uses the configured default.
	RenderChart(ctx context.Context, w io.Writer, limit int) error
}

// Config holds leaderboard service configuration.
type Config struct {
	Policy     model.Policy
	ChartLimit int
}

type service struct {
	repo   repository.Repository
	cfg    Config
	logger *zap.SugaredLogger
}

// New creates a new leaderboard service instance.
func New(repo repository.Repository, cfg Config, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *service) Compute(ctx context.Context) (*model.Result, error) {
	s.logger.Debugw("Compute called", "policy", s.cfg.Policy)

	users, err := s.repo.LoadUsers(ctx)
	if err != nil {
		s.logger.Errorw("failed to load users", "error", err)
		return nil, err
	}
	scores, err := s.repo.LoadScores(ctx)
	if err != nil {
		s.logger.Errorw("failed to load scores", "error", err)
		return nil, err
	}

	res, err := Rank(users, scores, s.cfg.Policy)
	if err != nil {
		s.logger.Errorw("ranking failed", "error", err)
		return nil, err
	}

	for _, o := range res.Orphans {
		s.logger.Warnw("skipping score of unknown user", "score_id", o.Record.ID, "user_id", o.Record.UserID)
	}
	return res, nil
}

func (s *service) Generate(ctx context.Context) (*model.Result, error) {
	res, err := s.Compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveLeaderboard(ctx, res.Rows); err != nil {
		s.logger.Errorw("failed to save leaderboard", "error", err)
		return nil, err
	}

	s.logger.Infow("leaderboard generated", "rows", len(res.Rows), "orphans", len(res.Orphans))
	return res, nil
}

func (s *service) ExportXLSX(ctx context.Context, w io.Writer) error {
	res, err := s.Compute(ctx)
	if err != nil {
		return err
	}
	return export.WriteXLSX(w, res.Rows)
}

func (s *service) RenderChart(ctx context.Context, w io.Writer, limit int) error {
	if limit <= 0 {
		limit = s.cfg.ChartLimit
	}
	res, err := s.Compute(ctx)
	if err != nil {
		return err
	}
	return export.WriteChart(w, res.Rows, limit)
}
