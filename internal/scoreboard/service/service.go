// Package service provides business logic layer for the scoreboard module.
package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"

	scoreModel "github.com/festy23/training_grounds/internal/scoreboard/model"
	storeModel "github.com/festy23/training_grounds/internal/store/model"
	"github.com/festy23/training_grounds/internal/table"
)

// Repository is the part of the store the scoreboard module uses.
type Repository interface {
	LoadScoreboard(ctx context.Context) (*storeModel.Scoreboard, error)
	SaveScoreboard(ctx context.Context, aoName string, aoScore int, akaName string, akaScore int) error
	LogGameResult(ctx context.Context, result storeModel.GameResult) error
	GetGameHistory(ctx context.Context) ([]storeModel.GameHistoryRecord, error)
}

// Service defines the interface for scoreboard operations.
type Service interface {
	// Get returns both sides of the scoreboard.
	Get(ctx context.Context) (*scoreModel.ScoreboardResponse, error)

	// Save replaces both sides.
	Save(ctx context.Context, req *scoreModel.SaveRequest) (*scoreModel.ScoreboardResponse, error)

	// Adjust adds delta to one side. Scores never drop below zero.
	Adjust(ctx context.Context, req *scoreModel.AdjustRequest) (*scoreModel.ScoreboardResponse, error)

	// Reset sets both scores to zero, keeping team names.
	Reset(ctx context.Context) (*scoreModel.ScoreboardResponse, error)

	// Finish records the current match in the history log.
	Finish(ctx context.Context, req *scoreModel.FinishRequest) (*scoreModel.FinishResponse, error)

	// History returns every recorded match.
	History(ctx context.Context) (*scoreModel.HistoryResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.SugaredLogger
}

// New creates a new scoreboard service instance.
func New(repo Repository, logger *zap.SugaredLogger) Service {
	return NewWithClock(repo, time.Now, logger)
}

// NewWithClock creates a scoreboard service with a custom time source.
func NewWithClock(repo Repository, now func() time.Time, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		now:    now,
		logger: logger,
	}
}

func (s *service) sides(ctx context.Context) (ao, aka storeModel.ScoreEntry, err error) {
	sb, err := s.repo.LoadScoreboard(ctx)
	if err != nil {
		return ao, aka, err
	}
	return sb.Sides()
}

func (s *service) Get(ctx context.Context) (*scoreModel.ScoreboardResponse, error) {
	ao, aka, err := s.sides(ctx)
	if err != nil {
		s.logger.Errorw("failed to load scoreboard", "error", err)
		return nil, err
	}
	return &scoreModel.ScoreboardResponse{Ao: ao, Aka: aka}, nil
}

func (s *service) Save(ctx context.Context, req *scoreModel.SaveRequest) (*scoreModel.ScoreboardResponse, error) {
	s.logger.Debugw("Save called", "ao", req.AoName, "ao_score", req.AoScore, "aka", req.AkaName, "aka_score", req.AkaScore)

	if err := s.repo.SaveScoreboard(ctx, req.AoName, req.AoScore, req.AkaName, req.AkaScore); err != nil {
		return nil, err
	}
	return s.Get(ctx)
}

func (s *service) Adjust(ctx context.Context, req *scoreModel.AdjustRequest) (*scoreModel.ScoreboardResponse, error) {
	if req.Side != scoreModel.SideAo && req.Side != scoreModel.SideAka {
		return nil, scoreModel.ErrInvalidSide
	}

	ao, aka, err := s.sides(ctx)
	if err != nil {
		return nil, err
	}

	if req.Side == scoreModel.SideAo {
		ao.Score = addScore(ao.Score, req.Delta)
	} else {
		aka.Score = addScore(aka.Score, req.Delta)
	}

	if err := s.repo.SaveScoreboard(ctx, ao.TeamName, ao.Score, aka.TeamName, aka.Score); err != nil {
		return nil, err
	}

	s.logger.Debugw("score adjusted", "side", req.Side, "delta", req.Delta, "ao_score", ao.Score, "aka_score", aka.Score)
	return s.Get(ctx)
}

// addScore applies delta to a non-negative score, saturating at zero and
// math.MaxInt instead of wrapping.
func addScore(score, delta int) int {
	switch {
	case delta > 0 && score > math.MaxInt-delta:
		return math.MaxInt
	case score+delta < 0:
		return 0
	}
	return score + delta
}

func (s *service) Reset(ctx context.Context) (*scoreModel.ScoreboardResponse, error) {
	ao, aka, err := s.sides(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveScoreboard(ctx, ao.TeamName, 0, aka.TeamName, 0); err != nil {
		return nil, err
	}

	s.logger.Infow("scoreboard reset", "ao", ao.TeamName, "aka", aka.TeamName)
	return s.Get(ctx)
}

func (s *service) Finish(ctx context.Context, req *scoreModel.FinishRequest) (*scoreModel.FinishResponse, error) {
	if req.StartTime == "" {
		return nil, scoreModel.ErrMissingStartTime
	}
	start, err := table.ParseTime(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time %q", scoreModel.ErrInvalidTime, req.StartTime)
	}
	end := s.now()
	if req.EndTime != "" {
		end, err = table.ParseTime(req.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: end_time %q", scoreModel.ErrInvalidTime, req.EndTime)
		}
	}
	if end.Before(start) {
		return nil, scoreModel.ErrInvalidTimeRange
	}

	ao, aka, err := s.sides(ctx)
	if err != nil {
		return nil, err
	}

	result := storeModel.GameResult{
		StartTime: start,
		EndTime:   end,
		Winner:    winner(ao, aka),
		AoScore:   ao.Score,
		AkaScore:  aka.Score,
	}
	if err := s.repo.LogGameResult(ctx, result); err != nil {
		s.logger.Errorw("failed to log game result", "error", err)
		return nil, err
	}

	board := &scoreModel.ScoreboardResponse{Ao: ao, Aka: aka}
	if req.Reset {
		board, err = s.Reset(ctx)
		if err != nil {
			return nil, err
		}
	}

	return &scoreModel.FinishResponse{
		Game: storeModel.GameHistoryRecord{
			StartTime: table.FormatTime(result.StartTime),
			EndTime:   table.FormatTime(result.EndTime),
			Winner:    result.Winner,
			AoScore:   strconv.Itoa(result.AoScore),
			AkaScore:  strconv.Itoa(result.AkaScore),
		},
		Scoreboard: *board,
	}, nil
}

func winner(ao, aka storeModel.ScoreEntry) string {
	switch {
	case ao.Score > aka.Score:
		return ao.TeamName
	case aka.Score > ao.Score:
		return aka.TeamName
	default:
		return scoreModel.Draw
	}
}

func (s *service) History(ctx context.Context) (*scoreModel.HistoryResponse, error) {
	games, err := s.repo.GetGameHistory(ctx)
	if err != nil {
		s.logger.Errorw("failed to load game history", "error", err)
		return nil, err
	}
	if games == nil {
		games = []storeModel.GameHistoryRecord{}
	}
	return &scoreModel.HistoryResponse{Games: games, Total: len(games)}, nil
}
