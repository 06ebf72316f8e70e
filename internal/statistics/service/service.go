// Package service provides business logic layer for statistics module.
package service

import (
	"context"
	"sort"
	"strconv"

	"go.uber.org/zap"

	scoreboardModel "github.com/festy23/training_grounds/internal/scoreboard/model"
	"github.com/festy23/training_grounds/internal/statistics/model"
	storeModel "github.com/festy23/training_grounds/internal/store/model"
	"github.com/festy23/training_grounds/internal/table"
)

// Repository is the part of the store the statistics module reads.
type Repository interface {
	GetGameHistory(ctx context.Context) ([]storeModel.GameHistoryRecord, error)
}

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetTeamsStatistics returns win counts per team, most wins first.
	GetTeamsStatistics(ctx context.Context) (*model.TeamsStatisticsResponse, error)

	// GetMatchStatistics returns aggregates over every finished match.
	GetMatchStatistics(ctx context.Context) (*model.MatchStatisticsResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetTeamsStatistics returns win counts per team. Draws are not a team.
// Ties are ordered by team name.
func (s *service) GetTeamsStatistics(ctx context.Context) (*model.TeamsStatisticsResponse, error) {
	s.logger.Debugw("GetTeamsStatistics called")

	games, err := s.repo.GetGameHistory(ctx)
	if err != nil {
		s.logger.Errorw("GetTeamsStatistics failed", "error", err)
		return nil, err
	}

	wins := make(map[string]int)
	for _, g := range games {
		if g.Winner == "" || g.Winner == scoreboardModel.Draw {
			continue
		}
		wins[g.Winner]++
	}

	teams := make([]model.TeamStatistics, 0, len(wins))
	for name, n := range wins {
		teams = append(teams, model.TeamStatistics{TeamName: name, Wins: n})
	}
	sort.Slice(teams, func(i, j int) bool {
		if teams[i].Wins != teams[j].Wins {
			return teams[i].Wins > teams[j].Wins
		}
		return teams[i].TeamName < teams[j].TeamName
	})

	s.logger.Infow("GetTeamsStatistics completed", "count", len(teams))
	return &model.TeamsStatisticsResponse{
		Teams: teams,
		Total: len(teams),
	}, nil
}

// GetMatchStatistics returns aggregates over the game history. Rows that do
// not parse are counted in SkippedRecords and left out of every average.
func (s *service) GetMatchStatistics(ctx context.Context) (*model.MatchStatisticsResponse, error) {
	s.logger.Debugw("GetMatchStatistics called")

	games, err := s.repo.GetGameHistory(ctx)
	if err != nil {
		s.logger.Errorw("GetMatchStatistics failed", "error", err)
		return nil, err
	}

	var (
		stats             model.MatchStatistics
		aoTotal, akaTotal int
		durationTotal     int64
	)
	for _, g := range games {
		ao, errAo := strconv.Atoi(g.AoScore)
		aka, errAka := strconv.Atoi(g.AkaScore)
		start, errStart := table.ParseTime(g.StartTime)
		end, errEnd := table.ParseTime(g.EndTime)
		if errAo != nil || errAka != nil || errStart != nil || errEnd != nil {
			stats.SkippedRecords++
			continue
		}

		stats.TotalMatches++
		aoTotal += ao
		akaTotal += aka
		switch {
		case ao > aka:
			stats.AoWins++
		case aka > ao:
			stats.AkaWins++
		default:
			stats.Draws++
		}

		seconds := int64(end.Sub(start).Seconds())
		durationTotal += seconds
		if seconds > stats.LongestMatchSeconds {
			stats.LongestMatchSeconds = seconds
		}
	}

	if stats.TotalMatches > 0 {
		n := float64(stats.TotalMatches)
		stats.AverageAoScore = float64(aoTotal) / n
		stats.AverageAkaScore = float64(akaTotal) / n
		stats.AverageDurationSeconds = float64(durationTotal) / n
	}
	if stats.SkippedRecords > 0 {
		s.logger.Warnw("game history has unreadable rows", "skipped", stats.SkippedRecords)
	}

	s.logger.Infow("GetMatchStatistics completed", "total_matches", stats.TotalMatches)
	return &model.MatchStatisticsResponse{Statistics: stats}, nil
}
