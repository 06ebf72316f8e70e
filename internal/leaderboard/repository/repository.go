// Package repository provides CSV persistence for the leaderboard job.
package repository

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/leaderboard/model"
	"github.com/festy23/training_grounds/internal/table"
)

var (
	usersTable = table.Schema{
		Name:    "users",
		Columns: []string{"id", "username", "password_hash"},
	}
	scoresTable = table.Schema{
		Name:    "scores",
		Columns: []string{"id", "user_id", "ao_name", "aka_name", "ao_score", "aka_score", "timestamp"},
	}
	leaderboardTable = table.Schema{
		Name:    "leaderboard",
		Columns: []string{"rank", "username", "total_score", "last_played"},
	}
)

// Paths locates the leaderboard tables.
type Paths struct {
	Users  string
	Scores string
	Output string
}

// Repository defines the interface for leaderboard table access.
type Repository interface {
	// LoadUsers returns every user in file order.
	LoadUsers(ctx context.Context) ([]model.User, error)
	// LoadScores returns every score record in file order.
	LoadScores(ctx context.Context) ([]model.ScoreRecord, error)
	// SaveLeaderboard replaces the leaderboard table.
	SaveLeaderboard(ctx context.Context, rows []model.LeaderboardRow) error
	// SaveUsers replaces the users table.
	SaveUsers(ctx context.Context, users []model.User) error
	// SaveScores replaces the scores table.
	SaveScores(ctx context.Context, scores []model.ScoreRecord) error
}

type repository struct {
	paths  Paths
	logger *zap.SugaredLogger
}

// New creates a new leaderboard repository instance.
func New(paths Paths, logger *zap.SugaredLogger) Repository {
	return &repository{paths: paths, logger: logger}
}

func (r *repository) LoadUsers(ctx context.Context) ([]model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := table.ReadAll(r.paths.Users, usersTable)
	if err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(records))
	for _, rec := range records {
		users = append(users, model.User{
			ID:           rec.Get("id"),
			Username:     rec.Get("username"),
			PasswordHash: rec.Get("password_hash"),
		})
	}
	r.logger.Debugw("users loaded", "count", len(users))
	return users, nil
}

func (r *repository) LoadScores(ctx context.Context) ([]model.ScoreRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := table.ReadAll(r.paths.Scores, scoresTable)
	if err != nil {
		return nil, err
	}

	scores := make([]model.ScoreRecord, 0, len(records))
	for _, rec := range records {
		ao, err := rec.Int("ao_score")
		if err != nil {
			return nil, err
		}
		aka, err := rec.Int("aka_score")
		if err != nil {
			return nil, err
		}
		ts, err := rec.Time("timestamp")
		if err != nil {
			return nil, err
		}
		scores = append(scores, model.ScoreRecord{
			ID:        rec.Get("id"),
			UserID:    rec.Get("user_id"),
			AoName:    rec.Get("ao_name"),
			AkaName:   rec.Get("aka_name"),
			AoScore:   ao,
			AkaScore:  aka,
			Timestamp: ts,
		})
	}
	r.logger.Debugw("scores loaded", "count", len(scores))
	return scores, nil
}

func (r *repository) SaveLeaderboard(ctx context.Context, rows []model.LeaderboardRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, []string{
			strconv.Itoa(row.Rank),
			row.Username,
			strconv.Itoa(row.TotalScore),
			table.FormatTime(row.LastPlayed),
		})
	}
	return table.Overwrite(r.paths.Output, leaderboardTable, out)
}

func (r *repository) SaveUsers(ctx context.Context, users []model.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	out := make([][]string, 0, len(users))
	for _, u := range users {
		out = append(out, []string{u.ID, u.Username, u.PasswordHash})
	}
	return table.Overwrite(r.paths.Users, usersTable, out)
}

func (r *repository) SaveScores(ctx context.Context, scores []model.ScoreRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	out := make([][]string, 0, len(scores))
	for _, s := range scores {
		out = append(out, []string{
			s.ID,
			s.UserID,
			s.AoName,
			s.AkaName,
			strconv.Itoa(s.AoScore),
			strconv.Itoa(s.AkaScore),
			table.FormatTime(s.Timestamp),
		})
	}
	return table.Overwrite(r.paths.Scores, scoresTable, out)
}
