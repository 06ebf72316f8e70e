package repository

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/training_grounds/internal/leaderboard/model"
	"github.com/festy23/training_grounds/internal/table"
)

func setupRepo(t *testing.T) (Repository, Paths) {
	t.Helper()
	dir := t.TempDir()
	paths := Paths{
		Users:  filepath.Join(dir, "users.csv"),
		Scores: filepath.Join(dir, "scores.csv"),
		Output: filepath.Join(dir, "leaderboard.csv"),
	}
	return New(paths, zap.NewNop().Sugar()), paths
}

func TestRepository_UsersAndScores(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRepo(t)

	users := []model.User{
		{ID: "1", Username: "alice", PasswordHash: "$2a$10$abc"},
		{ID: "2", Username: "bob, jr", PasswordHash: "$2a$10$def"},
	}
	scores := []model.ScoreRecord{
		{ID: "1", UserID: "1", AoName: "Naruto", AkaName: "Sasuke", AoScore: 3, AkaScore: 4,
			Timestamp: time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local)},
	}
	require.NoError(t, repo.SaveUsers(ctx, users))
	require.NoError(t, repo.SaveScores(ctx, scores))

	gotUsers, err := repo.LoadUsers(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(users, gotUsers); diff != "" {
		t.Errorf("LoadUsers() mismatch (-want +got):\n%s", diff)
	}

	gotScores, err := repo.LoadScores(ctx)
	require.NoError(t, err)
	require.Len(t, gotScores, 1)
	assert.Equal(t, 7, gotScores[0].Total())
	assert.True(t, gotScores[0].Timestamp.Equal(scores[0].Timestamp))
}

func TestRepository_SaveLeaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("rows", func(t *testing.T) {
		repo, paths := setupRepo(t)
		rows := []model.LeaderboardRow{
			{Rank: 1, Username: "alice", TotalScore: 15, LastPlayed: time.Date(2024, 5, 1, 12, 1, 0, 0, time.Local)},
			{Rank: 2, Username: "bob", TotalScore: 15, LastPlayed: time.Date(2024, 5, 1, 12, 2, 0, 0, time.Local)},
		}

		require.NoError(t, repo.SaveLeaderboard(ctx, rows))

		data, err := os.ReadFile(paths.Output)
		require.NoError(t, err)
		assert.Equal(t, "rank,username,total_score,last_played\n"+
			"1,alice,15,2024-05-01 12:01:00\n"+
			"2,bob,15,2024-05-01 12:02:00\n", string(data))
	})

	t.Run("empty is header only", func(t *testing.T) {
		repo, paths := setupRepo(t)

		require.NoError(t, repo.SaveLeaderboard(ctx, nil))

		data, err := os.ReadFile(paths.Output)
		require.NoError(t, err)
		assert.Equal(t, "rank,username,total_score,last_played\n", string(data))
	})
}

func TestRepository_LoadErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing users file", func(t *testing.T) {
		repo, _ := setupRepo(t)
		_, err := repo.LoadUsers(ctx)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("bad score value", func(t *testing.T) {
		repo, paths := setupRepo(t)
		content := "id,user_id,ao_name,aka_name,ao_score,aka_score,timestamp\n1,1,A,B,three,4,2024-05-01 08:00:00\n"
		require.NoError(t, os.WriteFile(paths.Scores, []byte(content), 0o644))

		_, err := repo.LoadScores(ctx)
		var parseErr *table.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "ao_score", parseErr.Column)
		assert.Equal(t, 2, parseErr.Line)
	})

	t.Run("missing column", func(t *testing.T) {
		repo, paths := setupRepo(t)
		require.NoError(t, os.WriteFile(paths.Users, []byte("id,username\n1,alice\n"), 0o644))

		_, err := repo.LoadUsers(ctx)
		assert.ErrorIs(t, err, table.ErrMissingColumn)
	})
}
