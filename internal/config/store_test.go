package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoreConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    StoreConfig
		wantError bool
	}{
		{name: "csv backend", config: StoreConfig{Backend: BackendCSV, DataDir: "data"}},
		{name: "sqlite backend", config: StoreConfig{Backend: BackendSQLite, DataDir: "data", BusyTimeout: time.Second}},
		{name: "unknown backend", config: StoreConfig{Backend: "postgres", DataDir: "data"}, wantError: true},
		{name: "empty data dir", config: StoreConfig{Backend: BackendCSV}, wantError: true},
		{name: "negative busy timeout", config: StoreConfig{Backend: BackendSQLite, DataDir: "data", BusyTimeout: -1}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStoreConfig_ResolvePath(t *testing.T) {
	cfg := StoreConfig{DataDir: "data"}

	assert.Equal(t, filepath.Join("data", "users.csv"), cfg.ResolvePath("users.csv"))

	abs := filepath.Join(string(filepath.Separator), "srv", "scores.csv")
	assert.Equal(t, abs, cfg.ResolvePath(abs))
}

func TestStoreConfig_DatabasePath(t *testing.T) {
	t.Run("defaults under data dir", func(t *testing.T) {
		cfg := StoreConfig{DataDir: "data"}
		assert.Equal(t, filepath.Join("data", "training_grounds.db"), cfg.DatabasePath())
	})

	t.Run("explicit path wins", func(t *testing.T) {
		cfg := StoreConfig{DataDir: "data", SQLitePath: "/tmp/dojo.db"}
		assert.Equal(t, "/tmp/dojo.db", cfg.DatabasePath())
	})
}

func TestLeaderboardConfig_Validate(t *testing.T) {
	valid := LeaderboardConfig{
		UsersFile:    "users.csv",
		ScoresFile:   "scores.csv",
		OutputFile:   "leaderboard.csv",
		OrphanPolicy: OrphanPolicyFail,
		ChartLimit:   5,
	}
	assert.NoError(t, valid.Validate())

	noFile := valid
	noFile.ScoresFile = ""
	assert.Error(t, noFile.Validate())

	badPolicy := valid
	badPolicy.OrphanPolicy = "maybe"
	assert.Error(t, badPolicy.Validate())

	noLimit := valid
	noLimit.ChartLimit = 0
	assert.Error(t, noLimit.Validate())
}

func TestRateLimitConfig_Validate(t *testing.T) {
	assert.NoError(t, RateLimitConfig{FeedbackPerMinute: 1, FeedbackBurst: 1}.Validate())
	assert.Error(t, RateLimitConfig{FeedbackPerMinute: 0, FeedbackBurst: 1}.Validate())
	assert.Error(t, RateLimitConfig{FeedbackPerMinute: 1, FeedbackBurst: 0}.Validate())
}
