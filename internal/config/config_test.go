package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupAndRestoreEnv saves original env vars and sets new ones for testing.
func setupAndRestoreEnv(t *testing.T, envVars map[string]string) func() {
	t.Helper()
	originalEnv := make(map[string]string)
	for key := range envVars {
		originalEnv[key] = os.Getenv(key)
		os.Unsetenv(key)
	}
	for key, value := range envVars {
		os.Setenv(key, value)
	}
	return func() {
		for key := range envVars {
			os.Unsetenv(key)
		}
		for key, value := range originalEnv {
			if value != "" {
				os.Setenv(key, value)
			}
		}
	}
}

func validConfig() Config {
	return Config{
		Server: ServerConfig{
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "json",
		},
		Store: StoreConfig{
			Backend: BackendCSV,
			DataDir: "data",
		},
		Leaderboard: LeaderboardConfig{
			UsersFile:    "users.csv",
			ScoresFile:   "scores.csv",
			OutputFile:   "leaderboard.csv",
			OrphanPolicy: OrphanPolicySkip,
			ChartLimit:   10,
		},
		RateLimit: RateLimitConfig{
			FeedbackPerMinute: 6,
			FeedbackBurst:     3,
		},
		GinMode: "release",
	}
}

func TestLoadFromEnv_DefaultValues(t *testing.T) {
	restore := setupAndRestoreEnv(t, map[string]string{
		"SERVER_PORT":   "",
		"LOG_LEVEL":     "",
		"GIN_MODE":      "",
		"STORE_BACKEND": "",
		"DATA_DIR":      "",
	})
	defer restore()

	cfg := LoadFromEnv()
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, BackendCSV, cfg.Store.Backend)
	assert.Equal(t, "data", cfg.Store.DataDir)
	assert.Equal(t, OrphanPolicySkip, cfg.Leaderboard.OrphanPolicy)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv_CustomValues(t *testing.T) {
	restore := setupAndRestoreEnv(t, map[string]string{
		"SERVER_PORT":   ":9090",
		"LOG_LEVEL":     "debug",
		"GIN_MODE":      "debug",
		"STORE_BACKEND": "sqlite",
		"DATA_DIR":      "/var/lib/dojo",
	})
	defer restore()

	cfg := LoadFromEnv()
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, "/var/lib/dojo", cfg.Store.DataDir)
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses env only", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, LoadFromEnv(), cfg)
	})

	t.Run("file overlays env", func(t *testing.T) {
		restore := setupAndRestoreEnv(t, map[string]string{"DATA_DIR": "from-env", "LOG_LEVEL": "warn"})
		defer restore()

		path := filepath.Join(t.TempDir(), "dojo.yaml")
		content := "store:\n  data_dir: from-file\n  backend: sqlite\nserver:\n  read_timeout: 30s\nleaderboard:\n  orphan_policy: fail\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Store.DataDir)
		assert.Equal(t, BackendSQLite, cfg.Store.Backend)
		assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, OrphanPolicyFail, cfg.Leaderboard.OrphanPolicy)
		assert.Equal(t, "warn", cfg.Logger.Level)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("store: [unclosed"), 0o600))

		_, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal config")
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*Config)
		message string
	}{
		{
			name:    "invalid server config",
			mutate:  func(c *Config) { c.Server.ReadTimeout = 0 },
			message: "server config validation failed",
		},
		{
			name:    "invalid logger config",
			mutate:  func(c *Config) { c.Logger.Level = "invalid" },
			message: "logger config validation failed",
		},
		{
			name:    "invalid store config",
			mutate:  func(c *Config) { c.Store.Backend = "mongo" },
			message: "store config validation failed",
		},
		{
			name:    "invalid leaderboard config",
			mutate:  func(c *Config) { c.Leaderboard.OrphanPolicy = "ignore" },
			message: "leaderboard config validation failed",
		},
		{
			name:    "invalid rate limit config",
			mutate:  func(c *Config) { c.RateLimit.FeedbackBurst = 0 },
			message: "rate limit config validation failed",
		},
		{
			name:    "invalid gin mode",
			mutate:  func(c *Config) { c.GinMode = "invalid" },
			message: "invalid GIN_MODE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}

	t.Run("valid gin modes", func(t *testing.T) {
		for _, mode := range []string{"debug", "release", "test"} {
			cfg := validConfig()
			cfg.GinMode = mode
			assert.NoError(t, cfg.Validate(), "mode %s should be valid", mode)
		}
	})
}
