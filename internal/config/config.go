// Package config provides application configuration loaded from environment
// variables with an optional YAML file overlay.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig `yaml:"server"`
	// Logger holds logger configuration.
	Logger LoggerConfig `yaml:"logger"`
	// Store holds table storage configuration.
	Store StoreConfig `yaml:"store"`
	// Leaderboard holds leaderboard job configuration.
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	// RateLimit holds per-client request limits.
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string `yaml:"gin_mode"`
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:      LoadServerConfigFromEnv(),
		Logger:      LoadLoggerConfigFromEnv(),
		Store:       LoadStoreConfigFromEnv(),
		Leaderboard: LoadLeaderboardConfigFromEnv(),
		RateLimit:   LoadRateLimitConfigFromEnv(),
		GinMode:     GetEnv("GIN_MODE", "release"),
	}
}

// Load loads configuration from the environment and then overlays the YAML
// file at path. Keys present in the file win; an empty path skips the file.
func Load(path string) (Config, error) {
	cfg := LoadFromEnv()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	if err := c.Store.Validate(); err != nil {
		return fmt.Errorf("store config validation failed: %w", err)
	}

	if err := c.Leaderboard.Validate(); err != nil {
		return fmt.Errorf("leaderboard config validation failed: %w", err)
	}

	if err := c.RateLimit.Validate(); err != nil {
		return fmt.Errorf("rate limit config validation failed: %w", err)
	}

	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	return nil
}
