package config

import "fmt"

// Orphan policies for score records that reference an unknown user.
const (
	OrphanPolicySkip = "skip"
	OrphanPolicyFail = "fail"
)

// LeaderboardConfig holds leaderboard job configuration.
type LeaderboardConfig struct {
	// UsersFile is the users table, relative to the store data directory.
	UsersFile string `yaml:"users_file"`
	// ScoresFile is the per-game scores table.
	ScoresFile string `yaml:"scores_file"`
	// OutputFile is where the ranked leaderboard is written.
	OutputFile string `yaml:"output_file"`
	// OrphanPolicy decides what happens to scores of unknown users (skip, fail).
	OrphanPolicy string `yaml:"orphan_policy"`
	// ChartLimit caps the number of bars in the leaderboard chart.
	ChartLimit int `yaml:"chart_limit"`
}

// LoadLeaderboardConfigFromEnv loads leaderboard configuration from environment variables.
func LoadLeaderboardConfigFromEnv() LeaderboardConfig {
	return LeaderboardConfig{
		UsersFile:    GetEnv("LEADERBOARD_USERS_FILE", "users.csv"),
		ScoresFile:   GetEnv("LEADERBOARD_SCORES_FILE", "scores.csv"),
		OutputFile:   GetEnv("LEADERBOARD_OUTPUT_FILE", "leaderboard.csv"),
		OrphanPolicy: GetEnv("LEADERBOARD_ORPHAN_POLICY", OrphanPolicySkip),
		ChartLimit:   GetEnvInt("LEADERBOARD_CHART_LIMIT", 10),
	}
}

// Validate validates leaderboard configuration.
func (c LeaderboardConfig) Validate() error {
	if c.UsersFile == "" || c.ScoresFile == "" || c.OutputFile == "" {
		return fmt.Errorf("leaderboard file names must not be empty")
	}
	if c.OrphanPolicy != OrphanPolicySkip && c.OrphanPolicy != OrphanPolicyFail {
		return fmt.Errorf("invalid LEADERBOARD_ORPHAN_POLICY: %s (must be: skip, fail)", c.OrphanPolicy)
	}
	if c.ChartLimit <= 0 {
		return fmt.Errorf("ChartLimit must be greater than 0")
	}
	return nil
}
