// Package model provides data transfer objects for statistics module.
package model

// TeamStatistics is the win count of one team.
type TeamStatistics struct {
	TeamName string `json:"team_name"`
	Wins     int    `json:"wins"`
}

// TeamsStatisticsResponse represents response for team statistics.
type TeamsStatisticsResponse struct {
	Teams []TeamStatistics `json:"teams"`
	Total int              `json:"total"`
}

// MatchStatistics aggregates the game history.
type MatchStatistics struct {
	TotalMatches           int     `json:"total_matches"`
	AoWins                 int     `json:"ao_wins"`
	AkaWins                int     `json:"aka_wins"`
	Draws                  int     `json:"draws"`
	AverageAoScore         float64 `json:"average_ao_score"`
	AverageAkaScore        float64 `json:"average_aka_score"`
	AverageDurationSeconds float64 `json:"average_duration_seconds"`
	LongestMatchSeconds    int64   `json:"longest_match_seconds"`
	// SkippedRecords counts history rows whose scores or times do not parse.
	SkippedRecords int `json:"skipped_records"`
}

// MatchStatisticsResponse represents response for match statistics.
type MatchStatisticsResponse struct {
	Statistics MatchStatistics `json:"statistics"`
}
