// Package model provides the entities of the leaderboard job.
package model

import "time"

// User is one row of the users table.
type User struct {
	ID           string
	Username     string
	PasswordHash string
}

// ScoreRecord is one played game.
type ScoreRecord struct {
	ID        string
	UserID    string
	AoName    string
	AkaName   string
	AoScore   int
	AkaScore  int
	Timestamp time.Time
}

// Total returns the combined score of both sides.
func (r ScoreRecord) Total() int {
	return r.AoScore + r.AkaScore
}

// LeaderboardRow is one ranked entry of the leaderboard.
type LeaderboardRow struct {
	Rank       int       `json:"rank"`
	Username   string    `json:"username"`
	TotalScore int       `json:"total_score"`
	LastPlayed time.Time `json:"last_played"`
}

// OrphanedRecord is a score whose user_id has no matching user.
type OrphanedRecord struct {
	Record ScoreRecord
}

// Policy decides how orphaned records are handled.
type Policy string

// Orphan policies.
const (
	// PolicySkip drops orphans from the ranking and reports them in the result.
	PolicySkip Policy = "skip"
	// PolicyFail aborts ranking at the first orphan.
	PolicyFail Policy = "fail"
)

// Result is the outcome of ranking.
type Result struct {
	Rows    []LeaderboardRow
	Orphans []OrphanedRecord
}
