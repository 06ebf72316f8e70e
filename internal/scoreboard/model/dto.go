// Package model provides data transfer objects for the scoreboard module.
package model

import storeModel "github.com/festy23/training_grounds/internal/store/model"

// Sides of the scoreboard.
const (
	SideAo  = "ao"
	SideAka = "aka"
)

// Draw is the winner recorded when both sides finish level.
const Draw = "Draw"

// ScoreboardResponse represents both sides of the scoreboard.
type ScoreboardResponse struct {
	Ao  storeModel.ScoreEntry `json:"ao"`
	Aka storeModel.ScoreEntry `json:"aka"`
}

// SaveRequest replaces both sides.
type SaveRequest struct {
	AoName   string `json:"ao_name" binding:"required"`
	AoScore  int    `json:"ao_score"`
	AkaName  string `json:"aka_name" binding:"required"`
	AkaScore int    `json:"aka_score"`
}

// AdjustRequest changes one side's score by Delta.
type AdjustRequest struct {
	Side  string `json:"side" binding:"required"`
	Delta int    `json:"delta"`
}

// FinishRequest ends the current match. Times use the table timestamp
// layout; an empty EndTime means now.
type FinishRequest struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reset     bool   `json:"reset"`
}

// FinishResponse represents a recorded match.
type FinishResponse struct {
	Game       storeModel.GameHistoryRecord `json:"game"`
	Scoreboard ScoreboardResponse           `json:"scoreboard"`
}

// HistoryResponse represents the match history.
type HistoryResponse struct {
	Games []storeModel.GameHistoryRecord `json:"games"`
	Total int                            `json:"total"`
}
