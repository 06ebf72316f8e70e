package model

// OrphanDTO describes a skipped score record.
type OrphanDTO struct {
	ScoreID string `json:"score_id"`
	UserID  string `json:"user_id"`
}

// LeaderboardResponse represents the computed leaderboard.
type LeaderboardResponse struct {
	Rows    []LeaderboardRow `json:"rows"`
	Total   int              `json:"total"`
	Orphans []OrphanDTO      `json:"orphans"`
}

// NewLeaderboardResponse builds the response for res.
func NewLeaderboardResponse(res *Result) *LeaderboardResponse {
	rows := res.Rows
	if rows == nil {
		rows = []LeaderboardRow{}
	}
	orphans := make([]OrphanDTO, 0, len(res.Orphans))
	for _, o := range res.Orphans {
		orphans = append(orphans, OrphanDTO{ScoreID: o.Record.ID, UserID: o.Record.UserID})
	}
	return &LeaderboardResponse{Rows: rows, Total: len(rows), Orphans: orphans}
}
