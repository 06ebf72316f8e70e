package service

import (
	"fmt"
	"sort"

	"github.com/festy23/training_grounds/internal/leaderboard/model"
)

type best struct {
	username string
	record   model.ScoreRecord
}

// Rank keeps each user's highest-total game and orders users by that total,
// highest first. Equal totals keep the order in which users first appear in
// scores; a later game only replaces a user's best on a strictly higher
// total. Ranks are dense and start at 1.
func Rank(users []model.User, scores []model.ScoreRecord, policy model.Policy) (*model.Result, error) {
	if policy != model.PolicySkip && policy != model.PolicyFail {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownPolicy, policy)
	}

	usernames := make(map[string]string, len(users))
	for _, u := range users {
		usernames[u.ID] = u.Username
	}

	res := &model.Result{}
	bests := make(map[string]*best)
	var order []string

	for _, rec := range scores {
		username, ok := usernames[rec.UserID]
		if !ok {
			if policy == model.PolicyFail {
				return nil, fmt.Errorf("%w: score %s, user_id %s", model.ErrOrphanedRecord, rec.ID, rec.UserID)
			}
			res.Orphans = append(res.Orphans, model.OrphanedRecord{Record: rec})
			continue
		}

		current, seen := bests[rec.UserID]
		if !seen {
			bests[rec.UserID] = &best{username: username, record: rec}
			order = append(order, rec.UserID)
			continue
		}
		if rec.Total() > current.record.Total() {
			current.record = rec
		}
	}

	rows := make([]model.LeaderboardRow, 0, len(order))
	for _, id := range order {
		b := bests[id]
		rows = append(rows, model.LeaderboardRow{
			Username:   b.username,
			TotalScore: b.record.Total(),
			LastPlayed: b.record.Timestamp,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalScore > rows[j].TotalScore
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	res.Rows = rows
	return res, nil
}
