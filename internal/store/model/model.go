// Package model provides the entities persisted by the training-grounds store.
package model

import (
	"fmt"
	"time"
)

// TeamMember is one entry of the static team roster.
type TeamMember struct {
	Name string `json:"name"`
	NIM  string `json:"nim"`
}

// ScoreEntry is the live score of one scoreboard side.
type ScoreEntry struct {
	TeamName    string    `json:"team_name"`
	Score       int       `json:"score"`
	LastUpdated time.Time `json:"last_updated"`
}

// Scoreboard maps team name to its entry. Keys keep the position of their
// first appearance; a later entry for the same team replaces the value.
type Scoreboard struct {
	keys    []string
	entries map[string]ScoreEntry
}

// Set stores entry under its team name.
func (s *Scoreboard) Set(entry ScoreEntry) {
	if s.entries == nil {
		s.entries = make(map[string]ScoreEntry)
	}
	if _, ok := s.entries[entry.TeamName]; !ok {
		s.keys = append(s.keys, entry.TeamName)
	}
	s.entries[entry.TeamName] = entry
}

// Get returns the entry for team.
func (s *Scoreboard) Get(team string) (ScoreEntry, bool) {
	entry, ok := s.entries[team]
	return entry, ok
}

// Len returns the number of distinct teams.
func (s *Scoreboard) Len() int {
	return len(s.keys)
}

// Entries returns the entries in table order.
func (s *Scoreboard) Entries() []ScoreEntry {
	out := make([]ScoreEntry, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.entries[k])
	}
	return out
}

// Sides returns the AO (first) and AKA (second) entries.
func (s *Scoreboard) Sides() (ao, aka ScoreEntry, err error) {
	if s.Len() != 2 {
		return ScoreEntry{}, ScoreEntry{}, fmt.Errorf("%w: found %d", ErrScoreboardShape, s.Len())
	}
	return s.entries[s.keys[0]], s.entries[s.keys[1]], nil
}

// ValidateScoreboard checks the arguments of a scoreboard save.
func ValidateScoreboard(aoName string, aoScore int, akaName string, akaScore int) error {
	if aoName == "" || akaName == "" {
		return ErrEmptyTeamName
	}
	if aoName == akaName {
		return ErrDuplicateTeam
	}
	if aoScore < 0 || akaScore < 0 {
		return ErrNegativeScore
	}
	return nil
}

// GameResult is a completed match as recorded by the caller.
type GameResult struct {
	StartTime time.Time
	EndTime   time.Time
	Winner    string
	AoScore   int
	AkaScore  int
}

// GameHistoryRecord is a match as read back from the history log.
// Fields are returned exactly as stored.
type GameHistoryRecord struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Winner    string `json:"winner"`
	AoScore   string `json:"ao_score"`
	AkaScore  string `json:"aka_score"`
}
