package model

import "errors"

var (
	// ErrNegativeScore indicates an attempt to persist a score below zero.
	ErrNegativeScore = errors.New("score cannot be negative")
	// ErrEmptyTeamName indicates a scoreboard side without a team name.
	ErrEmptyTeamName = errors.New("team name cannot be empty")
	// ErrDuplicateTeam indicates both scoreboard sides use the same team name.
	ErrDuplicateTeam = errors.New("ao and aka teams must differ")
	// ErrScoreboardShape indicates the scoreboard table does not hold exactly two teams.
	ErrScoreboardShape = errors.New("scoreboard must hold exactly two teams")
	// ErrInvalidSetting indicates a setting value that does not fit its declared kind.
	ErrInvalidSetting = errors.New("invalid setting value")
)
