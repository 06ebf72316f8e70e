package model

import "errors"

var (
	// ErrOrphanedRecord indicates a score record referencing an unknown user.
	ErrOrphanedRecord = errors.New("score record references unknown user")
	// ErrUnknownPolicy indicates an orphan policy other than skip or fail.
	ErrUnknownPolicy = errors.New("unknown orphan policy")
	// ErrNoData indicates an empty leaderboard where rows are required.
	ErrNoData = errors.New("leaderboard is empty")
)
