package model

import "errors"

var (
	// ErrEmptyMessage is returned when a feedback message is blank.
	ErrEmptyMessage = errors.New("feedback message is empty")
	// ErrMessageTooLong is returned when a feedback message exceeds MaxMessageLength.
	ErrMessageTooLong = errors.New("feedback message is too long")
)
