package model

import "errors"

var (
	// ErrInvalidSide indicates a side other than ao or aka.
	ErrInvalidSide = errors.New("side must be ao or aka")
	// ErrMissingStartTime indicates a finish request without a start time.
	ErrMissingStartTime = errors.New("start_time is required")
	// ErrInvalidTime indicates a time that does not match the timestamp layout.
	ErrInvalidTime = errors.New("time must use layout YYYY-MM-DD HH:MM:SS")
	// ErrInvalidTimeRange indicates a match that ends before it starts.
	ErrInvalidTimeRange = errors.New("end_time is before start_time")
)
