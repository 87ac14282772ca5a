package timesheet

import "errors"

var (
	// ErrInvalidSchedule indicates a caller bug: a negative scheduled-minutes
	// value reached the aggregator.
	ErrInvalidSchedule = errors.New("schedule minutes must not be negative")

	ErrRecordNotFound = errors.New("daily time record not found")
)
