package scorecard

import "errors"

// Sentinel kinds for evaluation errors.
var (
	// ErrNoGrades is returned when aggregation is attempted over zero grades.
	ErrNoGrades = errors.New("no grades to aggregate")

	// ErrMissingIndicator is returned when a required indicator value is absent.
	ErrMissingIndicator = errors.New("missing indicator value")
)
