package model

import "errors"

var (
	// ErrReportNotFound is returned when none of the candidate report paths exist.
	ErrReportNotFound = errors.New("mutation report not found")
	// ErrParse is returned when a report lacks the expected mutation collection.
	ErrParse = errors.New("invalid mutation report")
	// ErrInvalidBaseline is returned when the baseline file does not hold a score.
	ErrInvalidBaseline = errors.New("invalid baseline")
	// ErrRegression is returned when the current score is below the baseline.
	ErrRegression = errors.New("mutation score regressed")
)
