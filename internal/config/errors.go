package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrEmptyRole is returned when --role is empty.
	ErrEmptyRole = errors.New("invalid role: must not be empty")

	// ErrEmptyOutputDir is returned when --out is empty.
	ErrEmptyOutputDir = errors.New("invalid output directory: must not be empty")

	// ErrInvalidTopN is returned when the number of ranked cities is not positive.
	ErrInvalidTopN = errors.New("invalid top-N: must be positive")
)
