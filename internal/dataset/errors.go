package dataset

import "errors"

// Definition validation errors returned by Definition.Validate.
var (
	// ErrNoCities is returned when the definition lists no cities.
	ErrNoCities = errors.New("invalid dataset: at least one city is required")

	// ErrNoRoles is returned when the definition lists no roles.
	ErrNoRoles = errors.New("invalid dataset: at least one role is required")

	// ErrInvalidSamples is returned when the per-group sample count is not positive.
	ErrInvalidSamples = errors.New("invalid dataset: samples must be positive")

	// ErrInvalidSalaryBand is returned when the salary band is empty or inverted.
	ErrInvalidSalaryBand = errors.New("invalid dataset: salary min must be positive and below max")

	// ErrInvalidStdDevRatio is returned when the standard deviation ratio is negative.
	ErrInvalidStdDevRatio = errors.New("invalid dataset: stddev ratio must be non-negative")

	// ErrInvalidBase is returned when a city has a non-positive base salary.
	ErrInvalidBase = errors.New("invalid dataset: city base salary must be positive")

	// ErrInvalidMultiplier is returned when a role has a non-positive multiplier.
	ErrInvalidMultiplier = errors.New("invalid dataset: role multiplier must be positive")

	// ErrDuplicateName is returned when a city or role name appears twice.
	ErrDuplicateName = errors.New("invalid dataset: duplicate name")
)
