package config

import "strings"

// Default configuration values.
const (
	// DefaultRole is the role analyzed when --role is not given.
	DefaultRole = "Software Engineer"

	// DefaultOutputDir is where artifacts go when --out is not given.
	// It is meant to be a mounted volume when running in a container.
	DefaultOutputDir = "/out"

	// DefaultTopN is the number of cities kept in the summary.
	DefaultTopN = 5
)

// Config holds all options for a report run.
// It is populated from CLI flags and passed down explicitly.
type Config struct {
	// Role selects which role's observations are analyzed.
	Role string

	// OutputDir is the directory the CSV and chart files are written to.
	// It is created with its parents if missing.
	OutputDir string

	// TopN is the number of cities kept in the summary.
	TopN int

	// Verbose enables debug logging.
	Verbose bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Role:      DefaultRole,
		OutputDir: DefaultOutputDir,
		TopN:      DefaultTopN,
	}
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Role) == "" {
		return ErrEmptyRole
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return ErrEmptyOutputDir
	}
	if c.TopN <= 0 {
		return ErrInvalidTopN
	}
	return nil
}
