package dataset

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var defaultDefinition []byte

// City is a metro area with the base salary the role multipliers apply to.
type City struct {
	Name  string  `yaml:"name"`
	State string  `yaml:"state"`
	Base  float64 `yaml:"base"`
}

// Role is a job role with its multiplier over the city base salary.
type Role struct {
	Name       string  `yaml:"name"`
	Multiplier float64 `yaml:"multiplier"`
}

// SalaryBand bounds every synthesized salary.
type SalaryBand struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`

	// StdDevRatio is the standard deviation as a fraction of the mean.
	StdDevRatio float64 `yaml:"stddevRatio"`
}

// Definition describes how a synthetic dataset is generated.
type Definition struct {
	// Year is stamped on every observation.
	Year int `yaml:"year"`

	// Seed initializes the random source used to synthesize observations.
	Seed uint64 `yaml:"seed"`

	// Samples is the number of draws per (city, role) pair.
	Samples int `yaml:"samples"`

	Salary SalaryBand `yaml:"salary"`
	Cities []City     `yaml:"cities"`
	Roles  []Role     `yaml:"roles"`
}

// Default returns the embedded default definition.
func Default() (*Definition, error) {
	return Parse(defaultDefinition)
}

// Parse decodes a YAML definition and validates it.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse dataset definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks that the definition can produce a well-formed table.
// It returns the first problem found.
func (d *Definition) Validate() error {
	if len(d.Cities) == 0 {
		return ErrNoCities
	}
	if len(d.Roles) == 0 {
		return ErrNoRoles
	}
	if d.Samples <= 0 {
		return ErrInvalidSamples
	}
	if d.Salary.Min <= 0 || d.Salary.Min >= d.Salary.Max {
		return ErrInvalidSalaryBand
	}
	if d.Salary.StdDevRatio < 0 {
		return ErrInvalidStdDevRatio
	}

	cities := make(map[string]bool, len(d.Cities))
	for _, c := range d.Cities {
		if c.Base <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidBase, c.Name)
		}
		if cities[c.Name] {
			return fmt.Errorf("%w: city %q", ErrDuplicateName, c.Name)
		}
		cities[c.Name] = true
	}

	roles := make(map[string]bool, len(d.Roles))
	for _, r := range d.Roles {
		if r.Multiplier <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidMultiplier, r.Name)
		}
		if roles[r.Name] {
			return fmt.Errorf("%w: role %q", ErrDuplicateName, r.Name)
		}
		roles[r.Name] = true
	}
	return nil
}

// RoleNames returns the role names in definition order.
func (d *Definition) RoleNames() []string {
	names := make([]string, len(d.Roles))
	for i, r := range d.Roles {
		names[i] = r.Name
	}
	return names
}

// Clamp limits v to the salary band.
func (b SalaryBand) Clamp(v float64) float64 {
	return min(max(v, b.Min), b.Max)
}
