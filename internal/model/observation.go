package model

import "slices"

// Observation is one synthetic salary record.
// Observations are created in bulk by the synthesizer and never mutated afterwards.
type Observation struct {
	// Year is the reporting year. It is constant across a dataset.
	Year int

	// Role is the job role, one of the closed set defined by the dataset.
	Role string

	// City is the metro area the salary was observed in.
	City string

	// State is the two-letter state code. Informational only.
	State string

	// Salary is the annual salary in USD, rounded to cents.
	Salary float64
}

// Table is an immutable sequence of observations.
// The zero value is an empty table.
type Table struct {
	rows []Observation
}

// NewTable creates a Table holding a copy of rows.
func NewTable(rows []Observation) Table {
	return Table{rows: slices.Clone(rows)}
}

// Len returns the number of observations.
func (t Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of all observations in generation order.
func (t Table) Rows() []Observation {
	return slices.Clone(t.rows)
}

// Roles returns the distinct roles in the order they first appear.
func (t Table) Roles() []string {
	seen := make(map[string]bool)
	roles := make([]string, 0)
	for _, o := range t.rows {
		if seen[o.Role] {
			continue
		}
		seen[o.Role] = true
		roles = append(roles, o.Role)
	}
	return roles
}
