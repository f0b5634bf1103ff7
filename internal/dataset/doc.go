// Package dataset holds the static lookup tables the synthesizer draws from:
// cities with their base salaries, roles with their multipliers, and the
// salary band every sample is clamped into.
//
// The default tables are embedded as YAML so they can be audited in one place
// and replaced by another definition without touching aggregation or rendering.
package dataset
