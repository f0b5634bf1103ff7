// Package model defines the core data structures used throughout citypremium.
//
// This package contains the following main types:
//   - Observation: one synthetic salary record
//   - Table: an immutable sequence of observations
//   - CityStat: per-city aggregate for the selected role
//   - TopCityPremium: a ranked city together with its premium over the national average
//   - Summary: the aggregated result that drives both the CSV and the chart
//   - Run: the value carried through the report pipeline
//
// Models live in their own package so that synth, analysis, report and chart
// can share them without import cycles.
package model
