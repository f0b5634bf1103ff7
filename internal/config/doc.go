// Package config provides the run configuration for citypremium:
// which role to analyze, where to write artifacts, and how the synthetic
// dataset is seeded.
package config
