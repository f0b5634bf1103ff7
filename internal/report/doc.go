// Package report provides summary output in tabular formats.
//
// This package contains writers for different output formats:
//   - CSVWriter: the city_premium_summary.csv artifact
//   - MarkdownWriter: a human-readable table for terminal or documentation use
//
// Report data structures live in the model package; writers only format them.
// Writers implement the Writer interface so they can be used interchangeably.
package report
