// Package log builds the slog loggers used by citypremium.
//
// Loggers write to the given io.Writer (stderr in the CLI) so that stdout
// stays reserved for command output such as the written file paths.
// The level is Warn by default and Debug in verbose mode.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("summary computed", "role", role, "nationalAvg", avg)
package log
