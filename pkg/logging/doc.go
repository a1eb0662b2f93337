// Package logging provides structured logging utilities shared by the
// chartops commands.
//
// It wraps the standard library slog package with project defaults: JSON
// output to stderr, module/version context on every record, LOG_LEVEL
// environment configuration, and source location tracking for debug logs.
//
// Setting the default logger:
//
//	logging.SetDefaultStructuredLoggerWithLevel("chartops", version, "info")
//	slog.Info("generating chart options", "input", path)
package logging
