// Package logging assembles the structured slog loggers used across
// redline.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and defines the standardized attribute keys so every component
// tags log lines the same way. A no-op logger is available for tests and
// wiring code that cannot fail.
package logging
