// Package logging assembles structured slog loggers and attribute helpers used
// across mlstdb.
//
// It owns the console and JSON handlers, level parsing, and the run-scoped
// context helpers that stamp every line of an invocation with the same run ID.
// Loggers write to stderr by default so standard output stays reserved for the
// command result. A no-op logger is provided for tests and wiring code that
// cannot fail.
package logging
