// Package logging assembles structured slog loggers for familygarden commands.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so import code can tag every line
// with the batch identifier and source file being processed. A no-op logger
// is provided for tests and wiring code that cannot fail.
package logging
