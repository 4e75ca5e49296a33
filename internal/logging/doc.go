// Package logging assembles structured slog loggers used across fillercount.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so the show processor can tag
// log lines with the show, episode category, and run correlation ID. Logs
// never go to stdout; stdout carries the results. A no-op logger is provided
// for tests and wiring code that cannot fail.
package logging
