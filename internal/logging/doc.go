// Package logging assembles the structured slog loggers used by tonearm.
//
// It owns the console and JSON handlers, level parsing, and a handful of attr
// helpers so call sites log with consistent keys. Diagnostics always go to
// stderr (or a caller-supplied writer); stdout is reserved for results. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
package logging
