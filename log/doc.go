// Package log provides a thin structured-logging wrapper over log/slog
// with a Trace level, functional-option configuration, and an optional
// colorized text handler for interactive use.
//
// The zero-value Logger silently discards all messages, so library code
// can log unconditionally and callers opt in by supplying a configured
// Logger.
package log
