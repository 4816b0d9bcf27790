package log

import (
	"context"
	"io"
	"log/slog"
)

// Logger provides a leveled structured logging interface. The zero value
// discards everything.
type Logger struct {
	*slog.Logger
}

// Make creates a new [Logger] that writes to w. The defaults are
// [DefaultFormat], [DefaultLevel], and no caller info; override them with
// [WithFormat], [WithLevel], and [WithSource].
func Make(w io.Writer, opts ...Option) Logger {
	cfg := config{
		w:      w,
		level:  DefaultLevel,
		format: DefaultFormat,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return Logger{Logger: slog.New(cfg.handler())}
}

// With returns a new [Logger] that includes the given attributes in each
// log message.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil {
		return l
	}

	return Logger{Logger: slog.New(l.Handler().WithAttrs(attrs))}
}

// Trace logs a message at Trace level.
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.log(LevelTrace, msg, attrs...)
}

// Debug logs a message at Debug level.
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.log(LevelDebug, msg, attrs...)
}

// Info logs a message at Info level.
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.log(LevelInfo, msg, attrs...)
}

// Warn logs a message at Warn level.
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.log(LevelWarn, msg, attrs...)
}

// Error logs a message at Error level.
func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.log(LevelError, msg, attrs...)
}

// log writes a message at the specified level. Zero-value loggers return
// silently.
func (l Logger) log(level Level, msg string, attrs ...slog.Attr) {
	if l.Logger == nil {
		return
	}

	l.LogAttrs(context.Background(), slog.Level(level), msg, attrs...)
}
