package log

import (
	"io"
	"log/slog"
	"strings"
)

// Level represents the severity of a log message.
type Level slog.Level

const (
	LevelTrace Level = Level(slog.LevelDebug - 4)
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

// String returns the lower-case name of the level.
func (l Level) String() string {
	if l == LevelTrace {
		return "trace"
	}

	return strings.ToLower(slog.Level(l).String())
}

// ParseLevel parses a string representation of a log level. Unrecognized
// input yields [DefaultLevel].
func ParseLevel(s string) Level {
	if strings.EqualFold(s, "trace") {
		return LevelTrace
	}

	l := new(slog.Level)
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel
	}

	return Level(*l)
}

// Format represents the output format for log messages.
type Format int

const (
	FormatText   Format = iota // plain slog text
	FormatJSON                 // slog JSON
	FormatPretty               // colorized text for terminals
)

// DefaultFormat is the default log message format.
const DefaultFormat = FormatText

// config holds the configuration options for a Logger.
type config struct {
	w      io.Writer
	level  Level
	format Format
	source bool
}

// Option configures a Logger at construction.
type Option func(*config)

// WithLevel sets the minimum level of messages to emit.
func WithLevel(level Level) Option {
	return func(c *config) { c.level = level }
}

// WithFormat selects the output format.
func WithFormat(format Format) Option {
	return func(c *config) { c.format = format }
}

// WithSource includes the caller's file and line in each message.
func WithSource(enable bool) Option {
	return func(c *config) { c.source = enable }
}

// handler builds the slog.Handler for the configured format.
func (c config) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     slog.Level(c.level),
		AddSource: c.source,
	}

	switch c.format {
	case FormatJSON:
		return slog.NewJSONHandler(c.w, opts)
	case FormatPretty:
		return newPrettyHandler(c.w, opts)
	default:
		return slog.NewTextHandler(c.w, opts)
	}
}
