package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestZeroValueIsSilent(t *testing.T) {
	var l Logger

	// Must not panic and must not write anywhere.
	l.Trace("t")
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e", slog.String("k", "v"))
}

func TestMake_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithLevel(LevelWarn))

	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()

	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered: %q", out)
	}

	if !strings.Contains(out, "shown") {
		t.Errorf("warn message should be emitted: %q", out)
	}
}

func TestMake_JSONFormat(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatJSON))
	l.Info("hello", slog.Int("n", 3))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}

	if record["msg"] != "hello" {
		t.Errorf("expected msg hello, got %v", record["msg"])
	}

	if record["n"] != float64(3) {
		t.Errorf("expected n=3, got %v", record["n"])
	}
}

func TestMake_PrettyFormat(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatPretty))
	l.Info("styled message", slog.String("key", "value"))

	out := buf.String()

	for _, want := range []string{"info", "styled message", "key", `"value"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected pretty output to contain %q: %q", want, out)
		}
	}
}

func TestTraceLevel(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithLevel(LevelTrace))
	l.Trace("deep detail")

	if !strings.Contains(buf.String(), "deep detail") {
		t.Errorf("expected trace message at trace level: %q", buf.String())
	}

	buf.Reset()

	Make(&buf, WithLevel(LevelDebug)).Trace("too deep")

	if buf.Len() != 0 {
		t.Errorf("trace should be filtered at debug level: %q", buf.String())
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf).With(slog.String("component", "render"))
	l.Info("msg")

	if !strings.Contains(buf.String(), "component=render") {
		t.Errorf("expected bound attribute in output: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"WARN", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
