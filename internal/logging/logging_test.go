package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"  info  ", slog.LevelInfo},
		{"onzin", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tc := range cases {
		if got := ParseLevel(tc.value); got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestNewWithWriterFiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "warn")

	logger.Info("onzichtbaar")
	logger.Warn("zichtbaar", "component", "test")

	out := buf.String()
	if strings.Contains(out, "onzichtbaar") {
		t.Fatalf("info line leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "zichtbaar") || !strings.Contains(out, "component=test") {
		t.Fatalf("warn line missing: %q", out)
	}
}
