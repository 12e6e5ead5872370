package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{" WARN ", zerolog.WarnLevel},
		{"disabled", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"unknown", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewLoggerFormatsOutput(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		level      string
		assertions func(t *testing.T, output string)
	}{
		{
			name:   "console format includes message",
			format: "console",
			level:  "info",
			assertions: func(t *testing.T, output string) {
				if !strings.Contains(output, "hello") || strings.HasPrefix(output, "{") {
					t.Fatalf("expected console output with message, got %q", output)
				}
			},
		},
		{
			name:   "json format starts with brace",
			format: "json",
			level:  "debug",
			assertions: func(t *testing.T, output string) {
				if !strings.HasPrefix(strings.TrimSpace(output), "{") || !strings.Contains(output, `"message":"hello"`) {
					t.Fatalf("expected json output, got %q", output)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(Config{Format: tt.format, Level: tt.level, Output: &buf})
			log.Info().Msg("hello")

			output := buf.String()
			if output == "" {
				t.Fatalf("expected log output, got empty string")
			}

			tt.assertions(t, output)
		})
	}
}

func TestNewLoggerAddsRunID(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Format: "json", Level: "info", Output: &buf, RunID: "01HZX3K9Q7Y8R2N4M6P0T5V1W3"})
	log.Info().Msg("hello")

	output := buf.String()
	if !strings.Contains(output, `"run_id":"01HZX3K9Q7Y8R2N4M6P0T5V1W3"`) || !strings.Contains(output, `"service":"txengine"`) {
		t.Fatalf("expected run_id and service fields, got %q", output)
	}
}

func TestNewLoggerOmitsEmptyRunID(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Format: "json", Output: &buf})
	log.Info().Msg("hello")

	if strings.Contains(buf.String(), "run_id") {
		t.Fatalf("expected no run_id field, got %q", buf.String())
	}
}

func TestNewLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Format: "json", Level: "warn", Output: &buf})

	log.Info().Msg("quiet")
	log.Debug().Msg("quieter")

	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}
}
