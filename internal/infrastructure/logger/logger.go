package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects where and how a run logs.
type Config struct {
	Level  string    // trace, debug, info, warn, error, disabled
	Format string    // json, console
	Output io.Writer // defaults to os.Stderr; stdout carries the account rows
	RunID  string    // attached to every event as run_id when set
}

// New creates a zerolog logger for one engine run.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
	}

	ctx := zerolog.New(out).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", "txengine")

	if cfg.RunID != "" {
		ctx = ctx.Str("run_id", cfg.RunID)
	}

	return ctx.Logger()
}

// parseLevel accepts zerolog level names in any case. Empty or unknown names mean info.
func parseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}
