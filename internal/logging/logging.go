// Package logging configures the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
)

// Config controls logger behaviour.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json or text
}

// New constructs an slog logger writing to w with the provided config.
func New(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// NewFromEnv constructs a logger from ORBITVIEW_LOG_LEVEL and
// ORBITVIEW_LOG_FORMAT, defaulting to text at info level on stderr. The TUI
// owns stdout, so logs go to stderr.
func NewFromEnv() *slog.Logger {
	return New(os.Stderr, Config{
		Level:  os.Getenv("ORBITVIEW_LOG_LEVEL"),
		Format: os.Getenv("ORBITVIEW_LOG_FORMAT"),
	})
}

// Noop returns a logger that drops everything.
func Noop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt32)}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
