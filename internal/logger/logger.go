// Package logger configures the process-wide diagnostics channel. All
// recoverable parse and validation problems are reported here rather than
// as errors; only batch-level outcomes surface to the caller.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Init initializes the global logger with leveled text output on stderr.
// The level comes from LOG_LEVEL unless verbose forces debug.
func Init(verbose bool) {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
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
