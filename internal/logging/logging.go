package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Init installs the package-level default slog logger. All log records go to
// stderr so stdout stays free for NDJSON word results; when stdout carries
// data the handler is JSON so the two streams stay machine-readable,
// otherwise text for humans.
func Init(stdoutCarriesData bool, level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if stdoutCarriesData {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to
// slog.Level. Unknown strings default to LevelInfo.
func ParseLevel(s string) slog.Level {
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
