package common

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ParseLevel maps a configuration string to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalidConfig, level)
	}
}

// NewLogger builds a logger writing text ("console") or JSON records to w.
func NewLogger(w io.Writer, level slog.Level, format string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "console", "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: log format %q", ErrInvalidConfig, format)
	}
	return slog.New(handler), nil
}

// SetupLogger configures the global logger with appropriate settings.
func SetupLogger(level slog.Level, format string) error {
	logger, err := NewLogger(os.Stderr, level, format)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

// LoggerOrDefault returns l, or the process default when l is nil.
func LoggerOrDefault(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.Default()
}
