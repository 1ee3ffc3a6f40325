package logging

import (
	"io"
	"log/slog"
	"os"

	"k8s.io/klog/v2"
)

// New builds the process logger, installs it as the slog default and routes
// client-go (klog) output through the same format at warn level or above.
func New(logFormat, logLevel string) *slog.Logger {
	return newLogger(os.Stdout, logFormat, logLevel)
}

func newLogger(w io.Writer, logFormat, logLevel string) *slog.Logger {
	level := ParseLevel(logLevel)

	logger := slog.New(newHandler(w, logFormat, level))

	slog.SetDefault(logger)

	klogLevel := max(level, slog.LevelWarn)
	klog.SetSlogLogger(slog.New(newHandler(w, logFormat, klogLevel)).With("component", "client-go"))

	return logger
}

// ParseLevel maps debug, info, warn and error to slog levels. Anything else is info.
func ParseLevel(logLevel string) slog.Level {
	switch logLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newHandler(w io.Writer, logFormat string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if logFormat == "text" {
		return slog.NewTextHandler(w, opts)
	}

	return slog.NewJSONHandler(w, opts)
}
