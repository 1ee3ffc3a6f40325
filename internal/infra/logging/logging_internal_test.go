package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want slog.Level
	}{
		{give: "debug", want: slog.LevelDebug},
		{give: "info", want: slog.LevelInfo},
		{give: "warn", want: slog.LevelWarn},
		{give: "error", want: slog.LevelError},
		{give: "", want: slog.LevelInfo},
		{give: "TRACE", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, ParseLevel(tt.give))
		})
	}
}

//nolint:paralleltest // replaces the process-wide default logger
func TestNewLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Run("json output respects level", func(t *testing.T) {
		var buf bytes.Buffer

		logger := newLogger(&buf, "json", "warn")
		logger.Info("hidden")
		logger.Warn("shown", "key", "value")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 1)

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
		require.Equal(t, "shown", entry["msg"])
		require.Equal(t, "value", entry["key"])
		require.Same(t, logger, slog.Default())
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer

		logger := newLogger(&buf, "text", "debug")
		logger.Debug("details")

		require.Contains(t, buf.String(), "level=DEBUG")
		require.Contains(t, buf.String(), "msg=details")
	})
}
