package logger

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferConfig(buf *bytes.Buffer, level LogLevel, json bool) *Config {
	return &Config{
		Level:      level,
		Output:     buf,
		JSON:       json,
		TimeFormat: "15:04:05",
	}
}

func TestFromContext(t *testing.T) {
	t.Run("Should return logger from context when present", func(t *testing.T) {
		expected := NewLogger(TestConfig())
		ctx := ContextWithLogger(t.Context(), expected)

		assert.Equal(t, expected, FromContext(ctx))
	})

	t.Run("Should fall back to the default logger", func(t *testing.T) {
		testCases := map[string]context.Context{
			"no value":   t.Context(),
			"wrong type": context.WithValue(t.Context(), LoggerCtxKey, "not a logger"),
			"nil logger": context.WithValue(t.Context(), LoggerCtxKey, Logger(nil)),
		}
		for name, ctx := range testCases {
			l := FromContext(ctx)
			require.NotNil(t, l, name)
			assert.Equal(t, GetDefault(), l, name)
		}
	})
}

func TestLogLevel_ToCharmlogLevel(t *testing.T) {
	t.Run("Should convert log levels to charm levels", func(t *testing.T) {
		testCases := []struct {
			level    LogLevel
			expected int
		}{
			{DebugLevel, -4},
			{InfoLevel, 0},
			{WarnLevel, 4},
			{ErrorLevel, 8},
			{DisabledLevel, 1000},
			{LogLevel("verbose"), 0},
		}
		for _, tc := range testCases {
			assert.Equal(t, tc.expected, int(tc.level.ToCharmlogLevel()), "level %s", tc.level)
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("Should write text output to the configured writer", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger(bufferConfig(&buf, InfoLevel, false)).Info("report generated", "kind", "pdf")

		assert.Contains(t, buf.String(), "report generated")
		assert.Contains(t, buf.String(), "kind=pdf")
	})

	t.Run("Should write JSON output when enabled", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger(bufferConfig(&buf, InfoLevel, true)).Info("report generated", "kind", "excel")

		assert.Contains(t, buf.String(), `"msg":"report generated"`)
		assert.Contains(t, buf.String(), `"kind":"excel"`)
	})

	t.Run("Should use the silent test configuration when none is given", func(t *testing.T) {
		require.NotNil(t, NewLogger(nil))
		assert.True(t, IsTestEnvironment())
	})

	t.Run("Should carry fields added with With", func(t *testing.T) {
		var buf bytes.Buffer
		NewLogger(bufferConfig(&buf, InfoLevel, false)).
			With("component", "export").
			Info("file written")

		assert.Contains(t, buf.String(), "component=export")
		assert.Contains(t, buf.String(), "file written")
	})
}

func TestConfigDefaults(t *testing.T) {
	t.Run("Should log info and above to stdout by default", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.Equal(t, InfoLevel, cfg.Level)
		assert.Equal(t, os.Stdout, cfg.Output)
		assert.False(t, cfg.JSON)
	})

	t.Run("Should discard everything in the test configuration", func(t *testing.T) {
		cfg := TestConfig()
		assert.Equal(t, DisabledLevel, cfg.Level)
		assert.Equal(t, io.Discard, cfg.Output)
	})
}

func TestLoggerLevels(t *testing.T) {
	t.Run("Should filter messages below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(bufferConfig(&buf, WarnLevel, false))

		l.Debug("debug message")
		l.Info("info message")
		l.Warn("warn message")
		l.Error("error message")

		assert.NotContains(t, buf.String(), "debug message")
		assert.NotContains(t, buf.String(), "info message")
		assert.Contains(t, buf.String(), "warn message")
		assert.Contains(t, buf.String(), "error message")
	})

	t.Run("Should emit nothing at DisabledLevel", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(bufferConfig(&buf, DisabledLevel, false))

		l.Error("error message")

		assert.Empty(t, buf.String())
	})
}

func TestSetupLogger(t *testing.T) {
	t.Run("Should install the default logger from flag values", func(t *testing.T) {
		previous := GetDefault()
		t.Cleanup(func() { defaultLogger = previous })

		require.NoError(t, SetupLogger("debug", true, false))

		assert.NotEqual(t, previous, GetDefault())
		assert.Equal(t, GetDefault(), FromContext(t.Context()))
	})
}
