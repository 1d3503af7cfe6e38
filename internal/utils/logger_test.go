package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("default logger", func(t *testing.T) {
		require.NotNil(t, NewDefaultLogger())
	})

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{Level: "info", Format: FormatJSON, Output: &buf})
		logger.Info().Msg("test")
		assert.Contains(t, buf.String(), `"message":"test"`)
	})

	t.Run("pretty format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{Level: "info", Format: FormatPretty, Output: &buf})
		logger.Info().Msg("test")
		assert.Contains(t, buf.String(), "test")
		assert.NotContains(t, buf.String(), `"message"`)
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LoggerOptions{Level: "error", Format: FormatJSON, Output: &buf, Verbose: true})
		logger.Debug().Msg("debug test")
		assert.Contains(t, buf.String(), "debug test")
	})
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	require.NotNil(t, logger)
	assert.NotPanics(t, func() { logger.Error().Msg("dropped") })
}

func TestLoggerFields(t *testing.T) {
	tests := []struct {
		name   string
		derive func(*Logger) *Logger
		want   string
	}{
		{"component", func(l *Logger) *Logger { return l.WithComponent("engine") }, `"component":"engine"`},
		{"vcs", func(l *Logger) *Logger { return l.WithVCS("git") }, `"vcs":"git"`},
		{"dir", func(l *Logger) *Logger { return l.WithDir("/src/app") }, `"dir":"/src/app"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(LoggerOptions{Level: "info", Format: FormatJSON, Output: &buf})

			tt.derive(logger).Info().Msg("test message")

			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "test message")
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		logFunc   func(*Logger)
		shouldLog bool
	}{
		{"debug level logs debug", "debug", func(l *Logger) { l.Debug().Msg("debug") }, true},
		{"info level drops debug", "info", func(l *Logger) { l.Debug().Msg("debug") }, false},
		{"info level logs info", "info", func(l *Logger) { l.Info().Msg("info") }, true},
		{"warn level drops info", "warn", func(l *Logger) { l.Info().Msg("info") }, false},
		{"error level logs error", "error", func(l *Logger) { l.Error().Msg("error") }, true},
		{"upper case level", "DEBUG", func(l *Logger) { l.Debug().Msg("debug") }, true},
		{"unknown level falls back to info", "loud", func(l *Logger) { l.Info().Msg("info") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(LoggerOptions{Level: tt.level, Format: FormatJSON, Output: &buf})

			tt.logFunc(logger)

			if tt.shouldLog {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestValidLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "Info"} {
		assert.True(t, ValidLogLevel(level), level)
	}
	for _, level := range []string{"", "trace", "fatal", "verbose"} {
		assert.False(t, ValidLogLevel(level), level)
	}
}
