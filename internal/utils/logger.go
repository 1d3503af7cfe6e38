package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Log formats
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Logger is a wrapper around zerolog.Logger
type Logger struct {
	zerolog.Logger
}

// LoggerOptions contains options for creating a logger
type LoggerOptions struct {
	Level   string
	Format  string // "pretty" or "json"
	Output  io.Writer
	Verbose bool
}

// NewLogger creates a new logger with the given options. Output defaults to
// stderr; stdout is reserved for rendered properties.
func NewLogger(opts LoggerOptions) *Logger {
	var output io.Writer = os.Stderr
	if opts.Output != nil {
		output = opts.Output
	}

	if opts.Format != FormatJSON {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	level := parseLogLevel(opts.Level)
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{Logger: logger}
}

// NewDefaultLogger creates a logger with default settings
func NewDefaultLogger() *Logger {
	return NewLogger(LoggerOptions{
		Level:  "info",
		Format: FormatPretty,
	})
}

// NewNopLogger creates a logger that drops everything
func NewNopLogger() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// ValidLogLevel reports whether level is one parseLogLevel understands
func ValidLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithComponent returns a logger with a component field
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With().Str("component", component).Logger(),
	}
}

// WithVCS returns a logger with a vcs field
func (l *Logger) WithVCS(vcs string) *Logger {
	return &Logger{
		Logger: l.Logger.With().Str("vcs", vcs).Logger(),
	}
}

// WithDir returns a logger with a working copy field
func (l *Logger) WithDir(dir string) *Logger {
	return &Logger{
		Logger: l.Logger.With().Str("dir", dir).Logger(),
	}
}
