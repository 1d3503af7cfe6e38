package testutil

import (
	"io"
	"testing"

	"github.com/mebigfatguy/vcsversion/internal/utils"
	"github.com/rs/zerolog"
)

// NewTestLogger creates a debug-level logger tagged with the test name that
// discards its output
func NewTestLogger(t *testing.T) *utils.Logger {
	t.Helper()

	zlogger := zerolog.New(io.Discard).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("test", t.Name()).
		Logger()

	return &utils.Logger{Logger: zlogger}
}

// NewCapturingLogger creates a JSON debug logger writing into w
func NewCapturingLogger(w io.Writer) *utils.Logger {
	return &utils.Logger{Logger: zerolog.New(w).Level(zerolog.DebugLevel)}
}
