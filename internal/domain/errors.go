package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrMissingVCS indicates no vcs identifier was configured
	ErrMissingVCS = errors.New("failed to provide property 'vcs'")

	// ErrUnknownVCS indicates the vcs identifier matches no known backend
	ErrUnknownVCS = errors.New("unknown vcs type")

	// ErrCannotDetectVCS indicates the working copy has no recognizable VCS metadata
	ErrCannotDetectVCS = errors.New("cannot detect vcs")

	// ErrUnsupportedFormat indicates an unknown output format
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrWriteFailed indicates writing output failed
	ErrWriteFailed = errors.New("write failed")
)

// ExtractionError is returned when a VCS client could not be launched or its
// output could not be read. Extraction stops at the first one.
type ExtractionError struct {
	VCS     string
	Message string
	Err     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Message, e.VCS, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError with the standard message
// for the given vcs
func NewExtractionError(vcs string, err error) *ExtractionError {
	return &ExtractionError{
		VCS:     vcs,
		Message: fmt.Sprintf("Failed getting %s log info", vcs),
		Err:     err,
	}
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// TargetError wraps a failure for one working copy of a batch run
type TargetError struct {
	Dir string
	VCS string
	Err error
}

func (e *TargetError) Error() string {
	if e.VCS == "" {
		return fmt.Sprintf("target %s failed: %v", e.Dir, e.Err)
	}
	return fmt.Sprintf("target %s (%s) failed: %v", e.Dir, e.VCS, e.Err)
}

func (e *TargetError) Unwrap() error {
	return e.Err
}

// NewTargetError creates a new TargetError
func NewTargetError(dir, vcs string, err error) *TargetError {
	return &TargetError{
		Dir: dir,
		VCS: vcs,
		Err: err,
	}
}

// IsConfigurationError reports whether err stems from missing or invalid
// configuration rather than from running a VCS client
func IsConfigurationError(err error) bool {
	var validation *ValidationError
	if errors.As(err, &validation) {
		return true
	}
	return errors.Is(err, ErrMissingVCS) ||
		errors.Is(err, ErrUnknownVCS) ||
		errors.Is(err, ErrCannotDetectVCS) ||
		errors.Is(err, ErrUnsupportedFormat)
}
