package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrNoTargets indicates the manifest has no targets defined
	ErrNoTargets = errors.New("manifest must contain at least one target")

	// ErrEmptyDir indicates a target is missing the required dir field
	ErrEmptyDir = errors.New("target dir cannot be empty")

	// ErrInvalidFormat indicates the manifest file is not valid YAML or JSON
	ErrInvalidFormat = errors.New("manifest must be valid YAML or JSON")

	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .yaml, .yml, or .json)")
)
