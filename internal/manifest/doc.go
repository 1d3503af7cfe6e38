// Package manifest loads batch manifests. A manifest lists several working
// copies whose version information is extracted into one property set.
//
// # Manifest Format
//
// Manifests can be written in YAML or JSON format:
//
//	targets:
//	  - dir: ./service-a
//	    vcs: git
//	    prefix: a.
//	  - dir: ./legacy
//	    vcs: svn
//	    properties:
//	      url: ""
//	options:
//	  continue_on_error: true
//
// A target without vcs inherits the global setting, which may be "auto".
// Relative dirs are resolved against the manifest file's directory.
//
// # Usage
//
//	loader := manifest.NewLoader()
//	cfg, err := loader.Load("targets.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, target := range cfg.Targets {
//	    // Extract each target
//	}
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrNoTargets: manifest has no targets defined
//   - ErrEmptyDir: target is missing the required dir field
//   - ErrInvalidFormat: file is not valid YAML/JSON
//   - ErrFileNotFound: manifest file does not exist
//   - ErrUnsupportedExt: unsupported file extension
package manifest
