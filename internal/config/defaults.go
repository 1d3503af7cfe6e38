package config

import (
	"os"
)

// Default values
const (
	DefaultVCS     = ""
	DefaultBaseDir = "."

	// Property name defaults
	DefaultRevisionProperty = "vcs.revision"
	DefaultBranchProperty   = "vcs.branch"
	DefaultDateProperty     = "vcs.date"
	DefaultURLProperty      = "vcs.url"

	// Output defaults
	DefaultFormat = "properties"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"

	// ConfigName is the config file name looked up without extension
	ConfigName = ".vcsversion"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "VCSVERSION"
)

// ConfigDirs returns the directories searched for a config file, in order
func ConfigDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		VCS:     DefaultVCS,
		BaseDir: DefaultBaseDir,
		Properties: PropertiesConfig{
			Revision: DefaultRevisionProperty,
			Branch:   DefaultBranchProperty,
			Date:     DefaultDateProperty,
			URL:      DefaultURLProperty,
		},
		Output: OutputConfig{
			Format: DefaultFormat,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
