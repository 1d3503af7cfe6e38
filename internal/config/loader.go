package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	// ConfigFile is an explicit config file; when empty the default
	// locations are searched and a missing file is not an error
	ConfigFile string
}

// Load loads configuration from file, environment, and defaults.
// Uses the global viper instance to access CLI flag bindings.
func Load(opts LoadOptions) (*Config, error) {
	return LoadWithViper(viper.GetViper(), opts)
}

// LoadWithViper loads configuration into the given viper instance
func LoadWithViper(v *viper.Viper, opts LoadOptions) (*Config, error) {
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		for _, dir := range ConfigDirs() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Environment variables (VCSVERSION_*)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("vcs", DefaultVCS)
	v.SetDefault("base_dir", DefaultBaseDir)

	v.SetDefault("properties.revision", DefaultRevisionProperty)
	v.SetDefault("properties.branch", DefaultBranchProperty)
	v.SetDefault("properties.date", DefaultDateProperty)
	v.SetDefault("properties.url", DefaultURLProperty)

	v.SetDefault("output.format", DefaultFormat)
	v.SetDefault("output.file", "")

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
