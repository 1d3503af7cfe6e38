package config

import (
	"strings"

	"github.com/mebigfatguy/vcsversion/internal/domain"
	"github.com/mebigfatguy/vcsversion/internal/output"
	"github.com/mebigfatguy/vcsversion/internal/utils"
)

// AutoDetect is the vcs value that asks for detection from the directory
const AutoDetect = "auto"

// Config represents the application configuration
type Config struct {
	VCS        string           `mapstructure:"vcs" yaml:"vcs"`
	BaseDir    string           `mapstructure:"base_dir" yaml:"base_dir"`
	Properties PropertiesConfig `mapstructure:"properties" yaml:"properties"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
}

// PropertiesConfig names the properties receiving each piece of information.
// An empty name means the information is not requested.
type PropertiesConfig struct {
	Revision string `mapstructure:"revision" yaml:"revision"`
	Branch   string `mapstructure:"branch" yaml:"branch"`
	Date     string `mapstructure:"date" yaml:"date"`
	URL      string `mapstructure:"url" yaml:"url"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
	File   string `mapstructure:"file" yaml:"file"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Request converts the configured names into an extraction request
func (p PropertiesConfig) Request() domain.Request {
	return domain.Request{
		Revision: strings.TrimSpace(p.Revision),
		Branch:   strings.TrimSpace(p.Branch),
		Date:     strings.TrimSpace(p.Date),
		URL:      strings.TrimSpace(p.URL),
	}
}

// ShouldDetect reports whether the vcs should be detected from the base dir
func (c *Config) ShouldDetect() bool {
	return strings.EqualFold(strings.TrimSpace(c.VCS), AutoDetect)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	c.VCS = strings.TrimSpace(c.VCS)
	if c.BaseDir == "" {
		c.BaseDir = DefaultBaseDir
	}
	c.BaseDir = utils.ExpandPath(c.BaseDir)
	c.Output.File = utils.ExpandPath(c.Output.File)

	format, err := output.ParseFormat(c.Output.Format)
	if err != nil {
		return domain.NewValidationError("output.format", err.Error())
	}
	c.Output.Format = string(format)

	if !utils.ValidLogLevel(c.Logging.Level) {
		c.Logging.Level = DefaultLogLevel
	}
	switch strings.ToLower(c.Logging.Format) {
	case utils.FormatJSON, utils.FormatPretty:
		c.Logging.Format = strings.ToLower(c.Logging.Format)
	default:
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
