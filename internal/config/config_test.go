package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mebigfatguy/vcsversion/internal/domain"
	"github.com/mebigfatguy/vcsversion/tests/testutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig_Validate tests configuration validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		check   func(*testing.T, *Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			modify: func(c *Config) {},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultFormat, c.Output.Format)
				assert.Equal(t, DefaultBaseDir, c.BaseDir)
			},
		},
		{
			name: "empty base dir becomes current dir",
			modify: func(c *Config) {
				c.BaseDir = ""
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, ".", c.BaseDir)
			},
		},
		{
			name: "empty format defaults to properties",
			modify: func(c *Config) {
				c.Output.Format = ""
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "properties", c.Output.Format)
			},
		},
		{
			name: "format is normalized",
			modify: func(c *Config) {
				c.Output.Format = " JSON "
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "json", c.Output.Format)
			},
		},
		{
			name: "unknown format is rejected",
			modify: func(c *Config) {
				c.Output.Format = "xml"
			},
			wantErr: true,
		},
		{
			name: "invalid log level falls back to info",
			modify: func(c *Config) {
				c.Logging.Level = "chatty"
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultLogLevel, c.Logging.Level)
			},
		},
		{
			name: "invalid log format falls back to pretty",
			modify: func(c *Config) {
				c.Logging.Format = "xml"
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultLogFormat, c.Logging.Format)
			},
		},
		{
			name: "home relative paths are expanded",
			modify: func(c *Config) {
				c.BaseDir = "~"
				c.Output.File = "~/out/version.properties"
			},
			check: func(t *testing.T, c *Config) {
				home, err := os.UserHomeDir()
				require.NoError(t, err)
				assert.Equal(t, home, c.BaseDir)
				assert.Equal(t, filepath.Join(home, "out", "version.properties"), c.Output.File)
			},
		},
		{
			name: "vcs is trimmed",
			modify: func(c *Config) {
				c.VCS = "  git "
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "git", c.VCS)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsConfigurationError(err))
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfig_ShouldDetect(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.ShouldDetect())

	cfg.VCS = "git"
	assert.False(t, cfg.ShouldDetect())

	cfg.VCS = "AUTO"
	assert.True(t, cfg.ShouldDetect())
}

func TestPropertiesConfig_Request(t *testing.T) {
	p := PropertiesConfig{
		Revision: " rev ",
		Branch:   "",
		Date:     "when",
		URL:      "where",
	}

	req := p.Request()

	assert.Equal(t, domain.Request{Revision: "rev", Date: "when", URL: "where"}, req)
	assert.False(t, req.Requested(domain.PropertyBranch))
}

// TestDefault tests the default configuration
func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Empty(t, cfg.VCS)
	assert.Equal(t, ".", cfg.BaseDir)
	assert.Equal(t, "vcs.revision", cfg.Properties.Revision)
	assert.Equal(t, "vcs.branch", cfg.Properties.Branch)
	assert.Equal(t, "vcs.date", cfg.Properties.Date)
	assert.Equal(t, "vcs.url", cfg.Properties.URL)
	assert.Equal(t, "properties", cfg.Output.Format)
	assert.Empty(t, cfg.Output.File)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "pretty", cfg.Logging.Format)
}

func TestConfigDirs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dirs := ConfigDirs()

	require.Len(t, dirs, 2)
	assert.Equal(t, ".", dirs[0])
	assert.Equal(t, home, dirs[1])
}

// isolate points HOME and the working dir at fresh temp dirs
func isolate(t *testing.T) string {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	testutil.Chdir(t, dir)
	return dir
}

// TestLoad_MissingConfig tests loading with no config file
func TestLoad_MissingConfig(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithViper(viper.New(), LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

// TestLoad_ConfigInWorkingDir tests picking up .vcsversion.yaml from the working dir
func TestLoad_ConfigInWorkingDir(t *testing.T) {
	dir := isolate(t)
	testutil.WriteFile(t, dir, ".vcsversion.yaml", `
vcs: hg
properties:
  revision: build.rev
  url: ""
output:
  format: json
  file: out/version.json
logging:
  level: debug
`)

	cfg, err := LoadWithViper(viper.New(), LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "hg", cfg.VCS)
	assert.Equal(t, "build.rev", cfg.Properties.Revision)
	assert.Equal(t, DefaultBranchProperty, cfg.Properties.Branch)
	assert.Empty(t, cfg.Properties.URL)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "out/version.json", cfg.Output.File)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

// TestLoad_ConfigInHome tests the home directory fallback
func TestLoad_ConfigInHome(t *testing.T) {
	isolate(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	testutil.WriteFile(t, home, ".vcsversion.yaml", "vcs: bzr\n")

	cfg, err := LoadWithViper(viper.New(), LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "bzr", cfg.VCS)
}

// TestLoad_ExplicitConfigFile tests --config handling
func TestLoad_ExplicitConfigFile(t *testing.T) {
	dir := isolate(t)
	path := testutil.WriteFile(t, dir, "custom/settings.yaml", "vcs: svn\nbase_dir: /tmp/wc\n")

	cfg, err := LoadWithViper(viper.New(), LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, "svn", cfg.VCS)
	assert.Equal(t, "/tmp/wc", cfg.BaseDir)
}

// TestLoad_ExplicitConfigFileMissing tests that an explicit file must exist
func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	dir := isolate(t)

	cfg, err := LoadWithViper(viper.New(), LoadOptions{ConfigFile: filepath.Join(dir, "nope.yaml")})
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// TestLoad_InvalidConfigFile tests loading with invalid YAML
func TestLoad_InvalidConfigFile(t *testing.T) {
	dir := isolate(t)
	testutil.WriteFile(t, dir, ".vcsversion.yaml", "invalid: yaml: content: [")

	cfg, err := LoadWithViper(viper.New(), LoadOptions{})
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

// TestLoad_InvalidFormat tests that validation errors surface from Load
func TestLoad_InvalidFormat(t *testing.T) {
	dir := isolate(t)
	testutil.WriteFile(t, dir, ".vcsversion.yaml", "output:\n  format: toml\n")

	cfg, err := LoadWithViper(viper.New(), LoadOptions{})
	require.Error(t, err)
	assert.Nil(t, cfg)

	var validation *domain.ValidationError
	assert.True(t, errors.As(err, &validation))
}

// TestLoad_EnvironmentOverrides tests VCSVERSION_* variables
func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := isolate(t)
	testutil.WriteFile(t, dir, ".vcsversion.yaml", "vcs: git\n")
	t.Setenv("VCSVERSION_VCS", "hg")
	t.Setenv("VCSVERSION_OUTPUT_FORMAT", "env")
	t.Setenv("VCSVERSION_PROPERTIES_DATE", "")

	cfg, err := LoadWithViper(viper.New(), LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "hg", cfg.VCS)
	assert.Equal(t, "env", cfg.Output.Format)
	assert.Empty(t, cfg.Properties.Date)
	assert.False(t, cfg.Properties.Request().Requested(domain.PropertyDate))
}

// TestLoad_FlagBindings tests that values set on viper win over the file
func TestLoad_FlagBindings(t *testing.T) {
	dir := isolate(t)
	testutil.WriteFile(t, dir, ".vcsversion.yaml", "vcs: git\n")

	v := viper.New()
	v.Set("vcs", "bitkeeper")

	cfg, err := LoadWithViper(v, LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "bitkeeper", cfg.VCS)
}
