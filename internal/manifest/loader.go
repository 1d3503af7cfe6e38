package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mebigfatguy/vcsversion/internal/utils"
	"gopkg.in/yaml.v3"
)

// Loader loads and validates manifest files
type Loader struct{}

// NewLoader creates a new manifest loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a manifest file from the given path.
// Relative target dirs are resolved against the manifest's directory.
func (l *Loader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	cfg, err := l.LoadFromBytes(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	for i := range cfg.Targets {
		cfg.Targets[i].Dir = utils.ExpandPath(cfg.Targets[i].Dir)
		if !filepath.IsAbs(cfg.Targets[i].Dir) {
			cfg.Targets[i].Dir = filepath.Join(base, cfg.Targets[i].Dir)
		}
	}

	return cfg, nil
}

// LoadFromBytes parses manifest configuration from raw bytes
func (l *Loader) LoadFromBytes(data []byte, ext string) (*Config, error) {
	ext = strings.ToLower(ext)

	var cfg Config
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	l.normalize(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (l *Loader) normalize(cfg *Config) {
	for i := range cfg.Targets {
		t := &cfg.Targets[i]
		t.Dir = strings.TrimSpace(t.Dir)
		t.VCS = strings.TrimSpace(t.VCS)
	}
}
