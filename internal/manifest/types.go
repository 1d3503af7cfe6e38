package manifest

import (
	"fmt"
	"strings"

	"github.com/mebigfatguy/vcsversion/internal/domain"
)

// Config represents the complete manifest configuration
type Config struct {
	Targets []Target `yaml:"targets" json:"targets"`
	Options Options  `yaml:"options" json:"options"`
}

// Target represents one working copy to extract from
type Target struct {
	Dir string `yaml:"dir" json:"dir"`
	// VCS is a variant alias or "auto"; empty falls back to the global vcs
	VCS    string `yaml:"vcs,omitempty" json:"vcs,omitempty"`
	Prefix string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	// Properties overrides the global property names for this target
	Properties *PropertyOverrides `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// PropertyOverrides replaces individual property names. A nil field keeps
// the inherited name, an empty string disables the property.
type PropertyOverrides struct {
	Revision *string `yaml:"revision,omitempty" json:"revision,omitempty"`
	Branch   *string `yaml:"branch,omitempty" json:"branch,omitempty"`
	Date     *string `yaml:"date,omitempty" json:"date,omitempty"`
	URL      *string `yaml:"url,omitempty" json:"url,omitempty"`
}

// Options represents global manifest options
type Options struct {
	ContinueOnError bool `yaml:"continue_on_error" json:"continue_on_error"`
}

// Validate validates the manifest configuration
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTargets
	}
	for i, target := range c.Targets {
		if strings.TrimSpace(target.Dir) == "" {
			return fmt.Errorf("target %d: %w", i, ErrEmptyDir)
		}
	}
	return nil
}

// DefaultOptions returns options with sensible defaults
func DefaultOptions() Options {
	return Options{
		ContinueOnError: false,
	}
}

// Request applies the target's overrides and prefix to a base request
func (t Target) Request(base domain.Request) domain.Request {
	req := base
	if o := t.Properties; o != nil {
		if o.Revision != nil {
			req.Revision = strings.TrimSpace(*o.Revision)
		}
		if o.Branch != nil {
			req.Branch = strings.TrimSpace(*o.Branch)
		}
		if o.Date != nil {
			req.Date = strings.TrimSpace(*o.Date)
		}
		if o.URL != nil {
			req.URL = strings.TrimSpace(*o.URL)
		}
	}
	return req.WithPrefix(t.Prefix)
}

// ResolveVCS returns the target's vcs, falling back to def when unset
func (t Target) ResolveVCS(def string) string {
	if v := strings.TrimSpace(t.VCS); v != "" {
		return v
	}
	return def
}
