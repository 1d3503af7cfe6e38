package manifest

import (
	"testing"

	"github.com/mebigfatguy/vcsversion/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.False(t, opts.ContinueOnError, "ContinueOnError should default to false")
}

func TestConfig_Validate_NoTargets(t *testing.T) {
	cfg := &Config{
		Targets: []Target{},
		Options: DefaultOptions(),
	}

	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrNoTargets)
}

func TestConfig_Validate_EmptyDir(t *testing.T) {
	cfg := &Config{
		Targets: []Target{
			{Dir: "a"},
			{Dir: ""},
		},
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "target 1")
	assert.ErrorIs(t, err, ErrEmptyDir)
}

func TestConfig_Validate_Valid(t *testing.T) {
	cfg := &Config{
		Targets: []Target{{Dir: "a", VCS: "git"}, {Dir: "b"}},
	}

	assert.NoError(t, cfg.Validate())
}

func TestTarget_ResolveVCS(t *testing.T) {
	assert.Equal(t, "hg", Target{VCS: "hg"}.ResolveVCS("git"))
	assert.Equal(t, "git", Target{VCS: " "}.ResolveVCS("git"))
	assert.Equal(t, "", Target{}.ResolveVCS(""))
}

func TestTarget_Request(t *testing.T) {
	base := domain.Request{
		Revision: "vcs.revision",
		Branch:   "vcs.branch",
		Date:     "vcs.date",
		URL:      "vcs.url",
	}
	ptr := func(s string) *string { return &s }

	tests := []struct {
		name   string
		target Target
		want   domain.Request
	}{
		{
			name:   "no overrides",
			target: Target{Dir: "a"},
			want:   base,
		},
		{
			name:   "prefix only",
			target: Target{Dir: "a", Prefix: "svc."},
			want: domain.Request{
				Revision: "svc.vcs.revision",
				Branch:   "svc.vcs.branch",
				Date:     "svc.vcs.date",
				URL:      "svc.vcs.url",
			},
		},
		{
			name: "override and disable",
			target: Target{Dir: "a", Properties: &PropertyOverrides{
				Revision: ptr("rev"),
				URL:      ptr(""),
			}},
			want: domain.Request{
				Revision: "rev",
				Branch:   "vcs.branch",
				Date:     "vcs.date",
			},
		},
		{
			name: "disabled names stay disabled under a prefix",
			target: Target{Dir: "a", Prefix: "p.", Properties: &PropertyOverrides{
				Branch: ptr(""),
				Date:   ptr(""),
			}},
			want: domain.Request{
				Revision: "p.vcs.revision",
				URL:      "p.vcs.url",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.target.Request(base))
		})
	}
}
