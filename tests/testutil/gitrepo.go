package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// GitRepo describes a fixture repository built by NewGitRepo
type GitRepo struct {
	Dir       string
	Head      string
	Branch    string
	RemoteURL string
}

// GitRepoOptions configures NewGitRepo
type GitRepoOptions struct {
	// Branch is checked out after the initial commit; empty keeps the default
	Branch string
	// RemoteURL becomes remote.origin.url; empty adds no remote
	RemoteURL string
	When      time.Time
}

// RequireBinary skips the test when name is not on PATH
func RequireBinary(t *testing.T, name string) {
	t.Helper()

	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

// NewGitRepo initializes a git working copy in a temporary directory with a
// single commit, built in-process with go-git so no git binary is needed.
func NewGitRepo(t *testing.T, opts GitRepoOptions) *GitRepo {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# fixture\n"), 0644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)

	when := opts.When
	if when.IsZero() {
		when = time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	hash, err := wt.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Fixture",
			Email: "fixture@example.com",
			When:  when,
		},
	})
	require.NoError(t, err)

	head, err := repo.Head()
	require.NoError(t, err)
	branch := head.Name().Short()

	if opts.Branch != "" && opts.Branch != branch {
		err = wt.Checkout(&git.CheckoutOptions{
			Branch: plumbing.NewBranchReferenceName(opts.Branch),
			Create: true,
		})
		require.NoError(t, err)
		branch = opts.Branch
	}

	if opts.RemoteURL != "" {
		_, err = repo.CreateRemote(&config.RemoteConfig{
			Name: "origin",
			URLs: []string{opts.RemoteURL},
		})
		require.NoError(t, err)
	}

	return &GitRepo{
		Dir:       dir,
		Head:      hash.String(),
		Branch:    branch,
		RemoteURL: opts.RemoteURL,
	}
}
