package vcs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	mvcs "github.com/Masterminds/vcs"
	"github.com/mebigfatguy/vcsversion/internal/domain"
)

// BitKeeper is unknown to Masterminds/vcs; these markers identify its
// repositories.
var bitKeeperMarkers = []string{".bk", filepath.Join("BitKeeper", "etc")}

const looplimit = 10000

// Detect reports which variant manages dir, walking up towards the filesystem
// root until a marker directory is found.
func Detect(dir string) (Variant, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return 0, err
	}
	if _, err := os.Stat(abs); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrCannotDetectVCS, err)
	}

	path := abs
	for i := 0; i <= looplimit; i++ {
		v, found, err := detectIn(path)
		if err != nil {
			return 0, err
		}
		if found {
			return v, nil
		}

		next := filepath.Dir(path)
		if next == path {
			break
		}
		path = next
	}
	return 0, fmt.Errorf("%w in %s", domain.ErrCannotDetectVCS, abs)
}

func detectIn(dir string) (Variant, bool, error) {
	t, err := mvcs.DetectVcsFromFS(dir)
	switch {
	case err == nil:
		v, err := fromType(t)
		return v, err == nil, err
	case !errors.Is(err, mvcs.ErrCannotDetectVCS):
		return 0, false, err
	}

	for _, marker := range bitKeeperMarkers {
		if fi, err := os.Stat(filepath.Join(dir, marker)); err == nil && fi.IsDir() {
			return BITKEEPER, true, nil
		}
	}
	return 0, false, nil
}

func fromType(t mvcs.Type) (Variant, error) {
	switch t {
	case mvcs.Git:
		return GIT, nil
	case mvcs.Svn:
		return SVN, nil
	case mvcs.Hg:
		return HG, nil
	case mvcs.Bzr:
		return BAZAAR, nil
	default:
		return Decode(string(t))
	}
}
