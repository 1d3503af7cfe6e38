package vcs

import (
	"fmt"
	"strings"

	"github.com/mebigfatguy/vcsversion/internal/domain"
)

// Variant is one of the supported version control systems
type Variant int

const (
	SVN Variant = iota
	GIT
	HG
	BAZAAR
	BITKEEPER
)

type entry struct {
	variant Variant
	binary  string
	aliases []string
}

// registry is ordered; the first alias is the canonical name.
var registry = []entry{
	{SVN, "svn", []string{"svn", "subversion"}},
	{GIT, "git", []string{"git"}},
	{HG, "hg", []string{"hg", "mercurial"}},
	{BAZAAR, "bzr", []string{"bzr", "bazaar"}},
	{BITKEEPER, "bk", []string{"bk", "bitkeeper"}},
}

// Decode maps identifier to a Variant, ignoring case. Only exact aliases match.
func Decode(identifier string) (Variant, error) {
	alias := strings.ToLower(identifier)
	for _, e := range registry {
		for _, a := range e.aliases {
			if a == alias {
				return e.variant, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %s", domain.ErrUnknownVCS, identifier)
}

// Variants returns every supported variant in registry order
func Variants() []Variant {
	out := make([]Variant, 0, len(registry))
	for _, e := range registry {
		out = append(out, e.variant)
	}
	return out
}

func (v Variant) lookup() (entry, bool) {
	for _, e := range registry {
		if e.variant == v {
			return e, true
		}
	}
	return entry{}, false
}

// Valid reports whether v is a registered variant
func (v Variant) Valid() bool {
	_, ok := v.lookup()
	return ok
}

// String returns the canonical lower-case name, e.g. "svn"
func (v Variant) String() string {
	if e, ok := v.lookup(); ok {
		return e.aliases[0]
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Binary returns the name of the command-line client
func (v Variant) Binary() string {
	if e, ok := v.lookup(); ok {
		return e.binary
	}
	return ""
}

// Aliases returns a copy of the identifiers Decode accepts for v
func (v Variant) Aliases() []string {
	e, ok := v.lookup()
	if !ok {
		return nil
	}
	return append([]string(nil), e.aliases...)
}
