package extract

import (
	"regexp"

	"github.com/mebigfatguy/vcsversion/internal/domain"
	"github.com/mebigfatguy/vcsversion/internal/process"
	"github.com/mebigfatguy/vcsversion/internal/vcs"
)

// pattern feeds one property from the output of a step
type pattern struct {
	property domain.Property
	expr     string
}

// assignment sets a property without running anything
type assignment struct {
	property domain.Property
	value    string
}

// step is either a command with its patterns or an assignment
type step struct {
	command  string
	patterns []pattern
	assign   *assignment
}

// binding ties a compiled pattern to the output name it writes
type binding struct {
	name    string
	pattern *regexp.Regexp
}

type compiledPattern struct {
	property domain.Property
	re       *regexp.Regexp
}

type compiledStep struct {
	argv     process.Command
	patterns []compiledPattern
	assign   *assignment
}

// backend is the step table of one variant
type backend struct {
	variant vcs.Variant
	steps   []compiledStep
}

var backends = map[vcs.Variant]*backend{
	vcs.SVN:       newBackend(vcs.SVN, svnSteps),
	vcs.GIT:       newBackend(vcs.GIT, gitSteps),
	vcs.HG:        newBackend(vcs.HG, hgSteps),
	vcs.BAZAAR:    newBackend(vcs.BAZAAR, bzrSteps),
	vcs.BITKEEPER: newBackend(vcs.BITKEEPER, bkSteps),
}

func newBackend(variant vcs.Variant, steps []step) *backend {
	b := &backend{variant: variant}
	for _, s := range steps {
		cs := compiledStep{assign: s.assign}
		if s.assign == nil {
			cs.argv = process.MustParseCommand(s.command)
			for _, p := range s.patterns {
				cs.patterns = append(cs.patterns, compiledPattern{
					property: p.property,
					re:       compileLinePattern(p.expr),
				})
			}
		}
		b.steps = append(b.steps, cs)
	}
	return b
}

// compileLinePattern anchors expr to the whole line and makes it case
// insensitive
func compileLinePattern(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^(?:` + expr + `)$`)
}

// bind returns a binding for every pattern whose property is requested
func (s compiledStep) bind(req domain.Request) []binding {
	var out []binding
	for _, p := range s.patterns {
		if name := req.Name(p.property); name != "" {
			out = append(out, binding{name: name, pattern: p.re})
		}
	}
	return out
}

// match returns the trimmed first group when line matches b
func (b binding) match(line string) (string, bool) {
	m := b.pattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return trim(m[1]), true
}
