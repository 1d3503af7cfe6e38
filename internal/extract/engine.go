package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mebigfatguy/vcsversion/internal/domain"
	"github.com/mebigfatguy/vcsversion/internal/process"
	"github.com/mebigfatguy/vcsversion/internal/utils"
	"github.com/mebigfatguy/vcsversion/internal/vcs"
)

// Extractor runs backend steps against one working copy
type Extractor struct {
	runner domain.Runner
	sink   domain.PropertySink
	dir    string
	logger *utils.Logger
}

// Options contains options for creating an Extractor
type Options struct {
	Runner domain.Runner
	Sink   domain.PropertySink
	// Dir is the working copy every command runs in; empty means the
	// current directory
	Dir    string
	Logger *utils.Logger
}

// New creates a new Extractor
func New(opts Options) (*Extractor, error) {
	if opts.Runner == nil {
		return nil, errors.New("extract: runner is required")
	}
	if opts.Sink == nil {
		return nil, errors.New("extract: property sink is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Extractor{
		runner: opts.Runner,
		sink:   opts.Sink,
		dir:    opts.Dir,
		logger: logger.WithComponent("extract"),
	}, nil
}

// ExtractNamed decodes identifier and extracts the requested properties. A
// missing or unknown identifier fails before any command runs.
func (e *Extractor) ExtractNamed(ctx context.Context, identifier string, req domain.Request) error {
	if identifier == "" {
		return domain.ErrMissingVCS
	}
	variant, err := vcs.Decode(identifier)
	if err != nil {
		return err
	}
	return e.Extract(ctx, variant, req)
}

// Extract runs the steps of variant in order, skipping steps with nothing
// requested. The first command that cannot be launched or read aborts the
// extraction; properties set by earlier steps remain in the sink.
func (e *Extractor) Extract(ctx context.Context, variant vcs.Variant, req domain.Request) error {
	b, ok := backends[variant]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownVCS, variant)
	}
	logger := e.logger.WithVCS(variant.String())

	for _, s := range b.steps {
		if s.assign != nil {
			if name := req.Name(s.assign.property); name != "" {
				e.set(logger, name, s.assign.value)
			}
			continue
		}

		bindings := s.bind(req)
		if len(bindings) == 0 {
			logger.Debug().Str("command", s.argv.String()).Msg("Skipping step, nothing requested")
			continue
		}

		if err := e.fetch(ctx, logger, s.argv, bindings); err != nil {
			return domain.NewExtractionError(variant.String(), err)
		}
	}
	return nil
}

// fetch runs argv and feeds every output line through every binding
func (e *Extractor) fetch(ctx context.Context, logger *utils.Logger, argv process.Command, bindings []binding) error {
	lines, err := e.runner.Run(ctx, e.dir, argv.Name(), argv.Args()...)
	if err != nil {
		return err
	}

	logger.Debug().Str("command", argv.String()).Int("lines", len(lines)).Msg("Scanning output")
	for _, line := range lines {
		for _, b := range bindings {
			if value, ok := b.match(line); ok {
				e.set(logger, b.name, value)
			}
		}
	}
	return nil
}

func (e *Extractor) set(logger *utils.Logger, name, value string) {
	logger.Debug().Str("property", name).Str("value", value).Msg("Setting property")
	e.sink.Set(name, value)
}

// Plan returns the commands Extract would run for req, in order
func Plan(variant vcs.Variant, req domain.Request) ([]process.Command, error) {
	b, ok := backends[variant]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownVCS, variant)
	}
	var out []process.Command
	for _, s := range b.steps {
		if s.assign == nil && len(s.bind(req)) > 0 {
			out = append(out, s.argv)
		}
	}
	return out, nil
}

// trim drops leading and trailing spaces and control characters
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r <= ' '
	})
}
