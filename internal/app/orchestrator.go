package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mebigfatguy/vcsversion/internal/config"
	"github.com/mebigfatguy/vcsversion/internal/domain"
	"github.com/mebigfatguy/vcsversion/internal/extract"
	"github.com/mebigfatguy/vcsversion/internal/manifest"
	"github.com/mebigfatguy/vcsversion/internal/output"
	"github.com/mebigfatguy/vcsversion/internal/process"
	"github.com/mebigfatguy/vcsversion/internal/utils"
	"github.com/mebigfatguy/vcsversion/internal/vcs"
)

// Orchestrator coordinates detection, extraction and output
type Orchestrator struct {
	config   *config.Config
	runner   domain.Runner
	writer   *output.Writer
	logger   *utils.Logger
	stdout   io.Writer
	progress io.Writer
	dryRun   bool
	detect   func(dir string) (vcs.Variant, error)
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	Config  *config.Config
	Verbose bool
	// DryRun prints the commands that would run instead of running them
	DryRun bool
	// Runner executes VCS clients; nil uses process.ExecRunner
	Runner domain.Runner
	// Logger overrides the logger built from Config.Logging
	Logger *utils.Logger
	// Stdout receives rendered properties and plans; nil means os.Stdout
	Stdout io.Writer
	// Progress receives the batch progress bar; nil means os.Stderr
	Progress io.Writer
	// Detector overrides vcs.Detect
	Detector func(dir string) (vcs.Variant, error)
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logLevel := config.DefaultLogLevel
		logFormat := config.DefaultLogFormat
		if cfg.Logging.Level != "" {
			logLevel = cfg.Logging.Level
		}
		if cfg.Logging.Format != "" {
			logFormat = cfg.Logging.Format
		}
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   logLevel,
			Format:  logFormat,
			Verbose: opts.Verbose,
		})
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	progress := opts.Progress
	if progress == nil {
		progress = os.Stderr
	}

	runner := opts.Runner
	if runner == nil {
		runner = process.NewExecRunner(process.RunnerOptions{Logger: logger})
	}

	detect := opts.Detector
	if detect == nil {
		detect = vcs.Detect
	}

	writer, err := output.NewWriter(output.WriterOptions{
		Format: output.Format(cfg.Output.Format),
		Path:   cfg.Output.File,
		DryRun: opts.DryRun,
		Stdout: stdout,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	return &Orchestrator{
		config:   cfg,
		runner:   runner,
		writer:   writer,
		logger:   logger,
		stdout:   stdout,
		progress: progress,
		dryRun:   opts.DryRun,
		detect:   detect,
	}, nil
}

// Logger returns the orchestrator's logger
func (o *Orchestrator) Logger() *utils.Logger {
	return o.logger
}

// ResolveVariant turns a configured vcs value into a variant. "auto" inspects
// dir; anything else must be a known alias.
func (o *Orchestrator) ResolveVariant(identifier, dir string) (vcs.Variant, error) {
	switch {
	case identifier == "":
		return 0, domain.ErrMissingVCS
	case strings.EqualFold(strings.TrimSpace(identifier), config.AutoDetect):
		v, err := o.detect(dir)
		if err != nil {
			return 0, err
		}
		o.logger.Debug().Str("dir", dir).Str("vcs", v.String()).Msg("Detected version control system")
		return v, nil
	default:
		return vcs.Decode(identifier)
	}
}

// Run extracts the configured properties from the configured working copy
// and writes them out. Nothing is written when extraction fails.
func (o *Orchestrator) Run(ctx context.Context) (*output.Properties, error) {
	startTime := time.Now()
	dir := o.config.BaseDir
	req := o.config.Properties.Request()

	variant, err := o.ResolveVariant(o.config.VCS, dir)
	if err != nil {
		return nil, err
	}

	o.logger.Info().
		Str("dir", dir).
		Str("vcs", variant.String()).
		Msg("Starting version extraction")

	props := output.NewProperties()
	if o.dryRun {
		if err := o.printPlan(dir, variant, req); err != nil {
			return props, err
		}
		return props, o.flush(props)
	}

	if err := o.extract(ctx, props, dir, variant, req); err != nil {
		if ctx.Err() != nil {
			o.logger.Warn().Msg("Extraction cancelled")
			return props, ctx.Err()
		}
		return props, err
	}

	if err := o.flush(props); err != nil {
		return props, err
	}

	o.logger.Info().
		Int("properties", props.Len()).
		Dur("duration", time.Since(startTime)).
		Msg("Version extraction completed")

	return props, nil
}

func (o *Orchestrator) extract(ctx context.Context, props *output.Properties, dir string, variant vcs.Variant, req domain.Request) error {
	if req.Empty() {
		o.logger.Warn().Str("dir", dir).Msg("No properties requested")
	}

	extractor, err := extract.New(extract.Options{
		Runner: o.runner,
		Sink:   props,
		Dir:    dir,
		Logger: o.logger.WithDir(dir),
	})
	if err != nil {
		return err
	}
	return extractor.Extract(ctx, variant, req)
}

// printPlan writes the commands an extraction would run, preceded by a
// comment line naming the working copy
func (o *Orchestrator) printPlan(dir string, variant vcs.Variant, req domain.Request) error {
	plan, err := extract.Plan(variant, req)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(o.stdout, "# %s (%s)\n", dir, variant); err != nil {
		return err
	}
	for _, cmd := range plan {
		if _, err := fmt.Fprintln(o.stdout, cmd.String()); err != nil {
			return err
		}
	}
	return nil
}

// Detect reports which version control system manages dir
func (o *Orchestrator) Detect(dir string) (vcs.Variant, error) {
	return o.detect(dir)
}

// TargetResult represents the result of extracting one manifest target
type TargetResult struct {
	Target   manifest.Target
	VCS      string
	Error    error
	Duration time.Duration
}

// RunManifest extracts every target of the manifest, in order, into one
// property set and writes it out. Without continue_on_error the first
// failing target stops the batch and nothing is written.
func (o *Orchestrator) RunManifest(ctx context.Context, m *manifest.Config) (*output.Properties, []TargetResult, error) {
	startTime := time.Now()
	total := len(m.Targets)

	o.logger.Info().
		Int("targets", total).
		Bool("continue_on_error", m.Options.ContinueOnError).
		Msg("Starting manifest execution")

	props := output.NewProperties()
	results := make([]TargetResult, 0, total)
	base := o.config.Properties.Request()

	bar := utils.NewProgressBar(total, utils.DescExtracting, o.progress)
	defer func() { _ = bar.Finish() }()

	for i, target := range m.Targets {
		if err := ctx.Err(); err != nil {
			o.logger.Warn().Msg("Manifest execution cancelled")
			return props, results, err
		}

		targetStart := time.Now()
		result := TargetResult{Target: target}

		o.logger.Debug().
			Int("target_idx", i).
			Str("dir", target.Dir).
			Int("total", total).
			Msg("Processing target")

		err := o.runTarget(ctx, props, target, base, &result)
		result.Duration = time.Since(targetStart)
		_ = bar.Add(1)

		if err != nil {
			result.Error = domain.NewTargetError(target.Dir, result.VCS, err)
			results = append(results, result)

			o.logger.Error().
				Err(err).
				Int("target_idx", i).
				Str("dir", target.Dir).
				Dur("duration", result.Duration).
				Msg("Target extraction failed")

			if ctx.Err() != nil {
				return props, results, ctx.Err()
			}
			if !m.Options.ContinueOnError {
				o.logger.Warn().Msg("Stopping execution (continue_on_error=false)")
				return props, results, result.Error
			}
			continue
		}

		results = append(results, result)
	}

	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
		}
	}

	o.logger.Info().
		Dur("total_duration", time.Since(startTime)).
		Int("total", total).
		Int("success", total-failed).
		Int("failed", failed).
		Msg("Manifest execution completed")

	if err := o.flush(props); err != nil {
		return props, results, err
	}
	return props, results, nil
}

// flush hands props to the writer. A dry run only reaches the writer when a
// file is configured, so the skipped write gets logged.
func (o *Orchestrator) flush(props *output.Properties) error {
	if o.dryRun && o.config.Output.File == "" {
		return nil
	}
	return o.writer.Write(props)
}

func (o *Orchestrator) runTarget(ctx context.Context, props *output.Properties, target manifest.Target, base domain.Request, result *TargetResult) error {
	variant, err := o.ResolveVariant(target.ResolveVCS(o.config.VCS), target.Dir)
	if err != nil {
		return err
	}
	result.VCS = variant.String()

	req := target.Request(base)
	if o.dryRun {
		return o.printPlan(target.Dir, variant, req)
	}
	return o.extract(ctx, props, target.Dir, variant, req)
}
