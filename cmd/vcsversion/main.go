package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mebigfatguy/vcsversion/internal/app"
	"github.com/mebigfatguy/vcsversion/internal/config"
	"github.com/mebigfatguy/vcsversion/internal/manifest"
	"github.com/mebigfatguy/vcsversion/internal/utils"
	"github.com/mebigfatguy/vcsversion/internal/vcs"
	"github.com/mebigfatguy/vcsversion/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Dependencies for testing
	execLookPath = exec.LookPath
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootOptions holds the flags shared by every command
type rootOptions struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
	dryRun  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "vcsversion [dir]",
		Short: "Publish version control information as properties",
		Long: `vcsversion asks the version control client that manages a working copy
for its revision, branch, commit date and repository URL, and prints them as
named properties.

Subversion, Git, Mercurial, Bazaar and BitKeeper working copies are supported.
Use --vcs auto to detect the system from the working copy.`,
		Version:       version.Short(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is .vcsversion.yaml in . or $HOME)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Print the commands that would run without running them")
	flags.String("vcs", "", "Version control system (svn, git, hg, bzr, bk, or auto)")
	flags.String("revision-property", config.DefaultRevisionProperty, "Property receiving the revision (empty to skip)")
	flags.String("branch-property", config.DefaultBranchProperty, "Property receiving the branch (empty to skip)")
	flags.String("date-property", config.DefaultDateProperty, "Property receiving the commit date (empty to skip)")
	flags.String("url-property", config.DefaultURLProperty, "Property receiving the repository URL (empty to skip)")
	flags.String("format", config.DefaultFormat, "Output format (properties, json, yaml, env)")
	flags.StringP("output", "o", "", "Output file (default is stdout)")

	// Bind flags to viper
	_ = opts.v.BindPFlag("vcs", flags.Lookup("vcs"))
	_ = opts.v.BindPFlag("properties.revision", flags.Lookup("revision-property"))
	_ = opts.v.BindPFlag("properties.branch", flags.Lookup("branch-property"))
	_ = opts.v.BindPFlag("properties.date", flags.Lookup("date-property"))
	_ = opts.v.BindPFlag("properties.url", flags.Lookup("url-property"))
	_ = opts.v.BindPFlag("output.format", flags.Lookup("format"))
	_ = opts.v.BindPFlag("output.file", flags.Lookup("output"))

	rootCmd.AddCommand(newDetectCmd(opts))
	rootCmd.AddCommand(newBatchCmd(opts))
	rootCmd.AddCommand(newDoctorCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newOrchestrator loads configuration and builds an orchestrator writing to
// the command's output
func newOrchestrator(cmd *cobra.Command, opts *rootOptions, dir string) (*app.Orchestrator, error) {
	cfg, err := config.LoadWithViper(opts.v, config.LoadOptions{ConfigFile: utils.ExpandPath(opts.cfgFile)})
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dir != "" {
		cfg.BaseDir = dir
	}

	orch, err := app.NewOrchestrator(app.OrchestratorOptions{
		Config:  cfg,
		Verbose: opts.verbose,
		DryRun:  opts.dryRun,
		Stdout:  cmd.OutOrStdout(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create orchestrator: %w", err)
	}
	return orch, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM
func signalContext(parent context.Context, log *utils.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			log.Info().Msg("Shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

func run(cmd *cobra.Command, args []string, opts *rootOptions) error {
	dir := ""
	if len(args) == 1 {
		dir = args[0]
	}

	orch, err := newOrchestrator(cmd, opts, dir)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(cmd.Context(), orch.Logger())
	defer cancel()

	_, err = orch.Run(ctx)
	return err
}

func newDetectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "detect [dir]",
		Short: "Print the version control system managing a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			orch, err := newOrchestrator(cmd, opts, dir)
			if err != nil {
				return err
			}

			v, err := orch.Detect(dir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newBatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <manifest>",
		Short: "Extract properties for every working copy listed in a manifest",
		Long: `Reads a YAML or JSON manifest listing working copies and extracts their
properties into a single output. Targets without a vcs use --vcs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.NewLoader().Load(utils.ExpandPath(args[0]))
			if err != nil {
				return err
			}

			orch, err := newOrchestrator(cmd, opts, "")
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd.Context(), orch.Logger())
			defer cancel()

			_, _, err = orch.RunManifest(ctx, m)
			return err
		},
	}
}

func newDoctorCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check which version control clients are available",
		Long:  "Looks up every supported version control client on PATH and validates the configuration.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Checking version control clients...")
			found := 0

			for _, v := range vcs.Variants() {
				fmt.Fprintf(out, "  %s (%s): ", v.Binary(), strings.Join(v.Aliases(), ", "))
				if path, err := execLookPath(v.Binary()); err == nil {
					fmt.Fprintf(out, "OK (%s)\n", path)
					found++
				} else {
					fmt.Fprintln(out, "NOT FOUND")
				}
			}

			fmt.Fprint(out, "  Config file: ")
			if _, err := config.LoadWithViper(opts.v, config.LoadOptions{ConfigFile: utils.ExpandPath(opts.cfgFile)}); err != nil {
				fmt.Fprintf(out, "WARN (%v)\n", err)
			} else {
				fmt.Fprintln(out, "OK")
			}

			fmt.Fprintln(out)
			if found == 0 {
				fmt.Fprintln(out, "No version control client found on PATH.")
			} else {
				fmt.Fprintf(out, "%d of %d clients available.\n", found, len(vcs.Variants()))
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}
