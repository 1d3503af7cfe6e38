package process

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/mebigfatguy/vcsversion/internal/utils"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ExecRunner runs commands with os/exec
type ExecRunner struct {
	logger *utils.Logger
	env    []string
}

// RunnerOptions contains options for the runner
type RunnerOptions struct {
	Logger *utils.Logger
	// Env, when set, replaces the inherited environment of every command
	Env []string
}

// NewExecRunner creates a new ExecRunner
func NewExecRunner(opts RunnerOptions) *ExecRunner {
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}
	return &ExecRunner{
		logger: logger.WithComponent("runner"),
		env:    opts.Env,
	}
}

// Run starts name with args in dir and returns its stdout as lines once the
// process has exited. A non-zero exit status yields whatever was printed.
// Launch and read failures return no lines at all.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]string, error) {
	argv := Command(append([]string{name}, args...))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	if r.env != nil {
		cmd.Env = r.env
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("executing %s: %w", argv, err)
	}

	r.logger.Debug().Str("dir", dir).Str("command", argv.String()).Msg("Executing command")

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("executing %s: %w", argv, err)
	}

	lines, readErr := ReadLines(stdout)
	if readErr != nil {
		// Drain so Wait does not block on a full pipe.
		_, _ = io.Copy(io.Discard, stdout)
	}
	waitErr := cmd.Wait()

	if readErr != nil {
		return nil, fmt.Errorf("reading output of %s: %w", argv, readErr)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("executing %s: %w", argv, ctxErr)
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return nil, fmt.Errorf("executing %s: %w", argv, waitErr)
		}
		r.logger.Debug().
			Str("command", argv.String()).
			Int("exit_code", exitErr.ExitCode()).
			Str("stderr", strings.TrimSpace(stderr.String())).
			Msg("Command exited with non-zero status")
	}

	return lines, nil
}

// ReadLines decodes r as UTF-8, replacing malformed bytes, and splits it into
// lines without their terminators. "\n", "\r\n" and a lone "\r" each end a
// line; lines have no length limit.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(transform.NewReader(r, unicode.UTF8.NewDecoder()))

	var lines []string
	for {
		chunk, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if chunk != "" {
			chunk = strings.TrimSuffix(chunk, "\n")
			chunk = strings.TrimSuffix(chunk, "\r")
			lines = append(lines, strings.Split(chunk, "\r")...)
		}
		if err == io.EOF {
			return lines, nil
		}
	}
}
