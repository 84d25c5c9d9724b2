// Package shell provides the command runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	"go.trai.ch/appindicator/internal/core/domain"
	"go.trai.ch/appindicator/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandRunner = (*Runner)(nil)

// waitDelay bounds how long Run waits for output pipes after the process is
// killed, since grandchildren (ninja jobs, apt helpers) may still hold them open.
const waitDelay = 2 * time.Second

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger  ports.Logger
	stdin   io.Reader
	termOut io.Writer
	termErr io.Writer
}

// NewRunner creates a new Runner. Interactive commands read from os.Stdin and
// echo their output to os.Stdout and os.Stderr while it is captured.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger:  logger,
		stdin:   os.Stdin,
		termOut: os.Stdout,
		termErr: os.Stderr,
	}
}

// WithStdin replaces the reader connected to interactive commands.
func (r *Runner) WithStdin(stdin io.Reader) *Runner {
	r.stdin = stdin
	return r
}

// WithTerminal replaces the writers interactive commands echo their output to.
func (r *Runner) WithTerminal(stdout, stderr io.Writer) *Runner {
	r.termOut = stdout
	r.termErr = stderr
	return r
}

// Run executes the command synchronously and captures both output streams.
// When ctx carries a telemetry vertex, the output is also streamed into it.
// Cancelling ctx kills the process, which is then reported as a non-zero exit.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error) {
	var stdout, stderr bytes.Buffer

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // commands come from the embedded recipe

	c.WaitDelay = waitDelay

	outs := []io.Writer{&stdout}
	errs := []io.Writer{&stderr}
	if vertex, ok := ports.VertexFromContext(ctx); ok {
		outs = append(outs, vertex.Stdout())
		errs = append(errs, vertex.Stderr())
	}

	// Prompts such as apt's "Do you want to continue? [Y/n]" must be visible
	// while the process waits for an answer.
	if cmd.Interactive {
		c.Stdin = r.stdin
		outs = append(outs, r.termOut)
		errs = append(errs, r.termErr)
	}

	c.Stdout = io.MultiWriter(outs...)
	c.Stderr = io.MultiWriter(errs...)

	r.logger.Debug("running command", "command", cmd.String())

	err := c.Run()
	result := domain.ProcessResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			r.logger.Debug("command exited with non-zero status",
				"command", cmd.String(),
				"exit_code", result.ExitCode,
			)
			return result, nil
		}

		launchErr := zerr.With(zerr.Wrap(err, "failed to start command"), "command", cmd.String())
		return result, errors.Join(domain.ErrLaunchFailed, launchErr)
	}

	result.Success = true
	return result, nil
}
