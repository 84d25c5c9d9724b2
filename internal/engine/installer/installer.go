// Package installer implements the extension installation pipeline.
package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/appindicator/internal/core/domain"
	"go.trai.ch/appindicator/internal/core/ports"
	"go.trai.ch/zerr"
)

const unsupportedManagerMessage = "Unsupported package manager. Please install the required dependencies manually."

// Installer runs the installation phases in order, stopping at the first failure.
type Installer struct {
	runner    ports.CommandRunner
	logger    ports.Logger
	telemetry ports.Telemetry
	stdout    io.Writer
	stderr    io.Writer
}

// New creates a new Installer that prints progress to the process's standard streams.
func New(runner ports.CommandRunner, logger ports.Logger, telemetry ports.Telemetry) *Installer {
	return &Installer{
		runner:    runner,
		logger:    logger,
		telemetry: telemetry,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// WithOutput redirects progress messages and the captured output of failed commands.
func (i *Installer) WithOutput(stdout, stderr io.Writer) *Installer {
	i.stdout = stdout
	i.stderr = stderr
	return i
}

// Run installs missing dependencies, then clones, builds, installs and enables the extension.
//
// When dependencies are missing and no supported package manager is found, Run
// prints a notice and returns domain.OutcomeManualInstallRequired without error.
func (i *Installer) Run(ctx context.Context, recipe *domain.Recipe) (domain.Outcome, error) {
	missing := i.CheckDependencies(ctx, recipe.Dependencies)

	if len(missing) > 0 {
		i.println("Missing dependencies: " + formatList(missing))
		i.println("Installing missing dependencies...")

		manager := i.DetectPackageManager(ctx)
		if !manager.Supported() {
			i.println(unsupportedManagerMessage)
			return domain.OutcomeManualInstallRequired, nil
		}

		cmd, err := manager.InstallCommand(missing)
		if err != nil {
			return domain.OutcomeManualInstallRequired, err
		}
		if err := i.step(ctx, domain.PhaseInstallDependencies, cmd); err != nil {
			return domain.OutcomeInstalled, err
		}
	}

	steps := []struct {
		phase domain.Phase
		cmd   domain.Command
	}{
		{domain.PhaseClone, recipe.CloneCommand()},
		{domain.PhaseConfigure, recipe.ConfigureCommand()},
		{domain.PhaseBuild, recipe.BuildCommand()},
		{domain.PhaseEnable, recipe.EnableCommand()},
	}

	for _, s := range steps {
		if err := i.step(ctx, s.phase, s.cmd); err != nil {
			return domain.OutcomeInstalled, err
		}
	}

	return domain.OutcomeInstalled, nil
}

// step runs a single fatal phase. On failure it prints the phase label followed by
// the command's captured output and returns an error matching phase.Err().
func (i *Installer) step(ctx context.Context, phase domain.Phase, cmd domain.Command) (err error) {
	ctx, vertex := i.telemetry.Record(ctx, phase.String())
	defer func() { vertex.Complete(err) }()

	i.logger.Debug("running phase", "phase", phase.String(), "command", cmd.String())

	res, runErr := i.runner.Run(ctx, cmd)
	if runErr != nil {
		i.println(phase.FailureMessage())
		_, _ = fmt.Fprintln(i.stderr, runErr)
		return errors.Join(phase.Err(), runErr)
	}

	if !res.Success {
		i.println(phase.FailureMessage())
		_, _ = i.stdout.Write(res.Stdout)
		_, _ = i.stderr.Write(res.Stderr)

		err = zerr.Wrap(phase.Err(), "command exited with non-zero status")
		err = zerr.With(err, "command", cmd.String())
		return zerr.With(err, "exit_code", res.ExitCode)
	}

	if msg := phase.SuccessMessage(); msg != "" {
		i.println(msg)
	}
	return nil
}

func (i *Installer) println(msg string) {
	_, _ = fmt.Fprintln(i.stdout, msg)
}

// formatList renders names as a bracketed, quoted list: ["git", "meson"].
func formatList(names []string) string {
	quoted := make([]string, len(names))
	for idx, name := range names {
		quoted[idx] = fmt.Sprintf("%q", name)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
