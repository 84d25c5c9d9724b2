package installer

import (
	"context"

	"go.trai.ch/appindicator/internal/core/domain"
)

// CheckDependencies probes every dependency and returns the executables that are
// missing, in declaration order. A dependency is missing when its probe cannot be
// launched or exits non-zero; the two cases are not distinguished.
func (i *Installer) CheckDependencies(ctx context.Context, deps []domain.Dependency) []string {
	ctx, vertex := i.telemetry.Record(ctx, domain.PhaseCheckDependencies.String())
	defer vertex.Complete(nil)

	var missing []string
	for _, dep := range deps {
		probe := dep.Probe()
		res, err := i.runner.Run(ctx, probe)
		switch {
		case err != nil:
			i.logger.Debug("dependency probe could not be launched", "executable", dep.Executable, "error", err)
		case !res.Success:
			i.logger.Debug("dependency probe failed", "executable", dep.Executable, "exit_code", res.ExitCode)
		default:
			i.logger.Debug("dependency found", "executable", dep.Executable)
			continue
		}
		missing = append(missing, dep.Executable)
	}

	return missing
}
