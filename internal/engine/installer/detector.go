package installer

import (
	"context"

	"go.trai.ch/appindicator/internal/core/domain"
)

// DetectPackageManager returns the first of apt, dnf and yum whose probe can be
// launched, or domain.PackageManagerUnknown. Only launchability counts: a manager
// that starts and then exits non-zero is still selected.
func (i *Installer) DetectPackageManager(ctx context.Context) domain.PackageManager {
	ctx, vertex := i.telemetry.Record(ctx, domain.PhaseDetectPackageManager.String())
	defer vertex.Complete(nil)

	for _, manager := range domain.PackageManagers {
		res, err := i.runner.Run(ctx, manager.Probe())
		if err != nil {
			i.logger.Debug("package manager not available", "package_manager", manager.String(), "error", err)
			continue
		}
		i.logger.Debug("package manager detected", "package_manager", manager.String(), "exit_code", res.ExitCode)
		return manager
	}

	return domain.PackageManagerUnknown
}
