// Package app implements the application layer for the appindicator installer.
package app

import (
	"context"
	"errors"
	"io"

	"go.trai.ch/appindicator/internal/core/domain"
	"go.trai.ch/appindicator/internal/core/ports"
	"go.trai.ch/appindicator/internal/engine/installer"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.RecipeLoader
	installer *installer.Installer
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.RecipeLoader,
	inst *installer.Installer,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		loader:    loader,
		installer: inst,
		logger:    logger,
		telemetry: telemetry,
	}
}

// WithOutput redirects the user-facing output of the installation.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.installer.WithOutput(stdout, stderr)
	return a
}

// Run loads the install recipe and runs the installer once.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := a.telemetry.Close(); closeErr != nil {
			err = errors.Join(err, zerr.Wrap(closeErr, "failed to close telemetry"))
		}
	}()

	recipe, err := a.loader.Load()
	if err != nil {
		return zerr.Wrap(err, "failed to load install recipe")
	}

	a.logger.Debug("loaded install recipe",
		"fingerprint", recipe.Fingerprint(),
		"repository", recipe.RepositoryURL,
		"extension", recipe.ExtensionUUID,
	)

	outcome, err := a.installer.Run(ctx, recipe)
	if err != nil {
		return err
	}

	if outcome == domain.OutcomeManualInstallRequired {
		a.logger.Warn("extension was not installed", "reason", "missing dependencies require manual installation")
	}

	return nil
}
