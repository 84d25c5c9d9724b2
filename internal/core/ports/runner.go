// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/appindicator/internal/core/domain"
)

// CommandRunner defines the interface for running external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run starts the command, waits for it to exit and returns its captured output.
	//
	// A non-nil error means the process could not be launched and wraps
	// domain.ErrLaunchFailed. A process that ran and exited non-zero is reported
	// through ProcessResult.Success with a nil error.
	Run(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error)
}
