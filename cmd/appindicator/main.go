// Package main is the entry point for the appindicator installer.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/appindicator/cmd/appindicator/commands"
	"go.trai.ch/appindicator/internal/app"
	"go.trai.ch/appindicator/internal/core/domain"
	_ "go.trai.ch/appindicator/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer, opts ...graft.Option) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx, opts...)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintf(stderr, "Error: %+v\n", err)
		return domain.ExitCodeFailure
	}

	components.App.WithOutput(stdout, stderr)

	cli := commands.New(components.App)
	cli.SetOutput(stdout)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		code := domain.ExitCodeFor(err)
		components.Logger.Debug("installer finished with error", "exit_code", code)
		// Phase failures were already reported with their captured output.
		if code == domain.ExitCodeFailure {
			_, _ = fmt.Fprintf(stderr, "Error: %+v\n", err)
		}
		return code
	}
	return 0
}
