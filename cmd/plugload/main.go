// Package main is the entry point for the plugload CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugload/cmd/plugload/commands"
	"go.trai.ch/plugload/internal/app"
	"go.trai.ch/plugload/internal/core/domain"
	_ "go.trai.ch/plugload/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = components.Telemetry.Close() }()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App, components.OptionsLoader)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrCheckFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
