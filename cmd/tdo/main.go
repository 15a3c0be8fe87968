// Package main is the entry point for the tdo CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tdo/internal/app"
	"tdo/internal/cli"
	"tdo/internal/commands"
	"tdo/internal/config"
	"tdo/internal/logging"
	"tdo/internal/notify"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create app factory. A missing service config produces a nil app;
	// the dispatcher reports it only for commands that need the backend.
	factory := func(ctx context.Context, cfg *config.Config, notifier notify.Notifier) (*app.App, error) {
		if !cfg.HasService() {
			return nil, nil
		}
		return app.Connect(cfg, notifier, logging.New(os.Stderr, cfg.Debug)), nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}
