package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ivkhv/daybook/adapter/cli"
	"github.com/ivkhv/daybook/adapter/cli/goal"
	"github.com/ivkhv/daybook/internal/app"
	"github.com/ivkhv/daybook/pkg/config"
	"github.com/ivkhv/daybook/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "error", err)
		cfg = &config.Config{AppEnv: "development"}
	}

	cli.SetLogger(logger)

	// Try to initialize the full container
	var cliApp *cli.App
	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		if cfg.IsDevelopment() {
			logger.Warn("failed to initialize container, running in limited mode", "error", err)
			// In development, allow the CLI to run without backends
			cliApp = nil
		} else {
			logger.Error("failed to initialize container", "error", err)
			os.Exit(1)
		}
	} else {
		defer container.Close()

		cliApp = &cli.App{
			Journal:  container.Journal,
			Goals:    container.GoalRepo,
			Insights: container.Insights,
			Alerts:   container.Alerts,
			Health:   container.Health,
			OwnerID:  cfg.OwnerID,
		}
	}

	cli.SetApp(cliApp)

	// Register command groups
	cli.AddCommand(goal.Cmd)

	cli.Execute()
}
