package main

import (
	"CatalogEngine/internal/cli"
	"CatalogEngine/internal/shared/config"
	"CatalogEngine/internal/shared/logger"
	"context"
	"fmt"
	"os"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize Logger
	baseLogger, err := logger.New(os.Stderr, cfg.DevMode(), cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	baseLogger.Debug().
		Str("app_env", cfg.AppEnv).
		Bool("debug", cfg.Debug).
		Msg("Configuration loaded")

	// 3. Run the command line
	root := cli.NewRootCommand(cfg, &baseLogger)
	if err := root.ExecuteContext(context.Background()); err != nil {
		baseLogger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
