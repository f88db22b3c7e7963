package main

import (
	"context"
	"os"

	"NewsPublisher/internal/app"
	"NewsPublisher/internal/config"
	"NewsPublisher/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	application := app.New(cfg, logger)

	if err := application.Run(ctx); err != nil {
		logger.Error("run aborted", "error", err)
		os.Exit(1)
	}
}
