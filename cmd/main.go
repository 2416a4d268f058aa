package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"invoicesim/config"
	"invoicesim/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		// Missing .env is the normal case.
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.Level(cfg.LogLevel),
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	if err := cli.Execute(ctx, logger, cfg); err != nil {
		logger.ErrorContext(ctx, "run failed", "error", err)
		os.Exit(1)
	}
}
