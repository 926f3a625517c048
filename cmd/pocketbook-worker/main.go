package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"pocketbook/internal/backend"
	"pocketbook/internal/config"
	"pocketbook/internal/events"
	kvsqlite "pocketbook/internal/kv/sqlite"
	applog "pocketbook/internal/log"
	"pocketbook/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Setup structured logging
	logger := applog.New(applog.Config{
		Level:     slog.LevelInfo,
		Component: applog.ComponentWorker,
	})
	applog.SetDefault(logger)

	logger.Info("Starting pocketbook-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed",
			applog.FieldError, err,
			applog.FieldOperation, applog.OpValidate)
		os.Exit(1)
	}

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid storage configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Primary store: same backend the server writes to.
	factory := backend.NewFactory(logger.Logger)
	primary, err := factory.CreateStore(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize primary storage",
			applog.FieldError, err,
			applog.FieldBackend, cfg.StorageBackend)
		os.Exit(1)
	}
	defer primary.Cleanup()

	// Backup target is always a local sqlite file.
	backup, err := kvsqlite.New(cfg.BackupDBPath)
	if err != nil {
		logger.Error("Failed to initialize backup storage", "error", err, "path", cfg.BackupDBPath)
		os.Exit(1)
	}
	defer backup.Close()

	backupWorker := worker.NewBackupWorker(primary.Store, backup)

	// Take a baseline copy before waiting for changes.
	if err := backupWorker.CopyBlob(ctx); err != nil {
		logger.Error("Startup backup failed", "error", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	// Change-event consumption needs a broker; without one we fall back to
	// the periodic copy alone.
	if cfg.AMQPURL != "" {
		amqpClient, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer amqpClient.Close()

		g.Go(func() error {
			return amqpClient.ConsumeLedgerChanges(gctx, backupWorker.HandleChangeMessage)
		})
	} else {
		logger.Info("No AMQP URL configured, relying on periodic backups only")
	}

	g.Go(func() error {
		return backupWorker.RunPeriodic(gctx, cfg.BackupInterval)
	})

	logger.Info("Backup worker running",
		applog.FieldOperation, applog.OpStartup,
		applog.FieldBackend, cfg.StorageBackend,
		"backup_path", cfg.BackupDBPath,
		"interval", cfg.BackupInterval,
		"amqp_enabled", cfg.AMQPURL != "")

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker shutdown complete")
}
