package backend

import (
	"context"
	"fmt"
	"log/slog"

	"pocketbook/internal/config"
	kvfile "pocketbook/internal/kv/file"
	kvmem "pocketbook/internal/kv/memory"
	kvredis "pocketbook/internal/kv/redis"
	kvsqlite "pocketbook/internal/kv/sqlite"
	applog "pocketbook/internal/log"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new store factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateStore implements Factory.CreateStore
func (f *DefaultFactory) CreateStore(ctx context.Context, cfg Config) (*Result, error) {
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid storage backend: %s", cfg.Type)
	}

	switch cfg.Type {
	case MemoryBackend:
		store := kvmem.New()
		f.logger.Info("Initialized memory storage backend",
			applog.FieldBackend, MemoryBackend.String(),
			applog.FieldComponent, applog.ComponentKV)
		return &Result{Store: store, Cleanup: store.Close}, nil

	case FileBackend:
		store, err := kvfile.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initialize file storage: %w", err)
		}
		f.logger.Info("Initialized file storage backend",
			applog.FieldBackend, FileBackend.String(),
			applog.FieldComponent, applog.ComponentKV,
			"data_dir", cfg.DataDir)
		return &Result{Store: store, Cleanup: store.Close}, nil

	case SQLiteBackend:
		store, err := kvsqlite.New(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite storage: %w", err)
		}
		f.logger.Info("Initialized sqlite storage backend",
			applog.FieldBackend, SQLiteBackend.String(),
			applog.FieldComponent, applog.ComponentKV,
			"db_path", cfg.SQLiteDBPath)
		return &Result{Store: store, Cleanup: store.Close}, nil

	case RedisBackend:
		store, err := kvredis.New(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("initialize redis storage: %w", err)
		}
		f.logger.Info("Initialized redis storage backend",
			applog.FieldBackend, RedisBackend.String(),
			applog.FieldComponent, applog.ComponentKV,
			"addr", cfg.RedisAddr, "db", cfg.RedisDB)
		return &Result{Store: store, Cleanup: store.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Type)
	}
}

// FromAppConfig converts the application config to backend config
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	storageType := StorageType(appConfig.StorageBackend)
	if !storageType.IsValid() {
		return Config{}, fmt.Errorf("invalid storage backend in config: %s", appConfig.StorageBackend)
	}

	return Config{
		Type:          storageType,
		DataDir:       appConfig.DataDir,
		SQLiteDBPath:  appConfig.SQLiteDBPath,
		RedisAddr:     appConfig.RedisAddr,
		RedisPassword: appConfig.RedisPassword,
		RedisDB:       appConfig.RedisDB,
	}, nil
}
