package backend

import (
	"context"
	"testing"

	"pocketbook/internal/config"
)

func TestCreateStoreMemoryAndFile(t *testing.T) {
	factory := NewFactory(nil)
	ctx := context.Background()

	mem, err := factory.CreateStore(ctx, Config{Type: MemoryBackend})
	if err != nil || mem.Store == nil {
		t.Fatalf("memory backend: %v", err)
	}
	defer mem.Cleanup()

	f, err := factory.CreateStore(ctx, Config{Type: FileBackend, DataDir: t.TempDir()})
	if err != nil || f.Store == nil {
		t.Fatalf("file backend: %v", err)
	}
	defer f.Cleanup()
}

func TestCreateStoreRejectsInvalidType(t *testing.T) {
	factory := NewFactory(nil)
	if _, err := factory.CreateStore(context.Background(), Config{Type: "cloud"}); err == nil {
		t.Fatalf("expected error for invalid backend type")
	}
}

func TestFromAppConfig(t *testing.T) {
	appCfg := &config.Config{
		StorageBackend: "sqlite",
		DataDir:        "./d",
		SQLiteDBPath:   "./d/x.db",
		RedisAddr:      "localhost:6379",
		RedisDB:        3,
	}
	cfg, err := FromAppConfig(appCfg)
	if err != nil {
		t.Fatalf("from app config: %v", err)
	}
	if cfg.Type != SQLiteBackend || cfg.SQLiteDBPath != "./d/x.db" || cfg.RedisDB != 3 {
		t.Fatalf("unexpected mapping: %+v", cfg)
	}

	if _, err := FromAppConfig(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}

	appCfg.StorageBackend = "cloud"
	if _, err := FromAppConfig(appCfg); err == nil {
		t.Fatalf("expected error for invalid backend")
	}
}
