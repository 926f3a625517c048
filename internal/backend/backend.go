// Package backend selects and constructs the key-value store the ledger
// persists into, based on application configuration.
package backend

import (
	"context"

	"pocketbook/internal/kv"
)

// StorageType represents the configured storage backend.
type StorageType string

const (
	MemoryBackend StorageType = "memory"
	FileBackend   StorageType = "file"
	SQLiteBackend StorageType = "sqlite"
	RedisBackend  StorageType = "redis"
)

// String implements fmt.Stringer
func (st StorageType) String() string {
	return string(st)
}

// IsValid returns true if the storage type is valid
func (st StorageType) IsValid() bool {
	switch st {
	case MemoryBackend, FileBackend, SQLiteBackend, RedisBackend:
		return true
	default:
		return false
	}
}

// Config holds configuration for store creation
type Config struct {
	Type StorageType

	// File specific
	DataDir string

	// SQLite specific
	SQLiteDBPath string

	// Redis specific
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// CleanupFunc releases resources held by a store.
type CleanupFunc func() error

// Result contains the store instance and its cleanup function.
type Result struct {
	Store   kv.Store
	Cleanup CleanupFunc
}

// Factory creates stores based on configuration
type Factory interface {
	CreateStore(ctx context.Context, config Config) (*Result, error)
}

// StorageTypes returns all valid storage types
func StorageTypes() []StorageType {
	return []StorageType{MemoryBackend, FileBackend, SQLiteBackend, RedisBackend}
}
