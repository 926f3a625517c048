// Package kv abstracts the on-device key-value storage the ledger persists
// into. The ledger only ever uses a single key, read and written wholesale,
// so the interface stays deliberately small.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Store is a key-value blob store. Implementations must be safe for use
// from multiple goroutines; they do not provide cross-process locking, so
// concurrent writers race and the last write wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
