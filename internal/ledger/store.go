// Package ledger implements the transaction store: one JSON blob under a
// fixed key, read and rewritten wholesale on every mutation.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"pocketbook/internal/core"
	"pocketbook/internal/events"
	"pocketbook/internal/kv"
	applog "pocketbook/internal/log"
)

// StorageKey is the single key the transaction collection lives under.
const StorageKey = "transactions"

// ChangePublisher is the optional notification hook fired after each
// successful write. events.Client satisfies it.
type ChangePublisher interface {
	PublishLedgerChange(ctx context.Context, op string, id int64) error
}

// Store persists the transaction collection. Every mutation is read-full,
// mutate-in-memory, write-full; there is no partial update and no version
// check, so the last writer wins.
type Store struct {
	kv        kv.Store
	publisher ChangePublisher
}

func New(store kv.Store, publisher ChangePublisher) *Store {
	return &Store{kv: store, publisher: publisher}
}

// Load returns the persisted collection. A missing key seeds the store with
// the default sample set and persists it. Read and parse failures are
// logged and answered with the unpersisted sample set instead; by contract
// they never propagate to the caller.
func (s *Store) Load(ctx context.Context) []core.Transaction {
	data, err := s.kv.Get(ctx, StorageKey)
	if errors.Is(err, kv.ErrNotFound) {
		seed := SeedTransactions()
		if err := s.Save(ctx, seed); err != nil {
			slog.ErrorContext(ctx, "Failed to persist seed transactions",
				applog.FieldError, err,
				applog.FieldComponent, applog.ComponentLedger,
				applog.FieldOperation, applog.OpSave)
		}
		return seed
	}
	if err != nil {
		slog.ErrorContext(ctx, "Failed to read transaction blob, falling back to sample data",
			applog.FieldError, err,
			applog.FieldStorageKey, StorageKey,
			applog.FieldComponent, applog.ComponentLedger,
			applog.FieldOperation, applog.OpLoad)
		return SeedTransactions()
	}

	var txs []core.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		slog.ErrorContext(ctx, "Failed to parse transaction blob, falling back to sample data",
			applog.FieldError, err,
			applog.FieldStorageKey, StorageKey,
			applog.FieldComponent, applog.ComponentLedger,
			applog.FieldOperation, applog.OpLoad)
		return SeedTransactions()
	}
	return txs
}

// Save overwrites the persisted collection wholesale.
func (s *Store) Save(ctx context.Context, txs []core.Transaction) error {
	data, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("marshal transactions: %w", err)
	}
	if err := s.kv.Put(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("write transactions: %w", err)
	}
	return nil
}

// Add prepends the record so new transactions sort first. The returned
// collection reflects the mutation even when persisting failed, so callers
// can keep presenting the in-memory state.
func (s *Store) Add(ctx context.Context, t core.Transaction) ([]core.Transaction, error) {
	txs := s.Load(ctx)
	txs = append([]core.Transaction{t}, txs...)
	if err := s.Save(ctx, txs); err != nil {
		return txs, err
	}
	s.publish(ctx, events.OpAdd, t.ID)
	return txs, nil
}

// Update replaces the record whose id matches, leaving every other record
// untouched. An unknown id leaves the collection as it was.
func (s *Store) Update(ctx context.Context, t core.Transaction) ([]core.Transaction, error) {
	txs := s.Load(ctx)
	for i := range txs {
		if txs[i].ID == t.ID {
			txs[i] = t
			break
		}
	}
	if err := s.Save(ctx, txs); err != nil {
		return txs, err
	}
	s.publish(ctx, events.OpUpdate, t.ID)
	return txs, nil
}

// Remove drops the record with the given id; an absent id is a no-op on
// the collection contents.
func (s *Store) Remove(ctx context.Context, id int64) ([]core.Transaction, error) {
	txs := s.Load(ctx)
	out := txs[:0:0]
	for _, t := range txs {
		if t.ID != id {
			out = append(out, t)
		}
	}
	if err := s.Save(ctx, out); err != nil {
		return out, err
	}
	s.publish(ctx, events.OpRemove, id)
	return out, nil
}

// publish fires the change notification. The write already succeeded, so a
// broker failure must not fail the operation; it is logged and swallowed.
func (s *Store) publish(ctx context.Context, op string, id int64) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishLedgerChange(ctx, op, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish ledger change",
			applog.FieldError, err,
			applog.FieldOperation, op,
			applog.FieldTransactionID, id,
			applog.FieldComponent, applog.ComponentLedger)
	}
}
