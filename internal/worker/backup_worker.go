// Package worker mirrors the transaction blob into a secondary store so a
// corrupted or lost primary can be recovered by hand.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pocketbook/internal/events"
	"pocketbook/internal/kv"
	"pocketbook/internal/ledger"
	applog "pocketbook/internal/log"
)

// BackupWorker copies the ledger blob from the primary store into the
// backup store, either on change notifications or on a timer.
type BackupWorker struct {
	primary kv.Store
	backup  kv.Store
}

func NewBackupWorker(primary, backup kv.Store) *BackupWorker {
	return &BackupWorker{primary: primary, backup: backup}
}

// HandleChangeMessage reacts to a single ledger change by mirroring the
// whole blob; messages only announce that something changed.
func (w *BackupWorker) HandleChangeMessage(ctx context.Context, msg *events.LedgerChangeMessage) error {
	slog.InfoContext(ctx, "Processing ledger change",
		applog.FieldOperation, msg.Op,
		applog.FieldTransactionID, msg.ID,
		applog.FieldComponent, applog.ComponentWorker)
	return w.CopyBlob(ctx)
}

// CopyBlob mirrors the transactions key wholesale. A primary without the
// key yet is not an error; there is simply nothing to back up.
func (w *BackupWorker) CopyBlob(ctx context.Context) error {
	data, err := w.primary.Get(ctx, ledger.StorageKey)
	if errors.Is(err, kv.ErrNotFound) {
		slog.DebugContext(ctx, "No transaction blob to back up yet")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read primary blob: %w", err)
	}

	if err := w.backup.Put(ctx, ledger.StorageKey, data); err != nil {
		return fmt.Errorf("write backup blob: %w", err)
	}

	slog.InfoContext(ctx, "Backed up transaction blob",
		applog.FieldStorageKey, ledger.StorageKey,
		applog.FieldOperation, applog.OpBackup,
		applog.FieldComponent, applog.ComponentWorker,
		"bytes", len(data))
	return nil
}

// RunPeriodic mirrors the blob on a fixed interval until the context is
// cancelled, catching changes whose notifications were missed.
func (w *BackupWorker) RunPeriodic(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.CopyBlob(ctx); err != nil {
				slog.ErrorContext(ctx, "Periodic backup failed",
					applog.FieldError, err,
					applog.FieldOperation, applog.OpBackup,
					applog.FieldComponent, applog.ComponentWorker)
			}
		}
	}
}
