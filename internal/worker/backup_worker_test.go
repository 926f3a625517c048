package worker

import (
	"context"
	"errors"
	"testing"

	"pocketbook/internal/events"
	"pocketbook/internal/kv"
	kvmem "pocketbook/internal/kv/memory"
	"pocketbook/internal/ledger"
)

func TestCopyBlobWithoutSourceIsNoop(t *testing.T) {
	ctx := context.Background()
	primary := kvmem.New()
	backup := kvmem.New()
	w := NewBackupWorker(primary, backup)

	if err := w.CopyBlob(ctx); err != nil {
		t.Fatalf("copy on empty primary: %v", err)
	}
	if _, err := backup.Get(ctx, ledger.StorageKey); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("backup should remain empty, got err=%v", err)
	}
}

func TestCopyBlobMirrorsPrimary(t *testing.T) {
	ctx := context.Background()
	primary := kvmem.New()
	backup := kvmem.New()
	if err := primary.Put(ctx, ledger.StorageKey, []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("seed primary: %v", err)
	}

	w := NewBackupWorker(primary, backup)
	if err := w.CopyBlob(ctx); err != nil {
		t.Fatalf("copy: %v", err)
	}

	got, err := backup.Get(ctx, ledger.StorageKey)
	if err != nil || string(got) != `[{"id":1}]` {
		t.Fatalf("backup blob: %q err=%v", got, err)
	}
}

func TestHandleChangeMessageCopies(t *testing.T) {
	ctx := context.Background()
	primary := kvmem.New()
	backup := kvmem.New()
	if err := primary.Put(ctx, ledger.StorageKey, []byte(`[]`)); err != nil {
		t.Fatalf("seed primary: %v", err)
	}

	w := NewBackupWorker(primary, backup)
	msg := events.NewLedgerChangeMessage(events.OpAdd, 42)
	if err := w.HandleChangeMessage(ctx, msg); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if _, err := backup.Get(ctx, ledger.StorageKey); err != nil {
		t.Fatalf("backup missing after change message: %v", err)
	}
}
