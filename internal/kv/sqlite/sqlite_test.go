package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"pocketbook/internal/kv"
)

func TestRoundTripAndReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "pocketbook.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := s.Get(ctx, "transactions"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Put(ctx, "transactions", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(ctx, "transactions", []byte(`[]`)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := s.Get(ctx, "transactions")
	if err != nil || string(got) != `[]` {
		t.Fatalf("get: %q err=%v", got, err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Values survive a reopen; migrations are idempotent.
	s2, err := New(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	got, err = s2.Get(ctx, "transactions")
	if err != nil || string(got) != `[]` {
		t.Fatalf("get after reopen: %q err=%v", got, err)
	}

	if err := s2.Delete(ctx, "transactions"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s2.Get(ctx, "transactions"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
