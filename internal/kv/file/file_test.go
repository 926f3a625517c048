package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pocketbook/internal/kv"
)

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := s.Get(ctx, "transactions"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Put(ctx, "transactions", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := s.Get(ctx, "transactions")
	if err != nil || string(got) != `[{"id":1}]` {
		t.Fatalf("get: %q err=%v", got, err)
	}

	if err := s.Put(ctx, "transactions", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = s.Get(ctx, "transactions")
	if string(got) != `[]` {
		t.Fatalf("overwrite not visible: %q", got)
	}

	if err := s.Delete(ctx, "transactions"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, "transactions"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	// Deleting again is fine.
	if err := s.Delete(ctx, "transactions"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	if _, err := New(dir); err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("directory not created: %v", err)
	}
}

func TestPutLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Put(context.Background(), "transactions", []byte(`[]`)); err != nil {
		t.Fatalf("put: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "transactions.json" {
		t.Fatalf("unexpected directory contents: %v", entries)
	}
}
