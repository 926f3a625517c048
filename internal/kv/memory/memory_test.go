package memory

import (
	"context"
	"errors"
	"testing"

	"pocketbook/internal/kv"
)

func TestGetMissingKey(t *testing.T) {
	s := New()
	if _, err := s.Get(context.Background(), "transactions"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := New()

	if err := s.Put(ctx, "transactions", []byte(`[]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := s.Get(ctx, "transactions")
	if err != nil || string(got) != `[]` {
		t.Fatalf("get: %q err=%v", got, err)
	}

	// Overwrite wholesale
	if err := s.Put(ctx, "transactions", []byte(`[1]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = s.Get(ctx, "transactions")
	if string(got) != `[1]` {
		t.Fatalf("overwrite not visible: %q", got)
	}

	if err := s.Delete(ctx, "transactions"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, "transactions"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New()
	_ = s.Put(ctx, "k", []byte("abc"))

	got, _ := s.Get(ctx, "k")
	got[0] = 'z'

	again, _ := s.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("stored value was mutated through returned slice")
	}
}
