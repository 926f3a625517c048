package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"pocketbook/internal/core"
	kvmem "pocketbook/internal/kv/memory"
)

// failingPut wraps a working store but refuses writes.
type failingPut struct {
	*kvmem.Store
}

func (f failingPut) Put(ctx context.Context, key string, value []byte) error {
	return errors.New("disk full")
}

// recordingPublisher captures published change events.
type recordingPublisher struct {
	ops []string
	ids []int64
}

func (p *recordingPublisher) PublishLedgerChange(_ context.Context, op string, id int64) error {
	p.ops = append(p.ops, op)
	p.ids = append(p.ids, id)
	return nil
}

func newTx(id int64, merchant string, cents int64, account core.AccountID) core.Transaction {
	return core.Transaction{
		ID:       id,
		Merchant: merchant,
		Amount:   core.Money{Cents: cents},
		Date:     "Aug 29, 2026",
		Icon:     "cart",
		Account:  account,
	}
}

func TestLoadSeedsEmptyStoreAndPersists(t *testing.T) {
	ctx := context.Background()
	mem := kvmem.New()
	s := New(mem, nil)

	txs := s.Load(ctx)
	if len(txs) != len(seedTransactions) {
		t.Fatalf("expected %d seed transactions, got %d", len(seedTransactions), len(txs))
	}

	// The seed must have been written under the storage key.
	data, err := mem.Get(ctx, StorageKey)
	if err != nil {
		t.Fatalf("seed was not persisted: %v", err)
	}
	var persisted []core.Transaction
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("persisted blob not parseable: %v", err)
	}
	if !reflect.DeepEqual(persisted, txs) {
		t.Fatalf("persisted seed differs from returned seed")
	}

	// Second load reads the persisted copy, not a fresh seed.
	again := s.Load(ctx)
	if !reflect.DeepEqual(again, txs) {
		t.Fatalf("second load differs from first")
	}
}

func TestLoadFallsBackOnCorruptBlob(t *testing.T) {
	ctx := context.Background()
	mem := kvmem.New()
	if err := mem.Put(ctx, StorageKey, []byte("{not json")); err != nil {
		t.Fatalf("put: %v", err)
	}
	s := New(mem, nil)

	txs := s.Load(ctx)
	if len(txs) != len(seedTransactions) {
		t.Fatalf("expected sample fallback, got %d transactions", len(txs))
	}

	// Fail-open must not overwrite whatever is stored.
	data, err := mem.Get(ctx, StorageKey)
	if err != nil || string(data) != "{not json" {
		t.Fatalf("corrupt blob was replaced: %q err=%v", data, err)
	}
}

func TestAddPrependsAndPreservesOrder(t *testing.T) {
	ctx := context.Background()
	s := New(kvmem.New(), nil)

	before := s.Load(ctx)
	added := newTx(9999999999999, "Bookstore", -1999, core.Chequing)
	after, err := s.Add(ctx, added)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if after[0].ID != added.ID {
		t.Fatalf("new transaction not first: got id %d", after[0].ID)
	}
	if !reflect.DeepEqual(after[1:], before) {
		t.Fatalf("existing transactions were reordered or changed")
	}

	reloaded := s.Load(ctx)
	if !reflect.DeepEqual(reloaded, after) {
		t.Fatalf("persisted collection differs from returned collection")
	}
}

func TestUpdateChangesOnlyMatchingRecord(t *testing.T) {
	ctx := context.Background()
	s := New(kvmem.New(), nil)

	before := s.Load(ctx)
	target := before[2]
	changed := target
	changed.Merchant = "Renamed"
	changed.Amount = core.Money{Cents: -1}

	after, err := s.Update(ctx, changed)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	for i := range after {
		if after[i].ID == target.ID {
			if !reflect.DeepEqual(after[i], changed) {
				t.Fatalf("target record not replaced: %+v", after[i])
			}
			continue
		}
		if !reflect.DeepEqual(after[i], before[i]) {
			t.Fatalf("record %d changed unexpectedly", after[i].ID)
		}
	}
}

func TestUpdateUnknownIDLeavesCollectionAlone(t *testing.T) {
	ctx := context.Background()
	s := New(kvmem.New(), nil)

	before := s.Load(ctx)
	after, err := s.Update(ctx, newTx(424242, "Ghost", -100, core.Chequing))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !reflect.DeepEqual(after, before) {
		t.Fatalf("collection changed for unknown id")
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	s := New(kvmem.New(), nil)

	before := s.Load(ctx)
	victim := before[1].ID

	after, err := s.Remove(ctx, victim)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(after) != len(before)-1 {
		t.Fatalf("expected %d transactions, got %d", len(before)-1, len(after))
	}
	for _, tx := range after {
		if tx.ID == victim {
			t.Fatalf("removed id still present")
		}
	}

	// Removing an absent id leaves the size unchanged.
	again, err := s.Remove(ctx, 123456789)
	if err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if len(again) != len(after) {
		t.Fatalf("remove of absent id changed size: %d != %d", len(again), len(after))
	}
}

func TestMutationReturnsInMemoryStateOnWriteFailure(t *testing.T) {
	ctx := context.Background()
	mem := kvmem.New()
	s := New(mem, nil)
	seeded := s.Load(ctx)

	// Swap in a store that refuses writes but still reads the seeded blob.
	broken := New(failingPut{mem}, nil)
	added := newTx(8888888888888, "Bookstore", -1999, core.Savings)
	after, err := broken.Add(ctx, added)
	if err == nil {
		t.Fatalf("expected write error")
	}
	if len(after) != len(seeded)+1 || after[0].ID != added.ID {
		t.Fatalf("in-memory state missing the mutation")
	}

	// The persisted copy must be untouched.
	persisted := s.Load(ctx)
	if len(persisted) != len(seeded) {
		t.Fatalf("failed write still reached storage")
	}
}

func TestMutationsPublishChangeEvents(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	s := New(kvmem.New(), pub)

	added := newTx(7777777777777, "Bookstore", -1999, core.Chequing)
	if _, err := s.Add(ctx, added); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.Remove(ctx, added.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	wantOps := []string{"add", "remove"}
	if !reflect.DeepEqual(pub.ops, wantOps) {
		t.Fatalf("expected ops %v, got %v", wantOps, pub.ops)
	}
	if pub.ids[0] != added.ID || pub.ids[1] != added.ID {
		t.Fatalf("unexpected event ids: %v", pub.ids)
	}
}

func TestSeedTransactionsReturnsCopy(t *testing.T) {
	a := SeedTransactions()
	a[0].Merchant = "Mutated"
	b := SeedTransactions()
	if b[0].Merchant == "Mutated" {
		t.Fatalf("seed slice is shared")
	}
}
