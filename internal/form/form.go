// Package form reproduces the add/edit transaction form: a two-state
// expense/income toggle, category filtering, ordered validation and the
// sign convention applied at submit time.
package form

import (
	"context"
	"strings"
	"time"

	"pocketbook/internal/core"
	"pocketbook/internal/ledger"
)

// Form holds the editable state of one add or edit interaction.
// Amount carries the raw user-entered string; it is only parsed on submit.
type Form struct {
	Kind       core.TransactionKind
	Merchant   string
	Amount     string
	CategoryID string
	Account    core.AccountID

	existing *core.Transaction
}

// NewAdd returns a blank form in the expense state, the default when the
// add screen opens.
func NewAdd(account core.AccountID) *Form {
	return &Form{Kind: core.Expense, Account: account}
}

// NewEdit returns a form prefilled from an existing record. The kind comes
// from the stored sign, the amount from its magnitude.
func NewEdit(t core.Transaction) *Form {
	f := &Form{
		Kind:     t.Kind(),
		Merchant: t.Merchant,
		Amount:   t.Amount.Abs().String(),
		Account:  t.Account,
		existing: &t,
	}
	if c, ok := categoryByIcon(t.Icon); ok {
		f.CategoryID = c.ID
	}
	return f
}

// SetKind switches the toggle between the two steady states. The category
// selection is intentionally left alone even when it no longer appears in
// the filtered list; submit only checks that some catalog entry is chosen.
func (f *Form) SetKind(kind core.TransactionKind) {
	if !kind.IsValid() {
		return
	}
	f.Kind = kind
}

// Categories returns the catalog entries offered in the current state.
func (f *Form) Categories() []core.Category {
	return core.CategoriesFor(f.Kind)
}

// Editing reports whether the form updates an existing record.
func (f *Form) Editing() bool {
	return f.existing != nil
}

// Build validates the form and constructs the record it describes.
// Checks run in a fixed order and the first failure wins: merchant, then
// amount, then category. The stored amount is signed here; for edits the
// id and the date snapshot are carried over unchanged.
func (f *Form) Build(now time.Time) (core.Transaction, error) {
	if len(strings.TrimSpace(f.Merchant)) == 0 {
		return core.Transaction{}, core.ErrEmptyMerchant
	}
	cents, err := core.ParseDecimalToCents(f.Amount)
	if err != nil {
		return core.Transaction{}, err
	}
	cat, ok := core.CategoryByID(f.CategoryID)
	if !ok {
		return core.Transaction{}, core.ErrNoCategory
	}

	amount := core.Money{Cents: cents}
	if f.Kind == core.Expense {
		amount = amount.Negated()
	}

	t := core.Transaction{
		Merchant: strings.TrimSpace(f.Merchant),
		Amount:   amount,
		Icon:     cat.Icon,
		Account:  f.Account,
	}
	if f.existing != nil {
		t.ID = f.existing.ID
		t.Date = f.existing.Date
		if t.Account == "" {
			t.Account = f.existing.Account
		}
	} else {
		t.ID = core.NewTransactionID(now)
		t.Date = now.Format(core.DateLayout)
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	return t, nil
}

// Submit builds the record and delegates to the store: Add for new records,
// Update for edits. Validation failures never touch the store.
func (f *Form) Submit(ctx context.Context, store *ledger.Store) ([]core.Transaction, core.Transaction, error) {
	t, err := f.Build(time.Now())
	if err != nil {
		return nil, core.Transaction{}, err
	}
	var txs []core.Transaction
	if f.Editing() {
		txs, err = store.Update(ctx, t)
	} else {
		txs, err = store.Add(ctx, t)
	}
	return txs, t, err
}

func categoryByIcon(icon string) (core.Category, bool) {
	for _, c := range core.Categories() {
		if c.Icon == icon {
			return c, true
		}
	}
	return core.Category{}, false
}
