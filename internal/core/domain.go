package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Expense TransactionKind = "expense"
	Income  TransactionKind = "income"
)

type (
	// TransactionKind selects the sign convention applied to user-entered
	// amounts: expenses are stored negative, income positive.
	TransactionKind string

	// AccountID references one of the fixed accounts.
	AccountID string

	// Transaction is the only persisted entity. Date is a display snapshot
	// taken at creation time and never changes, even through edits.
	Transaction struct {
		ID       int64     `json:"id"`
		Merchant string    `json:"merchant"`
		Amount   Money     `json:"amount_cents"`
		Date     string    `json:"date"`
		Icon     string    `json:"icon"`
		Account  AccountID `json:"account_id,omitempty"`
	}

	// Account is a named bucket with a currency. Balance is never stored;
	// it is always recomputed from the transaction collection.
	Account struct {
		ID       AccountID `json:"id"`
		Name     string    `json:"name"`
		Currency string    `json:"currency"`
	}
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrEmptyMerchant  = errors.New("empty merchant")
	ErrNoCategory     = errors.New("no category selected")
	ErrUnknownAccount = errors.New("unknown account")
)

// DateLayout is the display format snapshotted into Transaction.Date.
const DateLayout = "Jan 2, 2006"

// NewTransactionID assigns ids as millisecond timestamps; later
// transactions always get larger ids.
func NewTransactionID(now time.Time) int64 {
	return now.UnixMilli()
}

func (k TransactionKind) IsValid() bool {
	return k == Expense || k == Income
}

func (t Transaction) Validate() error {
	if len(strings.TrimSpace(t.Merchant)) == 0 {
		return ErrEmptyMerchant
	}
	if t.Amount.Cents == 0 {
		return ErrInvalidAmount
	}
	if t.Account != "" {
		if _, ok := AccountByID(t.Account); !ok {
			return ErrUnknownAccount
		}
	}
	return nil
}

// Kind derives the transaction kind from the stored sign.
func (t Transaction) Kind() TransactionKind {
	if t.Amount.Cents < 0 {
		return Expense
	}
	return Income
}
