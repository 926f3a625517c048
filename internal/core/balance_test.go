package core

import "testing"

func sampleTxs() []Transaction {
	return []Transaction{
		{ID: 1, Merchant: "Payroll", Amount: Money{Cents: 250000}, Account: Chequing},
		{ID: 2, Merchant: "Groceries", Amount: Money{Cents: -8245}, Account: Chequing},
		{ID: 3, Merchant: "Interest", Amount: Money{Cents: 312}, Account: Savings},
		{ID: 4, Merchant: "Gift", Amount: Money{Cents: 5000}, Account: Savings},
	}
}

func TestBalanceAllAccounts(t *testing.T) {
	got := Balance(sampleTxs(), "")
	want := int64(250000 - 8245 + 312 + 5000)
	if got.Cents != want {
		t.Fatalf("expected %d, got %d", want, got.Cents)
	}
}

func TestBalancePerAccount(t *testing.T) {
	cases := []struct {
		account AccountID
		want    int64
	}{
		{Chequing, 250000 - 8245},
		{Savings, 312 + 5000},
		{"unknown", 0},
	}
	for _, tc := range cases {
		if got := Balance(sampleTxs(), tc.account); got.Cents != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.account, tc.want, got.Cents)
		}
	}
}

func TestBalanceEmptyCollection(t *testing.T) {
	if got := Balance(nil, Chequing); got.Cents != 0 {
		t.Fatalf("expected zero balance, got %d", got.Cents)
	}
}

func TestTransactionKindFromSign(t *testing.T) {
	if (Transaction{Amount: Money{Cents: -1}}).Kind() != Expense {
		t.Fatalf("negative amount should be expense")
	}
	if (Transaction{Amount: Money{Cents: 1}}).Kind() != Income {
		t.Fatalf("positive amount should be income")
	}
}
