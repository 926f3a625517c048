package ledger

import "pocketbook/internal/core"

// seedTransactions is the fixed sample set a fresh (or unreadable) store
// answers with. Newest first, matching the insert-at-head ordering of Add.
var seedTransactions = []core.Transaction{
	{ID: 1756290000000, Merchant: "Roast House", Amount: core.Money{Cents: -475}, Date: "Aug 27, 2026", Icon: "restaurant", Account: core.Chequing},
	{ID: 1756117200000, Merchant: "Fresh Mart", Amount: core.Money{Cents: -8245}, Date: "Aug 25, 2026", Icon: "cart", Account: core.Chequing},
	{ID: 1755944400000, Merchant: "Metro Pass", Amount: core.Money{Cents: -12000}, Date: "Aug 23, 2026", Icon: "bus", Account: core.Chequing},
	{ID: 1755858000000, Merchant: "Birthday Gift", Amount: core.Money{Cents: 5000}, Date: "Aug 22, 2026", Icon: "gift", Account: core.Savings},
	{ID: 1755771600000, Merchant: "Monthly Interest", Amount: core.Money{Cents: 312}, Date: "Aug 21, 2026", Icon: "percent", Account: core.Savings},
	{ID: 1755685200000, Merchant: "Acme Corp Payroll", Amount: core.Money{Cents: 250000}, Date: "Aug 20, 2026", Icon: "briefcase", Account: core.Chequing},
}

// SeedTransactions returns a fresh copy of the sample set so callers can
// mutate their slice freely.
func SeedTransactions() []core.Transaction {
	out := make([]core.Transaction, len(seedTransactions))
	copy(out, seedTransactions)
	return out
}
