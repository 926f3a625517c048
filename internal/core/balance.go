package core

// Balance sums transaction amounts starting from zero. With an empty
// account id every transaction counts; otherwise only matching records do.
// The displayed balance is always derived this way, never stored.
func Balance(txs []Transaction, account AccountID) Money {
	var total int64
	for _, t := range txs {
		if account != "" && t.Account != account {
			continue
		}
		total += t.Amount.Cents
	}
	return Money{Cents: total}
}
