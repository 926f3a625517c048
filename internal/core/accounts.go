package core

const (
	Chequing AccountID = "chequing"
	Savings  AccountID = "savings"
)

// The account set is fixed; there is no account management surface.
var accounts = []Account{
	{ID: Chequing, Name: "Chequing", Currency: "CAD"},
	{ID: Savings, Name: "Savings", Currency: "CAD"},
}

// Accounts returns the fixed account list.
func Accounts() []Account {
	out := make([]Account, len(accounts))
	copy(out, accounts)
	return out
}

// AccountByID looks up a fixed account.
func AccountByID(id AccountID) (Account, bool) {
	for _, a := range accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}
