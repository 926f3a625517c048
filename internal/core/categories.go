package core

// Category is static lookup data, never persisted. Icon is purely
// presentational and gets copied onto transactions at write time.
type Category struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Icon string          `json:"icon"`
	Kind TransactionKind `json:"kind"`
}

var categories = []Category{
	{ID: "groceries", Name: "Groceries", Icon: "cart", Kind: Expense},
	{ID: "dining", Name: "Dining Out", Icon: "restaurant", Kind: Expense},
	{ID: "transport", Name: "Transport", Icon: "bus", Kind: Expense},
	{ID: "shopping", Name: "Shopping", Icon: "bag", Kind: Expense},
	{ID: "bills", Name: "Bills", Icon: "receipt", Kind: Expense},
	{ID: "entertainment", Name: "Entertainment", Icon: "film", Kind: Expense},
	{ID: "salary", Name: "Salary", Icon: "briefcase", Kind: Income},
	{ID: "gifts", Name: "Gifts", Icon: "gift", Kind: Income},
	{ID: "interest", Name: "Interest", Icon: "percent", Kind: Income},
	{ID: "refund", Name: "Refund", Icon: "rotate", Kind: Income},
}

// Categories returns the full static catalog.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoriesFor returns the catalog entries tagged with the given kind.
func CategoriesFor(kind TransactionKind) []Category {
	var out []Category
	for _, c := range categories {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// CategoryByID looks up a catalog entry regardless of kind.
func CategoryByID(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
