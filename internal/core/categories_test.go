package core

import "testing"

func TestCategoriesForFiltersByKind(t *testing.T) {
	for _, kind := range []TransactionKind{Expense, Income} {
		cats := CategoriesFor(kind)
		if len(cats) == 0 {
			t.Fatalf("expected categories for %s", kind)
		}
		for _, c := range cats {
			if c.Kind != kind {
				t.Fatalf("category %s leaked into %s list", c.ID, kind)
			}
		}
	}
}

func TestCategoryByID(t *testing.T) {
	c, ok := CategoryByID("groceries")
	if !ok || c.Icon != "cart" || c.Kind != Expense {
		t.Fatalf("unexpected groceries lookup: %+v ok=%v", c, ok)
	}
	if _, ok := CategoryByID("nope"); ok {
		t.Fatalf("expected lookup miss")
	}
}

func TestAccountByID(t *testing.T) {
	a, ok := AccountByID(Chequing)
	if !ok || a.Currency == "" {
		t.Fatalf("unexpected chequing lookup: %+v ok=%v", a, ok)
	}
	if _, ok := AccountByID("wallet"); ok {
		t.Fatalf("expected lookup miss")
	}
}
