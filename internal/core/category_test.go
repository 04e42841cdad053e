package core

import "testing"

func TestCategoryValid(t *testing.T) {
	cases := []struct {
		c  Category
		ok bool
	}{
		{CategoryFood, true},
		{CategoryTransport, true},
		{CategoryEntertainment, true},
		{CategoryShopping, true},
		{CategoryBills, true},
		{CategoryHealthcare, true},
		{CategoryOther, true},
		{Category("Food"), false}, // case sensitive
		{Category("groceries"), false},
		{Category(""), false},
	}
	for i, tc := range cases {
		if got := tc.c.Valid(); got != tc.ok {
			t.Fatalf("case %d (%q): got %v, want %v", i, tc.c, got, tc.ok)
		}
	}
}

func TestCategoriesOrderAndMetadata(t *testing.T) {
	cats := Categories()
	if len(cats) != 7 {
		t.Fatalf("expected 7 categories, got %d", len(cats))
	}
	if cats[0] != CategoryFood || cats[6] != CategoryOther {
		t.Fatalf("unexpected order: %v", cats)
	}
	for _, c := range cats {
		info := c.Info()
		if info.Name == "" || info.Icon == "" || info.Color == "" {
			t.Fatalf("category %q missing metadata: %+v", c, info)
		}
	}

	// Mutating the returned slice must not leak into the canonical order.
	cats[0] = CategoryOther
	if Categories()[0] != CategoryFood {
		t.Fatal("Categories returned a shared slice")
	}
}

func TestUnknownCategoryInfoFallsBack(t *testing.T) {
	info := Category("mystery").Info()
	if info != CategoryOther.Info() {
		t.Fatalf("expected fallback to other, got %+v", info)
	}
}
