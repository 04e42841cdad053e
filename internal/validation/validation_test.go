package validation

import (
	"strings"
	"testing"
)

func TestValidateBudget(t *testing.T) {
	cases := []struct {
		raw   string
		valid bool
		err   string
	}{
		{"0.01", true, ""},
		{"500", true, ""},
		{"999999", true, ""},
		{" 42.50 ", true, ""},
		{"0", false, "Budget must be at least 0.01"},
		{"0.009", false, "Budget must be at least 0.01"},
		{"-5", false, "Budget must be at least 0.01"},
		{"999999.01", false, "Budget exceeds maximum"},
		{"1000000", false, "Budget exceeds maximum"},
		{"", false, "Budget must be a number"},
		{"abc", false, "Budget must be a number"},
		{"12,50", false, "Budget must be a number"},
		{"NaN", false, "Budget must be a number"},
		{"Inf", false, "Budget must be a number"},
	}
	for i, tc := range cases {
		got := ValidateBudget(tc.raw)
		if got.Valid != tc.valid {
			t.Fatalf("case %d (%q): valid=%v, want %v", i, tc.raw, got.Valid, tc.valid)
		}
		if got.Error != tc.err {
			t.Fatalf("case %d (%q): error=%q, want %q", i, tc.raw, got.Error, tc.err)
		}
		if got.Valid && got.Error != "" {
			t.Fatalf("case %d: error populated on success", i)
		}
	}
}

func TestValidateExpenseTitle(t *testing.T) {
	cases := []struct {
		title string
		ok    bool
	}{
		{"Coffee", true},
		{" a ", true},
		{strings.Repeat("x", 255), true},
		// Length is counted in characters, not bytes.
		{strings.Repeat("é", 200), true},
		{strings.Repeat("é", 255), true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
		{strings.Repeat("x", 256), false},
		{strings.Repeat("é", 256), false},
	}
	for i, tc := range cases {
		if got := ValidateExpenseTitle(tc.title); got != tc.ok {
			t.Fatalf("case %d: got %v, want %v", i, got, tc.ok)
		}
	}
}

func TestValidateExpenseAmount(t *testing.T) {
	cases := []struct {
		amount float64
		ok     bool
	}{
		{0.01, true},
		{10, true},
		{100000, true},
		{0, false},
		{0.005, false},
		{-1, false},
		{100000.01, false},
	}
	for i, tc := range cases {
		if got := ValidateExpenseAmount(tc.amount); got != tc.ok {
			t.Fatalf("case %d (%v): got %v, want %v", i, tc.amount, got, tc.ok)
		}
	}
}

func TestParseExpenseAmount(t *testing.T) {
	if n, ok := ParseExpenseAmount(" 12.50 "); !ok || n != 12.5 {
		t.Fatalf("expected 12.5 ok, got %v %v", n, ok)
	}
	for _, raw := range []string{"", "abc", "0", "100001"} {
		if _, ok := ParseExpenseAmount(raw); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestValidateCategory(t *testing.T) {
	for _, c := range []string{"food", "transport", "entertainment", "shopping", "bills", "healthcare", "other"} {
		if !ValidateCategory(c) {
			t.Fatalf("expected %q to be valid", c)
		}
	}
	for _, c := range []string{"", "Food", "FOOD", "groceries", "food "} {
		if ValidateCategory(c) {
			t.Fatalf("expected %q to be invalid", c)
		}
	}
}
