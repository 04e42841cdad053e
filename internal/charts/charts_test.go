package charts

import (
	"testing"
	"time"

	"uniwallet/internal/core"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) // a Sunday

func TestServiceTypeSelection(t *testing.T) {
	s := NewService()
	if s.Type() != TypeCategory {
		t.Fatalf("default type must be category, got %q", s.Type())
	}
	s.SetType(TypeDaily)
	if s.Type() != TypeDaily {
		t.Fatalf("type not switched: %q", s.Type())
	}
	s.SetType("pie")
	if s.Type() != TypeDaily {
		t.Fatalf("unknown type must be ignored, got %q", s.Type())
	}
}

func TestCategorySeries(t *testing.T) {
	expenses := []core.Expense{
		{Title: "Bus", Amount: 10, Category: core.CategoryTransport, Date: testNow},
		{Title: "Groceries", Amount: 25, Category: core.CategoryFood, Date: testNow},
		{Title: "Snacks", Amount: 5, Category: core.CategoryFood, Date: testNow},
	}
	s := CategorySeries(expenses)
	if s.Kind != "doughnut" {
		t.Fatalf("unexpected kind %q", s.Kind)
	}
	// Canonical order: food before transport.
	if len(s.Labels) != 2 || s.Labels[0] != "Food & Dining" || s.Labels[1] != "Transport" {
		t.Fatalf("unexpected labels %v", s.Labels)
	}
	if s.Values[0] != 30 || s.Values[1] != 10 {
		t.Fatalf("unexpected values %v", s.Values)
	}
	if s.Colors[0] != core.CategoryFood.Info().Color {
		t.Fatalf("unexpected colors %v", s.Colors)
	}
}

func TestCategorySeriesEmpty(t *testing.T) {
	s := CategorySeries(nil)
	if len(s.Labels) != 0 || len(s.Values) != 0 {
		t.Fatalf("expected empty series, got %+v", s)
	}
}

func TestDailySeriesCoversSevenZeroFilledDays(t *testing.T) {
	day := func(d int, amount float64) core.Expense {
		return core.Expense{
			Title:    "x",
			Amount:   amount,
			Category: core.CategoryOther,
			Date:     time.Date(2025, 6, d, 9, 30, 0, 0, time.UTC),
		}
	}
	expenses := []core.Expense{
		day(15, 12), // today
		day(13, 3),
		day(13, 4),  // same day aggregates
		day(9, 100), // first day of the window
		day(8, 50),  // outside the window
	}
	s := DailySeries(expenses, testNow)
	if s.Kind != "line" {
		t.Fatalf("unexpected kind %q", s.Kind)
	}
	if len(s.Labels) != 7 || len(s.Values) != 7 {
		t.Fatalf("expected 7 days, got %d/%d", len(s.Labels), len(s.Values))
	}
	// Window is June 9 (Mon) through June 15 (Sun).
	want := []float64{100, 0, 0, 0, 7, 0, 12}
	for i := range want {
		if s.Values[i] != want[i] {
			t.Fatalf("day %d: got %v, want %v (all: %v)", i, s.Values[i], want[i], s.Values)
		}
	}
	if s.Labels[0] != "Mon" || s.Labels[6] != "Sun" {
		t.Fatalf("unexpected labels %v", s.Labels)
	}
}
