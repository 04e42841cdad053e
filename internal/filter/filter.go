// Package filter selects and orders ledger views. Apply never mutates its
// input; every call returns a fresh slice sorted by date descending.
package filter

import (
	"sort"
	"strings"
	"time"

	"uniwallet/internal/core"
)

// Criteria is a filter configuration. Every field is optional; the empty
// string means "no filtering on this axis".
type Criteria struct {
	Search      string `json:"search,omitempty"`
	Category    string `json:"category,omitempty"`
	DateRange   string `json:"dateRange,omitempty"`
	AmountRange string `json:"amountRange,omitempty"`
}

// Date range values understood by Apply. Anything else filters nothing.
const (
	DateToday = "today"
	DateWeek  = "week"
	DateMonth = "month"
)

// Amount range buckets. Contiguous and non-overlapping: a value of exactly
// 10 belongs to the first bucket only, exactly 50 to the second, and so on.
const (
	AmountTo10    = "0-10"
	Amount10To50  = "10-50"
	Amount50To100 = "50-100"
	AmountOver100 = "100+"
)

// Apply filters expenses against the criteria relative to the current time.
func Apply(expenses []core.Expense, c Criteria) []core.Expense {
	return ApplyAt(expenses, c, time.Now())
}

// ApplyAt is Apply with an explicit reference time, so date-range behavior
// is testable. Active criteria compose by logical AND.
func ApplyAt(expenses []core.Expense, c Criteria, now time.Time) []core.Expense {
	search := strings.ToLower(c.Search)
	cutoff, hasCutoff := dateCutoff(c.DateRange, now)

	out := make([]core.Expense, 0, len(expenses))
	for _, e := range expenses {
		if search != "" && !strings.Contains(strings.ToLower(e.Title), search) {
			continue
		}
		if c.Category != "" && string(e.Category) != c.Category {
			continue
		}
		if hasCutoff && e.Date.Before(cutoff) {
			continue
		}
		if c.AmountRange != "" && !amountInRange(e.Amount, c.AmountRange) {
			continue
		}
		out = append(out, e)
	}

	// Most recent first. SliceStable keeps the input order for equal dates.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// dateCutoff returns the inclusive lower bound for a date range. Expenses
// dated at or after the cutoff pass.
func dateCutoff(dateRange string, now time.Time) (time.Time, bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch dateRange {
	case DateToday:
		return today, true
	case DateWeek:
		return today.Add(-7 * 24 * time.Hour), true
	case DateMonth:
		// One calendar month back from today; the day-of-month normalizes
		// the usual way (e.g. Mar 31 minus a month lands in early March).
		return today.AddDate(0, -1, 0), true
	}
	return time.Time{}, false
}

func amountInRange(amount float64, amountRange string) bool {
	switch amountRange {
	case AmountTo10:
		return amount >= 0 && amount <= 10
	case Amount10To50:
		return amount > 10 && amount <= 50
	case Amount50To100:
		return amount > 50 && amount <= 100
	case AmountOver100:
		return amount > 100
	}
	// Unknown bucket names filter nothing.
	return true
}
