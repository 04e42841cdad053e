// Package validation holds the pure input checks applied before any ledger
// mutation. Functions here have no side effects and never panic on bad
// input: budget checks return a structured result, the rest return booleans.
package validation

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"uniwallet/internal/core"
)

// BudgetCheck is the outcome of validating a raw budget value. Error is only
// populated when Valid is false; Value carries the coerced number otherwise.
type BudgetCheck struct {
	Valid bool    `json:"valid"`
	Value float64 `json:"-"`
	Error string  `json:"error,omitempty"`
}

// ValidateBudget coerces raw input (typically straight from a text field)
// to a number and checks it against the budget bounds.
func ValidateBudget(raw string) BudgetCheck {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return BudgetCheck{Error: "Budget must be a number"}
	}
	if n < core.MinBudget {
		return BudgetCheck{Error: "Budget must be at least 0.01"}
	}
	if n > core.MaxBudget {
		return BudgetCheck{Error: "Budget exceeds maximum"}
	}
	return BudgetCheck{Valid: true, Value: n}
}

// ValidateExpenseTitle reports whether the title, after trimming, is between
// 1 and 255 characters.
func ValidateExpenseTitle(title string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(title))
	return n >= 1 && n <= core.MaxTitleLen
}

// ValidateExpenseAmount reports whether the amount is a finite number within
// the accepted expense range.
func ValidateExpenseAmount(amount float64) bool {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	return amount >= core.MinAmount && amount <= core.MaxAmount
}

// ParseExpenseAmount coerces a raw string to an amount and validates it in
// one step, for callers sitting directly on user input.
func ParseExpenseAmount(raw string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return n, ValidateExpenseAmount(n)
}

// ValidateCategory reports whether the value is exactly one of the fixed
// category set.
func ValidateCategory(category string) bool {
	return core.Category(category).Valid()
}
