package core

import (
	"errors"
	"time"
)

// Validation bounds for budgets and expense amounts.
const (
	MinAmount     = 0.01
	MaxAmount     = 100000
	MinBudget     = 0.01
	MaxBudget     = 999999
	MaxTitleLen   = 255
	DefaultPeriod = "monthly"
)

var (
	ErrInvalidTitle    = errors.New("invalid title")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCategory = errors.New("invalid category")
)

// Expense is a single ledger entry. IDs are assigned by the tracker and are
// never reused within a session, even after deletions.
type Expense struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Amount    float64    `json:"amount"`
	Category  Category   `json:"category"`
	Date      time.Time  `json:"date"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Totals is the derived view over the ledger. Balance may be negative.
type Totals struct {
	TotalExpenses  float64 `json:"totalExpenses"`
	Balance        float64 `json:"balance"`
	CategoriesUsed int     `json:"categoriesUsed"`
}
