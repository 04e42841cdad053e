// Package tracker owns the in-memory ledger and orchestrates validation,
// sanitization, mutation and persistence. A Tracker is single-owner: it is
// not safe for concurrent use, callers at the boundary provide exclusion.
package tracker

import (
	"context"
	"time"

	"uniwallet/internal/core"
	"uniwallet/internal/filter"
	"uniwallet/internal/persistence"
	"uniwallet/internal/security"
	"uniwallet/internal/validation"
)

// Tracker is the core aggregate: budget, budget period, the expense list,
// the id counter and the editing cursor.
type Tracker struct {
	budget       float64
	budgetPeriod string
	expenses     []core.Expense
	nextID       int64
	editingID    int64 // 0 means no edit in progress

	persist *persistence.Manager
	now     func() time.Time

	lastSave  persistence.SaveResult
	lastSaved time.Time
}

// Option configures a Tracker at construction.
type Option func(*Tracker)

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New returns an empty ledger: budget 0, no expenses, nextID 1. Call
// LoadData to hydrate from storage.
func New(persist *persistence.Manager, opts ...Option) *Tracker {
	t := &Tracker{
		budgetPeriod: core.DefaultPeriod,
		nextID:       1,
		persist:      persist,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// BudgetUpdate is the outcome of SetBudgetFromValue. Expected user-input
// errors are reported here, never as a Go error.
type BudgetUpdate struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// SetBudgetFromValue validates the raw value and assigns the budget. On
// failure the budget is left unchanged and nothing is persisted.
func (t *Tracker) SetBudgetFromValue(ctx context.Context, raw string) BudgetUpdate {
	check := validation.ValidateBudget(raw)
	if !check.Valid {
		return BudgetUpdate{Error: check.Error}
	}
	t.budget = check.Value
	t.SaveData(ctx)
	return BudgetUpdate{OK: true}
}

// SetBudgetPeriod assigns the free-form period label ("monthly", "weekly",
// ...). The label is not validated against an enum; empty input is ignored.
func (t *Tracker) SetBudgetPeriod(ctx context.Context, period string) {
	if period == "" {
		return
	}
	t.budgetPeriod = period
	t.SaveData(ctx)
}

// AddExpense validates title, amount and category (title first), sanitizes
// the title and appends a new expense. Invalid arguments are a caller
// contract violation and surface as sentinel errors: callers on direct user
// input are expected to pre-validate.
func (t *Tracker) AddExpense(ctx context.Context, title string, amount float64, category string) (core.Expense, error) {
	if !validation.ValidateExpenseTitle(title) {
		return core.Expense{}, core.ErrInvalidTitle
	}
	if !validation.ValidateExpenseAmount(amount) {
		return core.Expense{}, core.ErrInvalidAmount
	}
	if !validation.ValidateCategory(category) {
		return core.Expense{}, core.ErrInvalidCategory
	}

	e := core.Expense{
		ID:       t.nextID,
		Title:    security.Sanitize(title),
		Amount:   amount,
		Category: core.Category(category),
		Date:     t.now().UTC(),
	}
	t.nextID++
	t.expenses = append(t.expenses, e)
	t.SaveData(ctx)
	return e, nil
}

// EditExpense marks an expense for in-place update. No existence check: a
// nonexistent id simply makes the next UpdateExpense a no-op.
func (t *Tracker) EditExpense(id int64) { t.editingID = id }

// EditingID returns the id targeted for update, 0 when idle.
func (t *Tracker) EditingID() int64 { return t.editingID }

// UpdateExpense replaces title, amount and category of the expense marked
// by EditExpense and stamps updatedAt. Returns false without side effects
// when no expense matches the cursor or any field is invalid.
func (t *Tracker) UpdateExpense(ctx context.Context, title string, amount float64, category string) bool {
	idx := t.indexOf(t.editingID)
	if idx < 0 {
		return false
	}
	if !validation.ValidateExpenseTitle(title) {
		return false
	}
	if !validation.ValidateExpenseAmount(amount) {
		return false
	}
	if !validation.ValidateCategory(category) {
		return false
	}

	e := &t.expenses[idx]
	e.Title = security.Sanitize(title)
	e.Amount = amount
	e.Category = core.Category(category)
	stamp := t.now().UTC()
	e.UpdatedAt = &stamp

	t.editingID = 0
	t.SaveData(ctx)
	return true
}

// DeleteExpense removes the matching expense. Returns false when nothing
// was removed. Deleting the expense currently being edited clears the
// editing cursor.
func (t *Tracker) DeleteExpense(ctx context.Context, id int64) bool {
	idx := t.indexOf(id)
	if idx < 0 {
		return false
	}
	t.expenses = append(t.expenses[:idx], t.expenses[idx+1:]...)
	if t.editingID == id {
		t.editingID = 0
	}
	t.SaveData(ctx)
	return true
}

// GetFilteredExpenses returns the filtered, date-descending view of the
// ledger. Read-only.
func (t *Tracker) GetFilteredExpenses(c filter.Criteria) []core.Expense {
	return filter.ApplyAt(t.expenses, c, t.now())
}

// Totals computes the derived aggregate view.
func (t *Tracker) Totals() core.Totals {
	var total float64
	seen := make(map[core.Category]struct{})
	for _, e := range t.expenses {
		total += e.Amount
		seen[e.Category] = struct{}{}
	}
	return core.Totals{
		TotalExpenses:  total,
		Balance:        t.budget - total,
		CategoriesUsed: len(seen),
	}
}

// Budget returns the current budget.
func (t *Tracker) Budget() float64 { return t.budget }

// BudgetPeriod returns the current period label.
func (t *Tracker) BudgetPeriod() string { return t.budgetPeriod }

// NextID returns the next id that will be assigned.
func (t *Tracker) NextID() int64 { return t.nextID }

// Expenses returns a copy of the ledger in insertion order.
func (t *Tracker) Expenses() []core.Expense {
	out := make([]core.Expense, len(t.expenses))
	copy(out, t.expenses)
	return out
}

// LastSave reports the outcome of the most recent persistence attempt.
func (t *Tracker) LastSave() persistence.SaveResult { return t.lastSave }

// LastSaved returns the lastSaved stamp restored by LoadData, zero when
// nothing was loaded.
func (t *Tracker) LastSaved() time.Time { return t.lastSaved }

// SaveData serializes the whole ledger to storage. Failures degrade to the
// returned result; the in-memory ledger is unaffected either way.
func (t *Tracker) SaveData(ctx context.Context) persistence.SaveResult {
	stamp := t.now().UTC()
	res := t.persist.Save(ctx, core.Snapshot{
		Budget:       t.budget,
		BudgetPeriod: t.budgetPeriod,
		Expenses:     t.expenses,
		NextID:       t.nextID,
		LastSaved:    stamp,
	})
	if res.OK {
		t.lastSaved = stamp
	}
	t.lastSave = res
	return res
}

// LoadStatus reports what LoadData restored.
type LoadStatus struct {
	Loaded    bool      `json:"loaded"`
	Expenses  int       `json:"expenses"`
	LastSaved time.Time `json:"lastSaved"`
}

// LoadData hydrates the ledger from storage. A nil load (no data, corrupted
// data) leaves all state untouched. Loaded fields are defensively coerced:
// a mistyped field degrades to its default instead of failing the load.
func (t *Tracker) LoadData(ctx context.Context) LoadStatus {
	raw := t.persist.Load(ctx)
	if raw == nil {
		return LoadStatus{}
	}

	t.budget = coerceNumber(raw.Budget, 0)
	t.budgetPeriod = coerceString(raw.BudgetPeriod, core.DefaultPeriod)
	t.expenses = coerceExpenses(raw.Expenses)
	t.nextID = coerceID(raw.NextID)
	t.lastSaved = coerceTime(raw.LastSaved)

	return LoadStatus{Loaded: true, Expenses: len(t.expenses), LastSaved: t.lastSaved}
}

func (t *Tracker) indexOf(id int64) int {
	for i, e := range t.expenses {
		if e.ID == id {
			return i
		}
	}
	return -1
}
