package tracker

import (
	"context"
	"encoding/json"
	"fmt"

	"uniwallet/internal/core"
)

// Export packages the ledger as a downloadable document and suggests a
// dated filename for it.
func (t *Tracker) Export() (core.ExportPayload, string) {
	payload := core.ExportPayload{
		Budget:       t.budget,
		BudgetPeriod: t.budgetPeriod,
		Expenses:     t.Expenses(),
		ExportDate:   t.now().UTC(),
		Version:      core.ExportVersion,
	}
	filename := fmt.Sprintf("uniwallet-export-%s.json", t.now().UTC().Format("2006-01-02"))
	return payload, filename
}

// ImportData replaces the entire ledger with the document's contents and
// recomputes the id counter from the highest imported id. The caller is
// responsible for confirming the replacement with the user first. Returns
// the number of imported expenses.
func (t *Tracker) ImportData(ctx context.Context, data []byte) (int, error) {
	var payload core.ImportPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return 0, fmt.Errorf("parse import document: %w", err)
	}

	t.budget = coerceNumber(payload.Budget, 0)
	t.budgetPeriod = coerceString(payload.BudgetPeriod, core.DefaultPeriod)
	t.expenses = coerceExpenses(payload.Expenses)
	t.editingID = 0

	var maxID int64
	for _, e := range t.expenses {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	t.nextID = maxID + 1

	t.SaveData(ctx)
	return len(t.expenses), nil
}

// ClearAll deletes every expense and resets the id counter and editing
// cursor. The budget is kept.
func (t *Tracker) ClearAll(ctx context.Context) {
	t.expenses = nil
	t.nextID = 1
	t.editingID = 0
	t.SaveData(ctx)
}
