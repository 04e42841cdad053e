package tracker

import (
	"context"
	"encoding/json"
	"testing"
)

func TestExport(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker(t)
	tr.SetBudgetFromValue(ctx, "200")
	mustAdd(t, tr, "Coffee", 3.50, "food")

	payload, filename := tr.Export()
	if payload.Version != "2.0" {
		t.Fatalf("unexpected version %q", payload.Version)
	}
	if payload.Budget != 200 || len(payload.Expenses) != 1 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if !payload.ExportDate.Equal(testNow) {
		t.Fatalf("unexpected export date: %v", payload.ExportDate)
	}
	if filename != "uniwallet-export-2025-06-15.json" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestImportReplacesLedgerAndRecomputesNextID(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker(t)
	mustAdd(t, tr, "Old", 1, "other")
	tr.EditExpense(1)

	doc := `{
		"budget": 500,
		"budgetPeriod": "weekly",
		"expenses": [
			{"id": 4, "title": "Rent", "amount": 300, "category": "bills", "date": "2025-06-01T00:00:00Z"},
			{"id": 9, "title": "Food", "amount": 40, "category": "food", "date": "2025-06-02T00:00:00Z"}
		]
	}`
	count, err := tr.ImportData(ctx, []byte(doc))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if count != 2 || len(tr.Expenses()) != 2 {
		t.Fatalf("unexpected count %d", count)
	}
	if tr.Budget() != 500 || tr.BudgetPeriod() != "weekly" {
		t.Fatalf("budget not imported: %v %q", tr.Budget(), tr.BudgetPeriod())
	}
	if tr.NextID() != 10 {
		t.Fatalf("nextId must be max id + 1, got %d", tr.NextID())
	}
	if tr.EditingID() != 0 {
		t.Fatal("import must clear the editing cursor")
	}

	// The old ledger is gone.
	for _, e := range tr.Expenses() {
		if e.Title == "Old" {
			t.Fatal("import must replace, not merge")
		}
	}
}

func TestImportEmptyExpenses(t *testing.T) {
	tr, _ := newTestTracker(t)
	count, err := tr.ImportData(context.Background(), []byte(`{"budget": 100, "expenses": []}`))
	if err != nil || count != 0 {
		t.Fatalf("unexpected: count=%d err=%v", count, err)
	}
	if tr.NextID() != 1 {
		t.Fatalf("empty import must reset nextId to 1, got %d", tr.NextID())
	}
}

func TestImportRejectsInvalidJSON(t *testing.T) {
	tr, _ := newTestTracker(t)
	mustAdd(t, tr, "Keep", 1, "other")

	if _, err := tr.ImportData(context.Background(), []byte("not json")); err == nil {
		t.Fatal("expected parse error")
	}
	if len(tr.Expenses()) != 1 {
		t.Fatal("failed import must not touch the ledger")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker(t)
	tr.SetBudgetFromValue(ctx, "250")
	mustAdd(t, tr, "Coffee", 3.50, "food")
	mustAdd(t, tr, "Cinema", 15, "entertainment")

	payload, _ := tr.Export()
	doc, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal export: %v", err)
	}

	fresh, _ := newTestTracker(t)
	count, err := fresh.ImportData(ctx, doc)
	if err != nil || count != 2 {
		t.Fatalf("import: count=%d err=%v", count, err)
	}
	if fresh.Budget() != 250 || fresh.NextID() != 3 {
		t.Fatalf("round trip lost state: budget=%v nextID=%d", fresh.Budget(), fresh.NextID())
	}
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTracker(t)
	tr.SetBudgetFromValue(ctx, "100")
	mustAdd(t, tr, "Coffee", 3.50, "food")
	mustAdd(t, tr, "Bus", 2, "transport")
	tr.EditExpense(2)

	tr.ClearAll(ctx)
	if len(tr.Expenses()) != 0 || tr.NextID() != 1 || tr.EditingID() != 0 {
		t.Fatal("clear must reset expenses, id counter and cursor")
	}
	if tr.Budget() != 100 {
		t.Fatal("clear must keep the budget")
	}

	// The cleared state is what persists.
	status := tr.LoadData(ctx)
	if !status.Loaded || status.Expenses != 0 {
		t.Fatalf("unexpected reload: %+v", status)
	}
}
