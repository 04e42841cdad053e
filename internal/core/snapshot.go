package core

import (
	"encoding/json"
	"time"
)

// Snapshot is the persisted form of the ledger. Consumers must tolerate
// extra fields; missing fields get defaults on load.
type Snapshot struct {
	Budget       float64   `json:"budget"`
	BudgetPeriod string    `json:"budgetPeriod"`
	Expenses     []Expense `json:"expenses"`
	NextID       int64     `json:"nextId"`
	LastSaved    time.Time `json:"lastSaved"`
}

// RawSnapshot is a snapshot as read back from storage, before defensive
// coercion. Field types are loose on purpose: stored data may come from an
// older version or have been edited by hand, and a mistyped field must
// degrade to its default instead of poisoning the whole load.
type RawSnapshot struct {
	Budget       any             `json:"budget"`
	BudgetPeriod any             `json:"budgetPeriod"`
	Expenses     json.RawMessage `json:"expenses"`
	NextID       any             `json:"nextId"`
	LastSaved    any             `json:"lastSaved"`
}

// ExportPayload is the document written by the export operation.
type ExportPayload struct {
	Budget       float64   `json:"budget"`
	BudgetPeriod string    `json:"budgetPeriod"`
	Expenses     []Expense `json:"expenses"`
	ExportDate   time.Time `json:"exportDate"`
	Version      string    `json:"version"`
}

// ExportVersion identifies the export document format.
const ExportVersion = "2.0"

// ImportPayload is the document accepted by the import operation. Only
// budget and expenses are required; everything else is defaulted.
type ImportPayload struct {
	Budget       any             `json:"budget"`
	BudgetPeriod any             `json:"budgetPeriod"`
	Expenses     json.RawMessage `json:"expenses"`
}
