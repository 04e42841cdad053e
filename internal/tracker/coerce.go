package tracker

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"uniwallet/internal/core"
)

// Coercion helpers for loosely-typed persisted fields. JSON numbers decode
// as float64 inside `any`; numeric strings count as numbers too, mirroring
// what stored data from earlier versions may look like.

func coerceNumber(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return def
		}
		return n
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
	return def
}

// coerceID coerces the persisted id counter; anything that is not a usable
// positive integer degrades to 1.
func coerceID(v any) int64 {
	n := int64(coerceNumber(v, 1))
	if n < 1 {
		return 1
	}
	return n
}

func coerceString(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

func coerceTime(v any) time.Time {
	s, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// coerceExpenses falls back to an empty list when the stored value is not
// list-shaped.
func coerceExpenses(raw json.RawMessage) []core.Expense {
	if len(raw) == 0 {
		return nil
	}
	var expenses []core.Expense
	if err := json.Unmarshal(raw, &expenses); err != nil {
		return nil
	}
	return expenses
}
