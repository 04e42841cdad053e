package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"uniwallet/internal/validation"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// errorBody is the uniform error response shape.
type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// readJSON decodes the request body into v, with a body size cap.
func readJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// parseAmount accepts an amount as a JSON number or a numeric string, the
// two shapes clients actually send.
func parseAmount(v any) (float64, bool) {
	switch a := v.(type) {
	case float64:
		return a, true
	case string:
		return validation.ParseExpenseAmount(a)
	default:
		return 0, false
	}
}

// rawBudgetValue renders the budget field back to the raw string the
// validation layer expects, preserving its error messages.
func rawBudgetValue(v any) string {
	switch b := v.(type) {
	case string:
		return b
	case float64:
		return strconv.FormatFloat(b, 'f', -1, 64)
	default:
		return ""
	}
}
