package http

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"uniwallet/internal/charts"
	"uniwallet/internal/core"
	"uniwallet/internal/filter"
	applog "uniwallet/internal/log"
	"uniwallet/internal/tracker"
)

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

type budgetRequest struct {
	Value  any    `json:"value"`
	Period string `json:"period"`
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.trk.SetBudgetFromValue(r.Context(), rawBudgetValue(req.Value))
	if !res.OK {
		writeJSON(w, http.StatusUnprocessableEntity, res)
		return
	}
	if req.Period != "" {
		s.trk.SetBudgetPeriod(r.Context(), req.Period)
	}

	s.invalidateCaches()
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := filter.Criteria{
		Search:      q.Get("search"),
		Category:    q.Get("category"),
		DateRange:   q.Get("date_range"),
		AmountRange: q.Get("amount_range"),
	}

	// url.Values escapes each field, so criteria values cannot collide.
	key := url.Values{
		"search":       {criteria.Search},
		"category":     {criteria.Category},
		"date_range":   {criteria.DateRange},
		"amount_range": {criteria.AmountRange},
	}.Encode()
	if list, found := s.expensesCache.Get(key); found {
		applog.FromContext(r.Context()).DebugContext(r.Context(), "Expense list cache hit", "key", key)
		writeJSON(w, http.StatusOK, list)
		return
	}

	s.mu.Lock()
	list := s.trk.GetFilteredExpenses(criteria)
	s.mu.Unlock()

	if list == nil {
		list = []core.Expense{}
	}
	s.expensesCache.Set(key, list)
	writeJSON(w, http.StatusOK, list)
}

type expenseRequest struct {
	Title    string `json:"title"`
	Amount   any    `json:"amount"`
	Category string `json:"category"`
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// An unparsable amount becomes zero, which the tracker rejects. This
	// keeps the title-first error ordering in one place.
	amount, _ := parseAmount(req.Amount)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.trk.AddExpense(r.Context(), req.Title, amount, req.Category)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.invalidateCaches()
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusNotFound, "expense not found")
		return
	}

	var req expenseRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, _ := parseAmount(req.Amount)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.exists(id) {
		writeError(w, http.StatusNotFound, "expense not found")
		return
	}

	s.trk.EditExpense(id)
	if !s.trk.UpdateExpense(r.Context(), req.Title, amount, req.Category) {
		writeError(w, http.StatusUnprocessableEntity, "invalid expense fields")
		return
	}

	s.invalidateCaches()
	for _, e := range s.trk.Expenses() {
		if e.ID == id {
			writeJSON(w, http.StatusOK, e)
			return
		}
	}
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusNotFound, "expense not found")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.trk.DeleteExpense(r.Context(), id) {
		writeError(w, http.StatusNotFound, "expense not found")
		return
	}

	s.invalidateCaches()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearExpenses(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trk.ClearAll(r.Context())
	s.invalidateCaches()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTotals(w http.ResponseWriter, r *http.Request) {
	const key = "totals"
	if totals, found := s.totalsCache.Get(key); found {
		writeJSON(w, http.StatusOK, totals)
		return
	}

	s.mu.Lock()
	totals := s.trk.Totals()
	s.mu.Unlock()

	s.totalsCache.Set(key, totals)
	writeJSON(w, http.StatusOK, totals)
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	const key = "insights"
	if insights, found := s.insightsCache.Get(key); found {
		writeJSON(w, http.StatusOK, insights)
		return
	}

	s.mu.Lock()
	insights := s.trk.Insights()
	s.mu.Unlock()

	if insights == nil {
		insights = []tracker.Insight{}
	}
	s.insightsCache.Set(key, insights)
	writeJSON(w, http.StatusOK, insights)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	kind := charts.Type(r.PathValue("kind"))
	if kind != charts.TypeCategory && kind != charts.TypeDaily {
		writeError(w, http.StatusNotFound, "unknown chart type")
		return
	}

	s.mu.Lock()
	s.chr.SetType(kind)
	series := s.chr.Build(s.trk.Expenses(), time.Now())
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, series)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	payload, filename := s.trk.Export()
	s.mu.Unlock()

	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	writeJSON(w, http.StatusOK, payload)
}

type importResponse struct {
	Imported int `json:"imported"`
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.trk.ImportData(r.Context(), data)
	if err != nil {
		applog.FromContext(r.Context()).WarnContext(r.Context(), "Import rejected",
			applog.FieldError, err.Error(), applog.FieldOperation, applog.OpImport)
		writeError(w, http.StatusBadRequest, "invalid import payload")
		return
	}

	s.invalidateCaches()
	writeJSON(w, http.StatusOK, importResponse{Imported: n})
}

type statusResponse struct {
	SaveOK    bool      `json:"saveOk"`
	Storage   string    `json:"storage,omitempty"`
	SaveError string    `json:"saveError,omitempty"`
	LastSaved time.Time `json:"lastSaved"`
	Expenses  int       `json:"expenses"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	save := s.trk.LastSave()
	status := statusResponse{
		SaveOK:    save.OK,
		Storage:   save.Storage,
		SaveError: save.Error,
		LastSaved: s.trk.LastSaved(),
		Expenses:  len(s.trk.Expenses()),
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, status)
}

// exists reports whether the ledger holds an expense with the given id.
// Callers hold s.mu.
func (s *Server) exists(id int64) bool {
	for _, e := range s.trk.Expenses() {
		if e.ID == id {
			return true
		}
	}
	return false
}
