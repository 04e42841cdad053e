// Package http is the JSON API boundary. Handlers serialize access to the
// tracker with a single mutex; the core stays single-owner.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"uniwallet/internal/cache"
	"uniwallet/internal/charts"
	"uniwallet/internal/core"
	applog "uniwallet/internal/log"
	"uniwallet/internal/middleware/ratelimit"
	"uniwallet/internal/middleware/security"
	"uniwallet/internal/middleware/trace"
	"uniwallet/internal/tracker"
)

// Config holds the server's tunables.
type Config struct {
	Addr               string
	RateLimitPerMinute int
	CacheTTL           time.Duration
	CacheMaxEntries    int
}

// Server wraps http.Server with the tracker, the chart service and the
// response caches.
type Server struct {
	http.Server

	mu  sync.Mutex
	trk *tracker.Tracker
	chr *charts.Service

	detector *security.Detector
	limiter  *ratelimit.Limiter
	tracer   *trace.Middleware

	expensesCache *cache.LRU[[]core.Expense]
	totalsCache   *cache.LRU[core.Totals]
	insightsCache *cache.LRU[[]tracker.Insight]

	shutdownOnce sync.Once
}

// Caches registers the server's response caches with a janitor.
func (s *Server) Caches() []cache.Cleaner {
	return []cache.Cleaner{s.expensesCache, s.totalsCache, s.insightsCache}
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(cfg Config, trk *tracker.Tracker, chr *charts.Service) *Server {
	if cfg.RateLimitPerMinute <= 0 {
		cfg.RateLimitPerMinute = 60
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.CacheMaxEntries <= 0 {
		cfg.CacheMaxEntries = 100
	}

	detector := security.NewDetector()

	s := &Server{
		trk:      trk,
		chr:      chr,
		detector: detector,
		limiter: ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute: cfg.RateLimitPerMinute,
		}),
		tracer:        trace.NewMiddleware(detector.ExtractClientIP),
		expensesCache: cache.NewLRU[[]core.Expense](cfg.CacheMaxEntries, cfg.CacheTTL),
		totalsCache:   cache.NewLRU[core.Totals](cfg.CacheMaxEntries, cfg.CacheTTL),
		insightsCache: cache.NewLRU[[]tracker.Insight](cfg.CacheMaxEntries, cfg.CacheTTL),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	mux.HandleFunc("PUT /api/budget", s.handleSetBudget)
	mux.HandleFunc("GET /api/expenses", s.handleListExpenses)
	mux.HandleFunc("POST /api/expenses", s.handleCreateExpense)
	mux.HandleFunc("PUT /api/expenses/{id}", s.handleUpdateExpense)
	mux.HandleFunc("DELETE /api/expenses/{id}", s.handleDeleteExpense)
	mux.HandleFunc("DELETE /api/expenses", s.handleClearExpenses)
	mux.HandleFunc("GET /api/totals", s.handleTotals)
	mux.HandleFunc("GET /api/insights", s.handleInsights)
	mux.HandleFunc("GET /api/charts/{kind}", s.handleChart)
	mux.HandleFunc("GET /api/export", s.handleExport)
	mux.HandleFunc("POST /api/import", s.handleImport)
	mux.HandleFunc("GET /api/status", s.handleStatus)

	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	httpLogger := applog.Wrap(slog.Default(), applog.ComponentHTTP)

	handler := s.withRateLimit(mux)
	handler = headers.Middleware(handler)
	handler = s.withDetection(handler)
	handler = applog.RequestIDMiddleware(func(r *http.Request) string {
		return trace.GetRequestID(r.Context())
	})(handler)
	handler = applog.Middleware(httpLogger)(handler)
	handler = s.tracer.Middleware(handler)

	s.Server = http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// withRateLimit applies the limiter to mutating methods only; reads stay
// unthrottled.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	limited := s.limiter.Middleware(s.detector.ExtractClientIP, nil)(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodDelete:
			limited.ServeHTTP(w, r)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// withDetection flags suspicious requests. Detection observes, it does not
// block: legitimate payloads can trip pattern matches.
func (s *Server) withDetection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.detector.DetectSuspiciousRequest(r)
		next.ServeHTTP(w, r)
	})
}

// invalidateCaches drops all cached reads. Called by every mutating handler.
func (s *Server) invalidateCaches() {
	s.expensesCache.Purge()
	s.totalsCache.Purge()
	s.insightsCache.Purge()
}

// Shutdown gracefully shuts down the server and its cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.limiter != nil {
			s.limiter.Stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}
