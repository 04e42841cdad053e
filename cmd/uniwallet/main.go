package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"uniwallet/internal/cache"
	"uniwallet/internal/charts"
	"uniwallet/internal/config"
	apphttp "uniwallet/internal/http"
	applog "uniwallet/internal/log"
	"uniwallet/internal/persistence"
	"uniwallet/internal/storage"
	"uniwallet/internal/tracker"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg := config.Load()

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		level = applog.DefaultConfig().Level
	}
	logger := applog.New(applog.Config{Level: level, Component: applog.ComponentApp})
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	primary, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open SQLite store", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer func() {
		if err := primary.Close(); err != nil {
			logger.Error("SQLite close error", "error", err)
		}
	}()
	fallback := storage.NewMemoryStore()

	mgr := persistence.NewManager(cfg.StorageKey, primary, fallback)
	trk := tracker.New(mgr)

	status := trk.LoadData(context.Background())
	if status.Loaded {
		logger.Info("Ledger restored", "expenses", status.Expenses, "last_saved", status.LastSaved)
	} else {
		logger.Info("Starting with an empty ledger")
	}

	srv := apphttp.NewServer(apphttp.Config{
		Addr:               ":" + cfg.Port,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		CacheTTL:           cfg.CacheTTL,
		CacheMaxEntries:    cfg.CacheMaxEntries,
	}, trk, charts.NewService())

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	janitor := cache.NewJanitor(cfg.CacheCleanupInterval)
	janitor.Register(srv.Caches()...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting uniwallet server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return janitor.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
