package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/duskfall/trader/internal/catalog"
	"github.com/duskfall/trader/internal/config"
	"github.com/duskfall/trader/internal/domain"
	"github.com/duskfall/trader/internal/economy"
	"github.com/duskfall/trader/internal/event"
	"github.com/duskfall/trader/internal/handler"
	"github.com/duskfall/trader/internal/metrics"
	"github.com/duskfall/trader/internal/scheduler"
	"github.com/duskfall/trader/internal/server"
	"github.com/duskfall/trader/internal/store"
)

const (
	shutdownTimeout = 10 * time.Second

	// Cache sizing for the postgres backend. The engine only touches two
	// keys, so the cache exists to absorb repeated reads between saves.
	cacheSize = 64
	cacheTTL  = 5 * time.Minute
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	// Setup logging
	initLogger(cfg)

	ctx := context.Background()

	// Select the persistence backend
	kv, pinger, closeStore, err := buildStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// Build the session catalog definitions
	defs, err := buildCatalog(cfg)
	if err != nil {
		slog.Error("Failed to build catalog", "error", err)
		os.Exit(1)
	}

	// Event bus with metrics collection
	bus := event.NewMemoryBus()
	metrics.NewEventCollector().Register(bus)

	// Economy service
	svc, err := economy.NewService(economy.NewKVGateway(kv), bus, defs,
		economy.WithDriftRange(cfg.DriftRange),
		economy.WithStartingBalance(cfg.StartingMoney),
	)
	if err != nil {
		slog.Error("Failed to create economy service", "error", err)
		os.Exit(1)
	}

	if _, err := svc.InitSession(ctx, 0); err != nil {
		slog.Error("Failed to initialize shop session", "error", err)
		os.Exit(1)
	}

	// Periodic price drift
	sched := scheduler.New()
	sched.Schedule(cfg.DriftInterval, svc.TickPriceDrift)
	defer sched.Stop()

	srv := server.NewServer(cfg.Port, pinger, svc)

	// Run the server until interrupted
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Server forced shutdown", "error", err)
	}

	slog.Info("Server stopped")
}

// buildStore constructs the configured KV backend. The returned pinger is
// nil for backends without a remote connection to check.
func buildStore(ctx context.Context, cfg *config.Config) (store.KV, handler.Pinger, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		return store.NewMemoryStore(), nil, func() {}, nil

	case config.StoreBackendFile:
		fs, err := store.NewFileStore(filepath.Join(cfg.DataDir, "state.json"))
		if err != nil {
			return nil, nil, nil, err
		}
		return fs, nil, func() {}, nil

	case config.StoreBackendPostgres:
		pg, err := store.NewPostgresStore(ctx, cfg.GetDBConnString())
		if err != nil {
			return nil, nil, nil, err
		}
		cached := store.NewCachedKV(pg, cacheSize, cacheTTL)
		return cached, pg, cached.Close, nil
	}

	return nil, nil, nil, errors.New("unknown store backend: " + cfg.StoreBackend)
}

// buildCatalog loads the catalog definitions, preferring the configured
// JSON file over the built-in table.
func buildCatalog(cfg *config.Config) ([]domain.CatalogItem, error) {
	catalogCfg := catalog.Defaults()

	if cfg.CatalogPath != "" {
		loader := catalog.NewLoader()
		loaded, err := loader.Load(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		catalogCfg = loaded
		slog.Info("Catalog loaded", "path", cfg.CatalogPath, "items", len(loaded.Items))
	}

	return catalog.Build(catalogCfg)
}
