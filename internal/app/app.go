// Package app assembles the journal components from configuration.
// cmd/api and cmd/tripctl both start here so they open the same store the
// same way.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/pkordes/trip-journal/internal/config"
	"github.com/pkordes/trip-journal/internal/itinerary"
	"github.com/pkordes/trip-journal/internal/metrics"
	"github.com/pkordes/trip-journal/internal/repo"
	"github.com/pkordes/trip-journal/internal/service"
	"github.com/pkordes/trip-journal/internal/store"
)

// App holds the wired components.
type App struct {
	Config   config.Config
	Log      *slog.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Catalog  *itinerary.Catalog
	Store    *store.RecordStore
	Data     *service.TripDataRepo
	Journal  *service.JournalService

	closeKV func()
}

// Open builds every component for cfg: the record backend selected by
// cfg.StoreDriver, the record store, the in-memory trip data repository,
// and the journal service. The caller must Close the App.
func Open(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	if log == nil {
		log = slog.Default()
	}

	catalog, err := itinerary.Load()
	if err != nil {
		return nil, fmt.Errorf("app.Open: %w", err)
	}

	kv, closeKV, err := OpenKV(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("app.Open: %w", err)
	}
	log.Info("record store opened", "driver", cfg.StoreDriver, "key", cfg.StorageKey)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	rs := store.New(kv, store.WithKey(cfg.StorageKey), store.WithLogger(log), store.WithMetrics(m))
	data := service.OpenTripDataRepo(ctx, rs)
	journal := service.NewJournalService(data, service.WithMetrics(m))

	return &App{
		Config:   cfg,
		Log:      log,
		Registry: reg,
		Metrics:  m,
		Catalog:  catalog,
		Store:    rs,
		Data:     data,
		Journal:  journal,
		closeKV:  closeKV,
	}, nil
}

// Close releases the record backend.
func (a *App) Close() {
	if a.closeKV != nil {
		a.closeKV()
	}
}

// OpenKV opens the record backend named by cfg.StoreDriver. The returned
// func releases it.
func OpenKV(ctx context.Context, cfg config.Config) (repo.KVRepo, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return repo.NewMemoryKVRepo(), func() {}, nil

	case config.DriverPostgres:
		pool, err := repo.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repo.NewPGKVRepo(pool), pool.Close, nil

	case config.DriverSQLite, "":
		db, err := repo.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo.NewSQLKVRepo(db), func() { _ = db.Close() }, nil
	}
	return nil, nil, fmt.Errorf("app.OpenKV: unknown store driver %q", cfg.StoreDriver)
}
