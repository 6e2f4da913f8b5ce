package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql (migrations)

	"github.com/vocabloom/progress-engine/internal/adapter/memory"
	"github.com/vocabloom/progress-engine/internal/adapter/postgres"
	"github.com/vocabloom/progress-engine/internal/adapter/sqlite"
	"github.com/vocabloom/progress-engine/internal/config"
	"github.com/vocabloom/progress-engine/internal/domain"
	"github.com/vocabloom/progress-engine/internal/service/progress"
)

// App bundles the assembled engine with its teardown.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Service *progress.Service

	closers []func() error
}

// Build loads configuration, initializes the logger, opens the configured
// store backend (running migrations where the backend has them), and
// assembles the progress service.
func Build(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting progress engine",
		slog.String("version", BuildVersion()),
		slog.String("store_backend", cfg.Store.Backend),
		slog.String("profile", cfg.Store.Profile),
	)

	a := &App{Config: cfg, Logger: logger}

	store, err := a.openStore(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	svc, err := progress.NewService(
		logger,
		store,
		nil, // real clock
		cfg.Scheduler.Location,
		cfg.Policy(),
		domain.DefaultCatalog(),
	)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("assemble progress service: %w", err)
	}

	a.Service = svc
	return a, nil
}

// Close releases every resource opened by Build, in reverse order.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.Logger.Warn("close resource", slog.String("error", err.Error()))
		}
	}
}

func (a *App) openStore(ctx context.Context, cfg *config.Config) (progress.Store, error) {
	switch cfg.Store.Backend {
	case "memory":
		return memory.New(), nil

	case "sqlite":
		store, err := sqlite.Open(ctx, cfg.Store.SQLitePath, cfg.Store.Profile)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		a.closers = append(a.closers, store.Close)
		return store, nil

	case "postgres":
		db, err := sql.Open("pgx", cfg.Store.Postgres.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres for migration: %w", err)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		if err := db.Close(); err != nil {
			return nil, fmt.Errorf("close migration connection: %w", err)
		}

		pool, err := postgres.NewPool(ctx, cfg.Store.Postgres)
		if err != nil {
			return nil, fmt.Errorf("create postgres pool: %w", err)
		}
		a.closers = append(a.closers, func() error { pool.Close(); return nil })

		return postgres.NewStore(pool, cfg.Store.Profile)

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
