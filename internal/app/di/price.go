// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"pricing_backend/internal/app/config"
	"pricing_backend/internal/feature/pricing/adapters"
	"pricing_backend/internal/feature/pricing/seed"
	"pricing_backend/internal/platform/db"
)

// PriceStore is what the server and the ingest command need from a store backend.
type PriceStore interface {
	adapters.PriceReadWriter
	Ping(ctx context.Context) error
}

// NewPriceStore opens the backend selected by cfg.StoreBackend.
// The returned close function releases the underlying connections.
func NewPriceStore(ctx context.Context, cfg config.Config) (PriceStore, func(), error) {
	var (
		store   PriceStore
		closeFn = func() {}
	)

	switch cfg.StoreBackend {
	case config.BackendMemory:
		store = adapters.NewPriceMemory()

	case config.BackendPgx:
		pool, err := pgxpool.New(ctx, cfg.DB.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect pgx pool: %w", err)
		}
		repo := adapters.NewPricePgx(pool)
		if cfg.RunMigrations {
			if err := repo.EnsureSchema(ctx); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		store, closeFn = repo, pool.Close

	default:
		gdb, err := db.Open(cfg.DB, cfg.ConnTimeout, cfg.RunMigrations, &adapters.PriceModel{})
		if err != nil {
			return nil, nil, err
		}
		if sqlDB, err := gdb.DB(); err == nil {
			closeFn = func() { _ = sqlDB.Close() }
		}
		store = adapters.NewPriceRepository(gdb)
	}

	if cfg.SeedReference {
		if err := store.UpsertBatch(ctx, seed.Reference()); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("seed reference prices: %w", err)
		}
	}
	return store, closeFn, nil
}
