package repository

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/inventory-service/internal/config"
	"github.com/tuanvumaihuynh/inventory-service/internal/storage/db"
	"github.com/tuanvumaihuynh/inventory-service/internal/storage/mongodb"
	"github.com/tuanvumaihuynh/inventory-service/internal/storage/sqlite"
)

type HealthChecker interface {
	IsHealthy(ctx context.Context) (bool, error)
}

// Store is an opened inventory store backend.
type Store struct {
	Inventory InventoryRepository
	Health    HealthChecker
	Driver    config.StoreDriver

	close func(ctx context.Context) error
}

// Close releases the underlying connections.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.Store) (*Store, error) {
	switch cfg.Driver {
	case config.StoreDriverMongo:
		cl, err := mongodb.NewClient(ctx, cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("create mongo client: %w", err)
		}

		return &Store{
			Inventory: NewMongoInventoryRepository(cl.Collection()),
			Health:    cl,
			Driver:    cfg.Driver,
			close:     cl.Close,
		}, nil

	case config.StoreDriverPostgres:
		pool, err := db.NewPgxPool(ctx, cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("create pgx pool: %w", err)
		}

		dbClient := db.NewClient(pool)
		return &Store{
			Inventory: NewPostgresInventoryRepository(dbClient),
			Health:    dbClient,
			Driver:    cfg.Driver,
			close:     dbClient.Close,
		}, nil

	case config.StoreDriverSQLite:
		cl, err := sqlite.Open(ctx, cfg.SQLite)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}

		// the embedded store is self-contained, so its schema is applied on open
		if _, err := cl.Migrate(ctx); err != nil {
			cl.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}

		return &Store{
			Inventory: NewSQLiteInventoryRepository(cl.DB),
			Health:    cl,
			Driver:    cfg.Driver,
			close: func(context.Context) error {
				return cl.Close()
			},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.Driver)
	}
}
