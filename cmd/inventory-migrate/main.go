package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tuanvumaihuynh/inventory-service/internal/config"
	"github.com/tuanvumaihuynh/inventory-service/internal/log"
	"github.com/tuanvumaihuynh/inventory-service/internal/storage/db"
	"github.com/tuanvumaihuynh/inventory-service/internal/storage/mongodb"
	"github.com/tuanvumaihuynh/inventory-service/internal/storage/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running migrate application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log   config.Log
		Store config.Store
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log).With(slog.String("driver", cfg.Store.Driver.String()))

	logger.InfoContext(ctx, "starting store migration")

	var applied []int64
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pgxPool, err := db.NewPgxPool(ctx, cfg.Store.Postgres)
		if err != nil {
			return fmt.Errorf("error creating pgx pool: %w", err)
		}
		defer pgxPool.Close()

		if applied, err = db.Migrate(ctx, pgxPool); err != nil {
			return fmt.Errorf("error migrating postgres: %w", err)
		}

	case config.StoreDriverSQLite:
		cl, err := sqlite.Open(ctx, cfg.Store.SQLite)
		if err != nil {
			return fmt.Errorf("error opening sqlite: %w", err)
		}
		defer cl.Close()

		if applied, err = cl.Migrate(ctx); err != nil {
			return fmt.Errorf("error migrating sqlite: %w", err)
		}

	case config.StoreDriverMongo:
		cl, err := mongodb.NewClient(ctx, cfg.Store.Mongo)
		if err != nil {
			return fmt.Errorf("error creating mongo client: %w", err)
		}
		defer cl.Close(ctx)

		if err := cl.EnsureCollection(ctx); err != nil {
			return fmt.Errorf("error ensuring mongo collection: %w", err)
		}

	default:
		return fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}

	logger.InfoContext(ctx, "store migration completed successfully", slog.Any("applied_versions", applied))

	return nil
}
