package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"time"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"

	"github.com/tuanvumaihuynh/inventory-service/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Client struct {
	*sql.DB
}

// Open opens the SQLite database at cfg.Path, creating the file if needed.
func Open(ctx context.Context, cfg config.SQLite) (*Client, error) {
	db, err := sql.Open("sqlite3", "file:"+cfg.Path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// sqlite serializes writers; a single connection avoids SQLITE_BUSY under load
	db.SetMaxOpenConns(1)

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &Client{DB: db}, nil
}

// Migrate applies all pending migrations and returns the versions applied.
func (c *Client) Migrate(ctx context.Context) ([]int64, error) {
	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open migrations: %w", err)
	}

	provider, err := goose.NewProvider(database.DialectSQLite3, c.DB, fsys)
	if err != nil {
		return nil, fmt.Errorf("create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrate up: %w", err)
	}

	versions := make([]int64, 0, len(results))
	for _, res := range results {
		versions = append(versions, res.Source.Version)
	}

	return versions, nil
}

func (c *Client) IsHealthy(ctx context.Context) (bool, error) {
	if err := c.PingContext(ctx); err != nil {
		return false, fmt.Errorf("ping sqlite: %w", err)
	}
	return true, nil
}
