package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the query surface the Postgres inventory repository needs. Both
// *pgxpool.Pool and pgx.Tx satisfy it.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ DB = (*Client)(nil)
	_ DB = (pgx.Tx)(nil)
)

// Client is a pgx pool that also reports store health.
type Client struct {
	*pgxpool.Pool
}

func NewClient(pool *pgxpool.Pool) *Client {
	return &Client{Pool: pool}
}

// IsHealthy pings one pooled connection.
func (c *Client) IsHealthy(ctx context.Context) (bool, error) {
	if err := c.Ping(ctx); err != nil {
		return false, fmt.Errorf("ping postgres: %w", err)
	}
	return true, nil
}

// Close releases every pooled connection. The context is accepted so Client
// matches the close signature of the other stores.
func (c *Client) Close(context.Context) error {
	c.Pool.Close()
	return nil
}
