package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"

	"github.com/tuanvumaihuynh/inventory-service/internal/config"
)

type Client struct {
	*mongo.Client
	cfg config.Mongo
}

// NewClient connects to MongoDB with the given configuration and verifies the
// connection with a ping.
func NewClient(ctx context.Context, cfg config.Mongo) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetTimeout(cfg.Timeout).
		SetMonitor(otelmongo.NewMonitor())

	cl, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := cl.Ping(pingCtx, readpref.Primary()); err != nil {
		//nolint:errcheck
		cl.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Client{Client: cl, cfg: cfg}, nil
}

// Collection returns the configured inventory collection.
func (c *Client) Collection() *mongo.Collection {
	return c.Database(c.cfg.Database).Collection(c.cfg.Collection)
}

// EnsureCollection creates the configured collection if it does not exist yet.
func (c *Client) EnsureCollection(ctx context.Context) error {
	err := c.Database(c.cfg.Database).CreateCollection(ctx, c.cfg.Collection)
	if err == nil {
		return nil
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Name == "NamespaceExists" {
		return nil
	}

	return fmt.Errorf("create collection: %w", err)
}

// CollectionExists reports whether the configured collection exists.
func (c *Client) CollectionExists(ctx context.Context) (bool, error) {
	names, err := c.Database(c.cfg.Database).ListCollectionNames(ctx, bson.M{"name": c.cfg.Collection})
	if err != nil {
		return false, fmt.Errorf("list collections: %w", err)
	}
	return len(names) > 0, nil
}

func (c *Client) IsHealthy(ctx context.Context) (bool, error) {
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		return false, fmt.Errorf("ping mongo: %w", err)
	}
	return true, nil
}

func (c *Client) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return c.Disconnect(ctx)
}
