package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tuanvumaihuynh/inventory-service/internal/config"
	"github.com/tuanvumaihuynh/inventory-service/internal/repository"
	"github.com/tuanvumaihuynh/inventory-service/internal/repository/repositorytest"
	"github.com/tuanvumaihuynh/inventory-service/internal/storage/mongodb"
)

func getMongoClient(t *testing.T, collection string) *mongodb.Client {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}

	cl, err := mongodb.NewClient(context.Background(), config.Mongo{
		URI:        uri,
		Database:   "inventory_test",
		Collection: collection,
		Timeout:    5 * time.Second,
	})
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}
	return cl
}

func TestMongoInventoryRepository(t *testing.T) {
	getMongoClient(t, "probe").Close(context.Background())

	newRepo := func(t *testing.T) repository.InventoryRepository {
		cl := getMongoClient(t, "inventory_"+uuid.NewString())
		t.Cleanup(func() {
			ctx := context.Background()
			//nolint:errcheck
			cl.Collection().Drop(ctx)
			//nolint:errcheck
			cl.Close(ctx)
		})
		return repository.NewMongoInventoryRepository(cl.Collection())
	}

	repositorytest.RunInventoryRepository(t, newRepo, primitive.NewObjectID().Hex())
}

func TestMongoEnsureCollection(t *testing.T) {
	ctx := context.Background()
	cl := getMongoClient(t, "ensure_"+uuid.NewString())
	defer cl.Close(ctx)
	defer cl.Collection().Drop(ctx) //nolint:errcheck

	require.NoError(t, cl.EnsureCollection(ctx))
	require.NoError(t, cl.EnsureCollection(ctx))

	exists, err := cl.CollectionExists(ctx)
	require.NoError(t, err)
	require.True(t, exists)
}
