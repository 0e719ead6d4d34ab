package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-service/internal/config"
	"github.com/tuanvumaihuynh/inventory-service/internal/storage/sqlite"
)

func TestOpenAndMigrate(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "inventory.db")

	cl, err := sqlite.Open(ctx, config.SQLite{Path: path})
	require.NoError(t, err)
	defer cl.Close()

	healthy, err := cl.IsHealthy(ctx)
	require.NoError(t, err)
	assert.True(t, healthy)

	t.Run("Should apply migrations once", func(t *testing.T) {
		versions, err := cl.Migrate(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, versions)

		versions, err = cl.Migrate(ctx)
		require.NoError(t, err)
		assert.Empty(t, versions)
	})

	t.Run("Should enforce non-negative quantity", func(t *testing.T) {
		_, err := cl.ExecContext(ctx, `INSERT INTO inventory (id, name, quantity, price) VALUES ('x', 'n', -1, 1)`)
		assert.Error(t, err)
	})
}
