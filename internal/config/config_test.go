package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/inventory-service/internal/config"
)

func TestNew(t *testing.T) {
	type Config struct {
		Log   config.Log
		HTTP  config.HTTP
		Store config.Store
		Kafka config.Kafka
	}

	t.Run("Should apply defaults", func(t *testing.T) {
		cfg, err := config.New[Config]()
		require.NoError(t, err)

		assert.Equal(t, config.LogFormatJSON, cfg.Log.Format)
		assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
		assert.Equal(t, uint32(8000), cfg.HTTP.Port)
		assert.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowedOrigins)
		assert.Equal(t, config.StoreDriverMongo, cfg.Store.Driver)
		assert.Equal(t, "mongodb://localhost:27017", cfg.Store.Mongo.URI)
		assert.Equal(t, "inventory", cfg.Store.Mongo.Database)
		assert.Equal(t, "inventory", cfg.Store.Mongo.Collection)
		assert.Equal(t, 10*time.Second, cfg.Store.Mongo.Timeout)
		assert.False(t, cfg.Kafka.Enabled())
		assert.Equal(t, "inventory.changed", cfg.Kafka.InventoryTopic)
		assert.Equal(t, 5*time.Second, cfg.Kafka.PublishTimeout)
	})

	t.Run("Should read environment", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "text")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("STORE_DRIVER", "postgres")
		t.Setenv("MONGO_URI", "mongodb://db:27017")
		t.Setenv("MONGO_COLLECTION", "items")
		t.Setenv("POSTGRES_PORT", "6543")
		t.Setenv("KAFKA_ADDRESSES", "k1:9092,k2:9092")
		t.Setenv("HTTP_CORS_ALLOWED_ORIGINS", "http://a,http://b")

		cfg, err := config.New[Config]()
		require.NoError(t, err)

		assert.Equal(t, config.LogFormatText, cfg.Log.Format)
		assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
		assert.Equal(t, config.StoreDriverPostgres, cfg.Store.Driver)
		assert.Equal(t, "mongodb://db:27017", cfg.Store.Mongo.URI)
		assert.Equal(t, "items", cfg.Store.Mongo.Collection)
		assert.Equal(t, 6543, cfg.Store.Postgres.Port)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Addresses)
		assert.True(t, cfg.Kafka.Enabled())
		assert.Equal(t, []string{"http://a", "http://b"}, cfg.HTTP.CORSAllowedOrigins)
	})

	t.Run("Should reject unknown store driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "cassandra")

		_, err := config.New[Config]()
		assert.ErrorContains(t, err, "unknown store driver")
	})

	t.Run("Should reject unknown log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")

		_, err := config.New[Config]()
		assert.ErrorContains(t, err, "unknown log format")
	})
}

func TestStoreDriverText(t *testing.T) {
	for _, d := range []config.StoreDriver{config.StoreDriverMongo, config.StoreDriverPostgres, config.StoreDriverSQLite} {
		text, err := d.MarshalText()
		require.NoError(t, err)

		var got config.StoreDriver
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, d, got)
	}
}
