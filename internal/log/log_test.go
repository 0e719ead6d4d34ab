package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/tuanvumaihuynh/inventory-service/internal/config"
	"github.com/tuanvumaihuynh/inventory-service/internal/log"
	"github.com/tuanvumaihuynh/inventory-service/pkg/correlationid"
)

func TestNewSlogLoggerWithWriter(t *testing.T) {
	t.Run("Should enrich json records with correlation id", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.NewSlogLoggerWithWriter(config.Log{Format: config.LogFormatJSON, Level: slog.LevelInfo}, &buf)

		ctx := correlationid.NewContext(context.Background(), "corr-42")
		logger.With(slog.String("service", "http")).InfoContext(ctx, "hello", slog.Int("count", 3))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "hello", rec["msg"])
		assert.Equal(t, "corr-42", rec["correlation_id"])
		assert.Equal(t, "http", rec["service"])
		assert.EqualValues(t, 3, rec["count"])
		assert.NotContains(t, rec, "trace_id")
	})

	t.Run("Should enrich records with span context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.NewSlogLoggerWithWriter(config.Log{Format: config.LogFormatJSON, Level: slog.LevelInfo}, &buf)

		ctx, span := sdktrace.NewTracerProvider().Tracer("test").Start(context.Background(), "op")
		defer span.End()
		logger.InfoContext(ctx, "traced")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, span.SpanContext().TraceID().String(), rec["trace_id"])
		assert.Equal(t, span.SpanContext().SpanID().String(), rec["span_id"])
		assert.NotContains(t, rec, "correlation_id")
	})

	t.Run("Should respect level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.NewSlogLoggerWithWriter(config.Log{Format: config.LogFormatJSON, Level: slog.LevelWarn}, &buf)

		logger.Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("Should write text format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.NewSlogLoggerWithWriter(config.Log{Format: config.LogFormatText, Level: slog.LevelInfo}, &buf)

		logger.Info("plain text")
		assert.Contains(t, buf.String(), "plain text")
	})
}
