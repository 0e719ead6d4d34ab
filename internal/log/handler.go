package log

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/tuanvumaihuynh/inventory-service/pkg/correlationid"
)

var _ slog.Handler = enrichedHandler{}

// contextAttrs extracts request scoped attributes carried by ctx. HTTP requests
// and consumed Kafka records both populate the same context values.
type contextAttrs func(ctx context.Context) []slog.Attr

func correlationAttrs(ctx context.Context) []slog.Attr {
	id, ok := correlationid.FromContext(ctx)
	if !ok {
		return nil
	}
	return []slog.Attr{slog.String("correlation_id", id)}
}

func traceAttrs(ctx context.Context) []slog.Attr {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return nil
	}
	return []slog.Attr{
		slog.String("trace_id", spanCtx.TraceID().String()),
		slog.String("span_id", spanCtx.SpanID().String()),
	}
}

type enrichedHandler struct {
	h     slog.Handler
	attrs []contextAttrs
}

func newEnrichedHandler(h slog.Handler) enrichedHandler {
	return enrichedHandler{h: h, attrs: []contextAttrs{correlationAttrs, traceAttrs}}
}

func (eh enrichedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return eh.h.Enabled(ctx, level)
}

func (eh enrichedHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, extract := range eh.attrs {
		r.AddAttrs(extract(ctx)...)
	}
	return eh.h.Handle(ctx, r)
}

func (eh enrichedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return enrichedHandler{h: eh.h.WithAttrs(attrs), attrs: eh.attrs}
}

func (eh enrichedHandler) WithGroup(name string) slog.Handler {
	return enrichedHandler{h: eh.h.WithGroup(name), attrs: eh.attrs}
}
