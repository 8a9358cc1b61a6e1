package service

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "soulsync-api/service"

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// observe attaches v as the Langfuse observation input or output of span.
func observe(span trace.Span, kind string, v any) {
	if b, err := json.Marshal(v); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation."+kind, string(b)))
	}
}
