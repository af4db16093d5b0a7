package event

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OTelSink implements Sink by creating OpenTelemetry spans.
//
// This is the Adapter pattern applied to observability: the OpenTelemetry
// Tracer has its own API (Start/End, attributes, status codes) that does
// not match Sink, and OTelSink translates between the two.
//
// Each event becomes a span with:
//   - Span name: event.Msg
//   - Attributes: demo, step, op, and all event.Meta fields
//   - Status: set to error when event.Meta["error"] exists
//
// Spans are ended immediately; events represent points in time rather than
// durations.
//
// Usage:
//
//	tracer := otel.Tracer("gopatterns")
//	sink := event.NewOTelSink(tracer)
type OTelSink struct {
	tracer trace.Tracer
}

// NewOTelSink creates an OTelSink from an OpenTelemetry tracer,
// typically obtained via otel.Tracer("service-name").
func NewOTelSink(tracer trace.Tracer) *OTelSink {
	return &OTelSink{tracer: tracer}
}

// Emit creates an OpenTelemetry span for the event.
func (o *OTelSink) Emit(event Event) {
	ctx := context.Background()
	_, span := o.tracer.Start(ctx, event.Msg)
	defer span.End()

	span.SetAttributes(
		attribute.String("patterns.demo", event.Demo),
		attribute.Int("patterns.step", event.Step),
		attribute.String("patterns.op", event.Op),
	)

	addMetaAttributes(span, event.Meta)

	if errText, ok := event.Meta["error"].(string); ok {
		span.SetStatus(codes.Error, errText)
		span.RecordError(fmt.Errorf("%s", errText))
	}
}

// Flush forces export of all pending spans.
//
// OpenTelemetry typically buffers spans in a batch span processor for
// efficiency; call Flush before shutdown to make sure buffered spans reach
// the backend. Returns nil when the installed provider does not support
// flushing (e.g., the noop provider).
func (o *OTelSink) Flush(ctx context.Context) error {
	tp := otel.GetTracerProvider()

	type flusher interface {
		ForceFlush(context.Context) error
	}

	if f, ok := tp.(flusher); ok {
		return f.ForceFlush(ctx)
	}

	return nil
}

// addMetaAttributes converts event metadata to span attributes.
//
// Handles common types directly; anything else falls back to its string
// representation.
func addMetaAttributes(span trace.Span, meta map[string]interface{}) {
	for key, value := range meta {
		attrKey := "patterns." + key

		switch v := value.(type) {
		case string:
			span.SetAttributes(attribute.String(attrKey, v))
		case int:
			span.SetAttributes(attribute.Int(attrKey, v))
		case int64:
			span.SetAttributes(attribute.Int64(attrKey, v))
		case float64:
			span.SetAttributes(attribute.Float64(attrKey, v))
		case bool:
			span.SetAttributes(attribute.Bool(attrKey, v))
		case time.Duration:
			span.SetAttributes(attribute.Int64(attrKey, int64(v/time.Millisecond)))
		default:
			span.SetAttributes(attribute.String(attrKey, fmt.Sprintf("%v", v)))
		}
	}
}
