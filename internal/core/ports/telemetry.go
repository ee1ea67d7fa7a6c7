package ports

import "context"

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// SpanConfig holds configuration for a starting span.
type SpanConfig struct {
	// NodeID is recorded on the span when the interaction targets a node.
	NodeID string
}

// SpanOption is a functional option for configuring a span.
type SpanOption func(*SpanConfig)

// WithNodeID tags the span with the node an interaction targets.
func WithNodeID(id string) SpanOption {
	return func(c *SpanConfig) {
		c.NodeID = id
	}
}
