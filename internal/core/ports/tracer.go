package ports

import "context"

// Span is one timed phase of a resolve.
type Span interface {
	// End completes the span.
	End()
	// RecordError attaches an error to the span.
	RecordError(err error)
	// SetAttribute attaches a key/value pair to the span.
	SetAttribute(key string, value any)
}

// Tracer creates spans around resolve phases so their durations can surface
// through the diagnostic channel.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	Start(ctx context.Context, name string) (context.Context, Span)
}
