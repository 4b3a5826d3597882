package telemetry

import (
	"context"
	"fmt"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.refold.dev/refold/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor, forwarding finished span timings
// to the reporter's verbose channel.
type Bridge struct {
	reporter ports.Reporter
}

// NewBridge returns a new Bridge.
func NewBridge(reporter ports.Reporter) *Bridge {
	return &Bridge{reporter: reporter}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd reports the span duration.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.reporter == nil {
		return
	}
	elapsed := s.EndTime().Sub(s.StartTime())
	b.reporter.Verbose(fmt.Sprintf("%s completed in %s", s.Name(), elapsed.Round(time.Millisecond)))
}

// ForceFlush does nothing; spans are reported synchronously on end.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// NewProvider installs a tracer provider whose spans feed the given reporter
// and registers it globally for OTelTracer.
func NewProvider(reporter ports.Reporter) *sdktrace.TracerProvider {
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(NewBridge(reporter)))
	registerProvider(provider)
	return provider
}
