package telemetry

import (
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// registerProvider sets the global OTel tracer provider so tracers created
// via otel.Tracer pick it up.
func registerProvider(provider *sdktrace.TracerProvider) {
	otel.SetTracerProvider(provider)
}
