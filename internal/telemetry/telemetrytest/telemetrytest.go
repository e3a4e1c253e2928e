// Package telemetrytest installs in-memory OpenTelemetry SDK providers for
// tests of packages instrumented through internal/telemetry.
package telemetrytest

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// Install sets recording tracer and meter providers as the otel globals and
// registers a cleanup that shuts them down and restores the previous
// globals. Tests using it must not run in parallel.
func Install(tb testing.TB) (*tracetest.SpanRecorder, *sdkmetric.ManualReader) {
	tb.Helper()

	prevTP := otel.GetTracerProvider()
	prevMP := otel.GetMeterProvider()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	tb.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetMeterProvider(prevMP)
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})

	return recorder, reader
}
