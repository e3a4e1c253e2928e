// SPDX-License-Identifier: MIT

// Package telemetry owns the OpenTelemetry tracer and meter shared by the
// ugraph traversal and query packages.
//
// Spans and instruments are taken from the global providers, so nothing is
// exported until the host program installs an SDK (otel.SetTracerProvider,
// otel.SetMeterProvider). Without one every call is a no-op.
package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies ugraph spans and metrics.
const InstrumentationName = "github.com/katalvlaran/ugraph"

// Package-level meter for graph query instruments. The tracer is looked up
// per query so that a provider swapped in later is honored.
var meter = otel.Meter(InstrumentationName)

// Metrics for traversal and query operations.
var (
	queryLatency metric.Float64Histogram
	queryTotal   metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		queryLatency, err = meter.Float64Histogram(
			"ugraph_query_duration_seconds",
			metric.WithDescription("Duration of graph traversal and query operations"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		queryTotal, err = meter.Int64Counter(
			"ugraph_query_total",
			metric.WithDescription("Total number of graph traversal and query operations"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// Finish ends a query started by StartQuery. resultCount is the size of the
// produced result (visited vertices, path length, components); err is the
// error returned to the caller, if any.
type Finish func(resultCount int, err error)

// StartQuery opens a span named queryType (e.g. "bfs.BFS") carrying the
// start vertex, and returns the derived context plus the Finish func that
// closes the span and records latency and count.
func StartQuery(ctx context.Context, queryType, start string) (context.Context, Finish) {
	if ctx == nil {
		ctx = context.Background()
	}
	began := time.Now()
	ctx, span := otel.Tracer(InstrumentationName).Start(ctx, queryType,
		trace.WithAttributes(
			attribute.String("graph.query_type", queryType),
			attribute.String("graph.start", start),
		),
	)

	return ctx, func(resultCount int, err error) {
		span.SetAttributes(attribute.Int("graph.result_count", resultCount))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		recordQueryMetrics(ctx, queryType, time.Since(began), err == nil)
	}
}

// recordQueryMetrics records metrics for a query operation.
func recordQueryMetrics(ctx context.Context, queryType string, duration time.Duration, success bool) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("query_type", queryType),
		attribute.Bool("success", success),
	)
	queryLatency.Record(ctx, duration.Seconds(), attrs)
	queryTotal.Add(ctx, 1, attrs)
}
