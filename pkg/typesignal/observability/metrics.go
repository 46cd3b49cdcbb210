package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records typesignal metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordEmit records one emission with the number of receivers it reached
	// on the originating channel.
	RecordEmit(ctx context.Context, typeName, signal string, receivers int, duration time.Duration)

	// RecordConnect records a handler connection.
	RecordConnect(ctx context.Context, scope, signal string)

	// RecordDeclare records a declaration pass over a type.
	RecordDeclare(ctx context.Context, typeName string, signals int)

	// RecordUndefined records a connect or emit that failed with an
	// undefined signal.
	RecordUndefined(ctx context.Context, typeName, signal string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	emissions    metric.Int64Counter
	emitLatency  metric.Float64Histogram
	receivers    metric.Int64Histogram
	connections  metric.Int64Counter
	declarations metric.Int64Counter
	undefined    metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("typesignal")

	emissions, err := meter.Int64Counter("typesignal.emissions",
		metric.WithDescription("Number of signal emissions"),
	)
	if err != nil {
		return nil, err
	}

	emitLatency, err := meter.Float64Histogram("typesignal.emit.latency_ms",
		metric.WithDescription("Synchronous fan-out latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	receivers, err := meter.Int64Histogram("typesignal.emit.receivers",
		metric.WithDescription("Receivers reached on the originating channel"),
	)
	if err != nil {
		return nil, err
	}

	connections, err := meter.Int64Counter("typesignal.connections",
		metric.WithDescription("Number of handler connections"),
	)
	if err != nil {
		return nil, err
	}

	declarations, err := meter.Int64Counter("typesignal.declarations",
		metric.WithDescription("Number of declaration passes"),
	)
	if err != nil {
		return nil, err
	}

	undefined, err := meter.Int64Counter("typesignal.undefined",
		metric.WithDescription("Connects or emits against undefined signals"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		emissions:    emissions,
		emitLatency:  emitLatency,
		receivers:    receivers,
		connections:  connections,
		declarations: declarations,
		undefined:    undefined,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordEmit records an emission.
func (m *otelMetrics) RecordEmit(ctx context.Context, typeName, signal string, receivers int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("type", typeName),
		attribute.String("signal", signal),
	)
	m.emissions.Add(ctx, 1, attrs)
	m.emitLatency.Record(ctx, Milliseconds(duration), attrs)
	m.receivers.Record(ctx, int64(receivers), attrs)
}

// RecordConnect records a handler connection.
func (m *otelMetrics) RecordConnect(ctx context.Context, scope, signal string) {
	m.connections.Add(ctx, 1, metric.WithAttributes(
		attribute.String("scope", scope),
		attribute.String("signal", signal),
	))
}

// RecordDeclare records a declaration pass.
func (m *otelMetrics) RecordDeclare(ctx context.Context, typeName string, signals int) {
	m.declarations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", typeName),
		attribute.Int("signals", signals),
	))
}

// RecordUndefined records an undefined-signal failure.
func (m *otelMetrics) RecordUndefined(ctx context.Context, typeName, signal string) {
	m.undefined.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", typeName),
		attribute.String("signal", signal),
	))
}
