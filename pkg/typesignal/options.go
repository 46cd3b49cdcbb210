package typesignal

import (
	"context"
	"log/slog"

	"github.com/randalmurphal/typesignal/pkg/typesignal/observability"
)

// Option configures a Hub.
type Option func(*Hub)

// WithLogger sets the logger for declaration, connection and emission
// records. Default: nil (silent).
func WithLogger(logger *slog.Logger) Option {
	return func(h *Hub) {
		h.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics through the global meter
// provider. Default: false.
func WithMetrics(enabled bool) Option {
	return func(h *Hub) {
		if enabled {
			h.metrics = observability.NewMetricsRecorder()
		} else {
			h.metrics = observability.NoopMetrics{}
		}
	}
}

// WithMetricsRecorder sets a custom metrics recorder. Nil is ignored.
func WithMetricsRecorder(m observability.MetricsRecorder) Option {
	return func(h *Hub) {
		if m != nil {
			h.metrics = m
		}
	}
}

// WithTracing enables one OpenTelemetry span per emission through the
// global tracer provider. Default: false.
func WithTracing(enabled bool) Option {
	return func(h *Hub) {
		if enabled {
			h.spans = observability.NewSpanManager()
		} else {
			h.spans = observability.NoopSpanManager{}
		}
	}
}

// WithSpanManager sets a custom span manager. Nil is ignored.
func WithSpanManager(s observability.SpanManager) Option {
	return func(h *Hub) {
		if s != nil {
			h.spans = s
		}
	}
}

type emitConfig struct {
	senders   []any
	condition bool
	payload   map[string]any
	ctx       context.Context
}

func newEmitConfig(opts []EmitOption) emitConfig {
	cfg := emitConfig{
		condition: true,
		payload:   make(map[string]any),
		ctx:       context.Background(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// EmitOption configures one emission.
type EmitOption func(*emitConfig)

// WithSenders replaces the default sender (the type or the instance).
func WithSenders(senders ...any) EmitOption {
	return func(c *emitConfig) {
		c.senders = append(c.senders, senders...)
	}
}

// When makes the emission conditional. When(false) turns the call into a
// no-op that performs no lookup and returns nil.
func When(condition bool) EmitOption {
	return func(c *emitConfig) {
		c.condition = condition
	}
}

// WithPayload merges values into the payload.
func WithPayload(payload map[string]any) EmitOption {
	return func(c *emitConfig) {
		for k, v := range payload {
			c.payload[k] = v
		}
	}
}

// WithValue sets one payload value.
func WithValue(key string, value any) EmitOption {
	return func(c *emitConfig) {
		c.payload[key] = value
	}
}

// WithContext sets the context handed to handlers. Nil is ignored.
func WithContext(ctx context.Context) EmitOption {
	return func(c *emitConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}
