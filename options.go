package prosemirror

import (
	"log/slog"

	"github.com/alexandresalome/react-prosemirror/nodekey"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a NodeViews binder.
type Option func(*config)

// config holds configuration for a NodeViews instance.
type config struct {
	logger        *slog.Logger
	tracer        trace.Tracer
	meterProvider metric.MeterProvider
	keyFunc       func() nodekey.Key
}

// WithLogger sets a custom logger for the binder.
// If not provided, log output is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer for distributed tracing.
// When set, every key map pass runs inside a span.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) {
		c.tracer = tracer
	}
}

// WithMeterProvider sets an OpenTelemetry meter provider.
// When set, per-pass key counts are recorded as counters.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// WithKeyFunc replaces the key generator used by the binder's registry.
// Intended for deterministic keys in tests.
func WithKeyFunc(fn func() nodekey.Key) Option {
	return func(c *config) {
		c.keyFunc = fn
	}
}
