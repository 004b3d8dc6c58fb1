package nodekey

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Registry owns the key map across the lifetime of one host editor state.
//
// Each Registry carries a UUID seed minted at construction. A new registry
// means a new seed and an entirely new set of keys; consumers can compare
// seeds to detect that downstream caches keyed by node identity must be
// invalidated.
//
// A Registry is not safe for concurrent use. The host editor serializes
// edits and lookups on one logical timeline, so Init and Apply run to
// completion on the calling goroutine with no locking; the state swap at
// the end of each pass is the only mutation. Context parameters carry
// trace correlation only and are never consulted for cancellation.
type Registry struct {
	seed    string
	logger  *slog.Logger
	tracer  trace.Tracer
	newKey  func() Key
	metrics *registryMetrics
	state   *State
}

// Option configures a Registry.
type Option func(*config)

// config holds configuration for a Registry instance.
type config struct {
	logger        *slog.Logger
	tracer        trace.Tracer
	meterProvider metric.MeterProvider
	keyFunc       func() Key
}

// WithLogger sets a custom logger for the registry.
// If not provided, a default logger will be created.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer for the registry.
// When set, Init and Apply run inside spans carrying per-pass counts.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) {
		c.tracer = tracer
	}
}

// WithMeterProvider sets an OpenTelemetry meter provider for the registry.
// When set, per-pass key counts are recorded as counters.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

// WithKeyFunc replaces the key generator. Intended for deterministic keys
// in tests; production registries use NewKey.
func WithKeyFunc(fn func() Key) Option {
	return func(c *config) {
		c.keyFunc = fn
	}
}

// New creates a registry with a fresh seed and no key map. Call Init (or
// Apply, which falls back to Init) to build the map for a first snapshot.
func New(opts ...Option) *Registry {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	if cfg.keyFunc == nil {
		cfg.keyFunc = NewKey
	}

	r := &Registry{
		seed:   uuid.New().String(),
		logger: cfg.logger,
		tracer: cfg.tracer,
		newKey: cfg.keyFunc,
	}

	if cfg.meterProvider != nil {
		meter := cfg.meterProvider.Meter("github.com/alexandresalome/react-prosemirror/nodekey")
		metrics, err := newRegistryMetrics(meter)
		if err != nil {
			cfg.logger.Warn("failed to create metric instruments", "error", err)
		} else {
			r.metrics = metrics
		}
	}

	return r
}

// Seed returns the registry's lifetime identity.
func (r *Registry) Seed() string {
	return r.seed
}

// State returns the key map for the current document version, or nil before
// the first Init.
func (r *Registry) State() *State {
	return r.state
}

// Init builds the key map for a document snapshot, replacing any previous
// map. Every structural node receives a newly minted key.
func (r *Registry) Init(ctx context.Context, doc Doc) *State {
	var span trace.Span
	if r.tracer != nil {
		ctx, span = r.tracer.Start(ctx, "nodekey.initialize")
		defer span.End()
	}

	st, stats := initialize(doc, r.newKey)
	r.state = st

	if span != nil {
		span.SetAttributes(
			attribute.Int("nodekey.nodes", stats.nodes),
			attribute.Int("nodekey.keys_minted", stats.minted),
		)
	}
	r.recordPass(ctx, stats)

	r.logger.Info("node key map initialized",
		slog.String("seed", r.seed),
		slog.Int("nodes", stats.nodes),
	)
	return st
}

// Apply advances the key map across one edit, swapping in the map for the
// new document version and returning it.
//
// On a registry that was never initialized, Apply initializes against the
// snapshot instead. An edit that did not change the document returns the
// current map unchanged.
func (r *Registry) Apply(ctx context.Context, change Change, doc Doc) *State {
	if r.state == nil {
		return r.Init(ctx, doc)
	}
	if change == nil || !change.DocChanged() {
		return r.state
	}

	var span trace.Span
	if r.tracer != nil {
		ctx, span = r.tracer.Start(ctx, "nodekey.reconcile")
		defer span.End()
	}

	next, stats := reconcile(change, r.state, doc, r.newKey)
	r.state = next

	if span != nil {
		span.SetAttributes(
			attribute.Int("nodekey.nodes", stats.nodes),
			attribute.Int("nodekey.keys_preserved", stats.preserved),
			attribute.Int("nodekey.keys_minted", stats.minted),
			attribute.Int("nodekey.key_collisions", stats.collided),
		)
	}
	r.recordPass(ctx, stats)

	r.logger.Debug("node key map reconciled",
		slog.Int("nodes", stats.nodes),
		slog.Int("preserved", stats.preserved),
		slog.Int("minted", stats.minted),
		slog.Int("collisions", stats.collided),
	)
	return next
}

// registryMetrics holds the OpenTelemetry metric instruments for the
// registry. These are created once in New and reused for every pass.
type registryMetrics struct {
	// passCounter increments for each initialize or reconcile pass
	passCounter metric.Int64Counter

	// preservedCounter counts keys carried over unchanged across edits
	preservedCounter metric.Int64Counter

	// mintedCounter counts freshly generated keys
	mintedCounter metric.Int64Counter

	// collisionCounter counts keys discarded because an earlier node in
	// the same pass already claimed them
	collisionCounter metric.Int64Counter
}

// newRegistryMetrics creates and initializes all metric instruments.
func newRegistryMetrics(meter metric.Meter) (*registryMetrics, error) {
	metrics := &registryMetrics{}
	var err error

	metrics.passCounter, err = meter.Int64Counter(
		"nodekey.passes",
		metric.WithDescription("Number of key map build passes performed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create pass counter: %w", err)
	}

	metrics.preservedCounter, err = meter.Int64Counter(
		"nodekey.keys.preserved",
		metric.WithDescription("Keys preserved verbatim across an edit"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create preserved counter: %w", err)
	}

	metrics.mintedCounter, err = meter.Int64Counter(
		"nodekey.keys.minted",
		metric.WithDescription("Keys freshly minted for new, duplicated, or initial nodes"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create minted counter: %w", err)
	}

	metrics.collisionCounter, err = meter.Int64Counter(
		"nodekey.keys.collisions",
		metric.WithDescription("Prior keys discarded because a node earlier in the pass claimed them"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create collision counter: %w", err)
	}

	return metrics, nil
}

// recordPass records one pass's counts. Skips silently when no meter is
// configured.
func (r *Registry) recordPass(ctx context.Context, stats passStats) {
	if r.metrics == nil {
		return
	}
	r.metrics.passCounter.Add(ctx, 1)
	r.metrics.preservedCounter.Add(ctx, int64(stats.preserved))
	r.metrics.mintedCounter.Add(ctx, int64(stats.minted))
	r.metrics.collisionCounter.Add(ctx, int64(stats.collided))
}
