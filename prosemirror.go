package prosemirror

import (
	"io"
	"log/slog"

	"github.com/alexandresalome/react-prosemirror/nodekey"
	"github.com/alexandresalome/react-prosemirror/nodeview"
)

// New creates a node view binder with an empty view table and a fresh key
// registry. The registry mints its own UUID seed, so every binder starts
// with an identity of its own.
//
// Example:
//
//	views := prosemirror.New(
//	    prosemirror.WithLogger(logger),
//	    prosemirror.WithTracer(tracer),
//	)
//	views.Init(ctx, doc)
func New(opts ...Option) *NodeViews {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return &NodeViews{
		views: nodeview.NewRegistry(),
		keys:  nodekey.New(cfg.registryOptions()...),
	}
}

// registryOptions converts the binder configuration to nodekey options.
// This bridges the public facade API with the nodekey package
// implementation.
func (c *config) registryOptions() []nodekey.Option {
	logger := c.logger
	if logger == nil {
		// The binder is embedded in a host editor; without an explicit
		// logger it stays silent rather than writing to the host's stdout.
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	opts := []nodekey.Option{nodekey.WithLogger(logger)}
	if c.tracer != nil {
		opts = append(opts, nodekey.WithTracer(c.tracer))
	}
	if c.meterProvider != nil {
		opts = append(opts, nodekey.WithMeterProvider(c.meterProvider))
	}
	if c.keyFunc != nil {
		opts = append(opts, nodekey.WithKeyFunc(c.keyFunc))
	}
	return opts
}
