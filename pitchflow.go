// Package pitchflow provides a top-level convenience entry point for creating
// a fully wired conversation engine with minimal boilerplate.
//
// Usage:
//
//	import "github.com/pitchflow/pitchflow"
//
//	eng, err := pitchflow.New()
//	eng, err := pitchflow.New(pitchflow.WithStrategy(config.TransactionalStrategy()))
//	eng, err := pitchflow.New(pitchflow.WithLogger(logger), pitchflow.WithMetrics(reg, "pitchflow"))
//
// Every call builds an independent engine with independent configuration and
// session state; there is no hidden global instance.
package pitchflow

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/pitchflow/pitchflow/config"
	"github.com/pitchflow/pitchflow/engine"
	"github.com/pitchflow/pitchflow/fuzzy"
	"github.com/pitchflow/pitchflow/internal/metrics"
	"github.com/pitchflow/pitchflow/phase"
	"github.com/pitchflow/pitchflow/router"
	"github.com/pitchflow/pitchflow/tracker"
	"github.com/pitchflow/pitchflow/validator"
)

// Option configures the engine created by [New].
type Option func(*options)

type options struct {
	strategy  *config.StrategyConfig
	logger    *zap.Logger
	registry  prometheus.Registerer
	namespace string
	now       func() time.Time
}

// WithStrategy sets the conversation strategy. Defaults to
// [config.DefaultStrategy].
func WithStrategy(cfg *config.StrategyConfig) Option {
	return func(o *options) { o.strategy = cfg }
}

// WithLogger sets a custom zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics enables prometheus metrics on the given registerer.
func WithMetrics(reg prometheus.Registerer, namespace string) Option {
	return func(o *options) {
		o.registry = reg
		o.namespace = namespace
	}
}

// WithClock overrides the engine clock. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New creates a conversation engine with the given options.
func New(opts ...Option) (*engine.Engine, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.strategy == nil {
		o.strategy = config.DefaultStrategy()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	cfg := o.strategy.Clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tr := tracker.New(tracker.Config{FirstPhase: cfg.FirstPhase(), Now: o.now}, o.logger)
	matcher, err := fuzzy.NewMatcher(cfg, o.logger)
	if err != nil {
		return nil, err
	}
	val := validator.New(cfg, o.logger)
	pm := phase.NewManager(cfg, tr, o.logger)
	rt := router.New(cfg, pm, tr, val, o.logger)

	var collector *metrics.Collector
	if o.registry != nil {
		collector = metrics.NewCollector(o.namespace, o.registry, o.logger)
	}

	return engine.New(cfg, engine.Options{
		Tracker:   tr,
		Matcher:   matcher,
		Validator: val,
		Phases:    pm,
		Router:    rt,
		Metrics:   collector,
		Logger:    o.logger,
		Now:       o.now,
	}), nil
}
