package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Collector records engine-level metrics. A nil *Collector is valid and
// records nothing, so metrics stay optional for library consumers.
type Collector struct {
	turnsTotal       *prometheus.CounterVec
	turnDuration     *prometheus.HistogramVec
	phaseAdvances    *prometheus.CounterVec
	objectionsTotal  *prometheus.CounterVec
	probesTotal      *prometheus.CounterVec
	sessionsResets   prometheus.Counter
	commitmentLevels *prometheus.HistogramVec

	logger *zap.Logger
}

// NewCollector creates a collector and registers its metrics with reg.
func NewCollector(namespace string, reg prometheus.Registerer, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	factory := prometheus.WrapRegistererWith(nil, reg)

	c := &Collector{
		turnsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "turns_total",
				Help:      "Total conversation turns by action taken",
			},
			[]string{"action"},
		),
		turnDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "turn_duration_seconds",
				Help:      "Turn processing duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"action"},
		),
		phaseAdvances: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "phase_advances_total",
				Help:      "Total phase advancements by destination phase",
			},
			[]string{"phase"},
		),
		objectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "objection_signals_total",
				Help:      "Total detected objection signals by type",
			},
			[]string{"type"},
		),
		probesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "probes_total",
				Help:      "Total probe questions issued by probe type",
			},
			[]string{"probe_type"},
		),
		sessionsResets: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "session_resets_total",
				Help:      "Total session resets",
			},
		),
		commitmentLevels: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "commitment_temperature",
				Help:      "Commitment temperature observed after each turn",
				Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
			},
			[]string{"phase"},
		),
		logger: logger.With(zap.String("component", "metrics")),
	}

	factory.MustRegister(
		c.turnsTotal,
		c.turnDuration,
		c.phaseAdvances,
		c.objectionsTotal,
		c.probesTotal,
		c.sessionsResets,
		c.commitmentLevels,
	)
	return c
}

// RecordTurn records one processed turn.
func (c *Collector) RecordTurn(action string, d time.Duration) {
	if c == nil {
		return
	}
	c.turnsTotal.WithLabelValues(action).Inc()
	c.turnDuration.WithLabelValues(action).Observe(d.Seconds())
}

// RecordPhaseAdvance records an advancement into phase.
func (c *Collector) RecordPhaseAdvance(phase string) {
	if c == nil {
		return
	}
	c.phaseAdvances.WithLabelValues(phase).Inc()
}

// RecordObjection records one detected objection signal.
func (c *Collector) RecordObjection(objType string) {
	if c == nil {
		return
	}
	c.objectionsTotal.WithLabelValues(objType).Inc()
}

// RecordProbe records one issued probe question.
func (c *Collector) RecordProbe(probeType string) {
	if c == nil {
		return
	}
	c.probesTotal.WithLabelValues(probeType).Inc()
}

// RecordReset records a session reset.
func (c *Collector) RecordReset() {
	if c == nil {
		return
	}
	c.sessionsResets.Inc()
}

// ObserveCommitment records the commitment temperature after a turn.
func (c *Collector) ObserveCommitment(phase string, v float64) {
	if c == nil {
		return
	}
	c.commitmentLevels.WithLabelValues(phase).Observe(v)
}
