package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the solve-progress counters and gauges exposed on
// /metrics when the CLI is run with --metrics-addr. Register must be
// called once, against a registry, before any solve begins.
type Metrics struct {
	Decisions      prometheus.Counter
	Conflicts      prometheus.Counter
	LearnedClauses prometheus.Counter
	TrailSize      prometheus.Gauge
}

// NewMetrics constructs a fresh, unregistered Metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		Decisions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cdclsat_decisions_total",
			Help: "Total number of decision-literal assignments made.",
		}),
		Conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cdclsat_conflicts_total",
			Help: "Total number of conflicts encountered during search.",
		}),
		LearnedClauses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cdclsat_learned_clauses_total",
			Help: "Total number of clauses learned by conflict analysis.",
		}),
		TrailSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cdclsat_decision_level",
			Help: "Decision level immediately after the most recent backjump.",
		}),
	}
}

// Register registers every collector in m against reg.
func (m *Metrics) Register(reg *prometheus.Registry) {
	reg.MustRegister(m.Decisions, m.Conflicts, m.LearnedClauses, m.TrailSize)
}
