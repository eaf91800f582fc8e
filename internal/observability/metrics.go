package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters for the report pipeline.
type Metrics struct {
	ReportsCreated          prometheus.Counter
	ReportsDeleted          prometheus.Counter
	ClassificationRequests  prometheus.Counter
	ClassificationFallbacks prometheus.Counter
	AlertsQueued            prometheus.Counter
}

// NewMetrics creates and registers all metrics with the default registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsCreated,
		m.ReportsDeleted,
		m.ClassificationRequests,
		m.ClassificationFallbacks,
		m.AlertsQueued,
	)
	return m
}

// NewMetricsForTesting creates unregistered metrics to avoid
// "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceanwatch",
			Name:      "reports_created_total",
			Help:      "Total hazard reports persisted.",
		}),
		ReportsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceanwatch",
			Name:      "reports_deleted_total",
			Help:      "Total hazard reports hard-deleted.",
		}),
		ClassificationRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceanwatch",
			Name:      "classification_requests_total",
			Help:      "Total classification calls attempted.",
		}),
		ClassificationFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceanwatch",
			Name:      "classification_fallbacks_total",
			Help:      "Classification calls that resolved to the default result.",
		}),
		AlertsQueued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceanwatch",
			Name:      "alerts_queued_total",
			Help:      "High-severity alert payloads enqueued for webhook delivery.",
		}),
	}
}
