package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the demo gateway.
type Metrics struct {
	RegistrationsTotal    prometheus.Counter
	RollbacksTotal        prometheus.Counter
	RegistrationsCleared  prometheus.Counter
	ContactsSeededTotal   prometheus.Counter
	UpstreamCallDuration  *prometheus.HistogramVec
	RequestDurationSecond *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RegistrationsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cmdemo_registrations_total",
			Help: "Total number of successful user registrations",
		}),
		RollbacksTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cmdemo_registration_rollbacks_total",
			Help: "Registrations rolled back after a failed SDK initialization",
		}),
		RegistrationsCleared: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cmdemo_registrations_cleared_total",
			Help: "Explicit clear-registration actions",
		}),
		ContactsSeededTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cmdemo_contacts_seeded_total",
			Help: "Test contacts created through the seeder",
		}),
		UpstreamCallDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cmdemo_upstream_call_duration_seconds",
			Help:    "Latency of ContactsManager API calls",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		RequestDurationSecond: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cmdemo_http_request_duration_seconds",
			Help:    "Latency of gateway HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// ObserveUpstream records one upstream call for the given operation.
func (m *Metrics) ObserveUpstream(operation string, seconds float64) {
	m.UpstreamCallDuration.WithLabelValues(operation).Observe(seconds)
}
