package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
	FallbackReads   *prometheus.CounterVec
	Submissions     *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. Tests pass a fresh
// prometheus.NewRegistry() to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "safari_http_request_duration_seconds",
			Help:    "Latency of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		FallbackReads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "safari_fallback_reads_total",
			Help: "Public reads served from fallback data, labeled by resource",
		}, []string{"resource"}),
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "safari_submissions_total",
			Help: "Accepted public submissions, labeled by kind and storage backend",
		}, []string{"kind", "backend"}),
	}
}

// ObserveRequest records the latency of one request.
func (m *Metrics) ObserveRequest(route, method, status string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route, method, status).Observe(durationSeconds)
}

// IncFallbackRead counts one read answered from fallback data.
func (m *Metrics) IncFallbackRead(resource string) {
	if m == nil {
		return
	}
	m.FallbackReads.WithLabelValues(resource).Inc()
}

// IncSubmission counts one stored booking or contact message.
func (m *Metrics) IncSubmission(kind, backend string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(kind, backend).Inc()
}
