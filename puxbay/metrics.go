package puxbay

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects Prometheus metrics for the request lifecycle. It is safe
// for concurrent use. A nil *Metrics records nothing.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	retriesTotal    *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
}

// NewMetrics registers the SDK collectors on registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "puxbay_requests_total",
				Help: "Total number of HTTP attempts made against the Puxbay API",
			},
			[]string{"method", "status_code"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "puxbay_request_duration_seconds",
				Help:    "Duration of logical Puxbay API calls in seconds, retries included",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		retriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "puxbay_retries_total",
				Help: "Total number of retries after a transient failure",
			},
			[]string{"method"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "puxbay_errors_total",
				Help: "Total number of failed Puxbay API calls by error kind",
			},
			[]string{"method", "kind"},
		),
	}
}

// recordAttempt counts one HTTP attempt. statusCode 0 marks a transport failure.
func (m *Metrics) recordAttempt(method string, statusCode int) {
	if m == nil {
		return
	}
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	m.requestsTotal.WithLabelValues(method, status).Inc()
}

func (m *Metrics) recordRetry(method string) {
	if m == nil {
		return
	}
	m.retriesTotal.WithLabelValues(method).Inc()
}

// recordCall observes a finished logical call.
func (m *Metrics) recordCall(method string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method).Observe(time.Since(started).Seconds())
	if err != nil {
		m.errorsTotal.WithLabelValues(method, KindOf(err).String()).Inc()
	}
}
