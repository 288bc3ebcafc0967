package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce            sync.Once
	httpRequestsTotal       *prometheus.CounterVec
	httpLatencySeconds      *prometheus.HistogramVec
	httpErrorsTotal         *prometheus.CounterVec
	extractionFailuresTotal *prometheus.CounterVec
	emailSendsTotal         *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		// Generation endpoints wait on the model, hence the long tail.
		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0, 60.0},
		}, []string{"method", "route"})

		httpErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		extractionFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ai_extraction_failures_total",
			Help: "Model replies from which no usable JSON object could be extracted.",
		}, []string{"operation", "kind"})

		emailSendsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "email_sends_total",
			Help: "Email send attempts by template and outcome.",
		}, []string{"template", "outcome"})

		prometheus.MustRegister(httpRequestsTotal, httpLatencySeconds, httpErrorsTotal, extractionFailuresTotal, emailSendsTotal)
	})
}

// HTTPRequests exposes the request counter.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the request latency histogram.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// HTTPErrors exposes the counter for 4xx and 5xx responses.
func HTTPErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return httpErrorsTotal
}

// ExtractionFailures exposes the counter labelled by operation and failure kind
// ("no_json" or "malformed").
func ExtractionFailures() *prometheus.CounterVec {
	RegisterMetrics()
	return extractionFailuresTotal
}

// EmailSends exposes the counter labelled by template and outcome (sent, not_configured or a
// failure class).
func EmailSends() *prometheus.CounterVec {
	RegisterMetrics()
	return emailSendsTotal
}
