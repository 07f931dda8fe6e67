package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics for outbound core-banking API calls. The front end holds no
// business state of its own, so the interesting signal is how the remote
// API behaves per operation.
var (
	apiCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netbank_corebank_calls_total",
		Help: "Outbound core-banking API calls by operation and outcome.",
	}, []string{"operation", "outcome"})

	apiCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "netbank_corebank_call_duration_seconds",
		Help:    "Duration of outbound core-banking API calls.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

// ObserveAPICall records one outbound API call.
func ObserveAPICall(operation string, err error, d time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	apiCallsTotal.WithLabelValues(operation, outcome).Inc()
	apiCallDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
