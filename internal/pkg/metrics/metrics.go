package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SettingsLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "acala_settings_loads_total",
		Help: "The total number of settings load attempts",
	}, []string{"status"})

	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "acala_validation_failures_total",
		Help: "Total configuration invariant violations by field",
	}, []string{"field"})

	LimiterRejects = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "acala_venue_limiter_rejects_total",
		Help: "Requests rejected by a venue rate limiter",
	}, []string{"venue"})

	LatencyBucket = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "acala_http_latency_bucket",
		Help:    "Request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)
