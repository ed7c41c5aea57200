package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ur2ud_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ur2ud_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ur2ud_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})
)

// Engine metrics, incremented at the API boundary so the engine itself
// stays pure.
var (
	TransliterationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ur2ud_transliterations_total",
		Help: "Transliteration requests by scheme and result",
	}, []string{"scheme", "result"})

	TransliterationInputBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ur2ud_transliteration_input_bytes",
		Help:    "Size of transliterated request bodies in bytes",
		Buckets: prometheus.ExponentialBuckets(64, 4, 8),
	})
)
