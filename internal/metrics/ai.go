package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "aiconsole"

// Model API Prometheus metrics. The operation label is one of
// "translate", "summarize", "transcribe".
var (
	AIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_requests_total",
			Help:      "Total number of model API requests",
		},
		[]string{"operation", "model", "status"},
	)

	AIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ai_request_duration_seconds",
			Help:      "Model API request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"operation", "model"},
	)

	AITokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_tokens_total",
			Help:      "Total model tokens consumed",
		},
		[]string{"operation", "model", "type"},
	)

	AIErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_errors_total",
			Help:      "Total model API errors",
		},
		[]string{"operation", "model", "error_type"},
	)

	CriteriaCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "criteria_cache_total",
			Help:      "Translated criteria cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var registerAI sync.Once

// RegisterAIMetrics registers the model API and cache metrics with the
// default registry. Later calls are no-ops.
func RegisterAIMetrics() {
	registerAI.Do(func() {
		prometheus.MustRegister(AIRequestsTotal)
		prometheus.MustRegister(AIRequestDuration)
		prometheus.MustRegister(AITokensTotal)
		prometheus.MustRegister(AIErrorsTotal)
		prometheus.MustRegister(CriteriaCacheTotal)
	})
}
