package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	generationsTotal     *prometheus.CounterVec
	llmRequestsTotal     *prometheus.CounterVec
	llmRequestDuration   prometheus.Histogram
	quotaRejectionsTotal prometheus.Counter

	initOnce sync.Once
)

// Init registers the application metrics. Must be called once at startup.
func Init() {
	initOnce.Do(func() {
		generationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keywordforge_generations_total",
			Help: "Total keyword generation requests by outcome",
		}, []string{"outcome"})

		llmRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keywordforge_llm_requests_total",
			Help: "Total completion API attempts by status",
		}, []string{"status"})

		llmRequestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "keywordforge_llm_request_duration_seconds",
			Help:    "Completion API attempt latency",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
		})

		quotaRejectionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "keywordforge_quota_rejections_total",
			Help: "Generation requests rejected by the usage quota",
		})

		prometheus.MustRegister(generationsTotal, llmRequestsTotal, llmRequestDuration, quotaRejectionsTotal)
	})
}

// RecordGeneration counts a finished generation request by outcome
// ("ok", "validation", "quota", "error").
func RecordGeneration(outcome string) {
	if generationsTotal == nil {
		return
	}
	generationsTotal.WithLabelValues(outcome).Inc()
}

// RecordLLMRequest counts one completion attempt and its latency.
func RecordLLMRequest(status string, seconds float64) {
	if llmRequestsTotal == nil {
		return
	}
	llmRequestsTotal.WithLabelValues(status).Inc()
	llmRequestDuration.Observe(seconds)
}

// RecordQuotaRejection counts a quota-blocked request.
func RecordQuotaRejection() {
	if quotaRejectionsTotal == nil {
		return
	}
	quotaRejectionsTotal.Inc()
}
