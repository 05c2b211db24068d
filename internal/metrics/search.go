package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search source Prometheus metrics.
var (
	SourceRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "toolscout",
			Name:      "source_requests_total",
			Help:      "Total number of search source requests",
		},
		[]string{"source", "status"},
	)

	SourceRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "toolscout",
			Name:      "source_request_duration_seconds",
			Help:      "Search source request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"source"},
	)

	SourceHitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "toolscout",
			Name:      "source_hits_total",
			Help:      "Total raw hits returned by search sources",
		},
		[]string{"source"},
	)

	SourceCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "toolscout",
			Name:      "source_cache_total",
			Help:      "Search source cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SourceRequestsTotal)
	prometheus.MustRegister(SourceRequestDuration)
	prometheus.MustRegister(SourceHitsTotal)
	prometheus.MustRegister(SourceCacheTotal)
	searchMetricsRegistered = true
}
