package metrics

import "github.com/prometheus/client_golang/prometheus"

// Property listing Prometheus metrics.
var (
	PropertySearchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hearth",
			Name:      "property_search_total",
			Help:      "Total number of property searches",
		},
		[]string{"sort"},
	)

	PropertyCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hearth",
			Name:      "property_cache_total",
			Help:      "Property read cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var listingMetricsRegistered bool

// RegisterListingMetrics registers Prometheus listing metrics. Must be called once from main.
func RegisterListingMetrics() {
	if listingMetricsRegistered {
		return
	}
	prometheus.MustRegister(PropertySearchTotal)
	prometheus.MustRegister(PropertyCacheTotal)
	listingMetricsRegistered = true
}
