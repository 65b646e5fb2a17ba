package quotes

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	counterCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "openrates",
			Subsystem: "quotes",
			Name:      "cache_lookups_total",
		},
		[]string{"result"},
	)
	counterShared = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "openrates",
			Subsystem: "quotes",
			Name:      "shared_flights_total",
		},
	)
)

func observeCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	counterCache.WithLabelValues(result).Inc()
}

func observeShared() {
	counterShared.Inc()
}
