package upstream

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramFetchTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "openrates",
		Subsystem: "upstream",
		Name:      "histogram_fetch_time_seconds",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	},
	[]string{"source", "status"},
)

func observeFetch(source string, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	histogramFetchTime.
		WithLabelValues(source, status).
		Observe(elapsed.Seconds())
}
