package publisher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusOK     = "ok"
	statusFailed = "failed"
)

var publishCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "openrates",
		Subsystem: "publisher",
		Name:      "publish_total",
	},
	[]string{"status"},
)

func observePublish(status string) {
	publishCounter.WithLabelValues(status).Inc()
}
