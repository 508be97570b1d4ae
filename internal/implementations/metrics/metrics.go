package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "accounts"

// PrometheusRecorder counts service outcomes and observes their latency.
type PrometheusRecorder struct {
	outcomes *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewPrometheusRecorder(registerer prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operation_outcomes_total",
				Help:      "Number of completed operations by outcome.",
			},
			[]string{"operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Duration of operations.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
	registerer.MustRegister(r.outcomes, r.duration)
	return r
}

func (r *PrometheusRecorder) RecordOutcome(operation string, outcome string, duration time.Duration) {
	r.outcomes.WithLabelValues(operation, outcome).Inc()
	r.duration.WithLabelValues(operation).Observe(duration.Seconds())
}
