package alarmwkr

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"canvasflow.dev/backend/internal/pkg/observability"
)

var (
	sweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(observability.ServiceName, "alarmwkr", "sweep_duration_seconds"),
		Help:    "Duration of one alarm sweep batch in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})
	overdueActivities = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(observability.ServiceName, "alarmwkr", "overdue_activities"),
		Help: "Number of doing activities currently overdue, as of the last sweep",
	})
	sweepsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(observability.ServiceName, "alarmwkr", "sweeps_skipped_total"),
		Help: "Sweeps skipped because another instance held the sweep mutex",
	})
)
