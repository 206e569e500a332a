package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "canvasflowbackend"
)

var (
	TimelineComputeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "timeline", "compute_duration_seconds"),
		Help:    "Duration of timeline layout computation in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
	}, []string{"mode"})
	AssistantCommands = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "assistant", "commands_total"),
		Help: "Assistant commands dispatched, by verb and outcome",
	}, []string{"verb", "outcome"})
	BoardEventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "events", "published_total"),
		Help: "Board events published to NATS",
	}, []string{"subject"})
)
