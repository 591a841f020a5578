package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "dispatchd"
)

var (
	RosterPromotions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "roster", "promotions_total"),
		Help: "Count of template-to-assignment promotions by triggering action",
	}, []string{"trigger"})
	RosterFinalizations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "roster", "finalizations_total"),
		Help: "Count of finalize/unfinalize transitions",
	}, []string{"direction"})
	DockSnapshotDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "dock", "snapshot_duration_seconds"),
		Help:    "Duration of dock snapshot derivation in seconds",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
	}, []string{"source"})
	DockAssignConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "dock", "assign_conflicts_total"),
		Help: "Count of door assignments rejected because the door was occupied",
	})
)
