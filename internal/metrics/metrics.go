package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	videosProcessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "videoproc_videos_processed_total",
		Help: "Number of videos fully processed and uploaded.",
	})

	videosFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "videoproc_videos_failed_total",
		Help: "Number of pipeline failures by stage.",
	}, []string{"stage"})

	duplicateNotificationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "videoproc_duplicate_notifications_total",
		Help: "Number of notifications short-circuited by the idempotency gate.",
	})

	rejectedPayloadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "videoproc_rejected_payloads_total",
		Help: "Number of notifications rejected as malformed.",
	})

	processingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "videoproc_processing_duration_seconds",
		Help:    "Wall-clock duration of successful pipeline runs.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 12),
	})
)

func RecordSuccess(d time.Duration) {
	videosProcessedTotal.Inc()
	processingDuration.Observe(d.Seconds())
}

func RecordFailure(stage string) {
	videosFailedTotal.WithLabelValues(stage).Inc()
}

func RecordDuplicate() {
	duplicateNotificationsTotal.Inc()
}

func RecordRejected() {
	rejectedPayloadsTotal.Inc()
}
