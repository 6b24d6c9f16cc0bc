package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordSuccess(t *testing.T) {
	before := testutil.ToFloat64(videosProcessedTotal)

	RecordSuccess(3 * time.Second)

	if got := testutil.ToFloat64(videosProcessedTotal); got != before+1 {
		t.Errorf("videosProcessedTotal = %v; want %v", got, before+1)
	}
	if count := testutil.CollectAndCount(processingDuration); count == 0 {
		t.Error("expected the duration histogram to have observations")
	}
}

func TestRecordFailure_ByStage(t *testing.T) {
	before := testutil.ToFloat64(videosFailedTotal.WithLabelValues("transcode"))

	RecordFailure("transcode")

	if got := testutil.ToFloat64(videosFailedTotal.WithLabelValues("transcode")); got != before+1 {
		t.Errorf("videosFailedTotal{transcode} = %v; want %v", got, before+1)
	}
}

func TestRecordDuplicateAndRejected(t *testing.T) {
	dupBefore := testutil.ToFloat64(duplicateNotificationsTotal)
	rejBefore := testutil.ToFloat64(rejectedPayloadsTotal)

	RecordDuplicate()
	RecordRejected()

	if got := testutil.ToFloat64(duplicateNotificationsTotal); got != dupBefore+1 {
		t.Errorf("duplicateNotificationsTotal = %v; want %v", got, dupBefore+1)
	}
	if got := testutil.ToFloat64(rejectedPayloadsTotal); got != rejBefore+1 {
		t.Errorf("rejectedPayloadsTotal = %v; want %v", got, rejBefore+1)
	}
}
