package ingestors

import (
	"factory-monitoring/internal/models"
	"factory-monitoring/internal/shared/metrics"
)

const (
	outcomeAccepted     = "accepted"
	outcomeDeduped      = "deduped"
	outcomeUpdated      = "updated"
	outcomeRejected     = "rejected"
	outcomeStaleDropped = "stale_dropped"
)

var (
	metricBatchIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "batch_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricEventsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "events_total",
		},
		[]string{metrics.FieldOutcome},
	)

	metricRejectionsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "rejections_total",
		},
		[]string{metrics.FieldReason},
	)

	metricConflictRetriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStore,
			Name:      "conflict_retries_total",
		},
		[]string{},
	)
)

func recordOutcomes(result *models.IngestResult) {
	metricEventsTotal.WithLabelValues(outcomeAccepted).Add(float64(result.Accepted))
	metricEventsTotal.WithLabelValues(outcomeDeduped).Add(float64(result.Deduped))
	metricEventsTotal.WithLabelValues(outcomeUpdated).Add(float64(result.Updated))
	metricEventsTotal.WithLabelValues(outcomeRejected).Add(float64(result.Rejected))
	metricEventsTotal.WithLabelValues(outcomeStaleDropped).Add(float64(result.StaleDropped))
	for _, r := range result.Rejections {
		metricRejectionsTotal.WithLabelValues(r.Reason).Inc()
	}
}
