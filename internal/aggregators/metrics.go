package aggregators

import (
	"factory-monitoring/internal/shared/metrics"
	"factory-monitoring/internal/shared/svcerrors"
)

const (
	kindStats          = "stats"
	kindTopDefectLines = "top_defect_lines"
)

// metricQueriesTotal counts aggregation queries by kind and outcome.
//
// The kind label is "stats" for machine stats and "top_defect_lines" for the
// line ranking. error_code is empty on success, otherwise the AGG_* code that
// was returned, so a validation spike (AGG_1000) can be told apart from a
// failing store (AGG_9000).
var (
	metricQueriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "queries_total",
		},
		[]string{metrics.FieldKind, metrics.FieldErrorCode},
	)
)

func recordQuery(kind string, err error) {
	code := metrics.ValueNoError
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		code = svcErr.Code
	}
	metricQueriesTotal.WithLabelValues(kind, code).Inc()
}
