package ingestors

import (
	"fmt"
	"time"

	"factory-monitoring/internal/models"
)

const (
	DefaultMaxDurationMs   = int64(6 * time.Hour / time.Millisecond)
	DefaultFutureTolerance = 15 * time.Minute
)

// eventValidator checks one candidate against the structural and range rules.
// It never touches the store.
type eventValidator struct {
	maxDurationMs   int64
	futureTolerance time.Duration
}

func newEventValidator(maxDurationMs int64, futureTolerance time.Duration) *eventValidator {
	if maxDurationMs <= 0 {
		maxDurationMs = DefaultMaxDurationMs
	}
	if futureTolerance < 0 {
		futureTolerance = DefaultFutureTolerance
	}
	return &eventValidator{maxDurationMs: maxDurationMs, futureTolerance: futureTolerance}
}

// validate returns nil for a storable candidate, otherwise the rejection to report.
func (v *eventValidator) validate(c *models.CandidateEvent, now time.Time) *models.Rejection {
	if c == nil {
		return &models.Rejection{Reason: models.ReasonMalformed, Detail: "event is null"}
	}
	if detail := missingField(c); detail != "" {
		return &models.Rejection{EventID: c.ID, Reason: models.ReasonMalformed, Detail: detail}
	}
	if *c.DefectCount < models.DefectCountUnknown {
		return &models.Rejection{EventID: c.ID, Reason: models.ReasonMalformed, Detail: fmt.Sprintf("defectCount must be -1 or greater, got %d", *c.DefectCount)}
	}
	if *c.DefectCount > models.MaxDefectCount {
		return &models.Rejection{EventID: c.ID, Reason: models.ReasonMalformed, Detail: fmt.Sprintf("defectCount exceeds maximum of %d", models.MaxDefectCount)}
	}

	if *c.DurationMs < 0 {
		return &models.Rejection{EventID: c.ID, Reason: models.ReasonInvalidDuration, Detail: "durationMs cannot be negative"}
	}
	if *c.DurationMs > v.maxDurationMs {
		return &models.Rejection{EventID: c.ID, Reason: models.ReasonInvalidDuration, Detail: fmt.Sprintf("durationMs exceeds maximum of %d", v.maxDurationMs)}
	}

	if c.OccurredAt.Sub(now) > v.futureTolerance {
		return &models.Rejection{EventID: c.ID, Reason: models.ReasonInvalidTime, Detail: fmt.Sprintf("eventTime is more than %s in the future", v.futureTolerance)}
	}
	return nil
}

func missingField(c *models.CandidateEvent) string {
	switch {
	case c.ID == "":
		return "eventId is required"
	case c.OccurredAt == nil || c.OccurredAt.IsZero():
		return "eventTime is required"
	case c.SubjectID == "":
		return "machineId is required"
	case c.DurationMs == nil:
		return "durationMs is required"
	case c.DefectCount == nil:
		return "defectCount is required"
	}
	return ""
}
