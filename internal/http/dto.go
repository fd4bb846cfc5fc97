package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"factory-monitoring/internal/models"
	"factory-monitoring/internal/shared/validators"
)

var validate = validators.New()

// Accepted timestamp layouts. A value without an offset is read as UTC.
var (
	zonedLayouts = []string{time.RFC3339Nano, time.RFC3339}
	localLayouts = []string{"2006-01-02T15:04:05", "2006-01-02T15:04"}
)

func parseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q: expected ISO-8601 date-time", value)
}

// apiTime decodes any of the accepted timestamp layouts.
type apiTime struct {
	time.Time
}

func (t *apiTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := parseTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// eventRequest is one element of POST /api/events/batch.
type eventRequest struct {
	EventID     string   `json:"eventId" validate:"required,max=128"`
	EventTime   *apiTime `json:"eventTime" validate:"required"`
	MachineID   string   `json:"machineId" validate:"required,max=128"`
	DurationMs  *int64   `json:"durationMs" validate:"required"`
	DefectCount *int     `json:"defectCount" validate:"required"`
	LineID      *string  `json:"lineId" validate:"omitempty,max=128"`
	FactoryID   *string  `json:"factoryId" validate:"omitempty,max=128"`
}

func (e *eventRequest) toCandidate() *models.CandidateEvent {
	occurredAt := e.EventTime.Time
	return &models.CandidateEvent{
		ID:          e.EventID,
		OccurredAt:  &occurredAt,
		SubjectID:   e.MachineID,
		DurationMs:  e.DurationMs,
		DefectCount: e.DefectCount,
		LineID:      models.OptionalStringFromPtr(e.LineID),
		FactoryID:   models.OptionalStringFromPtr(e.FactoryID),
	}
}

// batchKeyRule keeps batch ids usable as archive object names.
const (
	batchKeyRule       = "printascii,max=128,excludesall=/\\"
	idempotencyKeyRule = "omitempty," + batchKeyRule
)

type statsQuery struct {
	MachineID string `json:"machineId" validate:"required"`
	Start     string `json:"start" validate:"required"`
	End       string `json:"end" validate:"required"`
}

type topDefectLinesQuery struct {
	FactoryID string `json:"factoryId" validate:"required"`
	From      string `json:"from" validate:"required"`
	To        string `json:"to" validate:"required"`
	Limit     string `json:"limit" validate:"omitempty,number"`
}

type topDefectLinesResponse struct {
	Lines []*models.LineStats `json:"lines"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// validationMessage turns a validator error into a short client-facing message.
func validationMessage(prefix string, err error) string {
	fields := validators.FailedFields(err)
	if len(fields) == 0 {
		return prefix
	}
	return prefix + ": " + strings.Join(fields, ", ")
}
