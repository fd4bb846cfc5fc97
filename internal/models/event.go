package models

import (
	"bytes"
	"encoding/json"
	"math"
	"time"
)

// DefectCountUnknown marks a production cycle whose defects were not measured.
// Such events count toward event totals but never toward defect sums.
const DefectCountUnknown = -1

// MaxDefectCount is the largest count every store engine keeps as a 32-bit column.
const MaxDefectCount = math.MaxInt32

// OptionalString is a grouping dimension that may be absent. An empty string
// is treated as absent, and absent equals absent.
type OptionalString struct {
	Value string
	Valid bool
}

func SomeString(v string) OptionalString {
	if v == "" {
		return OptionalString{}
	}
	return OptionalString{Value: v, Valid: true}
}

func NoString() OptionalString {
	return OptionalString{}
}

// OptionalStringFromPtr maps a nullable wire or column value.
func OptionalStringFromPtr(v *string) OptionalString {
	if v == nil {
		return OptionalString{}
	}
	return SomeString(*v)
}

func (o OptionalString) Equal(other OptionalString) bool {
	if !o.Valid || !other.Valid {
		return o.Valid == other.Valid
	}
	return o.Value == other.Value
}

// Ptr returns nil when absent, which is what database drivers expect for NULL.
func (o OptionalString) Ptr() *string {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = OptionalString{}
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = SomeString(v)
	return nil
}

// Event is a stored production cycle record. ReceivedAt is owned by the
// ingestion engine and never supplied by callers.
type Event struct {
	ID          string         `json:"eventId"`
	OccurredAt  time.Time      `json:"eventTime"`
	ReceivedAt  time.Time      `json:"receivedTime"`
	SubjectID   string         `json:"machineId"`
	DurationMs  int64          `json:"durationMs"`
	DefectCount int            `json:"defectCount"`
	LineID      OptionalString `json:"lineId"`
	FactoryID   OptionalString `json:"factoryId"`
}

// SamePayload compares every caller-supplied field. ReceivedAt is not part of
// the payload.
func (e *Event) SamePayload(other *Event) bool {
	return e.OccurredAt.Equal(other.OccurredAt) &&
		e.SubjectID == other.SubjectID &&
		e.DurationMs == other.DurationMs &&
		e.DefectCount == other.DefectCount &&
		e.LineID.Equal(other.LineID) &&
		e.FactoryID.Equal(other.FactoryID)
}

func (e *Event) Clone() *Event {
	c := *e
	return &c
}

// CandidateEvent is an incoming payload that has not been validated yet.
// Pointer fields are nil when the producer omitted them.
type CandidateEvent struct {
	ID          string         `json:"eventId"`
	OccurredAt  *time.Time     `json:"eventTime"`
	SubjectID   string         `json:"machineId"`
	DurationMs  *int64         `json:"durationMs"`
	DefectCount *int           `json:"defectCount"`
	LineID      OptionalString `json:"lineId"`
	FactoryID   OptionalString `json:"factoryId"`
}

// ToEvent builds the record a valid candidate would be stored as. Times are
// kept at microsecond precision, the finest every store engine preserves.
// Callers must validate the candidate first.
func (c *CandidateEvent) ToEvent(receivedAt time.Time) *Event {
	return &Event{
		ID:          c.ID,
		OccurredAt:  c.OccurredAt.UTC().Truncate(time.Microsecond),
		ReceivedAt:  receivedAt,
		SubjectID:   c.SubjectID,
		DurationMs:  *c.DurationMs,
		DefectCount: *c.DefectCount,
		LineID:      c.LineID,
		FactoryID:   c.FactoryID,
	}
}
