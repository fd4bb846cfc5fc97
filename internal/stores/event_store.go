package stores

import (
	"context"
	"errors"

	"factory-monitoring/internal/models"
)

// ErrEventConflict means another writer got to an event first: an insert hit
// an existing id, or an update found a stored receipt that is not older than
// its own. The whole transaction is rolled back.
var ErrEventConflict = errors.New("event write conflict")

// EventReader answers identity and range lookups. Every range predicate is
// half-open: start <= eventTime < end.
type EventReader interface {
	// FindByID returns nil, nil when the event does not exist.
	FindByID(ctx context.Context, id string) (*models.Event, error)
	// FindByIDs returns the stored events among ids, keyed by id. Missing ids are absent from the map.
	FindByIDs(ctx context.Context, ids []string) (map[string]*models.Event, error)
	CountInRange(ctx context.Context, subjectID string, window models.TimeWindow) (int64, error)
	// SumDefectsInRange ignores events whose defect count is unknown.
	SumDefectsInRange(ctx context.Context, subjectID string, window models.TimeWindow) (int64, error)
	// GroupDefectsByLine skips events without a line. Row order is unspecified.
	GroupDefectsByLine(ctx context.Context, factoryID string, window models.TimeWindow) ([]models.LineDefects, error)
}

type EventWriter interface {
	// InsertAll fails with ErrEventConflict if any id already exists.
	InsertAll(ctx context.Context, events []*models.Event) error
	// UpdateAll overwrites stored events in place. It fails with ErrEventConflict
	// unless every stored receivedAt is strictly before the new one.
	UpdateAll(ctx context.Context, events []*models.Event) error
}

type EventTx interface {
	EventReader
	EventWriter
}

// EventStore is the durable keyed storage of events. Writes issued outside
// WithinTx are atomic per call.
//
//go:generate mockgen -source=event_store.go -destination=./mocks/event_store_mock.go -package=mocks
type EventStore interface {
	EventTx
	// WithinTx runs fn in one transaction. It commits when fn returns nil and
	// rolls back every write otherwise.
	WithinTx(ctx context.Context, fn func(tx EventTx) error) error
	Close() error
}

func eventIDs(events []*models.Event) []string {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}
