package stores

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"factory-monitoring/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresSchema is embedded so the service can bootstrap its own table.
//
//go:embed schema/postgres.sql
var postgresSchema string

const pgUniqueViolation = "23505"

var eventColumns = []string{"event_id", "event_time", "received_at", "machine_id", "duration_ms", "defect_count", "line_id", "factory_id"}

const (
	pgFindByIDs = `
		SELECT event_id, event_time, received_at, machine_id, duration_ms, defect_count, line_id, factory_id
		FROM events
		WHERE event_id = ANY($1)`

	pgCountInRange = `
		SELECT COUNT(*)
		FROM events
		WHERE machine_id = $1 AND event_time >= $2 AND event_time < $3`

	pgSumDefectsInRange = `
		SELECT COALESCE(SUM(defect_count), 0)
		FROM events
		WHERE machine_id = $1 AND event_time >= $2 AND event_time < $3 AND defect_count >= 0`

	pgGroupDefectsByLine = `
		SELECT line_id,
		       COALESCE(SUM(defect_count) FILTER (WHERE defect_count >= 0), 0),
		       COUNT(*)
		FROM events
		WHERE factory_id = $1 AND event_time >= $2 AND event_time < $3 AND line_id IS NOT NULL
		GROUP BY line_id`

	pgUpdateAll = `
		UPDATE events AS e
		SET event_time = u.event_time,
		    received_at = u.received_at,
		    machine_id = u.machine_id,
		    duration_ms = u.duration_ms,
		    defect_count = u.defect_count,
		    line_id = u.line_id,
		    factory_id = u.factory_id
		FROM UNNEST($1::text[], $2::timestamptz[], $3::timestamptz[], $4::text[], $5::bigint[], $6::int[], $7::text[], $8::text[])
		     AS u (event_id, event_time, received_at, machine_id, duration_ms, defect_count, line_id, factory_id)
		WHERE e.event_id = u.event_id AND e.received_at < u.received_at`
)

// pgQuerier is satisfied by both *pgxpool.Pool and pgx.Tx.
type pgQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

type postgresEventStore struct {
	postgresEventTx
	pool *pgxpool.Pool
}

// NewPostgresEventStore creates a connection pool, fails fast if the database
// is unreachable and applies the embedded schema.
func NewPostgresEventStore(ctx context.Context, dbURL string) (EventStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(connectCtx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(connectCtx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply postgres schema: %w", err)
	}

	return &postgresEventStore{postgresEventTx: postgresEventTx{q: pool}, pool: pool}, nil
}

func (s *postgresEventStore) InsertAll(ctx context.Context, events []*models.Event) error {
	return s.WithinTx(ctx, func(tx EventTx) error { return tx.InsertAll(ctx, events) })
}

func (s *postgresEventStore) UpdateAll(ctx context.Context, events []*models.Event) error {
	return s.WithinTx(ctx, func(tx EventTx) error { return tx.UpdateAll(ctx, events) })
}

func (s *postgresEventStore) WithinTx(ctx context.Context, fn func(tx EventTx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&postgresEventTx{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *postgresEventStore) Close() error {
	s.pool.Close()
	return nil
}

type postgresEventTx struct {
	q pgQuerier
}

func (tx *postgresEventTx) FindByID(ctx context.Context, id string) (*models.Event, error) {
	found, err := tx.FindByIDs(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	return found[id], nil
}

func (tx *postgresEventTx) FindByIDs(ctx context.Context, ids []string) (map[string]*models.Event, error) {
	rows, err := tx.q.Query(ctx, pgFindByIDs, ids)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	found := make(map[string]*models.Event, len(ids))
	for rows.Next() {
		var (
			e                 models.Event
			lineID, factoryID *string
		)
		if err := rows.Scan(&e.ID, &e.OccurredAt, &e.ReceivedAt, &e.SubjectID, &e.DurationMs, &e.DefectCount, &lineID, &factoryID); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.OccurredAt = e.OccurredAt.UTC()
		e.ReceivedAt = e.ReceivedAt.UTC()
		e.LineID = models.OptionalStringFromPtr(lineID)
		e.FactoryID = models.OptionalStringFromPtr(factoryID)
		found[e.ID] = &e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	return found, nil
}

func (tx *postgresEventTx) CountInRange(ctx context.Context, subjectID string, window models.TimeWindow) (int64, error) {
	var count int64
	if err := tx.q.QueryRow(ctx, pgCountInRange, subjectID, window.Start, window.End).Scan(&count); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}

func (tx *postgresEventTx) SumDefectsInRange(ctx context.Context, subjectID string, window models.TimeWindow) (int64, error) {
	var sum int64
	if err := tx.q.QueryRow(ctx, pgSumDefectsInRange, subjectID, window.Start, window.End).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum defects: %w", err)
	}
	return sum, nil
}

func (tx *postgresEventTx) GroupDefectsByLine(ctx context.Context, factoryID string, window models.TimeWindow) ([]models.LineDefects, error) {
	rows, err := tx.q.Query(ctx, pgGroupDefectsByLine, factoryID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("group defects by line: %w", err)
	}
	defer rows.Close()

	result := make([]models.LineDefects, 0)
	for rows.Next() {
		var row models.LineDefects
		if err := rows.Scan(&row.LineID, &row.TotalDefects, &row.EventCount); err != nil {
			return nil, fmt.Errorf("scan line defects: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("group defects by line: %w", err)
	}
	return result, nil
}

// InsertAll streams rows with COPY; a duplicate id aborts the copy with a
// unique violation.
func (tx *postgresEventTx) InsertAll(ctx context.Context, events []*models.Event) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([][]any, len(events))
	for i, e := range events {
		rows[i] = []any{e.ID, e.OccurredAt, e.ReceivedAt, e.SubjectID, e.DurationMs, int32(e.DefectCount), e.LineID.Ptr(), e.FactoryID.Ptr()}
	}

	_, err := tx.q.CopyFrom(ctx, pgx.Identifier{"events"}, eventColumns, pgx.CopyFromRows(rows))
	if err != nil {
		if isPgUniqueViolation(err) {
			return fmt.Errorf("%w: %v", ErrEventConflict, err)
		}
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}

func (tx *postgresEventTx) UpdateAll(ctx context.Context, events []*models.Event) error {
	if len(events) == 0 {
		return nil
	}
	var (
		ids         = make([]string, len(events))
		eventTimes  = make([]time.Time, len(events))
		receivedAts = make([]time.Time, len(events))
		machineIDs  = make([]string, len(events))
		durations   = make([]int64, len(events))
		defects     = make([]int32, len(events))
		lineIDs     = make([]*string, len(events))
		factoryIDs  = make([]*string, len(events))
	)
	for i, e := range events {
		ids[i] = e.ID
		eventTimes[i] = e.OccurredAt
		receivedAts[i] = e.ReceivedAt
		machineIDs[i] = e.SubjectID
		durations[i] = e.DurationMs
		defects[i] = int32(e.DefectCount)
		lineIDs[i] = e.LineID.Ptr()
		factoryIDs[i] = e.FactoryID.Ptr()
	}

	tag, err := tx.q.Exec(ctx, pgUpdateAll, ids, eventTimes, receivedAts, machineIDs, durations, defects, lineIDs, factoryIDs)
	if err != nil {
		return fmt.Errorf("update events: %w", err)
	}
	if tag.RowsAffected() != int64(len(events)) {
		return fmt.Errorf("%w: updated %d of %d events", ErrEventConflict, tag.RowsAffected(), len(events))
	}
	return nil
}

func isPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
