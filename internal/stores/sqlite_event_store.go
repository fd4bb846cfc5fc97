package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"factory-monitoring/internal/models"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	// Each inserted or updated row binds eight parameters; 200 rows stay well
	// under SQLite's bound-parameter limit.
	sqliteRowsPerStatement = 200
	sqliteIDsPerLookup     = 500
)

const (
	sqliteSelectColumns = `event_id, event_time, received_at, machine_id, duration_ms, defect_count, line_id, factory_id`

	sqliteCountInRange = `
		SELECT COUNT(*)
		FROM events
		WHERE machine_id = ? AND event_time >= ? AND event_time < ?`

	sqliteSumDefectsInRange = `
		SELECT COALESCE(SUM(defect_count), 0)
		FROM events
		WHERE machine_id = ? AND event_time >= ? AND event_time < ? AND defect_count >= 0`

	sqliteGroupDefectsByLine = `
		SELECT line_id,
		       COALESCE(SUM(CASE WHEN defect_count >= 0 THEN defect_count ELSE 0 END), 0),
		       COUNT(*)
		FROM events
		WHERE factory_id = ? AND event_time >= ? AND event_time < ? AND line_id IS NOT NULL
		GROUP BY line_id`
)

// sqlQuerier is satisfied by both *sql.DB and *sql.Tx.
type sqlQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqliteEventStore struct {
	sqliteEventTx
	db *sql.DB
}

// NewSQLiteEventStore stores events in SQLite. Times are kept as unix
// microseconds so range predicates compare integers.
func NewSQLiteEventStore(db *sql.DB) EventStore {
	return &sqliteEventStore{sqliteEventTx: sqliteEventTx{q: db}, db: db}
}

func (s *sqliteEventStore) InsertAll(ctx context.Context, events []*models.Event) error {
	return s.WithinTx(ctx, func(tx EventTx) error { return tx.InsertAll(ctx, events) })
}

func (s *sqliteEventStore) UpdateAll(ctx context.Context, events []*models.Event) error {
	return s.WithinTx(ctx, func(tx EventTx) error { return tx.UpdateAll(ctx, events) })
}

func (s *sqliteEventStore) WithinTx(ctx context.Context, fn func(tx EventTx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(&sqliteEventTx{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *sqliteEventStore) Close() error {
	return s.db.Close()
}

type sqliteEventTx struct {
	q sqlQuerier
}

func (tx *sqliteEventTx) FindByID(ctx context.Context, id string) (*models.Event, error) {
	found, err := tx.FindByIDs(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	return found[id], nil
}

func (tx *sqliteEventTx) FindByIDs(ctx context.Context, ids []string) (map[string]*models.Event, error) {
	found := make(map[string]*models.Event, len(ids))
	for start := 0; start < len(ids); start += sqliteIDsPerLookup {
		chunk := ids[start:min(start+sqliteIDsPerLookup, len(ids))]

		args := make([]any, len(chunk))
		for i, id := range chunk {
			args[i] = id
		}
		query := `SELECT ` + sqliteSelectColumns + ` FROM events WHERE event_id IN (` + placeholders(len(chunk)) + `)`

		if err := tx.scanEvents(ctx, found, query, args...); err != nil {
			return nil, err
		}
	}
	return found, nil
}

func (tx *sqliteEventTx) scanEvents(ctx context.Context, into map[string]*models.Event, query string, args ...any) error {
	rows, err := tx.q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e                     models.Event
			eventTime, receivedAt int64
			lineID, factoryID     sql.NullString
		)
		if err := rows.Scan(&e.ID, &eventTime, &receivedAt, &e.SubjectID, &e.DurationMs, &e.DefectCount, &lineID, &factoryID); err != nil {
			return fmt.Errorf("scan event: %w", err)
		}
		e.OccurredAt = fromUnixMicro(eventTime)
		e.ReceivedAt = fromUnixMicro(receivedAt)
		e.LineID = optionalFromNull(lineID)
		e.FactoryID = optionalFromNull(factoryID)
		into[e.ID] = &e
	}
	return rows.Err()
}

func (tx *sqliteEventTx) CountInRange(ctx context.Context, subjectID string, window models.TimeWindow) (int64, error) {
	var count int64
	err := tx.q.QueryRowContext(ctx, sqliteCountInRange, subjectID, window.Start.UnixMicro(), window.End.UnixMicro()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}

func (tx *sqliteEventTx) SumDefectsInRange(ctx context.Context, subjectID string, window models.TimeWindow) (int64, error) {
	var sum int64
	err := tx.q.QueryRowContext(ctx, sqliteSumDefectsInRange, subjectID, window.Start.UnixMicro(), window.End.UnixMicro()).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum defects: %w", err)
	}
	return sum, nil
}

func (tx *sqliteEventTx) GroupDefectsByLine(ctx context.Context, factoryID string, window models.TimeWindow) ([]models.LineDefects, error) {
	rows, err := tx.q.QueryContext(ctx, sqliteGroupDefectsByLine, factoryID, window.Start.UnixMicro(), window.End.UnixMicro())
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

func (tx *sqliteEventTx) InsertAll(ctx context.Context, events []*models.Event) error {
	for start := 0; start < len(events); start += sqliteRowsPerStatement {
		chunk := events[start:min(start+sqliteRowsPerStatement, len(events))]

		query := `INSERT INTO events (` + sqliteSelectColumns + `) VALUES ` + rowPlaceholders(len(chunk))
		if _, err := tx.q.ExecContext(ctx, query, eventArgs(chunk)...); err != nil {
			if isSQLiteUniqueViolation(err) {
				return fmt.Errorf("%w: %v", ErrEventConflict, err)
			}
			return fmt.Errorf("insert events: %w", err)
		}
	}
	return nil
}

// UpdateAll applies the whole chunk in one statement. The receipt guard in the
// WHERE clause skips rows a newer writer already owns; fewer affected rows than
// requested means a conflict.
func (tx *sqliteEventTx) UpdateAll(ctx context.Context, events []*models.Event) error {
	for start := 0; start < len(events); start += sqliteRowsPerStatement {
		chunk := events[start:min(start+sqliteRowsPerStatement, len(events))]

		query := `WITH incoming (` + sqliteSelectColumns + `) AS (VALUES ` + rowPlaceholders(len(chunk)) + `)
		UPDATE events
		SET event_time = incoming.event_time,
		    received_at = incoming.received_at,
		    machine_id = incoming.machine_id,
		    duration_ms = incoming.duration_ms,
		    defect_count = incoming.defect_count,
		    line_id = incoming.line_id,
		    factory_id = incoming.factory_id
		FROM incoming
		WHERE events.event_id = incoming.event_id AND events.received_at < incoming.received_at`

		res, err := tx.q.ExecContext(ctx, query, eventArgs(chunk)...)
		if err != nil {
			return fmt.Errorf("update events: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update events: %w", err)
		}
		if affected != int64(len(chunk)) {
			return fmt.Errorf("%w: updated %d of %d events", ErrEventConflict, affected, len(chunk))
		}
	}
	return nil
}

func eventArgs(events []*models.Event) []any {
	args := make([]any, 0, len(events)*8)
	for _, e := range events {
		args = append(args,
			e.ID,
			e.OccurredAt.UnixMicro(),
			e.ReceivedAt.UnixMicro(),
			e.SubjectID,
			e.DurationMs,
			e.DefectCount,
			e.LineID.Ptr(),
			e.FactoryID.Ptr(),
		)
	}
	return args
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func rowPlaceholders(rows int) string {
	row := "(" + placeholders(8) + ")"
	parts := make([]string, rows)
	for i := range parts {
		parts[i] = row
	}
	return strings.Join(parts, ", ")
}

func fromUnixMicro(v int64) time.Time {
	return time.UnixMicro(v).UTC()
}

func optionalFromNull(v sql.NullString) models.OptionalString {
	if !v.Valid {
		return models.NoString()
	}
	return models.SomeString(v.String)
}

func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
