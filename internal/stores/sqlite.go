package stores

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS events (
    event_id     TEXT    PRIMARY KEY,
    event_time   INTEGER NOT NULL,
    received_at  INTEGER NOT NULL,
    machine_id   TEXT    NOT NULL,
    duration_ms  INTEGER NOT NULL,
    defect_count INTEGER NOT NULL,
    line_id      TEXT,
    factory_id   TEXT
)`,
	`CREATE INDEX IF NOT EXISTS idx_events_machine_time ON events (machine_id, event_time)`,
	`CREATE INDEX IF NOT EXISTS idx_events_factory_time ON events (factory_id, event_time)`,
}

// OpenSQLite opens or creates the database file at path and makes sure the
// events table exists. The pool holds a single connection, so transactions
// from concurrent batches queue instead of failing with SQLITE_BUSY.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA busy_timeout = 5000;",
		"PRAGMA synchronous = NORMAL;",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	if err := ensureSQLiteSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

func ensureSQLiteSchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range sqliteSchema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
