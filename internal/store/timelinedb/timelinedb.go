// Package timelinedb is a SQLite snapshot store for fetched timelines.
// It caches the raw upstream payload per handle so repeated analyses of
// the same profile don't burn API quota, and keeps a log of report
// generations for the history command. Reports themselves are never
// stored; they are recomputed from the snapshot.
package timelinedb

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database.
type DB struct{ sql *sql.DB }

func Open(path string) (*DB, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := d.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		return nil, err
	}
	db := &DB{sql: d}
	if err := db.migrate(); err != nil {
		_ = d.Close()
		return nil, err
	}
	return db, nil
}

func (d *DB) Close() error { return d.sql.Close() }

func (d *DB) migrate() error {
	_, err := d.sql.Exec(`
	CREATE TABLE IF NOT EXISTS timelines (
	  handle TEXT PRIMARY KEY,
	  fetched_at INTEGER NOT NULL,
	  payload BLOB NOT NULL
	);
	CREATE TABLE IF NOT EXISTS report_events (
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  ts INTEGER NOT NULL,
	  handle TEXT NOT NULL,
	  posts INTEGER NOT NULL,
	  duration_ms INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_report_events_ts ON report_events(ts);
	`)
	return err
}

// SaveTimeline upserts the raw timeline payload for a handle.
func (d *DB) SaveTimeline(ctx context.Context, handle string, fetchedAt time.Time, payload []byte) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO timelines(handle, fetched_at, payload) VALUES(?,?,?)
		 ON CONFLICT(handle) DO UPDATE SET fetched_at=excluded.fetched_at, payload=excluded.payload`,
		handle, fetchedAt.Unix(), payload)
	return err
}

// LoadTimeline returns the cached payload for handle if it was fetched
// within maxAge of now. ok is false on a miss or a stale snapshot.
func (d *DB) LoadTimeline(ctx context.Context, handle string, maxAge time.Duration, now time.Time) (payload []byte, ok bool, err error) {
	row := d.sql.QueryRowContext(ctx, `SELECT fetched_at, payload FROM timelines WHERE handle=?`, handle)
	var fetchedAt int64
	if err := row.Scan(&fetchedAt, &payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, err
	}
	if now.Sub(time.Unix(fetchedAt, 0)) > maxAge {
		return nil, false, nil
	}
	return payload, true, nil
}

// ReportEvent is one logged report generation.
type ReportEvent struct {
	TS       time.Time
	Handle   string
	Posts    int
	Duration time.Duration
}

// RecordReport logs one report generation.
func (d *DB) RecordReport(ctx context.Context, ts time.Time, handle string, posts int, dur time.Duration) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO report_events(ts, handle, posts, duration_ms) VALUES(?,?,?,?)`,
		ts.Unix(), handle, posts, dur.Milliseconds())
	return err
}

// RecentReports returns up to limit report events, newest first.
func (d *DB) RecentReports(ctx context.Context, limit int) ([]ReportEvent, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT ts, handle, posts, duration_ms FROM report_events ORDER BY ts DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ReportEvent
	for rows.Next() {
		var ts, durMS int64
		var e ReportEvent
		if err := rows.Scan(&ts, &e.Handle, &e.Posts, &durMS); err != nil {
			return nil, err
		}
		e.TS = time.Unix(ts, 0).UTC()
		e.Duration = time.Duration(durMS) * time.Millisecond
		out = append(out, e)
	}
	return out, rows.Err()
}
