package localcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"checkin-core/internal/domain/history"
	"checkin-core/internal/pkg/errs"
	"checkin-core/internal/usecase/shared"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const memoryPath = ":memory:"

// Cache is the on-device store for the offline queue and the action history.
// Rows are JSON blobs; nothing here is queried by field.
type Cache struct {
	db *sql.DB
}

func Open(path string) (*Cache, error) {
	if path == "" {
		path = memoryPath
	}
	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, errs.Wrap(err, "create cache dir")
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errs.Wrap(err, "open sqlite")
	}
	// one connection: an in-memory database only exists on the connection that made it
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS offline_queue (
			queue_id   TEXT PRIMARY KEY,
			created_at INTEGER NOT NULL,
			payload    BLOB NOT NULL
		);
		CREATE TABLE IF NOT EXISTS action_history (
			position INTEGER PRIMARY KEY,
			payload  BLOB NOT NULL
		);`); err != nil {
		_ = db.Close()
		return nil, errs.Wrap(err, "create cache tables")
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) SaveQueueEntry(ctx context.Context, e shared.QueueEntry) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return errs.Wrap(err, "encode queue entry")
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO offline_queue (queue_id, created_at, payload) VALUES (?, ?, ?)
		ON CONFLICT (queue_id) DO UPDATE SET payload = excluded.payload`,
		e.QueueID, e.CreatedAt.UnixNano(), payload)
	if err != nil {
		return errs.Wrap(err, "save queue entry")
	}
	return nil
}

func (c *Cache) DeleteQueueEntry(ctx context.Context, queueID string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM offline_queue WHERE queue_id = ?`, queueID); err != nil {
		return errs.Wrap(err, "delete queue entry")
	}
	return nil
}

func (c *Cache) LoadQueueEntries(ctx context.Context) ([]shared.QueueEntry, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT payload FROM offline_queue ORDER BY created_at, queue_id`)
	if err != nil {
		return nil, errs.Wrap(err, "select queue entries")
	}
	defer func() { _ = rows.Close() }()

	var out []shared.QueueEntry
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, errs.Wrap(err, "scan queue entry")
		}
		var e shared.QueueEntry
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, errs.Wrap(err, "decode queue entry")
		}
		out = append(out, e)
	}
	return out, errs.Wrap(rows.Err(), "iterate queue entries")
}

// SaveHistory replaces the stored history with entries, newest first.
func (c *Cache) SaveHistory(ctx context.Context, entries []history.Entry) (retErr error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return errs.Wrap(err, "begin history write")
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM action_history`); err != nil {
		return errs.Wrap(err, "clear history")
	}
	for i, e := range entries {
		payload, err := json.Marshal(e)
		if err != nil {
			return errs.Wrap(err, "encode history entry")
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO action_history (position, payload) VALUES (?, ?)`, i, payload); err != nil {
			return errs.Wrap(err, "insert history entry")
		}
	}
	return errs.Wrap(tx.Commit(), "commit history")
}

func (c *Cache) LoadHistory(ctx context.Context) ([]history.Entry, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT payload FROM action_history ORDER BY position`)
	if err != nil {
		return nil, errs.Wrap(err, "select history")
	}
	defer func() { _ = rows.Close() }()

	var out []history.Entry
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, errs.Wrap(err, "scan history entry")
		}
		var e history.Entry
		if err := json.Unmarshal(payload, &e); err != nil {
			return nil, errs.Wrap(err, "decode history entry")
		}
		out = append(out, e)
	}
	return out, errs.Wrap(rows.Err(), "iterate history")
}
