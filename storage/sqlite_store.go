package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"punchclock/timecard"
)

// DefaultBatchName is the fixed logical key under which the last cleanly
// validated entry batch is stored.
const DefaultBatchName = "timecard"

// SQLiteStore persists entry batches as JSON payloads keyed by name.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS batches (
	name TEXT PRIMARY KEY,
	payload TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// SaveBatch replaces the batch stored under name with the given normalized
// entries.
func (s *SQLiteStore) SaveBatch(name string, entries []timecard.NormalizedEntry) error {
	if name == "" {
		return fmt.Errorf("batch name must not be empty")
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("serialize batch %s: %w", name, err)
	}

	const upsertStmt = `
INSERT INTO batches (name, payload, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at;`

	if _, err := s.db.Exec(upsertStmt, name, string(payload), time.Now().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("save batch %s: %w", name, err)
	}
	return nil
}

// LoadBatch returns the stored batch as raw entries ready to be re-fed
// through the pipeline. A missing key, empty payload, or payload that no
// longer deserializes all mean "no prior entries" and yield an empty batch.
func (s *SQLiteStore) LoadBatch(name string) ([]timecard.RawEntry, error) {
	if name == "" {
		return nil, fmt.Errorf("batch name must not be empty")
	}

	var payload string
	err := s.db.QueryRow(`SELECT payload FROM batches WHERE name = ?;`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return []timecard.RawEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query batch %s: %w", name, err)
	}

	var entries []timecard.NormalizedEntry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		return []timecard.RawEntry{}, nil
	}

	raws := make([]timecard.RawEntry, 0, len(entries))
	for _, entry := range entries {
		raws = append(raws, entry.Raw())
	}
	return raws, nil
}

// DeleteBatch removes the batch stored under name. It reports whether a
// batch existed.
func (s *SQLiteStore) DeleteBatch(name string) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("batch name must not be empty")
	}

	res, err := s.db.Exec(`DELETE FROM batches WHERE name = ?;`, name)
	if err != nil {
		return false, fmt.Errorf("delete batch %s: %w", name, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read deleted row count: %w", err)
	}
	return rows > 0, nil
}
