package progress

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	profile_id TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	saved_at   INTEGER NOT NULL
);`

// SQLiteStore persists snapshots in a single SQLite database, one row per
// profile. An alternative to FileStore for installations that prefer a
// single save file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if needed) the snapshot database at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite store path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(snapshotSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) Read(key string) ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM snapshots WHERE profile_id = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read snapshot %q: %w", key, err)
	}
	return data, true, nil
}

func (s *SQLiteStore) Write(key string, data []byte) error {
	_, err := s.db.Exec(`
INSERT INTO snapshots (profile_id, data, saved_at) VALUES (?, ?, ?)
ON CONFLICT(profile_id) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at`,
		key, data, time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("write snapshot %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM snapshots WHERE profile_id = ?`, key); err != nil {
		return fmt.Errorf("delete snapshot %q: %w", key, err)
	}
	return nil
}
