package db

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/cardbox/cardbox/internal/services"
)

const recordsSchema = `
CREATE TABLE IF NOT EXISTS records (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// SQLiteRecords keeps the profile's named records in a local SQLite file,
// one row per record. Read failures report absence and write failures are
// logged and dropped; the gateway owns recovery policy.
type SQLiteRecords struct {
	db *sql.DB
}

func NewSQLiteRecords(sqldb *sql.DB) (*SQLiteRecords, error) {
	if sqldb == nil {
		return nil, errors.New("nil db")
	}
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := sqldb.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	if _, err := sqldb.Exec(recordsSchema); err != nil {
		return nil, fmt.Errorf("create records table: %w", err)
	}
	return &SQLiteRecords{db: sqldb}, nil
}

// Open opens the records database at path, creating the file and its parent
// directory on first run.
func Open(path string) (*SQLiteRecords, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?cache=shared&_busy_timeout=5000", filepath.ToSlash(path))
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store, err := NewSQLiteRecords(sqldb)
	if err != nil {
		_ = sqldb.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteRecords) Close() error { return s.db.Close() }

func (s *SQLiteRecords) GetRecord(key string) ([]byte, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		log.Printf("sqlite records: get %s: %v", key, err)
		return nil, false
	}
	return []byte(value), true
}

func (s *SQLiteRecords) PutRecord(key string, value []byte) {
	_, err := s.db.Exec(`INSERT INTO records(key, value) VALUES(?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(value))
	if err != nil {
		log.Printf("sqlite records: put %s: %v", key, err)
	}
}

var _ services.RecordStore = (*SQLiteRecords)(nil)
