// Package store keeps screen records, sessions and the audit trail in SQLite.
// The default DSN is an in-memory database, so state lasts only as long as
// the process.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// Store wraps the shared database handle.
type Store struct {
	DB *sql.DB
}

// Record is one stored row of a screen.
type Record struct {
	ID        string          `json:"id"`
	Body      json.RawMessage `json:"body"`
	UpdatedAt string          `json:"updatedAt"`
}

// Open connects to dsn and creates the schema. The pool is pinned to a
// single connection: every connection to ":memory:" is a separate database.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 10000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}
	s := &Store{DB: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database. An in-memory database is discarded.
func (s *Store) Close() error { return s.DB.Close() }

func (s *Store) migrate(ctx context.Context) error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS records (
			screen TEXT NOT NULL,
			id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			body TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (screen, id)
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			display_name TEXT,
			role TEXT DEFAULT 'user',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			last_login DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			user_id INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			expires_at DATETIME NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS audit_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT DEFAULT 'system',
			action TEXT NOT NULL,
			module TEXT NOT NULL,
			record_id TEXT NOT NULL,
			summary TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		"CREATE INDEX IF NOT EXISTS idx_records_screen_seq ON records(screen, seq)",
		"CREATE INDEX IF NOT EXISTS idx_audit_log_module ON audit_log(module)",
	}
	for _, ddl := range tables {
		if _, err := s.DB.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

func now() string { return time.Now().UTC().Format("2006-01-02 15:04:05") }

// List returns a screen's records in insertion order.
func (s *Store) List(ctx context.Context, screen string) ([]Record, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT id, body, COALESCE(updated_at,'') FROM records WHERE screen = ? ORDER BY seq", screen)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", screen, err)
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var r Record
		var body string
		if err := rows.Scan(&r.ID, &body, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list %s: %w", screen, err)
		}
		r.Body = json.RawMessage(body)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Get returns one record or ErrNotFound.
func (s *Store) Get(ctx context.Context, screen, id string) (Record, error) {
	r := Record{ID: id}
	var body string
	err := s.DB.QueryRowContext(ctx,
		"SELECT body, COALESCE(updated_at,'') FROM records WHERE screen = ? AND id = ?", screen, id).
		Scan(&body, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%s/%s: %w", screen, id, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("get %s/%s: %w", screen, id, err)
	}
	r.Body = json.RawMessage(body)
	return r, nil
}

// Insert appends a record, failing with ErrDuplicate when the id is taken.
func (s *Store) Insert(ctx context.Context, screen, id string, body []byte) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM records WHERE screen = ? AND id = ?", screen, id).Scan(&exists); err != nil {
		return fmt.Errorf("insert %s/%s: %w", screen, id, err)
	}
	if exists > 0 {
		return fmt.Errorf("%s/%s: %w", screen, id, ErrDuplicate)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO records (screen, id, seq, body, updated_at)
		 VALUES (?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM records WHERE screen = ?), ?, ?)`,
		screen, id, screen, string(body), now()); err != nil {
		return fmt.Errorf("insert %s/%s: %w", screen, id, err)
	}
	return tx.Commit()
}

// Update replaces the body of an existing record.
func (s *Store) Update(ctx context.Context, screen, id string, body []byte) error {
	res, err := s.DB.ExecContext(ctx,
		"UPDATE records SET body = ?, updated_at = ? WHERE screen = ? AND id = ?", string(body), now(), screen, id)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", screen, id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s/%s: %w", screen, id, ErrNotFound)
	}
	return nil
}

// Delete removes a record.
func (s *Store) Delete(ctx context.Context, screen, id string) error {
	res, err := s.DB.ExecContext(ctx, "DELETE FROM records WHERE screen = ? AND id = ?", screen, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", screen, id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s/%s: %w", screen, id, ErrNotFound)
	}
	return nil
}

// ReplaceAll swaps a screen's records for recs in one transaction.
func (s *Store) ReplaceAll(ctx context.Context, screen string, recs []Record) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM records WHERE screen = ?", screen); err != nil {
		return fmt.Errorf("reset %s: %w", screen, err)
	}
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO records (screen, id, seq, body, updated_at) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("reset %s: %w", screen, err)
	}
	defer stmt.Close()

	ts := now()
	seen := make(map[string]bool, len(recs))
	for i, r := range recs {
		if seen[r.ID] {
			return fmt.Errorf("%s/%s: %w", screen, r.ID, ErrDuplicate)
		}
		seen[r.ID] = true
		if _, err := stmt.ExecContext(ctx, screen, r.ID, i+1, string(r.Body), ts); err != nil {
			return fmt.Errorf("reset %s/%s: %w", screen, r.ID, err)
		}
	}
	return tx.Commit()
}

// Count returns the number of records of a screen.
func (s *Store) Count(ctx context.Context, screen string) (int, error) {
	var n int
	err := s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM records WHERE screen = ?", screen).Scan(&n)
	return n, err
}
