// Package leaderboard persists finished runs to a local sqlite database.
package leaderboard

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Entry is one finished run.
type Entry struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	NetWorth   float64 `json:"netWorth"`
	Day        int     `json:"day"`
	FinishedAt int64   `json:"finishedAt"` // epoch millis
}

// Store wraps the leaderboard database.
type Store struct {
	conn *sql.DB
}

// Open opens (creating if needed) the leaderboard database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// WAL mode for better concurrency
	conn, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			net_worth   REAL NOT NULL,
			day         INTEGER NOT NULL,
			finished_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_net_worth ON runs(net_worth DESC);
	`)
	if err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Add records a finished run. A missing id is filled in.
func (s *Store) Add(e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	_, err := s.conn.Exec(
		`INSERT INTO runs (id, name, net_worth, day, finished_at) VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.NetWorth, e.Day, e.FinishedAt,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to insert run: %w", err)
	}
	return e, nil
}

// Top returns the best n runs by final net worth.
func (s *Store) Top(n int) ([]Entry, error) {
	rows, err := s.conn.Query(
		`SELECT id, name, net_worth, day, finished_at FROM runs ORDER BY net_worth DESC, finished_at ASC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.NetWorth, &e.Day, &e.FinishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}
	return entries, nil
}
