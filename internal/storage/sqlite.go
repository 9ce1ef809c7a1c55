// Package storage provides SQLite-based persistence for intersection query
// history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vkuzn/isect/internal/geom"
)

// Store manages the SQLite database connection for query history.
type Store struct {
	db *sql.DB
}

// QueryEntry represents a single recorded intersection query.
type QueryEntry struct {
	ID        int64
	Kind      string // "lines", "rect" or "scene"
	Input     string // human-readable input summary
	Hits      int    // number of intersection points found
	Points    string // formatted result points, space separated
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS queries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			input TEXT NOT NULL,
			hits INTEGER NOT NULL,
			points TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_queries_kind ON queries(kind);
		CREATE INDEX IF NOT EXISTS idx_queries_recent ON queries(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// FormatPoints renders a result point list the way history stores it.
func FormatPoints(points []geom.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// SaveQuery records a completed intersection query.
// Returns the ID of the inserted record.
func (s *Store) SaveQuery(kind, input string, points []geom.Point) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO queries (kind, input, hits, points) VALUES (?, ?, ?, ?)",
		kind, input, len(points), FormatPoints(points),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save query: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentQueries retrieves the most recent queries, newest first.
func (s *Store) RecentQueries(limit int) ([]QueryEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryEntries(
		`SELECT id, kind, input, hits, points, created_at
		 FROM queries
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// QueriesByKind retrieves the most recent queries of one kind, newest first.
func (s *Store) QueriesByKind(kind string, limit int) ([]QueryEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.queryEntries(
		`SELECT id, kind, input, hits, points, created_at
		 FROM queries
		 WHERE kind = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		kind, limit,
	)
}

func (s *Store) queryEntries(query string, args ...any) ([]QueryEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query history: %w", err)
	}
	defer rows.Close()

	var entries []QueryEntry
	for rows.Next() {
		var e QueryEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Kind, &e.Input, &e.Hits, &e.Points, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearHistory deletes all recorded queries of the given kind.
// An empty kind clears everything.
func (s *Store) ClearHistory(kind string) error {
	var err error
	if kind == "" {
		_, err = s.db.Exec("DELETE FROM queries")
	} else {
		_, err = s.db.Exec("DELETE FROM queries WHERE kind = ?", kind)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// QueryStats contains aggregated statistics for one query kind.
type QueryStats struct {
	Kind     string
	Count    int
	WithHits int // queries that found at least one point
	LastRun  time.Time
}

// Stats retrieves aggregated statistics for a specific query kind.
func (s *Store) Stats(kind string) (*QueryStats, error) {
	stats := &QueryStats{Kind: kind}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN hits > 0 THEN 1 ELSE 0 END), 0)
		 FROM queries WHERE kind = ?`,
		kind,
	).Scan(&stats.Count, &stats.WithHits)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM queries WHERE kind = ? ORDER BY id DESC LIMIT 1`,
		kind,
	).Scan(&lastRun)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		switch v := lastRun.(type) {
		case time.Time:
			stats.LastRun = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				stats.LastRun = parsed
			}
		}
	}

	return stats, nil
}
