// Package storage provides SQLite-based persistence for maze run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Run outcomes as stored in the database.
const (
	OutcomeWon     = "won"
	OutcomeTrapped = "trapped"
	OutcomeQuit    = "quit"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord represents one finished maze run.
type RunRecord struct {
	ID           int64
	Variant      string
	Size         int
	Outcome      string // "won", "trapped", "quit"
	Turns        int
	CellsVisited int
	CreatedAt    time.Time
}

// RunStats summarizes the recorded runs of one variant.
type RunStats struct {
	Plays     int
	Wins      int
	Traps     int
	Quits     int
	BestTurns int // Fewest turns in a winning run; 0 if no wins
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			size INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			turns INTEGER NOT NULL,
			cells_visited INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_variant ON runs(variant);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(variant, created_at DESC);
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

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (variant, size, outcome, turns, cells_visited)
		 VALUES (?, ?, ?, ?, ?)`,
		r.Variant, r.Size, r.Outcome, r.Turns, r.CellsVisited,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs for the given variant, newest
// first. An empty variant selects runs of all variants.
func (s *Store) RecentRuns(variant string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, variant, size, outcome, turns, cells_visited, created_at
		 FROM runs`
	args := []any{}
	if variant != "" {
		query += ` WHERE variant = ?`
		args = append(args, variant)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Variant, &r.Size, &r.Outcome, &r.Turns, &r.CellsVisited, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats summarizes the recorded runs of one variant.
func (s *Store) Stats(variant string) (RunStats, error) {
	var stats RunStats

	row := s.db.QueryRow(
		`SELECT
			COUNT(*),
			COALESCE(SUM(outcome = ?), 0),
			COALESCE(SUM(outcome = ?), 0),
			COALESCE(SUM(outcome = ?), 0),
			COALESCE(MIN(CASE WHEN outcome = ? THEN turns END), 0)
		 FROM runs WHERE variant = ?`,
		OutcomeWon, OutcomeTrapped, OutcomeQuit, OutcomeWon, variant,
	)

	if err := row.Scan(&stats.Plays, &stats.Wins, &stats.Traps, &stats.Quits, &stats.BestTurns); err != nil {
		return stats, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	return stats, nil
}
