// Package storage keeps the ledger of finished runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/cyclist-collector/internal/core"
)

// Store manages the SQLite database connection for the run ledger.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// RunRecord is one finished run.
type RunRecord struct {
	Seq       int64  // Insertion order
	ID        string // Random UUID
	Score     int
	Coins     int
	Distance  int
	League    string
	Skills    int
	HighScore int
	EndedAt   time.Time
}

// SessionStats aggregates all recorded runs.
type SessionStats struct {
	Runs       int
	Best       int
	Average    float64
	TotalCoins int
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

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	return newStore(db)
}

// OpenMemory opens a ledger that lives only as long as the process.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	return newStore(db)
}

func newStore(db *sql.DB) (*Store, error) {
	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

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
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			distance INTEGER NOT NULL DEFAULT 0,
			league TEXT NOT NULL DEFAULT '',
			skills INTEGER NOT NULL DEFAULT 0,
			high_score INTEGER NOT NULL DEFAULT 0,
			ended_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
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

// RecordRun stores a finished run and returns the stored record.
func (s *Store) RecordRun(run core.RunSummary) (RunRecord, error) {
	rec := RunRecord{
		ID:        uuid.NewString(),
		Score:     run.Score,
		Coins:     run.Coins,
		Distance:  run.Distance,
		League:    run.League,
		Skills:    run.Skills,
		HighScore: run.HighScore,
		EndedAt:   s.now().UTC(),
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (run_id, score, coins, distance, league, skills, high_score, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Score, rec.Coins, rec.Distance, rec.League, rec.Skills, rec.HighScore,
		rec.EndedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot record run: %w", err)
	}

	rec.Seq, err = result.LastInsertId()
	if err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return rec, nil
}

// TopRuns retrieves the best N runs by score. Ties keep recording order.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(`ORDER BY score DESC, seq ASC LIMIT ?`, limit)
}

// RecentRuns retrieves the last N runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(`ORDER BY seq DESC LIMIT ?`, limit)
}

func (s *Store) queryRuns(tail string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT seq, run_id, score, coins, distance, league, skills, high_score, ended_at
		 FROM runs `+tail,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var endedAt string
		if err := rows.Scan(&r.Seq, &r.ID, &r.Score, &r.Coins, &r.Distance,
			&r.League, &r.Skills, &r.HighScore, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, endedAt); err == nil {
			r.EndedAt = parsed
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// RunCount returns the number of recorded runs.
func (s *Store) RunCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// SessionStats returns aggregates over every recorded run.
// All fields are zero when nothing has been recorded.
func (s *Store) SessionStats() (SessionStats, error) {
	var stats SessionStats
	var best, coins sql.NullInt64
	var avg sql.NullFloat64

	err := s.db.QueryRow(
		"SELECT COUNT(*), MAX(score), AVG(score), SUM(coins) FROM runs",
	).Scan(&stats.Runs, &best, &avg, &coins)
	if err != nil {
		return SessionStats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	stats.Best = int(best.Int64)
	stats.Average = avg.Float64
	stats.TotalCoins = int(coins.Int64)
	return stats, nil
}

// Clear deletes all recorded runs.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
