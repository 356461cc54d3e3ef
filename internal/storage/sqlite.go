// Package storage keeps the run journal: one record per finished session.
// The journal lives in an in-memory SQLite database, so it disappears with
// the process. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite connection backing the run journal.
type Store struct {
	db *sql.DB
}

// RunRecord describes one finished session.
type RunRecord struct {
	ID         int64
	Session    int   // Session number within the process, starting at 1
	Score      int   // Final score
	Ticks      int   // Active ticks simulated
	Jumps      int   // Jump impulses applied
	Bounces    int   // Ground contacts
	DurationMs int64 // Game time between start and crash
	EndedAt    time.Time
}

// Summary aggregates every run in the journal.
type Summary struct {
	Runs       int
	BestScore  int
	TotalScore int
	TotalTicks int
	TotalJumps int
}

// AverageScore returns the mean score per run, or 0 for an empty journal.
func (s Summary) AverageScore() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.Runs)
}

// Open creates an empty in-memory journal and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database; pin to one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session INTEGER NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			jumps INTEGER NOT NULL DEFAULT 0,
			bounces INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the journal.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun appends a finished session to the journal.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (session, score, ticks, jumps, bounces, duration_ms, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Session, r.Score, r.Ticks, r.Jumps, r.Bounces, r.DurationMs, r.EndedAt.UnixMilli(),
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

// Runs returns every run in the order they finished.
func (s *Store) Runs() ([]RunRecord, error) {
	return s.queryRuns(`SELECT id, session, score, ticks, jumps, bounces, duration_ms, ended_at
		 FROM runs
		 ORDER BY id ASC`)
}

// TopRuns returns the best N runs, highest score first. Ties keep the
// earlier run first.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRuns(`SELECT id, session, score, ticks, jumps, bounces, duration_ms, ended_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`, limit)
}

// queryRuns scans run rows for the given query.
func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var endedAt int64
		if err := rows.Scan(&r.ID, &r.Session, &r.Score, &r.Ticks, &r.Jumps, &r.Bounces, &r.DurationMs, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.EndedAt = time.UnixMilli(endedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Summary aggregates the whole journal.
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(MAX(score), 0),
		        COALESCE(SUM(score), 0),
		        COALESCE(SUM(ticks), 0),
		        COALESCE(SUM(jumps), 0)
		 FROM runs`,
	).Scan(&sum.Runs, &sum.BestScore, &sum.TotalScore, &sum.TotalTicks, &sum.TotalJumps)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarise runs: %w", err)
	}
	return sum, nil
}
