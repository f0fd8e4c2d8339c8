// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the run log.
type Store struct {
	db *sql.DB
}

// Run is the summary of one finished drive. Only summaries are stored,
// never simulation state.
type Run struct {
	ID        int64
	TrackID   string
	Driver    string // "keyboard" or an autopilot description
	Ticks     int64
	Distance  float64
	Crashed   bool
	CreatedAt time.Time
}

// TrackStats contains aggregated statistics for a track.
type TrackStats struct {
	TrackID      string
	RunsCount    int
	CrashCount   int
	BestDistance float64
	AvgDistance  float64
	LongestTicks int64
	LastDriven   time.Time
}

const timeLayout = "2006-01-02 15:04:05"

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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			track_id TEXT NOT NULL,
			driver TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			distance REAL NOT NULL,
			crashed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_track_id ON runs(track_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(track_id, distance DESC);
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

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (track_id, driver, ticks, distance, crashed) VALUES (?, ?, ?, ?, ?)",
		r.TrackID, r.Driver, r.Ticks, r.Distance, boolInt(r.Crashed),
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

// SaveRuns records a batch of runs in one transaction.
func (s *Store) SaveRuns(runs []Run) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.Prepare("INSERT INTO runs (track_id, driver, ticks, distance, crashed) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range runs {
		if _, err := stmt.Exec(r.TrackID, r.Driver, r.Ticks, r.Distance, boolInt(r.Crashed)); err != nil {
			return fmt.Errorf("storage: cannot save run: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit runs: %w", err)
	}
	return nil
}

// TopRuns retrieves the top N runs on the given track.
// Results are ordered by distance descending.
func (s *Store) TopRuns(trackID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, track_id, driver, ticks, distance, crashed, created_at
		 FROM runs
		 WHERE track_id = ?
		 ORDER BY distance DESC, id ASC
		 LIMIT ?`,
		trackID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// AllRuns retrieves every run on the given track, best first.
func (s *Store) AllRuns(trackID string) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, track_id, driver, ticks, distance, crashed, created_at
		 FROM runs
		 WHERE track_id = ?
		 ORDER BY distance DESC, id ASC`,
		trackID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.TrackID, &r.Driver, &r.Ticks, &r.Distance, &r.Crashed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestDistance returns the longest distance driven on the given track.
// Returns 0 if no runs exist.
func (s *Store) BestDistance(trackID string) (float64, error) {
	var best sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT MAX(distance) FROM runs WHERE track_id = ?",
		trackID,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get best distance: %w", err)
	}
	return best.Float64, nil
}

// ClearRuns deletes all runs for the given track.
func (s *Store) ClearRuns(trackID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE track_id = ?", trackID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// GetTrackStats retrieves aggregated statistics for a specific track.
func (s *Store) GetTrackStats(trackID string) (*TrackStats, error) {
	stats := &TrackStats{TrackID: trackID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(crashed), 0), COALESCE(MAX(distance), 0),
		        COALESCE(AVG(distance), 0), COALESCE(MAX(ticks), 0)
		 FROM runs WHERE track_id = ?`,
		trackID,
	).Scan(&stats.RunsCount, &stats.CrashCount, &stats.BestDistance, &stats.AvgDistance, &stats.LongestTicks)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get track stats: %w", err)
	}

	var lastDriven any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE track_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		trackID,
	).Scan(&lastDriven)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last driven: %w", err)
	}
	if err == nil {
		stats.LastDriven = parseTime(lastDriven)
	}

	return stats, nil
}

// GetAllTrackStats retrieves statistics for all tracks that have been driven.
func (s *Store) GetAllTrackStats() (map[string]*TrackStats, error) {
	rows, err := s.db.Query(
		`SELECT track_id, COUNT(*), SUM(crashed), MAX(distance), AVG(distance), MAX(ticks), MAX(created_at)
		 FROM runs
		 GROUP BY track_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all track stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*TrackStats)
	for rows.Next() {
		var st TrackStats
		var lastDriven any
		if err := rows.Scan(&st.TrackID, &st.RunsCount, &st.CrashCount, &st.BestDistance,
			&st.AvgDistance, &st.LongestTicks, &lastDriven); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastDriven = parseTime(lastDriven)
		stats[st.TrackID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
