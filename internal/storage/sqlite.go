// Package storage keeps job sources and cleared-level records in SQLite.
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

// MemoryPath opens a database that lives only as long as the Store.
const MemoryPath = ":memory:"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// JobSource is a saved job body as the player typed it.
type JobSource struct {
	Name      string
	Source    string
	UpdatedAt time.Time
}

// LevelRecord describes one cleared level.
type LevelRecord struct {
	ID        int64
	Generator string
	Seed      int64
	Width     int
	Height    int
	Cycles    int // processor cycles spent before the win
	Jobs      int // jobs defined at the time
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path. An empty path
// or MemoryPath keeps everything in memory.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = MemoryPath
	}

	if dbPath != MemoryPath {
		// Expand ~ to home directory
		if dbPath[0] == '~' {
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
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS jobs (
			name TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS levels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			generator TEXT NOT NULL,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			cycles INTEGER NOT NULL DEFAULT 0,
			jobs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_levels_size ON levels(generator, width, height, cycles);
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

// SaveJob inserts or replaces the source of a job.
func (s *Store) SaveJob(name, source string) error {
	_, err := s.db.Exec(
		`INSERT INTO jobs (name, source) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET source = excluded.source, updated_at = CURRENT_TIMESTAMP`,
		name, source,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save job %s: %w", name, err)
	}
	return nil
}

// Jobs returns every saved job ordered by name.
func (s *Store) Jobs() ([]JobSource, error) {
	rows, err := s.db.Query(`SELECT name, source, updated_at FROM jobs ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []JobSource
	for rows.Next() {
		var j JobSource
		var updatedAt any
		if err := rows.Scan(&j.Name, &j.Source, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		j.UpdatedAt = parseTime(updatedAt)
		jobs = append(jobs, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return jobs, nil
}

// Job returns one saved job. The bool is false when no job has that name.
func (s *Store) Job(name string) (JobSource, bool, error) {
	var j JobSource
	var updatedAt any
	err := s.db.QueryRow(
		`SELECT name, source, updated_at FROM jobs WHERE name = ?`, name,
	).Scan(&j.Name, &j.Source, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return JobSource{}, false, nil
	}
	if err != nil {
		return JobSource{}, false, fmt.Errorf("storage: cannot query job %s: %w", name, err)
	}
	j.UpdatedAt = parseTime(updatedAt)
	return j, true, nil
}

// DeleteJob removes a job. Deleting a missing job is not an error.
func (s *Store) DeleteJob(name string) error {
	if _, err := s.db.Exec("DELETE FROM jobs WHERE name = ?", name); err != nil {
		return fmt.Errorf("storage: cannot delete job %s: %w", name, err)
	}
	return nil
}

// RecordLevel stores a cleared level and returns its ID.
func (s *Store) RecordLevel(rec LevelRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO levels (generator, seed, width, height, cycles, jobs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Generator, rec.Seed, rec.Width, rec.Height, rec.Cycles, rec.Jobs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record level: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Records returns the most recent cleared levels, newest first.
func (s *Store) Records(limit int) ([]LevelRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, generator, seed, width, height, cycles, jobs, created_at
		 FROM levels
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var records []LevelRecord
	for rows.Next() {
		var r LevelRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Generator, &r.Seed, &r.Width, &r.Height,
			&r.Cycles, &r.Jobs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestCycles returns the fewest cycles any win took on a maze of the given
// generator and size. Returns 0 if there is no such win.
func (s *Store) BestCycles(generator string, width, height int) (int, error) {
	var cycles sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(cycles) FROM levels WHERE generator = ? AND width = ? AND height = ?",
		generator, width, height,
	).Scan(&cycles)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best cycles: %w", err)
	}

	if !cycles.Valid {
		return 0, nil
	}

	return int(cycles.Int64), nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
