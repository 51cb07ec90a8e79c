// Package storage provides SQLite-based persistence for play sessions.
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

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the session journal.
type Store struct {
	db *sql.DB
}

// Session is one recorded play session.
type Session struct {
	ID        int64
	User      string // Remote SSH user, empty for local play
	Seed      int64
	Ticks     uint64
	BricksHit int
	Launched  bool
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns how long the session lasted.
func (s Session) Duration() time.Duration {
	if s.EndedAt.Before(s.StartedAt) {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			bricks_hit INTEGER NOT NULL DEFAULT 0,
			launched INTEGER NOT NULL DEFAULT 0,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (user, seed, ticks, bricks_hit, launched, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.User,
		sess.Seed,
		int64(sess.Ticks), //#nosec G115 -- tick counts stay far below MaxInt64
		sess.BricksHit,
		sess.Launched,
		sess.StartedAt.UTC().Format(timeLayout),
		sess.EndedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, user, seed, ticks, bricks_hit, launched, started_at, ended_at
		 FROM sessions
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// Stats contains aggregated statistics over all sessions.
type Stats struct {
	Sessions   int
	TotalTicks int64
	TotalHits  int64
	BestHits   int
}

// GetStats aggregates the whole journal.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks), 0), COALESCE(SUM(bricks_hit), 0), COALESCE(MAX(bricks_hit), 0)
		 FROM sessions`,
	).Scan(&stats.Sessions, &stats.TotalTicks, &stats.TotalHits, &stats.BestHits)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return stats, nil
}

// ClearSessions deletes the whole journal.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

func scanSession(rows *sql.Rows) (Session, error) {
	var sess Session
	var ticks int64
	var started, ended string
	if err := rows.Scan(
		&sess.ID,
		&sess.User,
		&sess.Seed,
		&ticks,
		&sess.BricksHit,
		&sess.Launched,
		&started,
		&ended,
	); err != nil {
		return Session{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	sess.Ticks = uint64(ticks) //#nosec G115 -- stored from a uint64
	if parsed, err := time.Parse(timeLayout, started); err == nil {
		sess.StartedAt = parsed
	}
	if parsed, err := time.Parse(timeLayout, ended); err == nil {
		sess.EndedAt = parsed
	}
	return sess, nil
}
