// Package storage provides SQLite-based persistence for recorded replays.
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

// ErrReplayNotFound is returned when no replay has the requested ID.
var ErrReplayNotFound = errors.New("storage: replay not found")

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// ReplayEntry is one recorded session. Events is only populated by Replay.
type ReplayEntry struct {
	ID        int64
	GameID    string
	Config    []byte // YAML of the config the session ran with
	Steps     uint64 // Number of Step calls recorded
	FinalHash uint64 // Snapshot hash after the last step
	CreatedAt time.Time
	Events    []ReplayEvent
}

// ReplayEvent is the input handed to one Step call. Steps without any input
// are not stored.
type ReplayEvent struct {
	Step       uint64
	Actions    uint32 // Bit set of core.Action values
	PointerX   float64
	HasPointer bool
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
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			config TEXT NOT NULL,
			steps INTEGER NOT NULL,
			final_hash INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_game_id ON replays(game_id);

		CREATE TABLE IF NOT EXISTS replay_events (
			replay_id INTEGER NOT NULL REFERENCES replays(id) ON DELETE CASCADE,
			step INTEGER NOT NULL,
			actions INTEGER NOT NULL DEFAULT 0,
			pointer_x REAL NOT NULL DEFAULT 0,
			has_pointer INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (replay_id, step)
		);
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

// SaveReplay stores a replay and its events in one transaction.
// Returns the ID of the inserted replay.
func (s *Store) SaveReplay(entry ReplayEntry) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	result, err := tx.Exec(
		"INSERT INTO replays (game_id, config, steps, final_hash) VALUES (?, ?, ?, ?)",
		entry.GameID, string(entry.Config), int64(entry.Steps), int64(entry.FinalHash), //#nosec G115 -- stored bit-for-bit
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO replay_events (replay_id, step, actions, pointer_x, has_pointer) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare event insert: %w", err)
	}
	defer stmt.Close()

	for _, ev := range entry.Events {
		if _, err := stmt.Exec(id, int64(ev.Step), ev.Actions, ev.PointerX, ev.HasPointer); err != nil { //#nosec G115 -- step count fits in int64
			return 0, fmt.Errorf("storage: cannot save replay event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit replay: %w", err)
	}
	return id, nil
}

// Replay loads a replay with all of its events.
// Returns ErrReplayNotFound if the ID does not exist.
func (s *Store) Replay(id int64) (*ReplayEntry, error) {
	var e ReplayEntry
	var config string
	var steps, hash int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, game_id, config, steps, final_hash, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.GameID, &config, &steps, &hash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrReplayNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	e.Config = []byte(config)
	e.Steps = uint64(steps)    //#nosec G115 -- stored bit-for-bit
	e.FinalHash = uint64(hash) //#nosec G115 -- stored bit-for-bit
	e.CreatedAt = parseTime(createdAt)

	rows, err := s.db.Query(
		`SELECT step, actions, pointer_x, has_pointer
		 FROM replay_events
		 WHERE replay_id = ?
		 ORDER BY step`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ev ReplayEvent
		var step int64
		if err := rows.Scan(&step, &ev.Actions, &ev.PointerX, &ev.HasPointer); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ev.Step = uint64(step) //#nosec G115 -- steps are never negative
		e.Events = append(e.Events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &e, nil
}

// ListReplays returns the most recent replays, newest first, without events.
// An empty gameID lists every variant.
func (s *Store) ListReplays(gameID string, limit int) ([]ReplayEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, steps, final_hash, created_at
		 FROM replays
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplayEntry
	for rows.Next() {
		var e ReplayEntry
		var steps, hash int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &steps, &hash, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Steps = uint64(steps)    //#nosec G115 -- stored bit-for-bit
		e.FinalHash = uint64(hash) //#nosec G115 -- stored bit-for-bit
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteReplay removes a replay and its events.
func (s *Store) DeleteReplay(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec("DELETE FROM replay_events WHERE replay_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete replay events: %w", err)
	}
	res, err := tx.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %d", ErrReplayNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes.
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
