/*
Package sqlite provides SQLite-backed persistence for plans and drafts.

PURPOSE:
  The roster engine itself is pure; the two pieces of state the
  application keeps between requests live here:
  - the plan payload (shift catalogue, need template, roster, calendar)
  - the working schedule draft, with its version counter and lock flag

KEY TABLES:
  plans:          single-row table holding the current plan JSON
  schedule_state: single-row table holding the draft schedule JSON,
                  its optimistic-concurrency version, and the lock flag
                  set when a month is finalized

CONCURRENCY:
  Uses sync.RWMutex for thread-safety; SQLite is opened in WAL mode so
  readers don't block. The version column is the optimistic lock the API
  layer checks before accepting a draft save.

USAGE:
  store, err := sqlite.New("./data/roster.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  state, _ := store.LoadScheduleState(ctx)

MIGRATION:
  Schema is auto-migrated on New(). Use ":memory:" for tests.

SEE ALSO:
  - api/handlers.go: Draft lifecycle built on this store
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/darumasanaz/v5-shift-creation-tool/roster"
)

// ErrPlanNotFound is returned when no plan payload has been stored yet.
var ErrPlanNotFound = errors.New("plan not found")

// ScheduleState is the persisted draft: the schedule grid plus the
// version/lock bookkeeping the save endpoints check.
type ScheduleState struct {
	Version  int             `json:"version"`
	Locked   bool            `json:"locked"`
	Schedule roster.Schedule `json:"schedule"`
}

// DefaultScheduleState is what callers see before any draft was saved.
func DefaultScheduleState() ScheduleState {
	return ScheduleState{Version: 1, Locked: false, Schedule: roster.Schedule{}}
}

// Store implements plan and draft persistence using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS plans (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		payload TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS schedule_state (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		version INTEGER NOT NULL,
		locked INTEGER NOT NULL DEFAULT 0,
		schedule TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// PLAN PERSISTENCE
// =============================================================================

// SavePlan stores (or replaces) the current plan payload.
func (s *Store) SavePlan(ctx context.Context, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO plans (id, payload, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

// LoadPlan returns the stored plan payload, or ErrPlanNotFound.
func (s *Store) LoadPlan(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM plans WHERE id = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	return []byte(payload), nil
}

// =============================================================================
// DRAFT PERSISTENCE
// =============================================================================

// LoadScheduleState returns the persisted draft state, or the default
// state when nothing was saved yet.
func (s *Store) LoadScheduleState(ctx context.Context) (ScheduleState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		version  int
		locked   int
		schedule string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT version, locked, schedule FROM schedule_state WHERE id = 1`).
		Scan(&version, &locked, &schedule)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultScheduleState(), nil
	}
	if err != nil {
		return ScheduleState{}, fmt.Errorf("failed to load schedule state: %w", err)
	}

	state := ScheduleState{Version: version, Locked: locked != 0}
	if err := json.Unmarshal([]byte(schedule), &state.Schedule); err != nil {
		return ScheduleState{}, fmt.Errorf("failed to decode stored schedule: %w", err)
	}
	return state, nil
}

// SaveScheduleState persists the draft state, replacing any previous one.
func (s *Store) SaveScheduleState(ctx context.Context, state ScheduleState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedule, err := json.Marshal(state.Schedule)
	if err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}

	locked := 0
	if state.Locked {
		locked = 1
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO schedule_state (id, version, locked, schedule, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			version = excluded.version,
			locked = excluded.locked,
			schedule = excluded.schedule,
			updated_at = excluded.updated_at`,
		state.Version, locked, string(schedule), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save schedule state: %w", err)
	}
	return nil
}
