// Package store persists the system's durable record in SQLite: the
// transition journal, registered agents, and workflow runs. Trackers
// themselves stay in memory; the store is the surrounding application's
// history, not the tracker's.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/aios-dev/agent-state/internal/tracker"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS transitions (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	tracker      TEXT NOT NULL,
	from_state   TEXT NOT NULL,
	to_state     TEXT NOT NULL,
	recorded_at  TEXT NOT NULL,
	elapsed_ms   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transitions_tracker ON transitions(tracker);

CREATE TABLE IF NOT EXISTS agents (
	agent_id         TEXT PRIMARY KEY,
	name             TEXT NOT NULL UNIQUE,
	properties_json  TEXT NOT NULL DEFAULT '{}',
	status           TEXT NOT NULL DEFAULT 'idle',
	created_at       TEXT NOT NULL,
	updated_at       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS workflow_runs (
	run_id       TEXT PRIMARY KEY,
	workflow     TEXT NOT NULL,
	status       TEXT NOT NULL,
	started_at   TEXT NOT NULL,
	finished_at  TEXT,
	error        TEXT
);
`
// #endregion schema

// #region store-struct
// Store manages the SQLite journal.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for read-only consumers (e.g. inspect).
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion constructor

// #region transitions
// AppendTransition journals one transition for the named tracker.
func (s *Store) AppendTransition(trackerName string, rec tracker.TransitionRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO transitions (tracker, from_state, to_state, recorded_at, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		trackerName, rec.From, rec.To,
		rec.At.UTC().Format(time.RFC3339Nano),
		rec.Since.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("append transition: %w", err)
	}
	return nil
}

// HistoryFor returns the most recent transitions for a tracker in
// chronological order. limit <= 0 means no limit.
func (s *Store) HistoryFor(trackerName string, limit int) ([]TransitionRow, error) {
	q := `SELECT id, tracker, from_state, to_state, recorded_at, elapsed_ms
	      FROM transitions WHERE tracker = ? ORDER BY id DESC`
	args := []any{trackerName}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []TransitionRow
	for rows.Next() {
		var r TransitionRow
		var recordedAt string
		var elapsedMs int64
		if err := rows.Scan(&r.ID, &r.Tracker, &r.From, &r.To, &recordedAt, &elapsedMs); err != nil {
			return nil, fmt.Errorf("scan transition: %w", err)
		}
		r.RecordedAt, _ = time.Parse(time.RFC3339Nano, recordedAt)
		r.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Query returns DESC for the LIMIT; reverse to chronological.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// CountsFor aggregates journaled transitions per (from, to) pair.
func (s *Store) CountsFor(trackerName string) (map[tracker.Pair]int, error) {
	rows, err := s.db.Query(
		`SELECT from_state, to_state, COUNT(*) FROM transitions
		 WHERE tracker = ? GROUP BY from_state, to_state`,
		trackerName,
	)
	if err != nil {
		return nil, fmt.Errorf("query counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[tracker.Pair]int)
	for rows.Next() {
		var p tracker.Pair
		var n int
		if err := rows.Scan(&p.From, &p.To, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[p] = n
	}
	return counts, rows.Err()
}

// ListTrackers returns the distinct tracker names seen in the journal.
func (s *Store) ListTrackers() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT tracker FROM transitions ORDER BY tracker`)
	if err != nil {
		return nil, fmt.Errorf("query trackers: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
// #endregion transitions

// #region agents
// SaveAgent upserts an agent row keyed by agent_id.
func (s *Store) SaveAgent(row AgentRow) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	created := row.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO agents (agent_id, name, properties_json, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(agent_id) DO UPDATE SET
		   properties_json = excluded.properties_json,
		   status = excluded.status,
		   updated_at = excluded.updated_at`,
		row.AgentID, row.Name, row.PropertiesJSON, row.Status,
		created.Format(time.RFC3339Nano), now,
	)
	if err != nil {
		return fmt.Errorf("save agent %s: %w", row.Name, err)
	}
	return nil
}

// GetAgent fetches one agent by name. Returns sql.ErrNoRows wrapped if absent.
func (s *Store) GetAgent(name string) (AgentRow, error) {
	row := s.db.QueryRow(
		`SELECT agent_id, name, properties_json, status, created_at, updated_at
		 FROM agents WHERE name = ?`, name,
	)
	var a AgentRow
	var createdAt, updatedAt string
	if err := row.Scan(&a.AgentID, &a.Name, &a.PropertiesJSON, &a.Status, &createdAt, &updatedAt); err != nil {
		return AgentRow{}, fmt.Errorf("get agent %s: %w", name, err)
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	a.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return a, nil
}

// ListAgents returns all agents ordered by name.
func (s *Store) ListAgents() ([]AgentRow, error) {
	rows, err := s.db.Query(
		`SELECT agent_id, name, properties_json, status, created_at, updated_at
		 FROM agents ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("query agents: %w", err)
	}
	defer rows.Close()

	var out []AgentRow
	for rows.Next() {
		var a AgentRow
		var createdAt, updatedAt string
		if err := rows.Scan(&a.AgentID, &a.Name, &a.PropertiesJSON, &a.Status, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan agent: %w", err)
		}
		a.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		a.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
		out = append(out, a)
	}
	return out, rows.Err()
}
// #endregion agents

// #region runs
// CreateRun inserts a workflow run in its starting status.
func (s *Store) CreateRun(runID, workflow, status string) error {
	_, err := s.db.Exec(
		`INSERT INTO workflow_runs (run_id, workflow, status, started_at)
		 VALUES (?, ?, ?, ?)`,
		runID, workflow, status, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("create run %s: %w", runID, err)
	}
	return nil
}

// FinishRun records a run's terminal status and optional error text.
func (s *Store) FinishRun(runID, status, errText string) error {
	_, err := s.db.Exec(
		`UPDATE workflow_runs SET status = ?, finished_at = ?, error = ?
		 WHERE run_id = ?`,
		status, time.Now().UTC().Format(time.RFC3339Nano), nullIfEmpty(errText), runID,
	)
	if err != nil {
		return fmt.Errorf("finish run %s: %w", runID, err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first. limit <= 0 means all.
func (s *Store) ListRuns(limit int) ([]RunRow, error) {
	q := `SELECT run_id, workflow, status, started_at, finished_at, error
	      FROM workflow_runs ORDER BY started_at DESC`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunRow
	for rows.Next() {
		var r RunRow
		var startedAt string
		var finishedAt, errText sql.NullString
		if err := rows.Scan(&r.RunID, &r.Workflow, &r.Status, &startedAt, &finishedAt, &errText); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
		if finishedAt.Valid {
			r.FinishedAt, _ = time.Parse(time.RFC3339Nano, finishedAt.String)
		}
		if errText.Valid {
			r.Error = errText.String
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
// #endregion runs

// #region helpers
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
