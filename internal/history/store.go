// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists an operations ledger: one row per engine
// invocation, kept in a SQLite database alongside the template cache.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"
)

const dbFile = "history.db"

// Run is one recorded engine invocation.
type Run struct {
	// ID is a random UUID assigned when the run is recorded.
	ID string `json:"id" yaml:"id"`

	// Operation names the engine operation that ran.
	Operation string `json:"operation" yaml:"operation"`

	// ProjectPath is the project the operation ran against, if any.
	ProjectPath string `json:"project_path,omitempty" yaml:"project_path,omitempty"`

	// Success reports the operation's outcome.
	Success bool `json:"success" yaml:"success"`

	// Message carries the operation's one-line summary.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// CreatedAt is the recording timestamp.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Store manages the operations ledger database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the ledger database at dir/history.db, creating
// the schema when absent.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			operation TEXT NOT NULL,
			project_path TEXT,
			success INTEGER NOT NULL,
			message TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts a run and returns it with its assigned id and timestamp.
func (s *Store) Record(operation, projectPath string, success bool, message string) (Run, error) {
	run := Run{
		ID:          uuid.NewString(),
		Operation:   operation,
		ProjectPath: projectPath,
		Success:     success,
		Message:     message,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, operation, project_path, success, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Operation, run.ProjectPath, boolToInt(run.Success), run.Message,
		run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Run{}, fmt.Errorf("recording run: %w", err)
	}
	return run, nil
}

// List returns the most recent runs, newest first. limit <= 0 means all.
func (s *Store) List(limit int) ([]Run, error) {
	query := `SELECT id, operation, project_path, success, message, created_at
		FROM runs ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var success int
		var createdAt string
		if err := rows.Scan(&run.ID, &run.Operation, &run.ProjectPath, &success, &run.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.Success = success != 0
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			run.CreatedAt = ts
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// ExportYAML writes the full ledger to path as a YAML list, newest first.
func (s *Store) ExportYAML(path string) error {
	runs, err := s.List(0)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(runs)
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing history export: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
