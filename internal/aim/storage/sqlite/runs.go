package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// AnalysisRun is one persisted analysis session. Params, summary, metrics and
// verdict are stored as JSON so the store stays decoupled from the engine
// types; the engine is format-agnostic by design.
type AnalysisRun struct {
	RunID       string
	CreatedAt   time.Time
	TracePath   string
	Sensitivity float64
	Status      string
	ParamsJSON  string
	SummaryJSON string
	MetricsJSON string
	VerdictJSON string
	Notes       string
}

// Run status values.
const (
	RunStatusComplete = "complete"
	RunStatusFailed   = "failed"
)

// NewAnalysisRun builds a run record with a fresh ID for the given trace.
func NewAnalysisRun(tracePath string, sensitivity float64) *AnalysisRun {
	return &AnalysisRun{
		RunID:       uuid.New().String(),
		CreatedAt:   time.Now(),
		TracePath:   tracePath,
		Sensitivity: sensitivity,
		Status:      RunStatusComplete,
	}
}

// SetParams serialises v into the run's params blob.
func (r *AnalysisRun) SetParams(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode run params: %w", err)
	}
	r.ParamsJSON = string(data)
	return nil
}

// SetSummary serialises v into the run's summary blob.
func (r *AnalysisRun) SetSummary(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode run summary: %w", err)
	}
	r.SummaryJSON = string(data)
	return nil
}

// SetMetrics serialises v into the run's diagnostic metrics blob.
func (r *AnalysisRun) SetMetrics(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode run metrics: %w", err)
	}
	r.MetricsJSON = string(data)
	return nil
}

// SetVerdict serialises v into the run's verdict blob.
func (r *AnalysisRun) SetVerdict(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode run verdict: %w", err)
	}
	r.VerdictJSON = string(data)
	return nil
}

// RunStore manages persistence for analysis runs.
type RunStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a run database at path.
func Open(path string) (*RunStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open run database: %w", err)
	}
	store := NewRunStore(db)
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewRunStore wraps an existing database handle. Callers using NewRunStore
// directly must call InitSchema before first use.
func NewRunStore(db *sql.DB) *RunStore {
	return &RunStore{db: db}
}

// InitSchema creates the runs table when missing.
func (s *RunStore) InitSchema() error { return s.initSchema() }

func (s *RunStore) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS analysis_runs (
			run_id TEXT PRIMARY KEY,
			created_at TIMESTAMP NOT NULL,
			trace_path TEXT NOT NULL,
			sensitivity DOUBLE NOT NULL,
			status TEXT NOT NULL,
			params_json TEXT,
			summary_json TEXT,
			metrics_json TEXT,
			verdict_json TEXT,
			notes TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_analysis_runs_sensitivity
			ON analysis_runs(sensitivity);
	`)
	if err != nil {
		return fmt.Errorf("failed to create analysis_runs schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *RunStore) Close() error { return s.db.Close() }

// SaveRun inserts or replaces a run record.
func (s *RunStore) SaveRun(run *AnalysisRun) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO analysis_runs
			(run_id, created_at, trace_path, sensitivity, status,
			 params_json, summary_json, metrics_json, verdict_json, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.CreatedAt, run.TracePath, run.Sensitivity, run.Status,
		run.ParamsJSON, run.SummaryJSON, run.MetricsJSON, run.VerdictJSON, run.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.RunID, err)
	}
	return nil
}

// GetRun fetches one run by ID. Returns sql.ErrNoRows when absent.
func (s *RunStore) GetRun(runID string) (*AnalysisRun, error) {
	row := s.db.QueryRow(`
		SELECT run_id, created_at, trace_path, sensitivity, status,
		       params_json, summary_json, metrics_json, verdict_json, notes
		FROM analysis_runs WHERE run_id = ?`, runID)

	run, err := scanRun(row)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch run %s: %w", runID, err)
	}
	return run, nil
}

// ListRuns returns all runs ordered by sensitivity, then creation time, the
// order the comparison report wants.
func (s *RunStore) ListRuns() ([]*AnalysisRun, error) {
	rows, err := s.db.Query(`
		SELECT run_id, created_at, trace_path, sensitivity, status,
		       params_json, summary_json, metrics_json, verdict_json, notes
		FROM analysis_runs ORDER BY sensitivity, created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*AnalysisRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// DeleteRun removes a run by ID. Deleting an absent run is not an error.
func (s *RunStore) DeleteRun(runID string) error {
	if _, err := s.db.Exec(`DELETE FROM analysis_runs WHERE run_id = ?`, runID); err != nil {
		return fmt.Errorf("failed to delete run %s: %w", runID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*AnalysisRun, error) {
	var run AnalysisRun
	err := row.Scan(
		&run.RunID, &run.CreatedAt, &run.TracePath, &run.Sensitivity, &run.Status,
		&run.ParamsJSON, &run.SummaryJSON, &run.MetricsJSON, &run.VerdictJSON, &run.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &run, nil
}
