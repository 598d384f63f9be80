package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/farhankamalkhan/saucedemo/internal/database"
	"github.com/farhankamalkhan/saucedemo/internal/models"
)

// RunRepository handles database operations for suite runs and their results
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new run repository
func NewRunRepository() *RunRepository {
	return &RunRepository{
		db: database.DB,
	}
}

// NewRunRepositoryWithDB creates a new run repository with a specific database connection
func NewRunRepositoryWithDB(db *sql.DB) *RunRepository {
	return &RunRepository{
		db: db,
	}
}

// CreateRun stores a new suite run in the database
func (r *RunRepository) CreateRun(run *models.SuiteRun) error {
	query := `
		INSERT INTO suite_runs (id, reference, base_url, browser, status, cases_total, cases_passed, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(query,
		run.ID,
		run.Reference,
		run.BaseURL,
		run.Browser,
		run.Status,
		run.CasesTotal,
		run.CasesPassed,
		run.StartedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// RecordResult stores one case outcome for a run
func (r *RunRepository) RecordResult(result *models.ScenarioResult) error {
	query := `
		INSERT INTO scenario_results (id, run_id, case_name, passed, duration_ms, failure, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(query,
		result.ID,
		result.RunID,
		result.CaseName,
		result.Passed,
		result.Duration.Milliseconds(),
		result.Failure,
		result.RecordedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

// FinishRun writes the run's final status and tally
func (r *RunRepository) FinishRun(run *models.SuiteRun) error {
	query := `
		UPDATE suite_runs
		SET status = $1, cases_total = $2, cases_passed = $3, finished_at = $4
		WHERE id = $5
	`

	result, err := r.db.Exec(query, run.Status, run.CasesTotal, run.CasesPassed, run.FinishedAt, run.ID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("run not found")
	}

	return nil
}

// GetRunByReference retrieves a suite run by its reference
func (r *RunRepository) GetRunByReference(reference string) (*models.SuiteRun, error) {
	query := `
		SELECT id, reference, base_url, browser, status, cases_total, cases_passed,
		       started_at, finished_at
		FROM suite_runs
		WHERE reference = $1
	`

	run := &models.SuiteRun{}
	var finishedAt sql.NullTime
	err := r.db.QueryRow(query, reference).Scan(
		&run.ID,
		&run.Reference,
		&run.BaseURL,
		&run.Browser,
		&run.Status,
		&run.CasesTotal,
		&run.CasesPassed,
		&run.StartedAt,
		&finishedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found")
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	if finishedAt.Valid {
		run.FinishedAt = finishedAt.Time
	}

	return run, nil
}

// ListRuns retrieves the most recent suite runs, newest first
func (r *RunRepository) ListRuns(limit int) ([]*models.SuiteRun, error) {
	query := `
		SELECT id, reference, base_url, browser, status, cases_total, cases_passed,
		       started_at, finished_at
		FROM suite_runs
		ORDER BY started_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.SuiteRun
	for rows.Next() {
		run := &models.SuiteRun{}
		var finishedAt sql.NullTime
		if err := rows.Scan(
			&run.ID,
			&run.Reference,
			&run.BaseURL,
			&run.Browser,
			&run.Status,
			&run.CasesTotal,
			&run.CasesPassed,
			&run.StartedAt,
			&finishedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if finishedAt.Valid {
			run.FinishedAt = finishedAt.Time
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}

// ListResults retrieves every case outcome recorded for a run
func (r *RunRepository) ListResults(runID string) ([]*models.ScenarioResult, error) {
	query := `
		SELECT id, run_id, case_name, passed, duration_ms, COALESCE(failure, ''), recorded_at
		FROM scenario_results
		WHERE run_id = $1
		ORDER BY recorded_at ASC
	`

	rows, err := r.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var results []*models.ScenarioResult
	for rows.Next() {
		result := &models.ScenarioResult{}
		var durationMs int64
		if err := rows.Scan(
			&result.ID,
			&result.RunID,
			&result.CaseName,
			&result.Passed,
			&durationMs,
			&result.Failure,
			&result.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		result.Duration = time.Duration(durationMs) * time.Millisecond
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate results: %w", err)
	}

	return results, nil
}
