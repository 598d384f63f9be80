package database

import (
	"fmt"
	"log"
)

// RunMigrations creates the necessary database tables
func RunMigrations() error {
	if DB == nil {
		return fmt.Errorf("database connection not initialized")
	}

	// Create run-history tables
	createRunTables := `
	CREATE TABLE IF NOT EXISTS suite_runs (
		id UUID PRIMARY KEY,
		reference VARCHAR(255) UNIQUE NOT NULL,
		base_url VARCHAR(255) NOT NULL,
		browser VARCHAR(50) NOT NULL,
		status VARCHAR(50) NOT NULL,
		cases_total INTEGER NOT NULL DEFAULT 0,
		cases_passed INTEGER NOT NULL DEFAULT 0,
		started_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		finished_at TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS scenario_results (
		id UUID PRIMARY KEY,
		run_id UUID NOT NULL REFERENCES suite_runs(id) ON DELETE CASCADE,
		case_name VARCHAR(255) NOT NULL,
		passed BOOLEAN NOT NULL,
		duration_ms BIGINT NOT NULL,
		failure TEXT,
		recorded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_suite_runs_reference ON suite_runs(reference);
	CREATE INDEX IF NOT EXISTS idx_suite_runs_status ON suite_runs(status);
	CREATE INDEX IF NOT EXISTS idx_scenario_results_run_id ON scenario_results(run_id);
	`

	_, err := DB.Exec(createRunTables)
	if err != nil {
		return fmt.Errorf("failed to create run-history tables: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
