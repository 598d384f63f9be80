//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"github.com/farhankamalkhan/saucedemo/internal/models"
	"github.com/farhankamalkhan/saucedemo/internal/repository/testutil"
	"github.com/google/uuid"
)

func TestRunRepository_CreateRun_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewRunRepositoryWithDB(testDB.DB)

	tests := []struct {
		name    string
		run     *models.SuiteRun
		wantErr bool
	}{
		{
			name: "create running suite run",
			run: &models.SuiteRun{
				ID:        uuid.New().String(),
				Reference: "RUN-TEST-001",
				BaseURL:   "http://localhost:8080",
				Browser:   "chromium",
				Status:    models.RunStatusRunning,
				StartedAt: time.Now(),
			},
			wantErr: false,
		},
		{
			name: "create run against the public site",
			run: &models.SuiteRun{
				ID:        uuid.New().String(),
				Reference: "RUN-TEST-002",
				BaseURL:   "https://www.saucedemo.com",
				Browser:   "firefox",
				Status:    models.RunStatusRunning,
				StartedAt: time.Now(),
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.CreateRun(tt.run)

			if (err != nil) != tt.wantErr {
				t.Errorf("CreateRun() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				// Verify run can be retrieved
				retrieved, err := repo.GetRunByReference(tt.run.Reference)
				if err != nil {
					t.Fatalf("Failed to retrieve created run: %v", err)
				}

				if retrieved.ID != tt.run.ID {
					t.Errorf("ID mismatch: got %v, want %v", retrieved.ID, tt.run.ID)
				}
				if retrieved.BaseURL != tt.run.BaseURL {
					t.Errorf("BaseURL mismatch: got %v, want %v", retrieved.BaseURL, tt.run.BaseURL)
				}
				if retrieved.Browser != tt.run.Browser {
					t.Errorf("Browser mismatch: got %v, want %v", retrieved.Browser, tt.run.Browser)
				}
				if retrieved.Status != tt.run.Status {
					t.Errorf("Status mismatch: got %v, want %v", retrieved.Status, tt.run.Status)
				}
				if !retrieved.FinishedAt.IsZero() {
					t.Error("FinishedAt should be zero for a running run")
				}
			}
		})
	}
}

func TestRunRepository_CreateRun_DuplicateReference_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewRunRepositoryWithDB(testDB.DB)

	run1 := &models.SuiteRun{
		ID:        uuid.New().String(),
		Reference: "RUN-DUP-001",
		BaseURL:   "http://localhost:8080",
		Browser:   "chromium",
		Status:    models.RunStatusRunning,
		StartedAt: time.Now(),
	}

	// Create first run
	err := repo.CreateRun(run1)
	if err != nil {
		t.Fatalf("Failed to create first run: %v", err)
	}

	// Try to create run with same reference
	run2 := &models.SuiteRun{
		ID:        uuid.New().String(),
		Reference: "RUN-DUP-001", // Same reference
		BaseURL:   "http://localhost:8080",
		Browser:   "firefox",
		Status:    models.RunStatusRunning,
		StartedAt: time.Now(),
	}

	err = repo.CreateRun(run2)
	if err == nil {
		t.Error("Expected error when creating run with duplicate reference")
	}
}

func TestRunRepository_FinishRun_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewRunRepositoryWithDB(testDB.DB)

	run, err := models.NewSuiteRun("http://localhost:8080", "chromium")
	if err != nil {
		t.Fatalf("Failed to build run: %v", err)
	}
	if err := repo.CreateRun(run); err != nil {
		t.Fatalf("Failed to create run: %v", err)
	}

	if err := run.Finish(3, 2); err != nil {
		t.Fatalf("Failed to finish run: %v", err)
	}
	if err := repo.FinishRun(run); err != nil {
		t.Fatalf("FinishRun() error = %v", err)
	}

	retrieved, err := repo.GetRunByReference(run.Reference)
	if err != nil {
		t.Fatalf("Failed to retrieve finished run: %v", err)
	}

	if retrieved.Status != models.RunStatusFailed {
		t.Errorf("Status = %v, want %v", retrieved.Status, models.RunStatusFailed)
	}
	if retrieved.CasesTotal != 3 || retrieved.CasesPassed != 2 {
		t.Errorf("Tally = %d/%d, want 2/3", retrieved.CasesPassed, retrieved.CasesTotal)
	}
	if retrieved.FinishedAt.IsZero() {
		t.Error("FinishedAt should be set after finishing")
	}
}

func TestRunRepository_FinishRun_NotFound_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewRunRepositoryWithDB(testDB.DB)

	run, err := models.NewSuiteRun("http://localhost:8080", "chromium")
	if err != nil {
		t.Fatalf("Failed to build run: %v", err)
	}
	if err := run.Finish(1, 1); err != nil {
		t.Fatalf("Failed to finish run: %v", err)
	}

	// The run was never created
	if err := repo.FinishRun(run); err == nil {
		t.Error("Expected error when finishing a run that does not exist")
	}
}

func TestRunRepository_RecordAndListResults_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewRunRepositoryWithDB(testDB.DB)

	run, err := models.NewSuiteRun("http://localhost:8080", "chromium")
	if err != nil {
		t.Fatalf("Failed to build run: %v", err)
	}
	if err := repo.CreateRun(run); err != nil {
		t.Fatalf("Failed to create run: %v", err)
	}

	base := time.Now().Add(-time.Minute)
	results := []*models.ScenarioResult{
		{
			ID:         uuid.New().String(),
			RunID:      run.ID,
			CaseName:   "login succeeds for standard_user",
			Passed:     true,
			Duration:   1200 * time.Millisecond,
			RecordedAt: base,
		},
		{
			ID:         uuid.New().String(),
			RunID:      run.ID,
			CaseName:   "cart round trip with 3 products",
			Passed:     true,
			Duration:   4800 * time.Millisecond,
			RecordedAt: base.Add(time.Second),
		},
		{
			ID:         uuid.New().String(),
			RunID:      run.ID,
			CaseName:   "login rejected for locked_out_user",
			Passed:     false,
			Duration:   900 * time.Millisecond,
			Failure:    "login error: expected lockout message",
			RecordedAt: base.Add(2 * time.Second),
		},
	}

	for _, result := range results {
		if err := repo.RecordResult(result); err != nil {
			t.Fatalf("RecordResult(%q) error = %v", result.CaseName, err)
		}
	}

	listed, err := repo.ListResults(run.ID)
	if err != nil {
		t.Fatalf("ListResults() error = %v", err)
	}
	if len(listed) != len(results) {
		t.Fatalf("ListResults() returned %d results, want %d", len(listed), len(results))
	}

	// Results come back in recording order
	for i, want := range results {
		got := listed[i]
		if got.CaseName != want.CaseName {
			t.Errorf("result %d: CaseName = %q, want %q", i, got.CaseName, want.CaseName)
		}
		if got.Passed != want.Passed {
			t.Errorf("result %d: Passed = %v, want %v", i, got.Passed, want.Passed)
		}
		if got.Duration != want.Duration {
			t.Errorf("result %d: Duration = %v, want %v", i, got.Duration, want.Duration)
		}
		if got.Failure != want.Failure {
			t.Errorf("result %d: Failure = %q, want %q", i, got.Failure, want.Failure)
		}
	}
}

func TestRunRepository_ListRuns_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewRunRepositoryWithDB(testDB.DB)

	base := time.Now().Add(-time.Hour)
	references := []string{"RUN-LIST-001", "RUN-LIST-002", "RUN-LIST-003"}
	for i, reference := range references {
		run := &models.SuiteRun{
			ID:        uuid.New().String(),
			Reference: reference,
			BaseURL:   "http://localhost:8080",
			Browser:   "chromium",
			Status:    models.RunStatusRunning,
			StartedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.CreateRun(run); err != nil {
			t.Fatalf("Failed to create run %s: %v", reference, err)
		}
	}

	runs, err := repo.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns(2) returned %d runs, want 2", len(runs))
	}

	// Newest first
	if runs[0].Reference != "RUN-LIST-003" || runs[1].Reference != "RUN-LIST-002" {
		t.Errorf("ListRuns() order = [%s, %s], want [RUN-LIST-003, RUN-LIST-002]",
			runs[0].Reference, runs[1].Reference)
	}
}

func TestRunRepository_GetRunByReference_NotFound_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewRunRepositoryWithDB(testDB.DB)

	_, err := repo.GetRunByReference("RUN-MISSING")
	if err == nil {
		t.Error("Expected error when retrieving a run that does not exist")
	}
}
