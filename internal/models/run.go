package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunStatus represents valid suite run states
type RunStatus string

// Run statuses
const (
	RunStatusRunning RunStatus = "running"
	RunStatusPassed  RunStatus = "passed"
	RunStatusFailed  RunStatus = "failed"
)

// SuiteRun represents one execution of the browser suite
type SuiteRun struct {
	ID          string
	Reference   string
	BaseURL     string
	Browser     string
	Status      RunStatus
	CasesTotal  int
	CasesPassed int
	StartedAt   time.Time
	FinishedAt  time.Time
}

// ScenarioResult represents one case's outcome within a run
type ScenarioResult struct {
	ID         string
	RunID      string
	CaseName   string
	Passed     bool
	Duration   time.Duration
	Failure    string
	RecordedAt time.Time
}

// Domain errors
var (
	ErrInvalidBaseURL       = errors.New("base URL cannot be empty")
	ErrInvalidBrowser       = errors.New("browser name cannot be empty")
	ErrInvalidRunTransition = errors.New("invalid run status transition")
	ErrInvalidCaseTally     = errors.New("cases passed cannot exceed cases total")
	ErrEmptyCaseName        = errors.New("case name cannot be empty")
	ErrEmptyRunID           = errors.New("run ID cannot be empty")
)

// NewSuiteRun creates a new running suite run with validation
func NewSuiteRun(baseURL, browser string) (*SuiteRun, error) {
	if baseURL == "" {
		return nil, ErrInvalidBaseURL
	}
	if browser == "" {
		return nil, ErrInvalidBrowser
	}

	return &SuiteRun{
		ID:        uuid.New().String(),
		Reference: fmt.Sprintf("RUN-%d", time.Now().Unix()),
		BaseURL:   baseURL,
		Browser:   browser,
		Status:    RunStatusRunning,
		StartedAt: time.Now(),
	}, nil
}

// Finish closes the run with its case tally
func (r *SuiteRun) Finish(total, passed int) error {
	if r.Status != RunStatusRunning {
		return fmt.Errorf("%w: cannot finish run with status %s", ErrInvalidRunTransition, r.Status)
	}
	if passed > total || total < 0 || passed < 0 {
		return ErrInvalidCaseTally
	}

	r.CasesTotal = total
	r.CasesPassed = passed
	if passed == total {
		r.Status = RunStatusPassed
	} else {
		r.Status = RunStatusFailed
	}
	r.FinishedAt = time.Now()
	return nil
}

// IsRunning returns true if the run has not finished yet
func (r *SuiteRun) IsRunning() bool {
	return r.Status == RunStatusRunning
}

// IsPassed returns true if every case in the run passed
func (r *SuiteRun) IsPassed() bool {
	return r.Status == RunStatusPassed
}

// IsFailed returns true if at least one case in the run failed
func (r *SuiteRun) IsFailed() bool {
	return r.Status == RunStatusFailed
}

// Summary returns the case tally formatted for logs
func (r *SuiteRun) Summary() string {
	return fmt.Sprintf("%d/%d cases passed", r.CasesPassed, r.CasesTotal)
}

// NewScenarioResult creates a new scenario result with validation
func NewScenarioResult(runID, caseName string, passed bool, duration time.Duration, failure string) (*ScenarioResult, error) {
	if runID == "" {
		return nil, ErrEmptyRunID
	}
	if caseName == "" {
		return nil, ErrEmptyCaseName
	}

	return &ScenarioResult{
		ID:         uuid.New().String(),
		RunID:      runID,
		CaseName:   caseName,
		Passed:     passed,
		Duration:   duration,
		Failure:    failure,
		RecordedAt: time.Now(),
	}, nil
}
