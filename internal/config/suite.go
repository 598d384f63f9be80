package config

import (
	"fmt"
	"time"
)

// Suite defaults, used when the environment leaves a knob unset.
const (
	DefaultBaseURL       = "http://localhost:8080"
	DefaultActionTimeout = 10 * time.Second
	DefaultPollInterval  = 100 * time.Millisecond
)

// SuiteConfig holds configuration for the browser test suite
type SuiteConfig struct {
	// BaseURL is the storefront the suite drives.
	BaseURL string
	// Headless controls whether the browser shows a window.
	Headless bool
	// SlowMo delays every browser action, for watching runs.
	SlowMo time.Duration
	// ActionTimeout bounds every page wait.
	ActionTimeout time.Duration
	// PollInterval is how often page waits re-check their condition.
	PollInterval time.Duration
	// FixturesDir overrides the embedded fixture collections when set.
	FixturesDir string
}

// LoadSuiteConfig loads suite configuration from environment variables
func LoadSuiteConfig(getenv func(string) string) (*SuiteConfig, error) {
	config := &SuiteConfig{
		BaseURL:       getenv("BASE_URL"),
		Headless:      true,
		ActionTimeout: DefaultActionTimeout,
		PollInterval:  DefaultPollInterval,
		FixturesDir:   getenv("FIXTURES_DIR"),
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}

	// Any value other than "false" keeps the browser headless.
	if getenv("HEADLESS") == "false" {
		config.Headless = false
	}

	if v := getenv("SLOW_MO"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("SLOW_MO is not a duration: %w", err)
		}
		config.SlowMo = d
	}
	if v := getenv("ACTION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("ACTION_TIMEOUT is not a duration: %w", err)
		}
		config.ActionTimeout = d
	}
	if v := getenv("POLL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("POLL_INTERVAL is not a duration: %w", err)
		}
		config.PollInterval = d
	}

	if config.PollInterval <= 0 {
		return nil, fmt.Errorf("POLL_INTERVAL must be positive")
	}
	if config.ActionTimeout < config.PollInterval {
		return nil, fmt.Errorf("ACTION_TIMEOUT must be at least POLL_INTERVAL")
	}

	return config, nil
}
