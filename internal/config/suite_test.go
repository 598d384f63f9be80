package config

import (
	"strings"
	"testing"
	"time"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestLoadSuiteConfig_Defaults(t *testing.T) {
	config, err := LoadSuiteConfig(env(nil))
	if err != nil {
		t.Fatalf("LoadSuiteConfig() unexpected error = %v", err)
	}

	if config.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", config.BaseURL, DefaultBaseURL)
	}
	if !config.Headless {
		t.Error("Headless = false, want true by default")
	}
	if config.SlowMo != 0 {
		t.Errorf("SlowMo = %v, want 0", config.SlowMo)
	}
	if config.ActionTimeout != DefaultActionTimeout {
		t.Errorf("ActionTimeout = %v, want %v", config.ActionTimeout, DefaultActionTimeout)
	}
	if config.PollInterval != DefaultPollInterval {
		t.Errorf("PollInterval = %v, want %v", config.PollInterval, DefaultPollInterval)
	}
	if config.FixturesDir != "" {
		t.Errorf("FixturesDir = %q, want empty", config.FixturesDir)
	}
}

func TestLoadSuiteConfig_ReadsEnvironment(t *testing.T) {
	config, err := LoadSuiteConfig(env(map[string]string{
		"BASE_URL":       "https://www.saucedemo.com",
		"HEADLESS":       "false",
		"SLOW_MO":        "250ms",
		"ACTION_TIMEOUT": "30s",
		"POLL_INTERVAL":  "50ms",
		"FIXTURES_DIR":   "/tmp/fixtures",
	}))
	if err != nil {
		t.Fatalf("LoadSuiteConfig() unexpected error = %v", err)
	}

	if config.BaseURL != "https://www.saucedemo.com" {
		t.Errorf("BaseURL = %q, want the configured URL", config.BaseURL)
	}
	if config.Headless {
		t.Error("Headless = true, want false")
	}
	if config.SlowMo != 250*time.Millisecond {
		t.Errorf("SlowMo = %v, want 250ms", config.SlowMo)
	}
	if config.ActionTimeout != 30*time.Second {
		t.Errorf("ActionTimeout = %v, want 30s", config.ActionTimeout)
	}
	if config.PollInterval != 50*time.Millisecond {
		t.Errorf("PollInterval = %v, want 50ms", config.PollInterval)
	}
	if config.FixturesDir != "/tmp/fixtures" {
		t.Errorf("FixturesDir = %q, want /tmp/fixtures", config.FixturesDir)
	}
}

func TestLoadSuiteConfig_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr string
	}{
		{
			name:    "malformed slow mo",
			vars:    map[string]string{"SLOW_MO": "fast"},
			wantErr: "SLOW_MO",
		},
		{
			name:    "malformed action timeout",
			vars:    map[string]string{"ACTION_TIMEOUT": "10"},
			wantErr: "ACTION_TIMEOUT",
		},
		{
			name:    "malformed poll interval",
			vars:    map[string]string{"POLL_INTERVAL": "soon"},
			wantErr: "POLL_INTERVAL",
		},
		{
			name:    "non-positive poll interval",
			vars:    map[string]string{"POLL_INTERVAL": "0s"},
			wantErr: "POLL_INTERVAL must be positive",
		},
		{
			name: "timeout shorter than the poll interval",
			vars: map[string]string{
				"ACTION_TIMEOUT": "10ms",
				"POLL_INTERVAL":  "100ms",
			},
			wantErr: "ACTION_TIMEOUT must be at least POLL_INTERVAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSuiteConfig(env(tt.vars))
			if err == nil {
				t.Fatal("LoadSuiteConfig() expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadPostgresConfig(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr bool
	}{
		{
			name: "all fields present",
			vars: map[string]string{
				"POSTGRES_USER":     "suite",
				"POSTGRES_PASSWORD": "secret",
				"POSTGRES_DB":       "results",
				"POSTGRES_HOSTNAME": "localhost",
			},
		},
		{
			name: "missing password",
			vars: map[string]string{
				"POSTGRES_USER":     "suite",
				"POSTGRES_DB":       "results",
				"POSTGRES_HOSTNAME": "localhost",
			},
			wantErr: true,
		},
		{
			name:    "nothing set",
			vars:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadPostgresConfig(env(tt.vars))
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadPostgresConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if config.Port != "5432" {
				t.Errorf("Port = %q, want the 5432 default", config.Port)
			}
			want := "host=localhost port=5432 user=suite password=secret dbname=results sslmode=disable"
			if got := config.ConnectionString(); got != want {
				t.Errorf("ConnectionString() = %q, want %q", got, want)
			}
		})
	}
}
