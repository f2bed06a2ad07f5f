package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Unset all VERDICT_ env vars to test pure defaults
	envVars := []string{
		"VERDICT_PORT", "VERDICT_METRICS_PORT", "VERDICT_ADMIN_TOKEN",
		"VERDICT_DATABASE_URL", "VERDICT_EVENTS_URL", "VERDICT_DEFAULT_METHOD",
		"VERDICT_RATE_LIMIT_PER_MINUTE", "VERDICT_LOG_LEVEL",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Events.URL != "nats://localhost:4222" {
		t.Errorf("expected nats URL, got %s", cfg.Events.URL)
	}
	if cfg.Analysis.DefaultMethod != "weighted_scoring" {
		t.Errorf("expected default method weighted_scoring, got %s", cfg.Analysis.DefaultMethod)
	}
	if cfg.Analysis.MaxCriteria != 20 {
		t.Errorf("expected max criteria 20, got %d", cfg.Analysis.MaxCriteria)
	}
	if cfg.Analysis.MaxOptions != 15 {
		t.Errorf("expected max options 15, got %d", cfg.Analysis.MaxOptions)
	}
	if cfg.Analysis.RateLimitPerMinute != 120 {
		t.Errorf("expected rate limit 120, got %d", cfg.Analysis.RateLimitPerMinute)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
server:
  port: 9100
  admin_token: secret
database:
  url: postgres://localhost/verdict
analysis:
  default_method: topsis
  max_options: 10
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("expected port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Server.AdminToken != "secret" {
		t.Errorf("expected admin token from file, got %q", cfg.Server.AdminToken)
	}
	if cfg.Database.URL != "postgres://localhost/verdict" {
		t.Errorf("expected database URL from file, got %q", cfg.Database.URL)
	}
	if cfg.Analysis.DefaultMethod != "topsis" {
		t.Errorf("expected default method topsis, got %s", cfg.Analysis.DefaultMethod)
	}
	if cfg.Analysis.MaxOptions != 10 {
		t.Errorf("expected max options 10, got %d", cfg.Analysis.MaxOptions)
	}
	// Untouched fields keep defaults.
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port default, got %d", cfg.Server.MetricsPort)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VERDICT_PORT", "9200")
	t.Setenv("VERDICT_DATABASE_URL", "postgres://db/verdict")
	t.Setenv("VERDICT_DEFAULT_METHOD", "pareto")
	t.Setenv("VERDICT_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9200 {
		t.Errorf("expected env port 9200, got %d", cfg.Server.Port)
	}
	if cfg.Database.URL != "postgres://db/verdict" {
		t.Errorf("expected env database URL, got %q", cfg.Database.URL)
	}
	if cfg.Analysis.DefaultMethod != "pareto" {
		t.Errorf("expected env method pareto, got %s", cfg.Analysis.DefaultMethod)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected env log level debug, got %s", cfg.Logging.Level)
	}
}

func TestMissingConfigFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
