package config

import (
	"runtime"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Run.Iterations != 1000 {
		t.Errorf("expected 1000 iterations, got %d", cfg.Run.Iterations)
	}
	if cfg.Run.Alpha != 0.05 {
		t.Errorf("expected alpha 0.05, got %g", cfg.Run.Alpha)
	}
	if cfg.Run.Workers != runtime.NumCPU() {
		t.Errorf("expected %d workers, got %d", runtime.NumCPU(), cfg.Run.Workers)
	}
	if cfg.Database.Enabled {
		t.Error("ledger should be disabled without a DSN")
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Server.Port)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BROSS_ITERATIONS", "250")
	t.Setenv("BROSS_ALPHA", "0.01")
	t.Setenv("BROSS_DB_DSN", "bross.db")
	t.Setenv("GIN_MODE", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Run.Iterations != 250 {
		t.Errorf("expected 250 iterations, got %d", cfg.Run.Iterations)
	}
	if cfg.Run.Alpha != 0.01 {
		t.Errorf("expected alpha 0.01, got %g", cfg.Run.Alpha)
	}
	if !cfg.Database.Enabled || cfg.Database.Driver != "sqlite3" {
		t.Errorf("expected an enabled sqlite3 ledger, got %+v", cfg.Database)
	}
	if cfg.Server.GinMode != "debug" {
		t.Errorf("expected gin mode debug, got %s", cfg.Server.GinMode)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := []struct{ key, value string }{
		{"BROSS_ITERATIONS", "0"},
		{"BROSS_ALPHA", "1.5"},
		{"BROSS_WORKERS", "-2"},
	}
	for _, c := range cases {
		t.Run(c.key, func(t *testing.T) {
			t.Setenv(c.key, c.value)
			if _, err := Load(); err == nil {
				t.Errorf("%s=%s: expected a validation error", c.key, c.value)
			}
		})
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("BROSS_DB_DSN", "somewhere")
	t.Setenv("BROSS_DB_DRIVER", "mysql")
	if _, err := Load(); err == nil {
		t.Error("expected a validation error for an unsupported driver")
	}
}
