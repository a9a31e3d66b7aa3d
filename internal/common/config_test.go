package common

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Store.SQLitePath != "./loanaudit.db" {
		t.Errorf("sqlite path = %q", cfg.Store.SQLitePath)
	}
	if cfg.Cache.TTL != 24*time.Hour {
		t.Errorf("cache ttl = %v", cfg.Cache.TTL)
	}
	if cfg.Ingest.Workers != 4 {
		t.Errorf("workers = %d", cfg.Ingest.Workers)
	}
	if cfg.Audit.Parallel {
		t.Error("parallel should default to off")
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("AUDIT_PARALLEL", "true")
	t.Setenv("WATCH_ROOTS", " /statements , /dropbox ")
	t.Setenv("WATCH_DEBOUNCE", "2s")
	t.Setenv("WATCH_WORKERS", "8")

	cfg := LoadConfig()
	if !cfg.Audit.Parallel {
		t.Error("expected parallel on")
	}
	if len(cfg.Ingest.Roots) != 2 || cfg.Ingest.Roots[0] != "/statements" || cfg.Ingest.Roots[1] != "/dropbox" {
		t.Errorf("roots = %v", cfg.Ingest.Roots)
	}
	if cfg.Ingest.Debounce != 2*time.Second {
		t.Errorf("debounce = %v", cfg.Ingest.Debounce)
	}
	if cfg.Ingest.Workers != 8 {
		t.Errorf("workers = %d", cfg.Ingest.Workers)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidate_RequiresRoots(t *testing.T) {
	cfg := LoadConfig()
	cfg.Ingest.Roots = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error without watch roots")
	}
}
