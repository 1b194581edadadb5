package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.SessionTTLMinutes != 60 {
		t.Errorf("SessionTTLMinutes = %d, want 60", cfg.SessionTTLMinutes)
	}
	if cfg.DefaultOpponent != "deeppeg" {
		t.Errorf("DefaultOpponent = %q, want deeppeg", cfg.DefaultOpponent)
	}
	if cfg.StatsDBDSN != "" {
		t.Errorf("StatsDBDSN = %q, want empty", cfg.StatsDBDSN)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crib.yaml")
	body := "loglevel: debug\nsessionttlminutes: 5\ndefaultopponent: myrmidon\nstatsdbdsn: user:pw@tcp(db:3306)/crib\ndebug: true\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.SessionTTLMinutes != 5 {
		t.Errorf("SessionTTLMinutes = %d, want 5", cfg.SessionTTLMinutes)
	}
	if cfg.DefaultOpponent != "myrmidon" {
		t.Errorf("DefaultOpponent = %q, want myrmidon", cfg.DefaultOpponent)
	}
	if cfg.StatsDBDSN != "user:pw@tcp(db:3306)/crib" {
		t.Errorf("StatsDBDSN = %q", cfg.StatsDBDSN)
	}
	if !cfg.Debug {
		t.Error("Debug not set from file")
	}
}

func TestEnvOverridesDSN(t *testing.T) {
	t.Setenv("CRIB_STATS_DSN", "env:pw@tcp(other:3306)/crib")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StatsDBDSN != "env:pw@tcp(other:3306)/crib" {
		t.Errorf("StatsDBDSN = %q, want env value", cfg.StatsDBDSN)
	}
}
