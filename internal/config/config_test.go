package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "server:\n  mode: release\n"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Server.Mode != "release" {
		t.Fatalf("expected mode release, got %q", cfg.Server.Mode)
	}
	if cfg.Database.Path != ":memory:" {
		t.Fatalf("expected in-memory database, got %q", cfg.Database.Path)
	}
	if cfg.Simulation.ScrapeFoundCount != 2 {
		t.Fatalf("expected scrape found count 2, got %d", cfg.Simulation.ScrapeFoundCount)
	}
	if got := cfg.Simulation.ChatReplyDelayDuration(); got != time.Second {
		t.Fatalf("expected chat delay 1s, got %v", got)
	}
	if got := cfg.Simulation.ScrapeDelayDuration(); got != 3*time.Second {
		t.Fatalf("expected scrape delay 3s, got %v", got)
	}
	if cfg.IDs.Strategy != "uuid" {
		t.Fatalf("expected uuid strategy, got %q", cfg.IDs.Strategy)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SOCIALDASH_PORT", "9090")
	t.Setenv("SOCIALDASH_SCHEDULER_ENABLED", "true")
	t.Setenv("SOCIALDASH_CHAT_REPLY_DELAY", "250ms")

	cfg, err := LoadConfig(writeConfig(t, "server:\n  port: \"7070\"\nscheduler:\n  enabled: false\n"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected env port 9090, got %q", cfg.Server.Port)
	}
	if !cfg.Scheduler.Enabled {
		t.Fatal("expected scheduler enabled from env")
	}
	if got := cfg.Simulation.ChatReplyDelayDuration(); got != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", got)
	}
}

func TestLoadConfigEnvError(t *testing.T) {
	t.Setenv("SOCIALDASH_SCRAPE_FOUND_COUNT", "many")

	_, err := LoadConfig(writeConfig(t, "log:\n  level: debug\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDurationFallback(t *testing.T) {
	sim := SimulationConfig{ChatReplyDelay: "soon", ScrapeDelay: "-1s"}
	if got := sim.ChatReplyDelayDuration(); got != time.Second {
		t.Fatalf("expected fallback 1s, got %v", got)
	}
	if got := sim.ScrapeDelayDuration(); got != 3*time.Second {
		t.Fatalf("expected fallback 3s, got %v", got)
	}
}
