package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultProfile(t *testing.T) {
	cfg := Default()
	if cfg.Animations.SimpleCounter.Enabled {
		t.Fatal("expected the simple counter disabled by default")
	}
	if !cfg.Animations.BouncingCounter.Enabled || cfg.Animations.BouncingCounter.DurationMS != 60_000 {
		t.Fatalf("unexpected bouncing-counter defaults %+v", cfg.Animations.BouncingCounter)
	}
	if cfg.Wifi.Portal.IP != "192.168.4.1" {
		t.Fatalf("unexpected portal IP %q", cfg.Wifi.Portal.IP)
	}
	if cfg.Sched.TickBudgetMS != 100 {
		t.Fatalf("unexpected tick budget %d", cfg.Sched.TickBudgetMS)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lumen.yaml")
	doc := `
animations:
  simple_counter:
    enabled: true
    duration_ms: 5000
fetch:
  url: http://example.net/api/followers
sched:
  tick_budget_ms: 50
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Animations.SimpleCounter.Enabled || cfg.Animations.SimpleCounter.DurationMS != 5000 {
		t.Fatalf("expected the simple counter overridden, got %+v", cfg.Animations.SimpleCounter)
	}
	if cfg.Fetch.URL != "http://example.net/api/followers" {
		t.Fatalf("expected the fetch URL overridden, got %q", cfg.Fetch.URL)
	}
	if cfg.Sched.TickBudgetMS != 50 {
		t.Fatalf("expected the tick budget overridden, got %d", cfg.Sched.TickBudgetMS)
	}

	// Untouched sections keep their defaults.
	if cfg.Wifi.Portal.SSID != "led-counter-setup" {
		t.Fatalf("expected the default portal ssid, got %q", cfg.Wifi.Portal.SSID)
	}
	if cfg.Fetch.IntervalMS != 10_000 {
		t.Fatalf("expected the default fetch interval, got %d", cfg.Fetch.IntervalMS)
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if cfg.Fetch.URL != Default().Fetch.URL {
		t.Fatalf("expected the defaults back, got %q", cfg.Fetch.URL)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("animations: ["), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
