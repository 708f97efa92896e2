package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
telemetry:
  snapshotURLTemplate: "https://telemetry.example.com/snapshots/%02d.json"
`)
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Config.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", Config.Server.Port)
	}
	if Config.Telemetry.WindowHours != 24 {
		t.Errorf("windowHours default = %d, want 24", Config.Telemetry.WindowHours)
	}
	if Config.Analysis.ThresholdKM != 100 {
		t.Errorf("thresholdKM default = %v, want 100", Config.Analysis.ThresholdKM)
	}
	if Config.Analysis.MaxHopKM != 800 {
		t.Errorf("maxHopKM default = %v, want 800", Config.Analysis.MaxHopKM)
	}
	if Config.Cache.TTLSeconds != 300 {
		t.Errorf("cache ttl default = %d, want 300", Config.Cache.TTLSeconds)
	}
}

func TestLoadRejectsTemplateWithoutHourSlot(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
telemetry:
  snapshotURLTemplate: "https://telemetry.example.com/snapshots/latest.json"
`)
	if err := Load(path); err == nil {
		t.Fatal("expected an error for a template without an hour slot")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
telemetry:
  snapshotURLTemplate: "https://telemetry.example.com/snapshots/%02d.json"
`)
	t.Setenv("PORT", "9100")
	t.Setenv("EVENTS_FEED_URL", "https://events.example.com/detections.csv")
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Config.Server.Port != 9100 {
		t.Errorf("env PORT override not applied: %d", Config.Server.Port)
	}
	if Config.Events.FeedURL != "https://events.example.com/detections.csv" {
		t.Errorf("env EVENTS_FEED_URL override not applied: %q", Config.Events.FeedURL)
	}
}
