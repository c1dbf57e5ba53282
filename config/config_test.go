package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"calendar-task-scheduler/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.HTTPServer.Port)
	}
	if cfg.GoogleCalendar.Timezone != "Asia/Kolkata" || cfg.GoogleCalendar.EventHour != 9 {
		t.Errorf("unexpected calendar defaults: %+v", cfg.GoogleCalendar)
	}
	if cfg.Extractor.CacheTTL != 10*time.Minute {
		t.Errorf("expected 10m cache ttl, got %v", cfg.Extractor.CacheTTL)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
http_server:
  port: 9090
google_calendar:
  calendar_id: team@example.com
  timezone: UTC
  event_hour: 14
extractor:
  cache_ttl: 1m
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPServer.Port != 9090 || cfg.GoogleCalendar.CalendarID != "team@example.com" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.GoogleCalendar.EventHour != 14 || cfg.Extractor.CacheTTL != time.Minute {
		t.Errorf("file values not applied: %+v", cfg)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GOOGLE_CALENDAR_CREDENTIALS", "/secrets/sa.json")
	t.Setenv("HTTP_SERVER_PORT", "7070")

	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GoogleCalendar.CredentialsPath != "/secrets/sa.json" {
		t.Errorf("expected env credentials path, got %q", cfg.GoogleCalendar.CredentialsPath)
	}
	if cfg.HTTPServer.Port != 7070 {
		t.Errorf("expected env port, got %d", cfg.HTTPServer.Port)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"event hour": "GOOGLE_CALENDAR_EVENT_HOUR",
		"timezone":   "GOOGLE_CALENDAR_TIMEZONE",
	}
	values := map[string]string{
		"GOOGLE_CALENDAR_EVENT_HOUR": "25",
		"GOOGLE_CALENDAR_TIMEZONE":   "Mars/Olympus",
	}

	for name, key := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(key, values[key])
			if _, err := config.Load(t.TempDir()); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}
