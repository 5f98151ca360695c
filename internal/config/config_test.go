package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() with missing file error = %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "text")
	}
	if cfg.Export.Format != "json" {
		t.Errorf("Export.Format = %q, want %q", cfg.Export.Format, "json")
	}
	if cfg.Export.Dir != "." {
		t.Errorf("Export.Dir = %q, want %q", cfg.Export.Dir, ".")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "threadloom.yaml")
	content := `log:
  level: debug
  format: json
cache:
  path: /data/events.db
relay:
  url: ws://relay.local/ws
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Cache.Path != "/data/events.db" {
		t.Errorf("Cache.Path = %q", cfg.Cache.Path)
	}
	if cfg.Relay.URL != "ws://relay.local/ws" {
		t.Errorf("Relay.URL = %q", cfg.Relay.URL)
	}
	// File values do not disturb defaults it leaves unset.
	if cfg.Export.Format != "json" {
		t.Errorf("Export.Format = %q, want default", cfg.Export.Format)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte(":\n  - not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML should error")
	}
}

func TestLoad_EnvOverlay(t *testing.T) {
	t.Setenv("THREADLOOM_LOG_LEVEL", "error")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want env override %q", cfg.Log.Level, "error")
	}
}
