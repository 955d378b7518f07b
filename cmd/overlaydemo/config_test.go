package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title == "" || cfg.Width <= 0 || cfg.Height <= 0 || cfg.ToggleHotkey == "" {
		t.Fatalf("defaults incomplete: %+v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults, got %v", err)
	}
	if cfg != defaultConfig() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadConfigOverridesAndBackfill(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"title": "mine", "toggle_hotkey": "Ctrl+Alt+O", "diag_enabled": true}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "mine" || cfg.ToggleHotkey != "Ctrl+Alt+O" || !cfg.DiagEnabled {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Width != 1024 || cfg.DiagPort != 8199 {
		t.Fatalf("zero fields not backfilled: %+v", cfg)
	}
}

func TestLoadConfigRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Fatal("malformed config file should be an error")
	}
}
