package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// demoConfig is the demo host's configuration. All fields are optional;
// missing values fall back to defaults.
type demoConfig struct {
	// Title is the host window title.
	Title string `json:"title"`

	// Width and Height are the host window's client size in pixels.
	Width  int32 `json:"width"`
	Height int32 `json:"height"`

	// ToggleHotkey shows and hides the overlay (e.g. "Insert", "Ctrl+Alt+O").
	ToggleHotkey string `json:"toggle_hotkey"`

	// DiagEnabled starts the diagnostics HTTP server.
	DiagEnabled bool `json:"diag_enabled"`

	// DiagPort is the diagnostics server port.
	DiagPort int `json:"diag_port"`

	// DiagToken is an optional bearer token for diagnostics requests.
	DiagToken string `json:"diag_token,omitempty"`
}

func defaultConfig() demoConfig {
	return demoConfig{
		Title:        "overlay demo",
		Width:        1024,
		Height:       768,
		ToggleHotkey: "Insert",
		DiagPort:     8199,
	}
}

// loadConfig reads a JSON config from path. An empty path or a missing file
// yields the defaults; a file that exists but does not parse is an error.
// Zero-valued fields are backfilled with defaults.
func loadConfig(path string) (demoConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	def := defaultConfig()
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.DiagPort <= 0 {
		cfg.DiagPort = def.DiagPort
	}
	return cfg, nil
}
