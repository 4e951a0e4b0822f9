package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.Scene != DefaultScene {
		t.Fatalf("expected scene %q, got %q", DefaultScene, cfg.Scene)
	}
	if cfg.FPS != DefaultFPS {
		t.Fatalf("expected fps %d, got %d", DefaultFPS, cfg.FPS)
	}
	if cfg.Theme != DefaultTheme {
		t.Fatalf("expected theme %q, got %q", DefaultTheme, cfg.Theme)
	}
	if cfg.Variables == nil {
		t.Fatal("default variables map should be allocated")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Scene = "wave"
	cfg.FPS = 60
	cfg.Variables = map[string]float64{"amplitude": 1.2}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got.Scene != "wave" || got.FPS != 60 {
		t.Fatalf("round trip lost fields: %+v", got)
	}
	if got.Variables["amplitude"] != 1.2 {
		t.Fatalf("round trip lost variables: %+v", got.Variables)
	}
}

func TestLoadFillsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("scene: spring\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Scene != "spring" {
		t.Fatalf("expected spring, got %q", cfg.Scene)
	}
	if cfg.FPS != DefaultFPS {
		t.Fatalf("missing fps should fall back to %d, got %d", DefaultFPS, cfg.FPS)
	}
	if cfg.Theme != DefaultTheme {
		t.Fatalf("missing theme should fall back to %q, got %q", DefaultTheme, cfg.Theme)
	}
}

func TestLoadClampsBadFPS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("fps: -5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.FPS != DefaultFPS {
		t.Fatalf("negative fps should reset to %d, got %d", DefaultFPS, cfg.FPS)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestGetPreset(t *testing.T) {
	vars := GetPreset("pendulum", "moon")
	if vars == nil {
		t.Fatal("known preset not found")
	}
	if vars["gravity"] != 1.62 {
		t.Fatalf("expected lunar gravity, got %g", vars["gravity"])
	}

	if GetPreset("pendulum", "plutonian") != nil {
		t.Fatal("unknown preset should return nil")
	}
	if GetPreset("wormhole", "moon") != nil {
		t.Fatal("unknown scene should return nil")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("spring")
	if len(names) != 3 {
		t.Fatalf("expected 3 spring presets, got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("preset names not sorted: %v", names)
		}
	}
	if ListPresets("wormhole") != nil {
		t.Fatal("unknown scene should return nil")
	}
}
