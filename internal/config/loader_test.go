package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGameEmbeddedDefault(t *testing.T) {
	// With no custom path and no local configs, the embedded YAML is used.
	cfg, err := LoadGame("")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}

	if cfg.Player.Speed != 40.0 {
		t.Errorf("Player.Speed = %v, want 40.0", cfg.Player.Speed)
	}
	if cfg.Player.SpawnCol != 13.5 || cfg.Player.SpawnRow != 23.5 {
		t.Errorf("spawn = (%v, %v), want (13.5, 23.5)", cfg.Player.SpawnCol, cfg.Player.SpawnRow)
	}
}

func TestLoadGameCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	content := "player:\n  speed: 56.0\n  spawn_col: 1.5\n  spawn_row: 1.5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGame(path)
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if cfg.Player.Speed != 56.0 {
		t.Errorf("Player.Speed = %v, want 56.0", cfg.Player.Speed)
	}
}

func TestLoadGameMissingCustomPath(t *testing.T) {
	if _, err := LoadGame(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicit config paths must fail loudly when missing")
	}
}

func TestLoadEditorEmbeddedDefault(t *testing.T) {
	cfg, err := LoadEditor("")
	if err != nil {
		t.Fatalf("LoadEditor() failed: %v", err)
	}

	if cfg.Grid.Cols != 28 || cfg.Grid.Rows != 31 {
		t.Errorf("grid = %dx%d, want 28x31", cfg.Grid.Cols, cfg.Grid.Rows)
	}
	if cfg.File.Path == "" {
		t.Error("default save path should not be empty")
	}
}
