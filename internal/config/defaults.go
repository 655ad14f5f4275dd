package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

//go:embed defaults/editor.yaml
var defaultEditorYAML []byte

// DefaultGameConfig returns the default maze game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Player: PlayerConfig{
			Speed:    40.0,
			SpawnCol: 13.5,
			SpawnRow: 23.5,
		},
	}
}

// DefaultEditorConfig returns the default level editor configuration.
func DefaultEditorConfig() EditorConfig {
	return EditorConfig{
		Grid: GridConfig{
			Cols: 28,
			Rows: 31,
		},
		File: FileConfig{
			Path: "levels/level1.txt",
		},
	}
}
