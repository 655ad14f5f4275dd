// Package config provides YAML-based configuration loading for the pacade
// apps. Layout constants (tile size, maze offset) are part of the collision
// contract and are not configurable; player tuning and editor defaults are.
package config

// GameConfig contains all configuration for the maze game.
type GameConfig struct {
	Player PlayerConfig `yaml:"player"`
	Level  LevelConfig  `yaml:"level"`
}

// PlayerConfig defines player tuning parameters.
type PlayerConfig struct {
	Speed    float64 `yaml:"speed"`     // pixels per second
	SpawnCol float64 `yaml:"spawn_col"` // spawn center in tile units
	SpawnRow float64 `yaml:"spawn_row"`
}

// LevelConfig defines where the game finds its board.
type LevelConfig struct {
	Path string `yaml:"path"` // empty means the built-in classic board
}

// EditorConfig contains all configuration for the level editor.
type EditorConfig struct {
	Grid GridConfig `yaml:"grid"`
	File FileConfig `yaml:"file"`
}

// GridConfig defines the blank template dimensions for new levels.
type GridConfig struct {
	Cols     int  `yaml:"cols"`
	Rows     int  `yaml:"rows"`
	Bordered bool `yaml:"bordered"` // start new levels with a wall ring
}

// FileConfig defines the editor's default save target.
type FileConfig struct {
	Path string `yaml:"path"`
}
