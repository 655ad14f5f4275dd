// Package maze provides the tile map model, wall autotiling, collision
// oracle, level serialization and player movement for the pacade game.
// This package is UI-agnostic and deterministic; the platform layer owns
// input mapping, timing and drawing.
package maze

// Tile is a logical tile code as stored in the grid.
type Tile uint8

const (
	TileEmpty       Tile = 0
	TileWall        Tile = 1
	TilePelletSmall Tile = 2
	TilePelletBig   Tile = 3
)

// String returns the level-file character for the tile.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "#"
	case TilePelletSmall:
		return "."
	case TilePelletBig:
		return "o"
	default:
		return " "
	}
}

// WallCodeOffset is added to a wall's neighbor bitmask to form its display
// code. Display codes occupy [100,115] and never collide with logical tile
// codes, which occupy [0,3].
const WallCodeOffset = 100

// DisplayCode is a display tile code as produced by Encode. Wall cells carry
// WallCodeOffset plus a 4-bit neighbor mask; all other cells carry their
// logical tile code unchanged.
type DisplayCode uint8

// IsWall reports whether the code is an encoded wall variant.
func (c DisplayCode) IsWall() bool {
	return c >= WallCodeOffset && c <= WallCodeOffset+15
}

// SpriteIndex returns the wall sprite index in [0,15] selected by the
// neighbor mask. Only meaningful when IsWall is true.
func (c DisplayCode) SpriteIndex() int {
	return int(c - WallCodeOffset)
}

// DisplayGrid is the derived rendering grid. It has the same dimensions as
// the Grid it was encoded from and is recomputed in full whenever that grid
// changes; it is never edited directly.
type DisplayGrid [][]DisplayCode

// At returns the display code at (col, row), or TileEmpty's code when the
// coordinate is out of bounds.
func (d DisplayGrid) At(col, row int) DisplayCode {
	if row < 0 || row >= len(d) || col < 0 || col >= len(d[row]) {
		return DisplayCode(TileEmpty)
	}
	return d[row][col]
}
