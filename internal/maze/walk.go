package maze

import "math"

// Fixed layout constants. The maze starts MazeOffsetY pixels down the
// screen; the rows above it are reserved for UI.
const (
	TileSize    = 8.0
	MazeOffsetY = TileSize * 5.0

	// PlayerSpeed is the player's movement speed in pixels per second.
	PlayerSpeed = 40.0
)

// Vec is a continuous 2D position in pixel space.
type Vec struct {
	X, Y float64
}

// Add returns v offset by (dx, dy).
func (v Vec) Add(dx, dy float64) Vec {
	return Vec{X: v.X + dx, Y: v.Y + dy}
}

// Rect is an axis-aligned bounding box in pixel space.
type Rect struct {
	X, Y, W, H float64
}

// PixelToTile maps a pixel coordinate to the tile containing it.
func PixelToTile(x, y float64) (col, row int) {
	col = int(math.Floor(x / TileSize))
	row = int(math.Floor((y - MazeOffsetY) / TileSize))
	return col, row
}

// TileCenter returns the pixel position of the center of tile (col, row).
func TileCenter(col, row int) Vec {
	return Vec{
		X: (float64(col) + 0.5) * TileSize,
		Y: (float64(row)+0.5)*TileSize + MazeOffsetY,
	}
}

// IsPixelWalkable reports whether the tile under the pixel coordinate is
// not a wall.
func IsPixelWalkable(x, y float64, g *Grid) bool {
	col, row := PixelToTile(x, y)
	return !g.IsWall(col, row)
}

// IsRectWalkable reports whether a bounding box may occupy its position:
// all four of its corners must land on walkable tiles. The right and bottom
// edges are inset by one pixel so that a box flush against a tile boundary
// does not read into the next tile; movement code relies on this to let the
// player fill a corridor exactly one tile wide.
func IsRectWalkable(r Rect, g *Grid) bool {
	right := r.X + r.W - 1
	bottom := r.Y + r.H - 1

	if !IsPixelWalkable(r.X, r.Y, g) {
		return false
	}
	if !IsPixelWalkable(right, r.Y, g) {
		return false
	}
	if !IsPixelWalkable(r.X, bottom, g) {
		return false
	}
	if !IsPixelWalkable(right, bottom, g) {
		return false
	}
	return true
}
