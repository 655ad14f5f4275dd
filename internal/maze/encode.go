package maze

// Neighbor mask bits used by Encode. The mask selects one of 16 wall
// sprites; the bit layout is a contract with the renderer and must not
// change.
const (
	maskNorth = 1
	maskSouth = 2
	maskWest  = 4
	maskEast  = 8
)

// Encode derives the display grid from a logical grid. Every wall cell is
// replaced by WallCodeOffset plus its 4-neighbor wall bitmask; all other
// cells pass through unchanged. Out-of-bounds neighbors count as walls, so
// border walls connect visually to the map edge.
//
// Encode is a pure function of the grid. Callers must re-encode after any
// grid mutation; the result is never updated incrementally.
func Encode(g *Grid) DisplayGrid {
	display := make(DisplayGrid, g.Height())
	for y := range display {
		display[y] = make([]DisplayCode, g.Width())
		for x := range display[y] {
			t := g.At(x, y)
			if t != TileWall {
				display[y][x] = DisplayCode(t)
				continue
			}

			mask := 0
			if g.IsWall(x, y-1) {
				mask |= maskNorth
			}
			if g.IsWall(x, y+1) {
				mask |= maskSouth
			}
			if g.IsWall(x-1, y) {
				mask |= maskWest
			}
			if g.IsWall(x+1, y) {
				mask |= maskEast
			}
			display[y][x] = DisplayCode(WallCodeOffset + mask)
		}
	}
	return display
}
