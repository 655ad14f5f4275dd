package maze

import "strings"

// Grid is a rectangular tile map. Rows all have equal length; the map is
// constructed at level load and mutated cell-by-cell only by the editor.
type Grid struct {
	tiles [][]Tile
}

// NewGrid builds a grid from row data. Short rows are padded with TileEmpty
// so that every row has the width of the longest one.
func NewGrid(rows [][]Tile) *Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	tiles := make([][]Tile, len(rows))
	for y, row := range rows {
		tiles[y] = make([]Tile, width)
		copy(tiles[y], row)
	}
	return &Grid{tiles: tiles}
}

// NewBlank returns an all-empty grid, the editor's default template.
func NewBlank(cols, rows int) *Grid {
	data := make([][]Tile, rows)
	for y := range data {
		data[y] = make([]Tile, cols)
	}
	return &Grid{tiles: data}
}

// NewBordered returns an empty grid enclosed by a single wall ring.
func NewBordered(cols, rows int) *Grid {
	g := NewBlank(cols, rows)
	for x := 0; x < cols; x++ {
		g.Set(x, 0, TileWall)
		g.Set(x, rows-1, TileWall)
	}
	for y := 0; y < rows; y++ {
		g.Set(0, y, TileWall)
		g.Set(cols-1, y, TileWall)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	if len(g.tiles) == 0 {
		return 0
	}
	return len(g.tiles[0])
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.tiles)
}

// InBounds reports whether (col, row) lies inside the map.
func (g *Grid) InBounds(col, row int) bool {
	return row >= 0 && row < len(g.tiles) && col >= 0 && col < g.Width()
}

// At returns the tile at (col, row). Out-of-bounds coordinates read as
// TileWall, consistent with IsWall.
func (g *Grid) At(col, row int) Tile {
	if !g.InBounds(col, row) {
		return TileWall
	}
	return g.tiles[row][col]
}

// IsWall reports whether (col, row) is a wall. Coordinates outside the map
// count as walls, so map edges need no special-casing in the adjacency
// encoder or the collision oracle.
func (g *Grid) IsWall(col, row int) bool {
	if !g.InBounds(col, row) {
		return true
	}
	return g.tiles[row][col] == TileWall
}

// Set writes a tile at (col, row). Out-of-bounds writes are ignored. The
// caller is responsible for re-encoding the display grid afterwards.
func (g *Grid) Set(col, row int, t Tile) {
	if g.InBounds(col, row) {
		g.tiles[row][col] = t
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([][]Tile, len(g.tiles))
	for y, row := range g.tiles {
		tiles[y] = make([]Tile, len(row))
		copy(tiles[y], row)
	}
	return &Grid{tiles: tiles}
}

// Equal reports whether two grids have identical dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Height() != other.Height() || g.Width() != other.Width() {
		return false
	}
	for y, row := range g.tiles {
		for x, t := range row {
			if other.tiles[y][x] != t {
				return false
			}
		}
	}
	return true
}

// PelletCount returns the number of pellet tiles (small and big) on the map.
func (g *Grid) PelletCount() int {
	n := 0
	for _, row := range g.tiles {
		for _, t := range row {
			if t == TilePelletSmall || t == TilePelletBig {
				n++
			}
		}
	}
	return n
}

// DumpLiteral renders the grid as a nested-array literal, a developer
// convenience for pasting a board into source. Not a stable interchange
// format; use Serialize for that.
func (g *Grid) DumpLiteral() string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, row := range g.tiles {
		b.WriteString("\t{")
		for x, t := range row {
			if x > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('0' + byte(t))
		}
		b.WriteString("},\n")
	}
	b.WriteString("}")
	return b.String()
}
