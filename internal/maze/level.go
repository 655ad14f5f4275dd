package maze

import (
	_ "embed"
	"os"
	"strings"
)

//go:embed levels/classic.txt
var classicLevelText string

// Level file characters. Any character outside this set reads as empty
// space, and rows shorter than the widest one are padded with empty space;
// ragged input is normalized, never rejected.
const (
	charWall        = '#'
	charPelletSmall = '.'
	charPelletBig   = 'o'
	charEmpty       = ' '
)

// Parse builds a grid from level text, one line per row.
func Parse(text string) *Grid {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	rows := make([][]Tile, len(lines))
	for y, line := range lines {
		row := make([]Tile, len(line))
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case charWall:
				row[x] = TileWall
			case charPelletSmall:
				row[x] = TilePelletSmall
			case charPelletBig:
				row[x] = TilePelletBig
			default:
				row[x] = TileEmpty
			}
		}
		rows[y] = row
	}
	// NewGrid pads short rows to the width of the longest.
	return NewGrid(rows)
}

// Serialize renders a grid as level text, the inverse of Parse. A grid
// obtained from Parse round-trips exactly.
func Serialize(g *Grid) string {
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width(); x++ {
			switch g.At(x, y) {
			case TileWall:
				b.WriteByte(charWall)
			case TilePelletSmall:
				b.WriteByte(charPelletSmall)
			case TilePelletBig:
				b.WriteByte(charPelletBig)
			default:
				b.WriteByte(charEmpty)
			}
		}
	}
	return b.String()
}

// ClassicBoard returns the built-in 28-column maze.
func ClassicBoard() *Grid {
	return Parse(classicLevelText)
}

// LoadFile reads a level from disk. A missing or unreadable file is not an
// error: the classic board is returned instead, and ok is false so the
// caller can log the fallback.
func LoadFile(path string) (g *Grid, ok bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ClassicBoard(), false
	}
	return Parse(string(data)), true
}

// SaveFile writes a level to disk in the text format.
func SaveFile(path string, g *Grid) error {
	return os.WriteFile(path, []byte(Serialize(g)), 0o644)
}
