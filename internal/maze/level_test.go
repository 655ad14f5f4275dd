package maze

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseScenario(t *testing.T) {
	g := Parse("#.#\n...\n#o#")

	want := [][]Tile{
		{TileWall, TilePelletSmall, TileWall},
		{TilePelletSmall, TilePelletSmall, TilePelletSmall},
		{TileWall, TilePelletBig, TileWall},
	}

	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 3x3", g.Width(), g.Height())
	}
	for y, row := range want {
		for x, tile := range row {
			if got := g.At(x, y); got != tile {
				t.Errorf("At(%d,%d) = %v, want %v", x, y, got, tile)
			}
		}
	}
}

func TestParseUnknownCharactersAreEmpty(t *testing.T) {
	g := Parse("#x#\n?@!")
	for _, p := range [][2]int{{1, 0}, {0, 1}, {1, 1}, {2, 1}} {
		if got := g.At(p[0], p[1]); got != TileEmpty {
			t.Errorf("At(%d,%d) = %v, want TileEmpty", p[0], p[1], got)
		}
	}
}

func TestParsePadsRaggedLines(t *testing.T) {
	g := Parse("####\n#\n##")

	if g.Width() != 4 {
		t.Fatalf("width = %d, want 4", g.Width())
	}
	if g.At(3, 1) != TileEmpty || g.At(3, 2) != TileEmpty {
		t.Error("short lines should be padded with TileEmpty")
	}
}

func TestSerializeCharacters(t *testing.T) {
	g := NewGrid([][]Tile{
		{TileWall, TilePelletSmall},
		{TilePelletBig, TileEmpty},
	})

	want := "#.\no "
	if got := Serialize(g); got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestParseSerializeRoundTrip(t *testing.T) {
	inputs := []string{
		"#.#\n...\n#o#",
		"####\n#  #\n####",
		Serialize(ClassicBoard()),
		"#\n##\n###", // ragged: normalizes on first parse, then round-trips
	}

	for _, text := range inputs {
		g := Parse(text)
		again := Parse(Serialize(g))
		if !g.Equal(again) {
			t.Errorf("round trip changed grid for input %q", text)
		}
	}
}

func TestClassicBoardShape(t *testing.T) {
	g := ClassicBoard()

	if g.Width() != 28 {
		t.Errorf("classic board width = %d, want 28", g.Width())
	}
	if g.Height() != 25 {
		t.Errorf("classic board height = %d, want 25", g.Height())
	}

	// Fully enclosed except the tunnel row.
	for x := 0; x < g.Width(); x++ {
		if !g.IsWall(x, 0) || !g.IsWall(x, g.Height()-1) {
			t.Errorf("column %d: top/bottom rows should be wall", x)
		}
	}

	// The spawn tile must be open and its whole box walkable.
	if !IsRectWalkable(boxAt(Vec{X: 13.5 * TileSize, Y: 23.5*TileSize + MazeOffsetY}), g) {
		t.Error("spawn bounding box should be walkable on the classic board")
	}
}

func TestLoadFileFallsBackToClassic(t *testing.T) {
	g, ok := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if ok {
		t.Error("LoadFile on a missing path should report ok=false")
	}
	if !g.Equal(ClassicBoard()) {
		t.Error("fallback grid should be the classic board")
	}
}

func TestSaveThenLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.txt")
	g := Parse("#.#\n.o.\n###")

	if err := SaveFile(path, g); err != nil {
		t.Fatalf("SaveFile() failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}

	loaded, ok := LoadFile(path)
	if !ok {
		t.Fatal("LoadFile on an existing file should report ok=true")
	}
	if !g.Equal(loaded) {
		t.Error("loaded grid differs from saved grid")
	}
}
