package maze

import "testing"

func TestOutOfBoundsIsWall(t *testing.T) {
	g := NewBlank(4, 3)

	tests := []struct {
		name     string
		col, row int
	}{
		{"left of map", -1, 1},
		{"right of map", 4, 1},
		{"above map", 1, -1},
		{"below map", 1, 3},
		{"far corner", 100, 100},
		{"negative corner", -5, -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !g.IsWall(tc.col, tc.row) {
				t.Errorf("IsWall(%d, %d) = false, want true for out-of-bounds", tc.col, tc.row)
			}
		})
	}

	// In-bounds empty cells are not walls
	if g.IsWall(0, 0) || g.IsWall(3, 2) {
		t.Error("empty in-bounds cells should not be walls")
	}
}

func TestSetBoundsChecked(t *testing.T) {
	g := NewBlank(3, 3)

	g.Set(1, 1, TileWall)
	if g.At(1, 1) != TileWall {
		t.Errorf("At(1,1) = %v after Set, want TileWall", g.At(1, 1))
	}

	// Out-of-bounds writes must be silently ignored
	g.Set(-1, 0, TileWall)
	g.Set(0, -1, TileWall)
	g.Set(3, 0, TileWall)
	g.Set(0, 3, TileWall)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if (x != 1 || y != 1) && g.At(x, y) != TileEmpty {
				t.Errorf("At(%d,%d) = %v, want TileEmpty", x, y, g.At(x, y))
			}
		}
	}
}

func TestNewGridPadsRaggedRows(t *testing.T) {
	g := NewGrid([][]Tile{
		{TileWall, TileWall, TileWall},
		{TileWall},
		{TileWall, TilePelletSmall},
	})

	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 3x3", g.Width(), g.Height())
	}
	if g.At(1, 1) != TileEmpty || g.At(2, 1) != TileEmpty {
		t.Error("short rows should be padded with TileEmpty")
	}
	if g.At(2, 2) != TileEmpty {
		t.Error("row 2 should be padded at column 2")
	}
}

func TestNewBordered(t *testing.T) {
	g := NewBordered(5, 4)

	for x := 0; x < 5; x++ {
		if !g.IsWall(x, 0) || !g.IsWall(x, 3) {
			t.Errorf("column %d: top/bottom border should be wall", x)
		}
	}
	for y := 0; y < 4; y++ {
		if !g.IsWall(0, y) || !g.IsWall(4, y) {
			t.Errorf("row %d: left/right border should be wall", y)
		}
	}
	if g.IsWall(2, 1) || g.IsWall(2, 2) {
		t.Error("interior should be empty")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewBordered(4, 4)
	c := g.Clone()

	if !g.Equal(c) {
		t.Fatal("clone should equal original")
	}

	c.Set(1, 1, TileWall)
	if g.At(1, 1) == TileWall {
		t.Error("mutating clone should not affect original")
	}
	if g.Equal(c) {
		t.Error("grids should differ after mutation")
	}
}

func TestEqualDimensionMismatch(t *testing.T) {
	if NewBlank(3, 3).Equal(NewBlank(3, 4)) {
		t.Error("grids of different heights should not be equal")
	}
	if NewBlank(3, 3).Equal(NewBlank(4, 3)) {
		t.Error("grids of different widths should not be equal")
	}
}

func TestPelletCount(t *testing.T) {
	// 3 small pellets and 2 big ones.
	g := Parse("#.#\n.o.\n#o#")
	if got := g.PelletCount(); got != 5 {
		t.Errorf("PelletCount() = %d, want 5", got)
	}
	g.Set(1, 1, TileEmpty)
	if got := g.PelletCount(); got != 4 {
		t.Errorf("PelletCount() after eating = %d, want 4", got)
	}
}

func TestDumpLiteral(t *testing.T) {
	g := Parse("#.\no ")
	want := "{\n\t{1, 2},\n\t{3, 0},\n}"
	if got := g.DumpLiteral(); got != want {
		t.Errorf("DumpLiteral() = %q, want %q", got, want)
	}
}
