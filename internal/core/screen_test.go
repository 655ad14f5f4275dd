package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, want 'X'", got)
	}

	// Out-of-bounds writes are ignored, reads return space.
	s.Set(-1, 0, 'A')
	s.Set(10, 0, 'B')
	s.Set(0, 5, 'C')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColor(1, 1, 'W', ColorBlue)

	cell := s.GetCell(1, 1)
	if cell.Rune != 'W' || cell.Color != ColorBlue {
		t.Errorf("GetCell(1,1) = %+v, want {W Blue}", cell)
	}

	if s.GetCell(0, 0).Color != ColorDefault {
		t.Error("untouched cells should have the default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColor(0, 0, '#', ColorRed)
	s.Clear()

	cell := s.GetCell(0, 0)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear: %+v, want blank default cell", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 2, 'X')
	s.Set(5, 3, 'Y')

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 4x3", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("content within the new bounds should be preserved")
	}

	s.Resize(8, 6)
	if s.Get(2, 2) != 'X' {
		t.Error("content should survive growing the screen")
	}
	if s.Get(7, 5) != ' ' {
		t.Error("new cells should be blank")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText should place characters at consecutive columns")
	}

	// Clipping at the right edge.
	s.DrawText(8, 0, "long")
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Error("DrawText should clip at the screen edge")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab")

	if s.Get(4, 0) != 'a' || s.Get(5, 0) != 'b' {
		t.Errorf("row = %q, want text centered at columns 4-5", s.Row(0))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if strings.Count(s.String(), "\n") != 1 {
		t.Error("String() should join rows with single newlines")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 4, 3))

	if s.Get(0, 0) != '┌' || s.Get(3, 0) != '┐' || s.Get(0, 2) != '└' || s.Get(3, 2) != '┘' {
		t.Error("DrawBox corners are wrong")
	}
	if s.Get(1, 0) != '─' || s.Get(0, 1) != '│' {
		t.Error("DrawBox edges are wrong")
	}
}
