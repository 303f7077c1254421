package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", c)
	}

	// Set keeps the existing color
	s.Set(5, 5, 'Y')
	if c := s.GetCell(5, 5); c.Rune != 'Y' || c.Color != ColorRed {
		t.Errorf("Set should keep color, got %+v", c)
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetCell(0, -1, 'A', ColorGreen)
	s.SetCell(0, 100, 'A', ColorGreen)

	if s.Get(-1, 0) != ' ' || s.Get(0, 100) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawTextColored(0, 0, "XXXXXXXXXX", ColorCyan)
	s.Clear()

	if s.Row(0) != strings.Repeat(" ", 10) {
		t.Errorf("after Clear row 0 = %q", s.Row(0))
	}
	if s.GetCell(3, 0).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1)[2:7]; got != "Hello" {
		t.Errorf("DrawText wrote %q", got)
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "♥♥x")

	if s.Get(0, 0) != '♥' || s.Get(1, 0) != '♥' || s.Get(2, 0) != 'x' {
		t.Errorf("multibyte text should occupy one cell per rune, got %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorYellow)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Error("DrawTextCentered: text not at expected position")
	}
	if s.GetCell(x, 2).Color != ColorYellow {
		t.Error("DrawTextCentered should apply color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'}, {5, 1, '┐'}, {1, 4, '└'}, {5, 4, '┘'},
	}
	for _, c := range corners {
		if s.Get(c.x, c.y) != c.r {
			t.Errorf("corner at (%d, %d) = %q, expected %q", c.x, c.y, s.Get(c.x, c.y), c.r)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != strings.Repeat(" ", 8) {
		t.Errorf("resize should start from a blank buffer, row 0 = %q", s.Row(0))
	}

	// Negative sizes collapse to empty
	s.Resize(-3, 2)
	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative width should produce empty rows, got %q", s.String())
	}
}
