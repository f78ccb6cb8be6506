package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3,2) = %q, want '#'", got)
	}

	// Unset cells are spaces
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0,0) = %q, want space", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, '@', ColorBrightYellow)
	cell := s.GetCell(1, 1)
	if cell.Rune != '@' {
		t.Errorf("GetCell rune = %q, want '@'", cell.Rune)
	}
	if cell.Color != ColorBrightYellow {
		t.Errorf("GetCell color = %d, want %d", cell.Color, ColorBrightYellow)
	}
}

func TestScreenOutOfBoundsIgnored(t *testing.T) {
	s := NewScreen(10, 5)

	// None of these should panic or change anything
	s.Set(-1, 0, '#')
	s.Set(0, -1, '#')
	s.Set(10, 0, '#')
	s.Set(0, 5, '#')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
	if !strings.Contains(s.String(), strings.Repeat(" ", 10)) {
		t.Error("screen should still be blank")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')

	s.Resize(20, 10)
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("after grow, Get(2,2) = %q, want 'A'", got)
	}
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("size = %dx%d, want 20x10", s.Width(), s.Height())
	}

	s.Resize(3, 3)
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("after shrink, Get(2,2) = %q, want 'A'", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if row := s.Row(1); row != "  hi      " {
		t.Errorf("Row(1) = %q", row)
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "long")
	if row := s.Row(0); row != "        lo" {
		t.Errorf("Row(0) = %q", row)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 5, 3))

	corners := []struct {
		x, y int
		want rune
	}{
		{0, 0, '┌'},
		{4, 0, '┐'},
		{0, 2, '└'},
		{4, 2, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("Get(%d,%d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}

	if got := s.Get(2, 0); got != '─' {
		t.Errorf("top edge = %q, want '─'", got)
	}
	if got := s.Get(0, 1); got != '│' {
		t.Errorf("left edge = %q, want '│'", got)
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
}
