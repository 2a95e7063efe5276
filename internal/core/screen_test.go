package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'A', ColorShip)
	c := s.GetCell(5, 5)
	if c.Rune != 'A' || c.Color != ColorShip {
		t.Errorf("GetCell(5, 5) = %+v, expected 'A' in ship color", c)
	}

	s.Set(-1, 0, 'X')
	s.Set(100, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(0, 100, 'X')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return the default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), '#', ColorRed)
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != blankCell {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Score", ColorHUD)

	for i, ch := range "Score" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorHUD {
			t.Errorf("DrawText: expected %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	s.DrawText(18, 0, "Level", ColorHUD)
	if s.Get(18, 0) != 'L' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "★★", ColorBanner)

	x := (20 - 2) / 2
	if s.Get(x, 2) != '★' || s.Get(x+1, 2) != '★' {
		t.Errorf("DrawTextCentered should count runes, row = %q", s.Row(2))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorTankEnemy)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), '.', ColorStars)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorHUD)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	if s.Get(3, 2) != ' ' {
		t.Errorf("DrawBox should clear its inside, got %q", s.Get(3, 2))
	}
	if s.Get(0, 0) != '.' {
		t.Error("DrawBox should not touch the outside")
	}
}

func TestScreenDrawBar(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawBar(0, 0, 6, 1, 3, ColorGreen, ColorRed)

	if got := s.Row(0); !strings.HasPrefix(got, "▬▬▭▭▭▭") {
		t.Errorf("DrawBar row = %q, expected two filled segments", got)
	}
	if s.GetCell(0, 0).Color != ColorGreen || s.GetCell(5, 0).Color != ColorRed {
		t.Error("DrawBar colors are wrong")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.Row(0) != strings.Repeat(" ", 8) {
		t.Errorf("Resize should clear the buffer, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 8) {
		t.Error("Out of bounds row should be spaces")
	}
}
