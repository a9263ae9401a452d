package main

import (
	"strings"
	"testing"
)

func TestTermSurfaceDrawRect(t *testing.T) {
	s := newTermSurface(6, 4, 10, 10, 0, 0)
	s.DrawRect(0, 0, 40, 30)
	want := []string{
		"┌──┐  ",
		"│  │  ",
		"└──┘  ",
		"      ",
	}
	got := s.Plain()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTermSurfacePan(t *testing.T) {
	s := newTermSurface(4, 2, 10, 10, 2, 1)
	s.DrawString("ab", 20, 20)
	if got := s.Plain()[0]; got != "ab  " {
		t.Errorf("row 0 = %q, want %q", got, "ab  ")
	}
	if x, y := s.toWorld(0, 0); x != 25 || y != 15 {
		t.Errorf("toWorld(0,0) = %v,%v; want 25,15", x, y)
	}
}

func TestTermSurfaceLines(t *testing.T) {
	s := newTermSurface(3, 1, 10, 10, 0, 0)
	s.DrawLine(0, 5, 29, 5)
	if got := s.Plain()[0]; got != "───" {
		t.Errorf("line = %q", got)
	}

	s = newTermSurface(3, 3, 10, 10, 0, 0)
	s.DrawLine(5, 0, 5, 29)
	for i, row := range s.Plain() {
		if !strings.HasPrefix(row, "│") {
			t.Errorf("row %d = %q, want vertical stroke", i, row)
		}
	}
}

func TestTermSurfaceWideRunes(t *testing.T) {
	s := newTermSurface(4, 1, 10, 10, 0, 0)
	s.DrawString("日x", 0, 10)
	if got := s.Plain()[0]; got != "日x " {
		t.Errorf("row = %q, want %q", got, "日x ")
	}
}

func TestTermSurfaceRendersCanvas(t *testing.T) {
	c := NewCanvas()
	c.SetMode(ModeDrawRect)
	click(c, 0, 0)

	s := newTermSurface(30, 8, 5, 10, 0, 0)
	c.Render(s)
	plain := strings.Join(s.Plain(), "\n")
	if !strings.Contains(plain, "Rect1") {
		t.Errorf("label missing from render:\n%s", plain)
	}
	if len(s.Lines()) != 8 {
		t.Errorf("Lines = %d rows, want 8", len(s.Lines()))
	}
}
