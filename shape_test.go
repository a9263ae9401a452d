package main

import (
	"reflect"
	"testing"
)

func TestBoxPorts(t *testing.T) {
	b := NewBox(0, 0)
	want := []Point{
		{0, 0}, {50, 0}, {100, 0},
		{0, 25}, {100, 25},
		{0, 50}, {50, 50}, {100, 50},
	}
	if got := b.ConnectionPorts(); !reflect.DeepEqual(got, want) {
		t.Errorf("ConnectionPorts = %v, want %v", got, want)
	}
}

func TestOvalPorts(t *testing.T) {
	o := NewOval(10, 20)
	want := []Point{{60, 20}, {10, 45}, {110, 45}, {60, 70}}
	if got := o.ConnectionPorts(); !reflect.DeepEqual(got, want) {
		t.Errorf("ConnectionPorts = %v, want %v", got, want)
	}
}

func TestClosestPort(t *testing.T) {
	b := NewBox(0, 0)
	tests := []struct {
		x, y int
		want Point
	}{
		{200, 0, Point{100, 0}},
		{-20, 26, Point{0, 25}},
		{48, 60, Point{50, 50}},
	}
	for _, tt := range tests {
		got, ok := b.ClosestPort(tt.x, tt.y)
		if !ok || got != tt.want {
			t.Errorf("ClosestPort(%d, %d) = %v, %v; want %v", tt.x, tt.y, got, ok, tt.want)
		}
	}

	t.Run("ties keep the first port", func(t *testing.T) {
		got, _ := closestPort([]Point{{0, 0}, {10, 0}}, 5, 0)
		if got != (Point{0, 0}) {
			t.Errorf("closestPort = %v, want first port", got)
		}
	})

	t.Run("no ports", func(t *testing.T) {
		if _, ok := closestPort(nil, 0, 0); ok {
			t.Error("closestPort with no ports should report false")
		}
	})
}

func TestBoxContains(t *testing.T) {
	b := NewBox(10, 10)
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 10, true},
		{109, 59, true},
		{110, 60, true},
		{111, 10, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestShapeDepths(t *testing.T) {
	if d := NewBox(0, 0).Depth(); d != 10 {
		t.Errorf("Box depth = %d, want 10", d)
	}
	if d := NewOval(0, 0).Depth(); d != 5 {
		t.Errorf("Oval depth = %d, want 5", d)
	}
	if d := NewComposite().Depth(); d != 0 {
		t.Errorf("Composite depth = %d, want 0", d)
	}
}

func TestShapeIDsAreUnique(t *testing.T) {
	a, b := NewBox(0, 0), NewBox(0, 0)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("IDs %q and %q should be distinct and non-empty", a.ID(), b.ID())
	}
}

func TestDrawSelectedShowsPortHandles(t *testing.T) {
	b := NewBox(0, 0)

	s := &recordingSurface{}
	b.Draw(s, false)
	// body plus label background
	if n := s.count("fillRect"); n != 2 {
		t.Errorf("unselected fillRect calls = %d, want 2", n)
	}

	s = &recordingSurface{}
	b.Draw(s, true)
	if n := s.count("fillRect"); n != 2+8 {
		t.Errorf("selected fillRect calls = %d, want 10", n)
	}
	if s.calls[0] != "color gray" {
		t.Errorf("first call = %q, want gray body", s.calls[0])
	}
}

func TestDrawLabel(t *testing.T) {
	o := NewOval(0, 0)
	o.SetLabelText("abc")
	o.SetLabelKind(LabelOval)
	o.SetLabelColor(ColorRed)

	s := &recordingSurface{}
	o.Draw(s, false)

	// text is 18 wide, line 14 high: background is 38x24 centred on (50,25)
	want := []string{
		"color gray",
		"fillOval 0,0,100,50",
		"font 12",
		"color red",
		"fillOval 31,13,38,24",
		"color black",
		"text abc",
	}
	if !reflect.DeepEqual(s.calls, want) {
		t.Errorf("calls = %v, want %v", s.calls, want)
	}
}

func TestLinkBookkeeping(t *testing.T) {
	a, b := NewBox(0, 0), NewBox(200, 0)
	l := NewLink(a, Point{100, 25}, b, Point{200, 25}, Association)
	a.AddLink(l)
	if len(a.Links()) != 1 || len(b.Links()) != 1 {
		t.Fatalf("links = %d, %d; want 1, 1", len(a.Links()), len(b.Links()))
	}
	a.RemoveLink(l)
	if len(a.Links()) != 0 {
		t.Errorf("links after remove = %d, want 0", len(a.Links()))
	}
}
