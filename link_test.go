package main

import (
	"math"
	"testing"
)

func TestParseLinkKind(t *testing.T) {
	tests := []struct {
		input string
		want  LinkKind
		ok    bool
	}{
		{"association", Association, true},
		{"Generalization", Generalization, true},
		{"composition", Composition, true},
		{"dependency", Association, false},
	}
	for _, tt := range tests {
		got, ok := parseLinkKind(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseLinkKind(%q) = %s, %v; want %s, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestArrowHeadGeometry(t *testing.T) {
	start := FPoint{0, 0}
	end := FPoint{100, 40}
	bearing := math.Atan2(end.Y-start.Y, end.X-start.X)

	for _, kind := range []LinkKind{Association, Generalization, Composition} {
		t.Run(kind.String(), func(t *testing.T) {
			head := arrowHead(kind, start, end)
			if head[0] != end {
				t.Fatalf("head[0] = %v, want end %v", head[0], end)
			}
			left, right := head[1], head[len(head)-1]
			for _, p := range []FPoint{left, right} {
				if d := p.Distance(end); !almostEqual(d, arrowSize) {
					t.Errorf("barb length = %v, want %v", d, arrowSize)
				}
			}
			back := bearing + math.Pi
			leftAngle := math.Atan2(left.Y-end.Y, left.X-end.X)
			rightAngle := math.Atan2(right.Y-end.Y, right.X-end.X)
			if !almostEqual(math.Remainder(leftAngle-back-arrowAngle, 2*math.Pi), 0) {
				t.Errorf("left barb angle off by %v", leftAngle-back)
			}
			if !almostEqual(math.Remainder(rightAngle-back+arrowAngle, 2*math.Pi), 0) {
				t.Errorf("right barb angle off by %v", rightAngle-back)
			}
		})
	}

	t.Run("composition tail", func(t *testing.T) {
		head := arrowHead(Composition, start, end)
		if len(head) != 4 {
			t.Fatalf("points = %d, want 4", len(head))
		}
		tail := head[2]
		if d := tail.Distance(head[1]); !almostEqual(d, arrowSize) {
			t.Errorf("tail offset = %v, want %v", d, arrowSize)
		}
	})
}

func TestLinkDraw(t *testing.T) {
	a, b := NewBox(0, 0), NewBox(200, 0)
	tests := []struct {
		kind     LinkKind
		lines    int
		polygons int
	}{
		{Association, 3, 0},
		{Generalization, 1, 1},
		{Composition, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			l := NewLink(a, Point{100, 25}, b, Point{200, 25}, tt.kind)
			s := &recordingSurface{}
			l.Draw(s)
			if n := s.count("line"); n != tt.lines {
				t.Errorf("lines = %d, want %d", n, tt.lines)
			}
			if n := s.count("polygon"); n != tt.polygons {
				t.Errorf("polygons = %d, want %d", n, tt.polygons)
			}
			if s.calls[1] != "line 100,25,200,25" {
				t.Errorf("shaft = %q", s.calls[1])
			}
		})
	}
}

func TestUpdatePortsFollowsShape(t *testing.T) {
	a, b := NewBox(0, 0), NewBox(300, 0)
	l := NewLink(a, Point{100, 25}, b, Point{300, 25}, Association)

	b.Move(0, 100)
	// nearest port to the old position, not the same side
	if got := l.EndPort(); got != (Point{300, 100}) {
		t.Errorf("end port = %v, want (300,100)", got)
	}
	if got := l.StartPort(); got != (Point{100, 25}) {
		t.Errorf("start port = %v, want unchanged (100,25)", got)
	}
}
