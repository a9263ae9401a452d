package main

import "testing"

func newTestComposite(shapes ...Shape) *Composite {
	c := NewComposite()
	for _, s := range shapes {
		c.AddChild(s)
	}
	return c
}

func TestCompositeGeometry(t *testing.T) {
	a, b := NewBox(0, 0), NewOval(200, 200)
	c := newTestComposite(a, b)

	if got, want := c.Bounds(), (Rect{0, 0, 300, 250}); got != want {
		t.Errorf("Bounds = %v, want %v", got, want)
	}
	if got, want := c.Center(), (Point{150, 125}); got != want {
		t.Errorf("Center = %v, want %v", got, want)
	}
	if n := len(c.ConnectionPorts()); n != 12 {
		t.Errorf("ports = %d, want 12", n)
	}
	if !c.Contains(50, 25) || !c.Contains(250, 225) {
		t.Error("composite should contain points inside its children")
	}
	if c.Contains(150, 125) {
		t.Error("composite should not contain the gap between children")
	}
}

func TestCompositeEmpty(t *testing.T) {
	c := NewComposite()
	if !c.Bounds().Empty() {
		t.Errorf("empty composite bounds = %v", c.Bounds())
	}
	if _, ok := c.ClosestPort(0, 0); ok {
		t.Error("empty composite should have no closest port")
	}
}

func TestCompositeSelectionPropagates(t *testing.T) {
	a, b, o := NewBox(0, 0), NewBox(200, 0), NewOval(0, 200)
	inner := newTestComposite(a, b)
	outer := newTestComposite(inner, o)

	outer.SetSelected(true)
	for _, leaf := range []Shape{a, b, o, inner} {
		if !leaf.Selected() {
			t.Errorf("%s not selected", leaf.LabelText())
		}
	}
	outer.SetSelected(false)
	if a.Selected() {
		t.Error("deselect did not reach nested children")
	}
}

func TestCompositeMoveUpdatesLinks(t *testing.T) {
	a, b := NewBox(0, 0), NewBox(200, 0)
	c := newTestComposite(a, b)
	target := NewBox(0, 300)
	l := NewLink(a, Point{50, 50}, target, Point{50, 300}, Association)

	c.Move(10, 20)

	if got := a.Position(); got != (Point{10, 20}) {
		t.Errorf("child position = %v, want (10,20)", got)
	}
	if got := b.Position(); got != (Point{210, 20}) {
		t.Errorf("child position = %v, want (210,20)", got)
	}
	if got := l.StartPort(); got != (Point{60, 70}) {
		t.Errorf("link start = %v, want (60,70)", got)
	}
}

func TestCompositeDrawsChildrenInOrder(t *testing.T) {
	c := newTestComposite(NewBox(0, 0), NewOval(200, 0))
	s := &recordingSurface{}
	c.Draw(s, true)
	if n := s.count("fillOval"); n != 1 {
		t.Errorf("fillOval = %d, want 1", n)
	}
	// 12 handles across both children
	if n := s.count("fillRect"); n != 1+12+2 {
		t.Errorf("fillRect = %d, want 15", n)
	}
	if !c.Children()[1].Selected() {
		t.Error("drawing selected should mark children selected")
	}
}
