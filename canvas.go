package main

import (
	"fmt"
	"log"
	"sort"
)

type Mode int

const (
	ModeNone Mode = iota
	ModeDrawRect
	ModeDrawOval
	ModeSelect
	ModeLink
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "NONE"
	case ModeDrawRect:
		return "RECT"
	case ModeDrawOval:
		return "OVAL"
	case ModeSelect:
		return "SELECT"
	case ModeLink:
		return "LINK"
	default:
		return "UNKNOWN"
	}
}

// Canvas owns every top-level shape and every link, and turns pointer
// gestures into edits. It must only be touched from one goroutine.
type Canvas struct {
	shapes []Shape // sorted by descending depth, ties in insertion order
	links  []*Link

	mode     Mode
	linkKind LinkKind
	selected Shape

	// select gesture
	dragStart    *Point
	dragging     bool
	marqueeStart *Point
	marquee      *Rect

	// link gesture
	linkStart     Shape
	linkStartPort Point

	boxCount  int
	ovalCount int
}

func NewCanvas() *Canvas {
	return &Canvas{
		shapes:   make([]Shape, 0),
		links:    make([]*Link, 0),
		mode:     ModeNone,
		linkKind: Association,
	}
}

func (c *Canvas) Shapes() []Shape { return c.shapes }
func (c *Canvas) Links() []*Link  { return c.links }

func (c *Canvas) Mode() Mode { return c.mode }

// SetMode switches tools and drops any selection or gesture in flight.
func (c *Canvas) SetMode(m Mode) {
	c.mode = m
	c.clearSelection()
	c.resetGesture()
	log.Printf("mode %s", m)
}

func (c *Canvas) LinkKind() LinkKind     { return c.linkKind }
func (c *Canvas) SetLinkKind(k LinkKind) { c.linkKind = k }

func (c *Canvas) SelectedShape() Shape { return c.selected }

// Marquee returns the rubber-band rectangle while one is being dragged.
func (c *Canvas) Marquee() (Rect, bool) {
	if c.marquee == nil {
		return Rect{}, false
	}
	return *c.marquee, true
}

// PendingLink returns the start of a link gesture in progress.
func (c *Canvas) PendingLink() (Shape, Point, bool) {
	if c.linkStart == nil {
		return nil, Point{}, false
	}
	return c.linkStart, c.linkStartPort, true
}

// AddShape clears the selection and inserts s in depth order.
func (c *Canvas) AddShape(s Shape) {
	c.clearSelection()
	c.shapes = append(c.shapes, s)
	c.sortShapes()
}

// DeleteShape removes a top-level shape together with every link that
// touches it.
func (c *Canvas) DeleteShape(s Shape) bool {
	idx := c.indexOf(s)
	if idx < 0 {
		return false
	}
	c.shapes = append(c.shapes[:idx], c.shapes[idx+1:]...)

	kept := c.links[:0]
	for _, l := range c.links {
		if touches(l, s) {
			detach(l)
			continue
		}
		kept = append(kept, l)
	}
	c.links = kept

	if c.selected == s {
		c.selected = nil
	}
	if c.linkStart == s {
		c.linkStart = nil
	}
	log.Printf("deleted shape %s", s.ID())
	return true
}

// touches reports whether l is attached to s or to anything inside s.
func touches(l *Link, s Shape) bool {
	if l.Start() == s || l.End() == s {
		return true
	}
	if comp, ok := s.(*Composite); ok {
		for _, child := range comp.Children() {
			if touches(l, child) {
				return true
			}
		}
	}
	return false
}

func detach(l *Link) {
	if l.Start() != nil {
		l.Start().RemoveLink(l)
	}
	if l.End() != nil {
		l.End().RemoveLink(l)
	}
}

// Press starts a gesture at (x, y).
func (c *Canvas) Press(x, y int) {
	c.dragging = false
	p := Point{x, y}

	switch c.mode {
	case ModeDrawRect:
		c.boxCount++
		b := NewBox(x, y)
		b.SetLabelText(fmt.Sprintf("Rect%d", c.boxCount))
		c.AddShape(b)
	case ModeDrawOval:
		c.ovalCount++
		o := NewOval(x, y)
		o.SetLabelText(fmt.Sprintf("Oval%d", c.ovalCount))
		c.AddShape(o)
	case ModeSelect:
		c.selected = nil
		c.dragStart = nil
		if hit := c.topShapeAt(x, y); hit != nil {
			c.clearSelection()
			c.selected = hit
			hit.SetSelected(true)
			c.dragStart = &p
			return
		}
		c.clearSelection()
		c.marqueeStart = &p
		c.marquee = &Rect{X: x, Y: y}
	case ModeLink:
		for _, s := range c.shapes {
			if s.Contains(x, y) {
				if port, ok := s.ClosestPort(x, y); ok {
					c.linkStart = s
					c.linkStartPort = port
				}
				break
			}
		}
	}
}

// Drag continues a gesture to (x, y).
func (c *Canvas) Drag(x, y int) {
	c.dragging = true
	if c.mode != ModeSelect {
		return
	}
	switch {
	case c.selected != nil && c.dragStart != nil:
		dx := x - c.dragStart.X
		dy := y - c.dragStart.Y
		c.selected.Move(dx, dy)
		c.dragStart = &Point{x, y}
		c.updateLinksFor(c.selected)
	case c.marquee != nil && c.marqueeStart != nil:
		r := spanRect(*c.marqueeStart, Point{x, y})
		c.marquee = &r
	}
}

// Release finishes a gesture at (x, y).
func (c *Canvas) Release(x, y int) {
	defer func() { c.dragging = false }()

	switch c.mode {
	case ModeSelect:
		if c.marquee != nil {
			for _, s := range c.shapes {
				s.SetSelected(c.marquee.Intersects(s.Bounds()))
			}
			c.marquee = nil
			c.marqueeStart = nil
		} else if c.dragging && c.selected != nil {
			c.updateLinksFor(c.selected)
		}
	case ModeLink:
		if c.linkStart == nil {
			return
		}
		for _, s := range c.shapes {
			if s == c.linkStart || !s.Contains(x, y) {
				continue
			}
			if port, ok := s.ClosestPort(x, y); ok {
				l := NewLink(c.linkStart, c.linkStartPort, s, port, c.linkKind)
				c.links = append(c.links, l)
				log.Printf("linked %s -> %s (%s)", c.linkStart.ID(), s.ID(), c.linkKind)
			}
			break
		}
		c.linkStart = nil
		c.linkStartPort = Point{}
	}
}

// Group replaces every selected top-level shape with one Composite holding
// them, and selects it. It does nothing unless at least two are selected.
func (c *Canvas) Group() bool {
	var picked []Shape
	for _, s := range c.shapes {
		if s.Selected() {
			picked = append(picked, s)
		}
	}
	if len(picked) <= 1 {
		return false
	}

	comp := NewComposite()
	for _, s := range picked {
		comp.AddChild(s)
		idx := c.indexOf(s)
		c.shapes = append(c.shapes[:idx], c.shapes[idx+1:]...)
	}
	c.shapes = append(c.shapes, comp)
	c.clearSelection()
	comp.SetSelected(true)
	c.selected = comp
	c.sortShapes()
	log.Printf("grouped %d shapes into %s", len(picked), comp.ID())
	return true
}

// Ungroup dissolves the selected Composite. Links that ended on the
// composite are moved to the child whose centre is nearest the link's port,
// then snapped to a real port of that child.
func (c *Canvas) Ungroup() bool {
	comp, ok := c.selected.(*Composite)
	if !ok {
		return false
	}
	children := append([]Shape(nil), comp.Children()...)

	for _, l := range c.links {
		if l.Start() != comp && l.End() != comp {
			continue
		}
		comp.RemoveLink(l)
		if l.Start() == comp {
			if child := nearestByCenter(children, l.StartPort()); child != nil {
				l.SetStart(child)
				child.AddLink(l)
			}
		}
		if l.End() == comp {
			if child := nearestByCenter(children, l.EndPort()); child != nil {
				l.SetEnd(child)
				child.AddLink(l)
			}
		}
		l.UpdatePorts()
	}

	if idx := c.indexOf(comp); idx >= 0 {
		c.shapes = append(c.shapes[:idx], c.shapes[idx+1:]...)
	}
	c.shapes = append(c.shapes, children...)
	c.clearSelection()
	c.sortShapes()
	log.Printf("ungrouped %s into %d shapes", comp.ID(), len(children))
	return true
}

func nearestByCenter(shapes []Shape, p Point) Shape {
	var best Shape
	bestDist := 0.0
	for _, s := range shapes {
		d := s.Center().DistanceTo(p)
		if best == nil || d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best
}

// Bounds covers every shape and link port on the canvas.
func (c *Canvas) Bounds() (Rect, bool) {
	var bounds Rect
	found := false
	grow := func(r Rect) {
		if !found {
			bounds = r
			found = true
			return
		}
		bounds = bounds.Union(r)
	}
	for _, s := range c.shapes {
		if b := s.Bounds(); !b.Empty() {
			grow(b)
		}
	}
	for _, l := range c.links {
		grow(Rect{X: l.StartPort().X, Y: l.StartPort().Y})
		grow(Rect{X: l.EndPort().X, Y: l.EndPort().Y})
	}
	return bounds, found
}

// Render paints shapes in list order, then links, then the marquee.
func (c *Canvas) Render(s Surface) {
	for _, shape := range c.shapes {
		shape.Draw(s, shape.Selected())
	}
	for _, l := range c.links {
		l.Draw(s)
	}
	if c.marquee != nil {
		s.SetColor(ColorBlue)
		s.SetStroke(true, 1)
		s.DrawRect(float64(c.marquee.X), float64(c.marquee.Y), float64(c.marquee.Width), float64(c.marquee.Height))
		s.SetStroke(false, 1)
	}
}

// topShapeAt hit tests from the end of the paint order, i.e. the shape
// drawn last wins.
func (c *Canvas) topShapeAt(x, y int) Shape {
	for i := len(c.shapes) - 1; i >= 0; i-- {
		if c.shapes[i].Contains(x, y) {
			return c.shapes[i]
		}
	}
	return nil
}

// updateLinksFor re-snaps links attached to s and, for composites, to every
// descendant.
func (c *Canvas) updateLinksFor(s Shape) {
	for _, l := range c.links {
		if l.Start() == s || l.End() == s {
			l.UpdatePorts()
		}
	}
	if comp, ok := s.(*Composite); ok {
		for _, child := range comp.Children() {
			c.updateLinksFor(child)
		}
	}
}

func (c *Canvas) clearSelection() {
	for _, s := range c.shapes {
		s.SetSelected(false)
	}
	c.selected = nil
	c.linkStart = nil
	c.linkStartPort = Point{}
}

func (c *Canvas) resetGesture() {
	c.dragStart = nil
	c.dragging = false
	c.marquee = nil
	c.marqueeStart = nil
}

func (c *Canvas) sortShapes() {
	sort.SliceStable(c.shapes, func(i, j int) bool {
		return c.shapes[i].Depth() > c.shapes[j].Depth()
	})
}

func (c *Canvas) indexOf(s Shape) int {
	for i, shape := range c.shapes {
		if shape == s {
			return i
		}
	}
	return -1
}
