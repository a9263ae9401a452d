package main

import (
	"math"

	"github.com/google/uuid"
)

// Shape is anything that can sit on a canvas: a Box, an Oval or a Composite.
type Shape interface {
	ID() string
	Depth() int
	Selected() bool
	SetSelected(selected bool)

	Draw(s Surface, selected bool)
	Contains(x, y int) bool
	ConnectionPorts() []Point
	ClosestPort(x, y int) (Point, bool)
	Move(dx, dy int)

	Bounds() Rect
	Width() int
	Height() int
	Center() Point

	Links() []*Link
	AddLink(l *Link)
	RemoveLink(l *Link)

	LabelText() string
	SetLabelText(text string)
	LabelColor() Color
	SetLabelColor(c Color)
	FontSize() int
	SetFontSize(size int)
	LabelKind() LabelKind
	SetLabelKind(k LabelKind)
}

type LabelKind int

const (
	LabelRect LabelKind = iota
	LabelOval
)

func (k LabelKind) String() string {
	if k == LabelOval {
		return "Oval"
	}
	return "Rect"
}

const (
	defaultFontSize = 12
	portHandleSize  = 10
	labelPadX       = 20
	labelPadY       = 10
)

type label struct {
	text     string
	bg       Color
	fontSize int
	kind     LabelKind
}

// shapeBase carries the state every shape kind shares. Links are back
// references only; the Canvas owns them.
type shapeBase struct {
	id       string
	pos      Point
	depth    int
	selected bool
	label    label
	links    []*Link
}

func newShapeBase(x, y, depth int, text string) shapeBase {
	return shapeBase{
		id:    uuid.NewString(),
		pos:   Point{x, y},
		depth: depth,
		label: label{
			text:     text,
			bg:       ColorYellow,
			fontSize: defaultFontSize,
			kind:     LabelRect,
		},
	}
}

func (b *shapeBase) ID() string                { return b.id }
func (b *shapeBase) Depth() int                { return b.depth }
func (b *shapeBase) Position() Point           { return b.pos }
func (b *shapeBase) Selected() bool            { return b.selected }
func (b *shapeBase) SetSelected(selected bool) { b.selected = selected }

func (b *shapeBase) LabelText() string        { return b.label.text }
func (b *shapeBase) SetLabelText(text string) { b.label.text = text }
func (b *shapeBase) LabelColor() Color        { return b.label.bg }
func (b *shapeBase) SetLabelColor(c Color)    { b.label.bg = c }
func (b *shapeBase) FontSize() int            { return b.label.fontSize }
func (b *shapeBase) SetFontSize(size int)     { b.label.fontSize = size }
func (b *shapeBase) LabelKind() LabelKind     { return b.label.kind }
func (b *shapeBase) SetLabelKind(k LabelKind) { b.label.kind = k }

func (b *shapeBase) Links() []*Link {
	return b.links
}

func (b *shapeBase) AddLink(l *Link) {
	for _, existing := range b.links {
		if existing == l {
			return
		}
	}
	b.links = append(b.links, l)
}

func (b *shapeBase) RemoveLink(l *Link) {
	for i, existing := range b.links {
		if existing == l {
			b.links = append(b.links[:i], b.links[i+1:]...)
			return
		}
	}
}

// Move translates the anchor and re-snaps every attached link.
func (b *shapeBase) Move(dx, dy int) {
	b.pos = b.pos.Add(dx, dy)
	for _, l := range b.links {
		l.UpdatePorts()
	}
}

// closestPort scans ports in order; the first of equally distant ports wins.
func closestPort(ports []Point, x, y int) (Point, bool) {
	if len(ports) == 0 {
		return Point{}, false
	}
	best := ports[0]
	bestDist := math.MaxFloat64
	for _, p := range ports {
		if d := p.Distance(x, y); d < bestDist {
			bestDist = d
			best = p
		}
	}
	return best, true
}

func drawPortHandles(s Surface, ports []Point) {
	s.SetColor(ColorBlack)
	half := float64(portHandleSize) / 2
	for _, p := range ports {
		s.FillRect(float64(p.X)-half, float64(p.Y)-half, portHandleSize, portHandleSize)
	}
}

// drawLabel paints the label background centred on center, sized to the text
// plus padding, with the text centred inside it.
func drawLabel(s Surface, l label, center Point) {
	if l.text == "" {
		return
	}
	s.SetFontSize(l.fontSize)
	textW := s.StringWidth(l.text)
	textH := s.LineHeight()
	w := textW + labelPadX
	h := textH + labelPadY
	x := float64(center.X) - w/2
	y := float64(center.Y) - h/2

	s.SetColor(l.bg)
	if l.kind == LabelOval {
		s.FillOval(x, y, w, h)
	} else {
		s.FillRect(x, y, w, h)
	}

	s.SetColor(ColorBlack)
	s.DrawString(l.text, x+(w-textW)/2, y+(h-textH)/2+s.Ascent())
}
