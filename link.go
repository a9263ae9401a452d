package main

import "math"

type LinkKind int

const (
	Association LinkKind = iota
	Generalization
	Composition
)

func (k LinkKind) String() string {
	switch k {
	case Association:
		return "Association"
	case Generalization:
		return "Generalization"
	case Composition:
		return "Composition"
	default:
		return "Unknown"
	}
}

func parseLinkKind(s string) (LinkKind, bool) {
	switch s {
	case "association", "Association":
		return Association, true
	case "generalization", "Generalization":
		return Generalization, true
	case "composition", "Composition":
		return Composition, true
	}
	return Association, false
}

const (
	arrowSize  = 10.0
	arrowAngle = math.Pi / 6
)

// Link connects a port on one shape to a port on another. Ports are cached
// coordinates; UpdatePorts re-derives them from the current shape geometry.
type Link struct {
	start     Shape
	startPort Point
	end       Shape
	endPort   Point
	kind      LinkKind
}

// NewLink binds both endpoints and registers the link on each shape.
func NewLink(start Shape, startPort Point, end Shape, endPort Point, kind LinkKind) *Link {
	l := &Link{
		start:     start,
		startPort: startPort,
		end:       end,
		endPort:   endPort,
		kind:      kind,
	}
	if start != nil {
		start.AddLink(l)
	}
	if end != nil {
		end.AddLink(l)
	}
	return l
}

func (l *Link) Start() Shape     { return l.start }
func (l *Link) End() Shape       { return l.end }
func (l *Link) StartPort() Point { return l.startPort }
func (l *Link) EndPort() Point   { return l.endPort }
func (l *Link) Kind() LinkKind   { return l.kind }
func (l *Link) SetStart(s Shape) { l.start = s }
func (l *Link) SetEnd(s Shape)   { l.end = s }

// UpdatePorts snaps each endpoint to the port of its shape nearest the
// endpoint's previous position.
func (l *Link) UpdatePorts() {
	if l.start != nil {
		if p, ok := l.start.ClosestPort(l.startPort.X, l.startPort.Y); ok {
			l.startPort = p
		}
	}
	if l.end != nil {
		if p, ok := l.end.ClosestPort(l.endPort.X, l.endPort.Y); ok {
			l.endPort = p
		}
	}
}

func (l *Link) Draw(s Surface) {
	s.SetColor(ColorBlack)
	start := l.startPort.Float()
	end := l.endPort.Float()
	s.DrawLine(start.X, start.Y, end.X, end.Y)

	head := arrowHead(l.kind, start, end)
	switch l.kind {
	case Association:
		for _, p := range head[1:] {
			s.DrawLine(end.X, end.Y, p.X, p.Y)
		}
	default:
		s.DrawPolygon(head)
	}
}

// arrowHead returns the outline of the marker at end, pointing back toward
// start. The first point is always end itself.
//
//	Association:    end, left, right (two open strokes from end)
//	Generalization: end, left, right (hollow triangle)
//	Composition:    end, left, tail, right (diamond)
func arrowHead(kind LinkKind, start, end FPoint) []FPoint {
	bearing := math.Atan2(end.Y-start.Y, end.X-start.X)
	left := FPoint{
		X: end.X - arrowSize*math.Cos(bearing+arrowAngle),
		Y: end.Y - arrowSize*math.Sin(bearing+arrowAngle),
	}
	right := FPoint{
		X: end.X - arrowSize*math.Cos(bearing-arrowAngle),
		Y: end.Y - arrowSize*math.Sin(bearing-arrowAngle),
	}
	if kind == Composition {
		tail := FPoint{
			X: left.X - arrowSize*math.Cos(bearing),
			Y: left.Y - arrowSize*math.Sin(bearing),
		}
		return []FPoint{end, left, tail, right}
	}
	return []FPoint{end, left, right}
}
