package main

const (
	shapeWidth  = 100
	shapeHeight = 50

	boxDepth  = 10
	ovalDepth = 5
)

// Box is a fixed-size rectangle with eight ports: corners and edge midpoints.
type Box struct {
	shapeBase
}

func NewBox(x, y int) *Box {
	return &Box{shapeBase: newShapeBase(x, y, boxDepth, "Rect1")}
}

func (b *Box) Width() int  { return shapeWidth }
func (b *Box) Height() int { return shapeHeight }

func (b *Box) Bounds() Rect {
	return Rect{b.pos.X, b.pos.Y, shapeWidth, shapeHeight}
}

func (b *Box) Center() Point {
	return b.Bounds().Center()
}

func (b *Box) Contains(x, y int) bool {
	return b.Bounds().Contains(x, y)
}

func (b *Box) ConnectionPorts() []Point {
	x, y := b.pos.X, b.pos.Y
	return []Point{
		{x, y},
		{x + shapeWidth/2, y},
		{x + shapeWidth, y},
		{x, y + shapeHeight/2},
		{x + shapeWidth, y + shapeHeight/2},
		{x, y + shapeHeight},
		{x + shapeWidth/2, y + shapeHeight},
		{x + shapeWidth, y + shapeHeight},
	}
}

func (b *Box) ClosestPort(x, y int) (Point, bool) {
	return closestPort(b.ConnectionPorts(), x, y)
}

func (b *Box) Draw(s Surface, selected bool) {
	s.SetColor(ColorGray)
	s.FillRect(float64(b.pos.X), float64(b.pos.Y), shapeWidth, shapeHeight)
	if selected {
		drawPortHandles(s, b.ConnectionPorts())
	}
	drawLabel(s, b.label, b.Center())
}

// Oval is a fixed-size ellipse with four ports at the midpoints of its
// bounding box. Hit testing uses the bounding box, not the ellipse.
type Oval struct {
	shapeBase
}

func NewOval(x, y int) *Oval {
	return &Oval{shapeBase: newShapeBase(x, y, ovalDepth, "Oval1")}
}

func (o *Oval) Width() int  { return shapeWidth }
func (o *Oval) Height() int { return shapeHeight }

func (o *Oval) Bounds() Rect {
	return Rect{o.pos.X, o.pos.Y, shapeWidth, shapeHeight}
}

func (o *Oval) Center() Point {
	return o.Bounds().Center()
}

func (o *Oval) Contains(x, y int) bool {
	return o.Bounds().Contains(x, y)
}

func (o *Oval) ConnectionPorts() []Point {
	x, y := o.pos.X, o.pos.Y
	return []Point{
		{x + shapeWidth/2, y},
		{x, y + shapeHeight/2},
		{x + shapeWidth, y + shapeHeight/2},
		{x + shapeWidth/2, y + shapeHeight},
	}
}

func (o *Oval) ClosestPort(x, y int) (Point, bool) {
	return closestPort(o.ConnectionPorts(), x, y)
}

func (o *Oval) Draw(s Surface, selected bool) {
	s.SetColor(ColorGray)
	s.FillOval(float64(o.pos.X), float64(o.pos.Y), shapeWidth, shapeHeight)
	if selected {
		drawPortHandles(s, o.ConnectionPorts())
	}
	drawLabel(s, o.label, o.Center())
}
