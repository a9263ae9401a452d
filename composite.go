package main

const compositeDepth = 0

// Composite groups shapes and behaves as one. It has no geometry of its own:
// bounds, ports, hit testing, drawing and moving all recurse into children,
// so a Composite nested in a Composite works the same way.
type Composite struct {
	shapeBase
	children []Shape
}

func NewComposite() *Composite {
	return &Composite{shapeBase: newShapeBase(0, 0, compositeDepth, "")}
}

func (c *Composite) Children() []Shape {
	return c.children
}

func (c *Composite) AddChild(s Shape) {
	c.children = append(c.children, s)
}

func (c *Composite) RemoveChild(s Shape) {
	for i, child := range c.children {
		if child == s {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

func (c *Composite) SetSelected(selected bool) {
	c.selected = selected
	for _, child := range c.children {
		child.SetSelected(selected)
	}
}

func (c *Composite) Draw(s Surface, selected bool) {
	c.SetSelected(selected)
	for _, child := range c.children {
		child.Draw(s, selected)
	}
}

func (c *Composite) Contains(x, y int) bool {
	for _, child := range c.children {
		if child.Contains(x, y) {
			return true
		}
	}
	return false
}

func (c *Composite) ConnectionPorts() []Point {
	var ports []Point
	for _, child := range c.children {
		ports = append(ports, child.ConnectionPorts()...)
	}
	return ports
}

func (c *Composite) ClosestPort(x, y int) (Point, bool) {
	return closestPort(c.ConnectionPorts(), x, y)
}

func (c *Composite) Bounds() Rect {
	if len(c.children) == 0 {
		return Rect{}
	}
	bounds := c.children[0].Bounds()
	for _, child := range c.children[1:] {
		bounds = bounds.Union(child.Bounds())
	}
	return bounds
}

func (c *Composite) Width() int  { return c.Bounds().Width }
func (c *Composite) Height() int { return c.Bounds().Height }

// Center is taken from the aggregated bounds since a composite's own
// position is always zero.
func (c *Composite) Center() Point {
	return c.Bounds().Center()
}

func (c *Composite) Move(dx, dy int) {
	for _, child := range c.children {
		child.Move(dx, dy)
		for _, l := range child.Links() {
			l.UpdatePorts()
		}
	}
	for _, l := range c.links {
		l.UpdatePorts()
	}
}
