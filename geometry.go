package main

import "math"

type Point struct {
	X, Y int
}

func (p Point) Add(dx, dy int) Point {
	return Point{p.X + dx, p.Y + dy}
}

func (p Point) Distance(x, y int) float64 {
	return math.Hypot(float64(p.X-x), float64(p.Y-y))
}

func (p Point) DistanceTo(q Point) float64 {
	return p.Distance(q.X, q.Y)
}

func (p Point) Float() FPoint {
	return FPoint{float64(p.X), float64(p.Y)}
}

// FPoint is a point in drawing space. Arrowheads are computed here so the
// rotated offsets are not truncated before they reach a surface.
type FPoint struct {
	X, Y float64
}

func (p FPoint) Distance(q FPoint) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) Max() Point {
	return Point{r.X + r.Width, r.Y + r.Height}
}

func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains treats the right and bottom edges as inside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether the interiors overlap. Rectangles without area
// never intersect anything, so a marquee that was never dragged selects nothing.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

func (r Rect) Union(o Rect) Rect {
	minX := min(r.X, o.X)
	minY := min(r.Y, o.Y)
	maxX := max(r.X+r.Width, o.X+o.Width)
	maxY := max(r.Y+r.Height, o.Y+o.Height)
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

func (r Rect) Inset(d int) Rect {
	return Rect{r.X + d, r.Y + d, r.Width - 2*d, r.Height - 2*d}
}

// spanRect returns the rectangle between two corners with non-negative size.
func spanRect(a, b Point) Rect {
	return Rect{
		X:      min(a.X, b.X),
		Y:      min(a.Y, b.Y),
		Width:  abs(a.X - b.X),
		Height: abs(a.Y - b.Y),
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
