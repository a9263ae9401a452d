package main

import (
	"fmt"
	"strings"
)

// recordingSurface logs every draw call so tests can assert on what a
// shape or link painted.
type recordingSurface struct {
	calls []string
	color Color
}

func (r *recordingSurface) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recordingSurface) SetColor(c Color)                     { r.color = c; r.record("color %s", c) }
func (r *recordingSurface) SetStroke(dashed bool, width float64) { r.record("stroke %v", dashed) }
func (r *recordingSurface) SetFontSize(size int)                 { r.record("font %d", size) }

func (r *recordingSurface) FillRect(x, y, w, h float64) { r.record("fillRect %g,%g,%g,%g", x, y, w, h) }
func (r *recordingSurface) DrawRect(x, y, w, h float64) { r.record("drawRect %g,%g,%g,%g", x, y, w, h) }
func (r *recordingSurface) FillOval(x, y, w, h float64) { r.record("fillOval %g,%g,%g,%g", x, y, w, h) }
func (r *recordingSurface) DrawOval(x, y, w, h float64) { r.record("drawOval %g,%g,%g,%g", x, y, w, h) }

func (r *recordingSurface) DrawLine(x1, y1, x2, y2 float64) {
	r.record("line %g,%g,%g,%g", x1, y1, x2, y2)
}

func (r *recordingSurface) DrawPolygon(points []FPoint) { r.record("polygon %d", len(points)) }

func (r *recordingSurface) DrawString(s string, x, y float64) { r.record("text %s", s) }

func (r *recordingSurface) StringWidth(s string) float64 { return float64(len(s)) * 6 }
func (r *recordingSurface) LineHeight() float64          { return 14 }
func (r *recordingSurface) Ascent() float64              { return 11 }

func (r *recordingSurface) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}
