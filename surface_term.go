package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	r     rune
	fg    Color
	bg    Color
	hasFg bool
	hasBg bool
}

// termSurface rasterises diagram units into a grid of terminal cells. One
// cell covers cellW x cellH units; panX/panY are in cells.
type termSurface struct {
	width  int
	height int
	cellW  float64
	cellH  float64
	panX   int
	panY   int
	cells  [][]cell

	color  Color
	dashed bool
}

func newTermSurface(width, height int, cellW, cellH float64, panX, panY int) *termSurface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	cells := make([][]cell, height)
	for i := range cells {
		cells[i] = make([]cell, width)
		for j := range cells[i] {
			cells[i][j].r = ' '
		}
	}
	return &termSurface{
		width:  width,
		height: height,
		cellW:  cellW,
		cellH:  cellH,
		panX:   panX,
		panY:   panY,
		cells:  cells,
		color:  ColorBlack,
	}
}

// toCell maps diagram units to a screen cell.
func (t *termSurface) toCell(x, y float64) (int, int) {
	return int(math.Floor(x/t.cellW)) - t.panX, int(math.Floor(y/t.cellH)) - t.panY
}

// toWorld returns the diagram units at the centre of a screen cell.
func (t *termSurface) toWorld(col, row int) (float64, float64) {
	return cellCenter(col, row, t.panX, t.panY, t.cellW, t.cellH)
}

func cellCenter(col, row, panX, panY int, cellW, cellH float64) (float64, float64) {
	return (float64(col+panX) + 0.5) * cellW, (float64(row+panY) + 0.5) * cellH
}

// span returns the inclusive cell range covered by a box in diagram units.
func (t *termSurface) span(x, y, w, h float64) (c0, r0, c1, r1 int) {
	c0, r0 = t.toCell(x, y)
	c1 = int(math.Ceil((x+w)/t.cellW)) - 1 - t.panX
	r1 = int(math.Ceil((y+h)/t.cellH)) - 1 - t.panY
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}
	return c0, r0, c1, r1
}

func (t *termSurface) inBounds(col, row int) bool {
	return row >= 0 && row < t.height && col >= 0 && col < t.width
}

func (t *termSurface) put(col, row int, r rune) {
	if !t.inBounds(col, row) {
		return
	}
	c := &t.cells[row][col]
	c.r = r
	c.fg = t.color
	c.hasFg = true
}

func (t *termSurface) paint(col, row int) {
	if !t.inBounds(col, row) {
		return
	}
	t.cells[row][col] = cell{r: ' ', bg: t.color, hasBg: true}
}

func (t *termSurface) SetColor(c Color) { t.color = c }

func (t *termSurface) SetStroke(dashed bool, width float64) { t.dashed = dashed }

func (t *termSurface) SetFontSize(size int) {}

func (t *termSurface) FillRect(x, y, w, h float64) {
	c0, r0, c1, r1 := t.span(x, y, w, h)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			t.paint(col, row)
		}
	}
}

func (t *termSurface) DrawRect(x, y, w, h float64) {
	c0, r0, c1, r1 := t.span(x, y, w, h)
	horizontal, vertical := '─', '│'
	if t.dashed {
		horizontal, vertical = '╌', '╎'
	}
	for col := c0 + 1; col < c1; col++ {
		t.put(col, r0, horizontal)
		t.put(col, r1, horizontal)
	}
	for row := r0 + 1; row < r1; row++ {
		t.put(c0, row, vertical)
		t.put(c1, row, vertical)
	}
	t.put(c0, r0, '┌')
	t.put(c1, r0, '┐')
	t.put(c0, r1, '└')
	t.put(c1, r1, '┘')
}

func (t *termSurface) insideOval(col, row int, x, y, w, h float64) bool {
	px, py := t.toWorld(col, row)
	rx, ry := w/2, h/2
	if rx <= 0 || ry <= 0 {
		return false
	}
	dx := (px - (x + rx)) / rx
	dy := (py - (y + ry)) / ry
	return dx*dx+dy*dy <= 1
}

func (t *termSurface) FillOval(x, y, w, h float64) {
	c0, r0, c1, r1 := t.span(x, y, w, h)
	filled := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if t.insideOval(col, row, x, y, w, h) {
				t.paint(col, row)
				filled = true
			}
		}
	}
	if !filled {
		cx, cy := t.toCell(x+w/2, y+h/2)
		t.paint(cx, cy)
	}
}

func (t *termSurface) DrawOval(x, y, w, h float64) {
	c0, r0, c1, r1 := t.span(x, y, w, h)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !t.insideOval(col, row, x, y, w, h) {
				continue
			}
			if !t.insideOval(col-1, row, x, y, w, h) || !t.insideOval(col+1, row, x, y, w, h) ||
				!t.insideOval(col, row-1, x, y, w, h) || !t.insideOval(col, row+1, x, y, w, h) {
				t.put(col, row, '·')
			}
		}
	}
}

// DrawLine walks the cells between both ends with Bresenham's algorithm.
func (t *termSurface) DrawLine(x1, y1, x2, y2 float64) {
	c0, r0 := t.toCell(x1, y1)
	c1, r1 := t.toCell(x2, y2)
	glyph := lineGlyph(c1-c0, r1-r0, t.dashed)

	dx := abs(c1 - c0)
	dy := -abs(r1 - r0)
	sx, sy := 1, 1
	if c0 > c1 {
		sx = -1
	}
	if r0 > r1 {
		sy = -1
	}
	errAcc := dx + dy
	for {
		t.put(c0, r0, glyph)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			c0 += sx
		}
		if e2 <= dx {
			errAcc += dx
			r0 += sy
		}
	}
}

func lineGlyph(dx, dy int, dashed bool) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case adx == 0 && ady == 0:
		return '•'
	case ady*2 < adx:
		if dashed {
			return '╌'
		}
		return '─'
	case adx*2 < ady:
		if dashed {
			return '╎'
		}
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func (t *termSurface) DrawPolygon(points []FPoint) {
	for i := range points {
		next := points[(i+1)%len(points)]
		t.DrawLine(points[i].X, points[i].Y, next.X, next.Y)
	}
}

func (t *termSurface) DrawString(s string, x, y float64) {
	col, row := t.toCell(x, y-t.Ascent())
	for _, r := range s {
		t.put(col, row, r)
		w := max(runewidth.RuneWidth(r), 1)
		// the cell a wide rune spills into is left out of the output
		for i := 1; i < w; i++ {
			if t.inBounds(col+i, row) {
				t.cells[row][col+i].r = 0
			}
		}
		col += w
	}
}

// markCursor draws the keyboard cursor over whatever occupies the cell.
func (t *termSurface) markCursor(col, row int) {
	if !t.inBounds(col, row) {
		return
	}
	t.cells[row][col] = cell{r: '█'}
}

func (t *termSurface) StringWidth(s string) float64 {
	return float64(runewidth.StringWidth(s)) * t.cellW
}

func (t *termSurface) LineHeight() float64 { return t.cellH }
func (t *termSurface) Ascent() float64     { return t.cellH }

// Plain returns the grid without styling, one string per row.
func (t *termSurface) Plain() []string {
	lines := make([]string, t.height)
	for i, row := range t.cells {
		var b strings.Builder
		for _, c := range row {
			if c.r != 0 {
				b.WriteRune(c.r)
			}
		}
		lines[i] = b.String()
	}
	return lines
}

// Lines returns the grid rendered with lipgloss, merging runs of cells that
// share a style.
func (t *termSurface) Lines() []string {
	lines := make([]string, t.height)
	for i, row := range t.cells {
		var b strings.Builder
		var run strings.Builder
		var runStyle *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle == nil {
				b.WriteString(run.String())
			} else {
				b.WriteString(runStyle.Render(run.String()))
			}
			run.Reset()
		}
		var prev cell
		for j, c := range row {
			if j == 0 || !sameStyle(prev, c) {
				flush()
				runStyle = cellStyle(c)
			}
			if c.r != 0 {
				run.WriteRune(c.r)
			}
			prev = c
		}
		flush()
		lines[i] = b.String()
	}
	return lines
}

func sameStyle(a, b cell) bool {
	return a.hasFg == b.hasFg && a.hasBg == b.hasBg &&
		(!a.hasFg || a.fg == b.fg) && (!a.hasBg || a.bg == b.bg)
}

func cellStyle(c cell) *lipgloss.Style {
	if !c.hasFg && !c.hasBg {
		return nil
	}
	style := lipgloss.NewStyle()
	// black strokes on the bare terminal background use the default colour
	if c.hasFg && (c.hasBg || c.fg != ColorBlack) {
		style = style.Foreground(c.fg.Terminal())
	}
	if c.hasBg {
		style = style.Background(c.bg.Terminal())
	}
	return &style
}
