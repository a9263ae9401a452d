package main

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// Surface is an immediate-mode 2D drawing target. Coordinates are diagram
// units; implementations map them to pixels or terminal cells.
type Surface interface {
	SetColor(c Color)
	SetStroke(dashed bool, width float64)
	SetFontSize(size int)

	FillRect(x, y, w, h float64)
	DrawRect(x, y, w, h float64)
	FillOval(x, y, w, h float64)
	DrawOval(x, y, w, h float64)
	DrawLine(x1, y1, x2, y2 float64)
	// DrawPolygon strokes a closed, unfilled outline through points.
	DrawPolygon(points []FPoint)
	// DrawString draws s with its baseline at y.
	DrawString(s string, x, y float64)

	StringWidth(s string) float64
	LineHeight() float64
	Ascent() float64
}

type Color int

const (
	ColorGray Color = iota
	ColorBlack
	ColorBlue
	ColorYellow
	ColorRed
	ColorGreen
	ColorWhite
)

// labelColors is the palette offered by the label editor, in menu order.
var labelColors = []Color{ColorYellow, ColorRed, ColorGreen, ColorBlue, ColorWhite}

func (c Color) String() string {
	switch c {
	case ColorGray:
		return "gray"
	case ColorBlack:
		return "black"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}

func (c Color) RGBA() color.RGBA {
	switch c {
	case ColorGray:
		return color.RGBA{128, 128, 128, 255}
	case ColorBlue:
		return color.RGBA{0, 0, 255, 255}
	case ColorYellow:
		return color.RGBA{255, 255, 0, 255}
	case ColorRed:
		return color.RGBA{255, 0, 0, 255}
	case ColorGreen:
		return color.RGBA{0, 255, 0, 255}
	case ColorWhite:
		return color.RGBA{255, 255, 255, 255}
	default:
		return color.RGBA{0, 0, 0, 255}
	}
}

// Terminal returns the ANSI colour used for this palette entry.
func (c Color) Terminal() lipgloss.Color {
	switch c {
	case ColorGray:
		return lipgloss.Color("8")
	case ColorBlue:
		return lipgloss.Color("12")
	case ColorYellow:
		return lipgloss.Color("11")
	case ColorRed:
		return lipgloss.Color("9")
	case ColorGreen:
		return lipgloss.Color("10")
	case ColorWhite:
		return lipgloss.Color("15")
	default:
		return lipgloss.Color("0")
	}
}
