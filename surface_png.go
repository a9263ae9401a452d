package main

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// pngSurface draws onto a gg context. Font faces are built from one parsed
// TrueType font and cached per size.
type pngSurface struct {
	dc    *gg.Context
	ttf   *truetype.Font
	faces map[int]font.Face
	face  font.Face
}

func newPNGSurface(width, height int, fontData []byte) (*pngSurface, error) {
	ttf, err := truetype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	s := &pngSurface{
		dc:    gg.NewContext(max(width, 1), max(height, 1)),
		ttf:   ttf,
		faces: make(map[int]font.Face),
	}
	s.dc.SetLineWidth(1)
	s.SetFontSize(defaultFontSize)
	return s, nil
}

func (s *pngSurface) SetColor(c Color) {
	s.dc.SetColor(c.RGBA())
}

func (s *pngSurface) SetStroke(dashed bool, width float64) {
	s.dc.SetLineWidth(width)
	if dashed {
		s.dc.SetDash(5)
	} else {
		s.dc.SetDash()
	}
}

func (s *pngSurface) SetFontSize(size int) {
	if size <= 0 {
		size = defaultFontSize
	}
	face, ok := s.faces[size]
	if !ok {
		face = truetype.NewFace(s.ttf, &truetype.Options{
			Size:    float64(size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		s.faces[size] = face
	}
	s.face = face
	s.dc.SetFontFace(face)
}

func (s *pngSurface) FillRect(x, y, w, h float64) {
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

func (s *pngSurface) DrawRect(x, y, w, h float64) {
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Stroke()
}

func (s *pngSurface) FillOval(x, y, w, h float64) {
	s.dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
	s.dc.Fill()
}

func (s *pngSurface) DrawOval(x, y, w, h float64) {
	s.dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
	s.dc.Stroke()
}

func (s *pngSurface) DrawLine(x1, y1, x2, y2 float64) {
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
}

func (s *pngSurface) DrawPolygon(points []FPoint) {
	if len(points) == 0 {
		return
	}
	s.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
	s.dc.Stroke()
}

func (s *pngSurface) DrawString(text string, x, y float64) {
	s.dc.DrawString(text, x, y)
}

func (s *pngSurface) StringWidth(text string) float64 {
	w, _ := s.dc.MeasureString(text)
	return w
}

func (s *pngSurface) LineHeight() float64 {
	return s.dc.FontHeight()
}

func (s *pngSurface) Ascent() float64 {
	return float64(s.face.Metrics().Ascent.Ceil())
}
