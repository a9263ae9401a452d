package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
)

var errNothingToExport = errors.New("nothing to export")

// exportPNG renders the whole diagram, not just the viewport, with a margin
// of padding units on every side.
func exportPNG(c *Canvas, filename string, cfg *Config) error {
	bounds, ok := c.Bounds()
	if !ok {
		return errNothingToExport
	}
	pad := cfg.ExportPadding
	surface, err := newPNGSurface(bounds.Width+2*pad, bounds.Height+2*pad, cfg.fontData())
	if err != nil {
		return err
	}
	surface.dc.SetColor(color.White)
	surface.dc.Clear()
	surface.dc.Translate(float64(pad-bounds.X), float64(pad-bounds.Y))

	c.Render(surface)

	if err := surface.dc.SavePNG(filename); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	log.Printf("exported %d shapes, %d links to %s", len(c.Shapes()), len(c.Links()), filename)
	return nil
}

// exportVisualTXT writes the rendered viewport as plain text.
func exportVisualTXT(filename string, lines []string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return fmt.Errorf("write txt: %w", err)
		}
	}
	log.Printf("exported viewport to %s", filename)
	return nil
}
