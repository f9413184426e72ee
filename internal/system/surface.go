// internal/system/surface.go
package system

import (
	"image/color"

	"go-round-rect/internal/config"
)

// Stroke — параметры обводки
type Stroke struct {
	Width float64
	Color color.Color
}

// Surface is the 2D drawing target the renderer needs. Backends implement
// it on top of a window library; tests implement it with a recorder.
type Surface interface {
	Clear(bg color.Color)
	StrokePath(p *Path, s Stroke)
	FillPath(p *Path, c color.Color)
	FillCircle(x, y, r float64, c color.Color)
	DrawText(s string, x, y, size float64, c color.Color)
}

// Palette holds every colour the frame uses.
type Palette struct {
	Background   color.Color
	Outline      color.Color
	Fill         color.Color
	Stroke       color.Color
	Corner       color.Color
	Handle       color.Color
	HandleActive color.Color
	Text         color.Color
}

// NewPalette converts configured colours into a renderer palette.
func NewPalette(c config.Colors) Palette {
	return Palette{
		Background:   c.Background,
		Outline:      c.Outline,
		Fill:         c.Fill,
		Stroke:       c.Stroke,
		Corner:       c.Corner,
		Handle:       c.Handle,
		HandleActive: c.HandleActive,
		Text:         c.Text,
	}
}

// DefaultPalette uses the compile-time colours from config.
func DefaultPalette() Palette {
	return NewPalette(config.Defaults().Colors)
}
