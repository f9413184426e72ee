// internal/editor/geometry.go
package editor

import (
	"math"

	"go-round-rect/internal/utils"
)

// Corner indices, also the hit-test order.
const (
	TopLeft = iota
	TopRight
	BottomLeft
	BottomRight
)

// Point — координаты относительно начала холста
type Point struct {
	X, Y float64
}

// Rectangle keeps the pointer-down origin and signed extents; width and
// height are negative when the user drags up or left.
type Rectangle struct {
	Origin        Point
	Width, Height float64
}

// MaxRadius returns min(|w|, |h|) / 2.
func (r Rectangle) MaxRadius() float64 {
	return math.Min(math.Abs(r.Width), math.Abs(r.Height)) / 2
}

// Corners returns the four corners in TopLeft..BottomRight order.
func (r Rectangle) Corners() [4]Point {
	x, y := r.Origin.X, r.Origin.Y
	return [4]Point{
		TopLeft:     {x, y},
		TopRight:    {x + r.Width, y},
		BottomLeft:  {x, y + r.Height},
		BottomRight: {x + r.Width, y + r.Height},
	}
}

// Bounds returns the normalized top-left point and absolute size.
func (r Rectangle) Bounds() (x, y, w, h float64) {
	x, y = r.Origin.X, r.Origin.Y
	if r.Width < 0 {
		x += r.Width
	}
	if r.Height < 0 {
		y += r.Height
	}
	return x, y, math.Abs(r.Width), math.Abs(r.Height)
}

// HandlePoints returns each corner moved radius pixels towards the inside
// of the rectangle on both axes.
func (r Rectangle) HandlePoints(radius float64) [4]Point {
	sx, sy := utils.Sign(r.Width), utils.Sign(r.Height)
	c := r.Corners()
	return [4]Point{
		TopLeft:     {c[TopLeft].X + sx*radius, c[TopLeft].Y + sy*radius},
		TopRight:    {c[TopRight].X - sx*radius, c[TopRight].Y + sy*radius},
		BottomLeft:  {c[BottomLeft].X + sx*radius, c[BottomLeft].Y - sy*radius},
		BottomRight: {c[BottomRight].X - sx*radius, c[BottomRight].Y - sy*radius},
	}
}

// Distance — евклидово расстояние между точками
func Distance(a, b Point) float64 {
	return utils.Distance(a.X, a.Y, b.X, b.Y)
}
