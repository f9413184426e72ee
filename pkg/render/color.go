// pkg/render/color.go
package render

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// colorScale returns premultiplied components in [0, 1], the form ebiten
// vertices expect.
func colorScale(c color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}

// colorToRL converts color.Color to rl.Color
func colorToRL(c color.Color) rl.Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.NewColor(nc.R, nc.G, nc.B, nc.A)
}
