// pkg/render/raylib_canvas.go
package render

import (
	"image/color"

	"go-round-rect/internal/editor"
	"go-round-rect/internal/system"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var _ system.Surface = (*RaylibCanvas)(nil)

// flattenTolerance — допустимое отклонение хорды от дуги, в пикселях
const flattenTolerance = 0.25

// RaylibCanvas draws straight to the raylib window. Calls must happen
// between rl.BeginDrawing and rl.EndDrawing. raylib has no path API, so
// paths are flattened to polylines first.
type RaylibCanvas struct {
	font rl.Font
}

// NewRaylibCanvas loads the font into GPU memory; the window must already
// be open.
func NewRaylibCanvas(fonts *FontSource, size float64) *RaylibCanvas {
	font := rl.GetFontDefault()
	if fonts != nil {
		font = rl.LoadFontFromMemory(".ttf", fonts.Data(), int32(size), nil)
	}
	return &RaylibCanvas{font: font}
}

// Unload releases the font texture.
func (c *RaylibCanvas) Unload() {
	if c.font.Texture.ID != rl.GetFontDefault().Texture.ID {
		rl.UnloadFont(c.font)
	}
}

func (c *RaylibCanvas) Clear(bg color.Color) {
	rl.ClearBackground(colorToRL(bg))
}

func (c *RaylibCanvas) StrokePath(p *system.Path, s system.Stroke) {
	clr := colorToRL(s.Color)
	thick := float32(s.Width)
	for _, sub := range p.Flatten(flattenTolerance) {
		pts := sub.Points
		n := len(pts) - 1
		if sub.Closed {
			n = len(pts)
		}
		for i := 0; i < n; i++ {
			a, b := pts[i], pts[(i+1)%len(pts)]
			rl.DrawLineEx(vec(a), vec(b), thick, clr)
			if thick > 1 {
				// Скругляем стыки
				rl.DrawCircleV(vec(b), thick/2, clr)
			}
		}
	}
}

func (c *RaylibCanvas) FillPath(p *system.Path, clr color.Color) {
	rc := colorToRL(clr)
	for _, sub := range p.Flatten(flattenTolerance) {
		pts := sub.Points
		// Скруглённый прямоугольник выпуклый, достаточно веера
		for i := 1; i+1 < len(pts); i++ {
			a, b, d := vec(pts[0]), vec(pts[i]), vec(pts[i+1])
			// Backface culling drops one of the two windings.
			rl.DrawTriangle(a, b, d, rc)
			rl.DrawTriangle(a, d, b, rc)
		}
	}
}

func (c *RaylibCanvas) FillCircle(x, y, r float64, clr color.Color) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(r), colorToRL(clr))
}

func (c *RaylibCanvas) DrawText(s string, x, y, size float64, clr color.Color) {
	// y — базовая линия, как у canvas fillText; raylib рисует от верхнего края
	rl.DrawTextEx(c.font, s, rl.NewVector2(float32(x), float32(y-size)), float32(size), 1, colorToRL(clr))
}

func vec(p editor.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}
