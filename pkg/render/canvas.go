// pkg/render/canvas.go
package render

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"go-round-rect/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ system.Surface = (*Canvas)(nil)

// Canvas — поверхность рисования на ebiten. Кадр рисуется в offscreen
// изображение и выводится на экран одним DrawImage.
type Canvas struct {
	frame    *ebiten.Image
	whiteImg *ebiten.Image
	fonts    *FontSource
	vs       []ebiten.Vertex
	is       []uint16
}

// NewCanvas acquires the offscreen frame. It fails when the size is not
// positive or no font is given.
func NewCanvas(width, height int, fonts *FontSource) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	if fonts == nil {
		return nil, errors.New("canvas needs a font source")
	}

	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)

	return &Canvas{
		frame:    ebiten.NewImage(width, height),
		whiteImg: whiteImg,
		fonts:    fonts,
		vs:       make([]ebiten.Vertex, 0, 256),
		is:       make([]uint16, 0, 512),
	}, nil
}

// Frame returns the image holding the last rendered frame.
func (c *Canvas) Frame() *ebiten.Image { return c.frame }

func (c *Canvas) Clear(bg color.Color) {
	c.frame.Fill(bg)
}

func (c *Canvas) StrokePath(p *system.Path, s system.Stroke) {
	path := toVectorPath(p)
	c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width:    float32(s.Width),
		LineJoin: vector.LineJoinRound,
	})
	c.drawTriangles(s.Color, ebiten.FillRuleFillAll)
}

func (c *Canvas) FillPath(p *system.Path, clr color.Color) {
	path := toVectorPath(p)
	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.drawTriangles(clr, ebiten.FillRuleNonZero)
}

func (c *Canvas) FillCircle(x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.frame, float32(x), float32(y), float32(r), clr, true)
}

func (c *Canvas) DrawText(s string, x, y, size float64, clr color.Color) {
	face, err := c.fonts.Face(size)
	if err != nil {
		log.Printf("text %q skipped: %v", s, err)
		return
	}
	text.Draw(c.frame, s, face, int(x), int(y), clr)
}

func (c *Canvas) drawTriangles(clr color.Color, rule ebiten.FillRule) {
	if len(c.is) == 0 {
		return
	}
	r, g, b, a := colorScale(clr)
	for i := range c.vs {
		c.vs[i].SrcX = 0.5
		c.vs[i].SrcY = 0.5
		c.vs[i].ColorR = r
		c.vs[i].ColorG = g
		c.vs[i].ColorB = b
		c.vs[i].ColorA = a
	}
	c.frame.DrawTriangles(c.vs, c.is, c.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  rule,
	})
}

// toVectorPath переносит команды в vector.Path; ArcTo у ebiten совпадает
// с canvas arcTo, поэтому дуги передаются как есть.
func toVectorPath(p *system.Path) *vector.Path {
	var path vector.Path
	for _, cmd := range p.Commands() {
		switch cmd.Op {
		case system.OpMoveTo:
			path.MoveTo(float32(cmd.X1), float32(cmd.Y1))
		case system.OpLineTo:
			path.LineTo(float32(cmd.X1), float32(cmd.Y1))
		case system.OpArcTo:
			path.ArcTo(float32(cmd.X1), float32(cmd.Y1), float32(cmd.X2), float32(cmd.Y2), float32(cmd.R))
		case system.OpClose:
			path.Close()
		}
	}
	return &path
}
