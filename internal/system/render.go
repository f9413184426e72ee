// internal/system/render.go
package system

import (
	"fmt"
	"math"
	"strconv"

	"go-round-rect/internal/config"
	"go-round-rect/internal/editor"
)

// RenderOptions — размеры, не зависящие от цвета
type RenderOptions struct {
	PointRadius        float64
	OutlineWidth       float64
	StrokeWidth        float64
	FontSize           float64
	RadiusDisplayScale float64
}

// DefaultRenderOptions returns the sizes from config.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		PointRadius:        config.PointRadius,
		OutlineWidth:       config.OutlineWidth,
		StrokeWidth:        config.StrokeWidth,
		FontSize:           config.FontSize,
		RadiusDisplayScale: config.RadiusDisplayScale,
	}
}

// RenderSystem рисует состояние редактора. Draw is a pure function of the
// snapshot: the whole frame is rebuilt on each call.
type RenderSystem struct {
	palette Palette
	opts    RenderOptions
}

func NewRenderSystem(palette Palette, opts RenderOptions) *RenderSystem {
	return &RenderSystem{palette: palette, opts: opts}
}

func (s *RenderSystem) Draw(dst Surface, snap editor.Snapshot) {
	dst.Clear(s.palette.Background)
	if !snap.Started {
		return
	}

	x, y, w, h := snap.Rect.Bounds()

	// Сначала рамка исходного прямоугольника
	var outline Path
	outline.Rect(x, y, w, h)
	dst.StrokePath(&outline, Stroke{Width: s.opts.OutlineWidth, Color: s.palette.Outline})

	// Затем скруглённый прямоугольник: заливка и обводка
	rounded := RoundedRectPath(x, y, w, h, snap.Radius)
	dst.FillPath(rounded, s.palette.Fill)
	dst.StrokePath(rounded, Stroke{Width: s.opts.StrokeWidth, Color: s.palette.Stroke})

	for _, c := range snap.Corners {
		dst.FillCircle(c.X, c.Y, s.opts.PointRadius, s.palette.Corner)
	}
	for _, hd := range snap.Handles {
		clr := s.palette.Handle
		if hd.Grabbed {
			clr = s.palette.HandleActive
		}
		dst.FillCircle(hd.X, hd.Y, s.opts.PointRadius, clr)
	}

	labels := Labels(snap, s.opts.RadiusDisplayScale)
	offsets := [3]float64{config.LabelWidthOffsetY, config.LabelHeightOffsetY, config.LabelRadiusOffsetY}
	for i, label := range labels {
		dst.DrawText(label, x, y-offsets[i], s.opts.FontSize, s.palette.Text)
	}
}

// RoundedRectPath builds the rounded outline from four tangent arcs, one per
// corner, starting right of the top-left corner.
func RoundedRectPath(x, y, w, h, r float64) *Path {
	p := &Path{}
	p.MoveTo(x+r, y)
	p.ArcTo(x+w, y, x+w, y+h, r)
	p.ArcTo(x+w, y+h, x, y+h, r)
	p.ArcTo(x, y+h, x, y, r)
	p.ArcTo(x, y, x+w, y, r)
	p.Close()
	return p
}

// RadiusDisplay maps radius onto [0, scale] relative to maxRadius. A zero
// maxRadius displays as 0.
func RadiusDisplay(radius, maxRadius, scale float64) int {
	if maxRadius == 0 {
		return 0
	}
	return int(math.Round(radius / maxRadius * scale))
}

// Labels returns the width, height and radius captions.
func Labels(snap editor.Snapshot, scale float64) [3]string {
	return [3]string{
		fmt.Sprintf("Width: %spx", formatNumber(math.Abs(snap.Rect.Width))),
		fmt.Sprintf("Height: %spx", formatNumber(math.Abs(snap.Rect.Height))),
		fmt.Sprintf("Radius: %d", RadiusDisplay(snap.Radius, snap.MaxRadius, scale)),
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
