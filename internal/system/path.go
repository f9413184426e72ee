// internal/system/path.go
package system

import (
	"math"

	"go-round-rect/internal/editor"
)

// PathOp — команда пути
type PathOp int

const (
	OpMoveTo PathOp = iota
	OpLineTo
	OpArcTo
	OpClose
)

// PathCmd is one recorded command. LineTo/MoveTo use X1,Y1; ArcTo uses all
// fields with R as the tangent radius.
type PathCmd struct {
	Op             PathOp
	X1, Y1, X2, Y2 float64
	R              float64
}

// Path records 2D path commands so that every backend can replay them with
// its own primitives.
type Path struct {
	cmds []PathCmd
}

func (p *Path) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, PathCmd{Op: OpMoveTo, X1: x, Y1: y})
}

func (p *Path) LineTo(x, y float64) {
	p.cmds = append(p.cmds, PathCmd{Op: OpLineTo, X1: x, Y1: y})
}

// ArcTo adds an arc of radius r tangent to the lines (current, (x1,y1)) and
// ((x1,y1), (x2,y2)), preceded by a straight line to the first tangent point.
func (p *Path) ArcTo(x1, y1, x2, y2, r float64) {
	p.cmds = append(p.cmds, PathCmd{Op: OpArcTo, X1: x1, Y1: y1, X2: x2, Y2: y2, R: r})
}

func (p *Path) Close() {
	p.cmds = append(p.cmds, PathCmd{Op: OpClose})
}

// Rect adds a closed rectangle subpath.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Commands returns the recorded commands.
func (p *Path) Commands() []PathCmd { return p.cmds }

// Subpath — ломаная, полученная из пути
type Subpath struct {
	Points []editor.Point
	Closed bool
}

// Flatten converts the path into polylines. tolerance bounds the distance
// between an arc and its chords.
func (p *Path) Flatten(tolerance float64) []Subpath {
	if tolerance <= 0 {
		tolerance = 0.25
	}

	var out []Subpath
	var cur *Subpath
	var pos editor.Point
	has := false

	start := func(pt editor.Point) {
		out = append(out, Subpath{Points: []editor.Point{pt}})
		cur = &out[len(out)-1]
		pos = pt
		has = true
	}
	lineTo := func(pt editor.Point) {
		if !has {
			start(pt)
			return
		}
		if cur == nil {
			start(pos)
		}
		if pt != pos {
			cur.Points = append(cur.Points, pt)
		}
		pos = pt
	}

	for _, c := range p.cmds {
		switch c.Op {
		case OpMoveTo:
			start(editor.Point{X: c.X1, Y: c.Y1})
		case OpLineTo:
			lineTo(editor.Point{X: c.X1, Y: c.Y1})
		case OpArcTo:
			p1 := editor.Point{X: c.X1, Y: c.Y1}
			if !has {
				start(p1)
				continue
			}
			for _, pt := range arcPoints(pos, p1, editor.Point{X: c.X2, Y: c.Y2}, c.R, tolerance) {
				lineTo(pt)
			}
		case OpClose:
			if cur != nil {
				// Замыкающая точка совпадает с первой
				if n := len(cur.Points); n > 1 && cur.Points[n-1] == cur.Points[0] {
					cur.Points = cur.Points[:n-1]
				}
				cur.Closed = true
				pos = cur.Points[0]
				cur = nil
			}
		}
	}
	return out
}

// arcPoints follows the canvas arcTo rules: degenerate input (coincident
// points, collinear lines, zero radius) is a straight line to p1.
func arcPoints(p0, p1, p2 editor.Point, r, tolerance float64) []editor.Point {
	d0x, d0y := p0.X-p1.X, p0.Y-p1.Y
	d1x, d1y := p2.X-p1.X, p2.Y-p1.Y
	l0, l1 := math.Hypot(d0x, d0y), math.Hypot(d1x, d1y)
	if r <= 0 || l0 == 0 || l1 == 0 {
		return []editor.Point{p1}
	}
	d0x, d0y = d0x/l0, d0y/l0
	d1x, d1y = d1x/l1, d1y/l1

	cross := d0x*d1y - d0y*d1x
	if math.Abs(cross) < 1e-12 {
		return []editor.Point{p1}
	}

	theta := math.Acos(math.Max(-1, math.Min(1, d0x*d1x+d0y*d1y)))
	dist := r / math.Tan(theta/2)
	t0 := editor.Point{X: p1.X + d0x*dist, Y: p1.Y + d0y*dist}
	t1 := editor.Point{X: p1.X + d1x*dist, Y: p1.Y + d1y*dist}

	// Центр лежит на биссектрисе угла
	bx, by := d0x+d1x, d0y+d1y
	bl := math.Hypot(bx, by)
	h := r / math.Sin(theta/2)
	center := editor.Point{X: p1.X + bx/bl*h, Y: p1.Y + by/bl*h}

	a0 := math.Atan2(t0.Y-center.Y, t0.X-center.X)
	a1 := math.Atan2(t1.Y-center.Y, t1.X-center.X)
	delta := a1 - a0
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}

	step := math.Pi / 2
	if tolerance < r {
		step = 2 * math.Acos(1-tolerance/r)
	}
	n := int(math.Ceil(math.Abs(delta) / step))
	if n < 1 {
		n = 1
	}

	pts := make([]editor.Point, 0, n+1)
	pts = append(pts, t0)
	for i := 1; i <= n; i++ {
		a := a0 + delta*float64(i)/float64(n)
		pts = append(pts, editor.Point{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)})
	}
	pts[len(pts)-1] = t1
	return pts
}
