package system

import (
	"math"
	"testing"

	"go-round-rect/internal/editor"
)

func TestRectFlatten(t *testing.T) {
	var p Path
	p.Rect(10, 20, 30, 40)
	subs := p.Flatten(0.25)
	if len(subs) != 1 || !subs[0].Closed {
		t.Fatalf("expected one closed subpath, got %#v", subs)
	}
	want := []editor.Point{{X: 10, Y: 20}, {X: 40, Y: 20}, {X: 40, Y: 60}, {X: 10, Y: 60}}
	if len(subs[0].Points) != len(want) {
		t.Fatalf("points = %v, want %v", subs[0].Points, want)
	}
	for i := range want {
		if subs[0].Points[i] != want[i] {
			t.Fatalf("points = %v, want %v", subs[0].Points, want)
		}
	}
}

func TestRoundedRectZeroRadiusIsRectangle(t *testing.T) {
	subs := RoundedRectPath(100, 100, 200, 150, 0).Flatten(0.25)
	if len(subs) != 1 {
		t.Fatalf("expected one subpath, got %d", len(subs))
	}
	want := []editor.Point{{X: 100, Y: 100}, {X: 300, Y: 100}, {X: 300, Y: 250}, {X: 100, Y: 250}}
	got := subs[0].Points
	if len(got) != len(want) {
		t.Fatalf("points = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("points = %v, want %v", got, want)
		}
	}
}

func TestRoundedRectArcsStayOnCircles(t *testing.T) {
	const x, y, w, h, r = 100.0, 100.0, 200.0, 150.0, 40.0
	subs := RoundedRectPath(x, y, w, h, r).Flatten(0.1)
	if len(subs) != 1 || !subs[0].Closed {
		t.Fatalf("expected one closed subpath, got %d", len(subs))
	}
	for _, pt := range subs[0].Points {
		if pt.X < x-1e-9 || pt.X > x+w+1e-9 || pt.Y < y-1e-9 || pt.Y > y+h+1e-9 {
			t.Fatalf("point %v outside the bounding box", pt)
		}
		var cx, cy float64
		switch {
		case pt.X < x+r-1e-9:
			cx = x + r
		case pt.X > x+w-r+1e-9:
			cx = x + w - r
		default:
			continue
		}
		switch {
		case pt.Y < y+r-1e-9:
			cy = y + r
		case pt.Y > y+h-r+1e-9:
			cy = y + h - r
		default:
			continue
		}
		if d := math.Hypot(pt.X-cx, pt.Y-cy); math.Abs(d-r) > 1e-6 {
			t.Fatalf("corner point %v is %v from centre, want %v", pt, d, r)
		}
	}
	// Касательные точки на рёбрах
	first := subs[0].Points[0]
	if first != (editor.Point{X: x + r, Y: y}) {
		t.Fatalf("path starts at %v", first)
	}
}

func TestArcToDegenerateFallsBackToLine(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.ArcTo(10, 0, 20, 0, 5) // collinear
	subs := p.Flatten(0.25)
	got := subs[0].Points
	if len(got) != 2 || got[1] != (editor.Point{X: 10, Y: 0}) {
		t.Fatalf("points = %v", got)
	}
}
