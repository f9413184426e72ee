package editor

import "testing"

// TestPointerTracker_Edges verifies press, drag and release produce one event each.
func TestPointerTracker_Edges(t *testing.T) {
	var tr PointerTracker

	if evs := tr.Feed(false, false, Point{5, 5}); len(evs) != 0 {
		t.Fatalf("expected no events for hover, got %#v", evs)
	}

	evs := tr.Feed(true, false, Point{10, 10})
	if len(evs) != 1 || evs[0].Kind != Down || evs[0].Pos != (Point{10, 10}) {
		t.Fatalf("expected down at (10,10), got %#v", evs)
	}
	if !tr.Pressed() {
		t.Fatal("tracker should report pressed")
	}

	if evs := tr.Feed(false, false, Point{10, 10}); len(evs) != 0 {
		t.Fatalf("expected no move for a still cursor, got %#v", evs)
	}

	evs = tr.Feed(false, false, Point{20, 15})
	if len(evs) != 1 || evs[0].Kind != Move || evs[0].Pos != (Point{20, 15}) {
		t.Fatalf("expected move to (20,15), got %#v", evs)
	}

	evs = tr.Feed(false, true, Point{20, 15})
	if len(evs) != 1 || evs[0].Kind != Up || evs[0].Pos != (Point{20, 15}) {
		t.Fatalf("expected up at (20,15), got %#v", evs)
	}
	if tr.Pressed() {
		t.Fatal("tracker should be released")
	}
}

// TestPointerTracker_EdgesOnly verifies that held state alone never produces
// a down or an up; only the backend's edges do.
func TestPointerTracker_EdgesOnly(t *testing.T) {
	var tr PointerTracker

	// release without a preceding press
	if evs := tr.Feed(false, true, Point{1, 1}); len(evs) != 0 {
		t.Fatalf("expected no events for stray release, got %#v", evs)
	}

	// moves while not pressed are hover
	if evs := tr.Feed(false, false, Point{50, 50}); len(evs) != 0 {
		t.Fatalf("expected no events while released, got %#v", evs)
	}

	// press and release inside one frame
	evs := tr.Feed(true, true, Point{30, 40})
	if len(evs) != 2 || evs[0].Kind != Down || evs[1].Kind != Up {
		t.Fatalf("expected down then up, got %#v", evs)
	}
	if tr.Pressed() {
		t.Fatal("tracker should be released after a click")
	}

	// a second press while held is a fresh down
	tr.Feed(true, false, Point{0, 0})
	evs = tr.Feed(true, false, Point{5, 5})
	if len(evs) != 1 || evs[0].Kind != Down {
		t.Fatalf("expected down, got %#v", evs)
	}
}

// TestSample_DrivesEditor verifies per-frame input reproduces a full drag.
func TestSample_DrivesEditor(t *testing.T) {
	e := New()
	var tr PointerTracker

	frames := []struct {
		justPressed  bool
		justReleased bool
		p            Point
	}{
		{false, false, Point{90, 90}},
		{true, false, Point{100, 100}},
		{false, false, Point{200, 180}},
		{false, false, Point{300, 250}},
		{false, true, Point{300, 250}},
	}
	for _, f := range frames {
		e.Sample(&tr, f.justPressed, f.justReleased, f.p)
	}

	r := e.Rect()
	if r.Origin != (Point{100, 100}) || r.Width != 200 || r.Height != 150 {
		t.Fatalf("unexpected rect %+v", r)
	}
	if e.Gesture().Kind != Idle {
		t.Fatalf("gesture = %v, want idle", e.Gesture())
	}
}

func TestPointerKindString(t *testing.T) {
	if Down.String() != "down" || Move.String() != "move" || Up.String() != "up" || PointerKind(7).String() != "unknown" {
		t.Fatal("unexpected pointer kind names")
	}
}
