// internal/editor/pointer.go
package editor

// PointerKind — тип события указателя
type PointerKind int

const (
	Down PointerKind = iota
	Move
	Up
)

func (k PointerKind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is a single down/move/up with its surface position.
type PointerEvent struct {
	Kind PointerKind
	Pos  Point
}

// PointerTracker turns per-frame input into discrete pointer events.
// Window backends already report press and release edges; the tracker only
// adds held-state and drops moves that did not change the position.
type PointerTracker struct {
	pressed bool
	last    Point
}

// Feed consumes one frame of input: the backend's just-pressed and
// just-released edges for the button plus the cursor position.
func (t *PointerTracker) Feed(justPressed, justReleased bool, p Point) []PointerEvent {
	var out []PointerEvent
	switch {
	case justPressed:
		t.pressed = true
		out = append(out, PointerEvent{Kind: Down, Pos: p})
	case t.pressed && p != t.last:
		out = append(out, PointerEvent{Kind: Move, Pos: p})
	}
	t.last = p
	if justReleased && t.pressed {
		t.pressed = false
		out = append(out, PointerEvent{Kind: Up, Pos: p})
	}
	return out
}

// Pressed reports whether the tracked button is currently held.
func (t *PointerTracker) Pressed() bool { return t.pressed }

// Apply routes a pointer event to the matching editor callback.
func (e *Editor) Apply(ev PointerEvent) {
	switch ev.Kind {
	case Down:
		e.PointerDown(ev.Pos)
	case Move:
		e.PointerMove(ev.Pos)
	case Up:
		e.PointerUp(ev.Pos)
	}
}

// Sample feeds one frame of input through the tracker into the editor.
func (e *Editor) Sample(t *PointerTracker, justPressed, justReleased bool, p Point) {
	for _, ev := range t.Feed(justPressed, justReleased, p) {
		e.Apply(ev)
	}
}
