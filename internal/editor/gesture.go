// internal/editor/gesture.go
package editor

import "fmt"

// GestureKind — вид текущего жеста
type GestureKind int

const (
	Idle GestureKind = iota
	Drawing
	Handling
)

func (k GestureKind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case Handling:
		return "handling"
	default:
		return "unknown"
	}
}

// Gesture is the controller state. Handle is only meaningful when Kind is
// Handling; constructors keep it at -1 otherwise.
type Gesture struct {
	Kind   GestureKind
	Handle int
}

func idleGesture() Gesture { return Gesture{Kind: Idle, Handle: -1} }
func drawingGesture() Gesture { return Gesture{Kind: Drawing, Handle: -1} }
func handlingGesture(i int) Gesture {
	return Gesture{Kind: Handling, Handle: i}
}

// Grabbed returns the grabbed handle index, if any.
func (g Gesture) Grabbed() (int, bool) {
	if g.Kind != Handling {
		return -1, false
	}
	return g.Handle, true
}

func (g Gesture) String() string {
	if g.Kind == Handling {
		return fmt.Sprintf("handling(%d)", g.Handle)
	}
	return g.Kind.String()
}
