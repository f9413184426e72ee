// internal/editor/editor.go
package editor

import (
	"fmt"

	"go-round-rect/internal/config"
	"go-round-rect/internal/event"
	"go-round-rect/internal/utils"
)

// Handle — ручка радиуса, смещённая внутрь от своего угла
type Handle struct {
	Point
	Grabbed bool
}

// Snapshot is a value copy of the editor state.
type Snapshot struct {
	Rect      Rectangle
	Radius    float64
	MaxRadius float64
	Corners   [4]Point
	Handles   [4]Handle
	Gesture   Gesture
	Started   bool // хотя бы один прямоугольник уже начат
}

// Editor owns the rectangle, the corner radius and the gesture state.
// It is not safe for concurrent use; all calls come from the input loop.
type Editor struct {
	rect      Rectangle
	radius    float64
	maxRadius float64
	corners   [4]Point
	handles   [4]Point
	gesture   Gesture
	started   bool

	hitRadius float64
	events    *event.Dispatcher
}

// Option configures an Editor.
type Option func(*Editor)

// WithDispatcher makes the editor publish an event after every mutation.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(e *Editor) { e.events = d }
}

// WithHitRadius sets how close a pointer-down must be to grab a handle.
func WithHitRadius(r float64) Option {
	return func(e *Editor) {
		if r > 0 {
			e.hitRadius = r
		}
	}
}

func New(opts ...Option) *Editor {
	e := &Editor{
		gesture:   idleGesture(),
		hitRadius: config.HandleHitRadius,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.updatePoints()
	return e
}

// PointerDown either grabs a handle or starts a new rectangle at p.
// It is ignored unless the editor is idle.
func (e *Editor) PointerDown(p Point) {
	if e.gesture.Kind != Idle {
		return
	}

	if i, ok := e.HandleAt(p); ok {
		e.gesture = handlingGesture(i)
		e.emit(event.GestureStarted)
		return
	}

	// Новый прямоугольник: старый затирается, радиус сбрасывается
	e.rect = Rectangle{Origin: p}
	e.radius = 0
	e.started = true
	e.gesture = drawingGesture()
	e.updatePoints()
	e.emit(event.GestureStarted)
}

// PointerMove resizes the rectangle or changes the radius, depending on the
// active gesture. Moves while idle do nothing.
func (e *Editor) PointerMove(p Point) {
	switch e.gesture.Kind {
	case Drawing:
		e.rect.Width = p.X - e.rect.Origin.X
		e.rect.Height = p.Y - e.rect.Origin.Y
		e.updatePoints()
		e.emit(event.RectangleResized)
	case Handling:
		corner := e.corners[e.gesture.Handle]
		e.radius = utils.Clamp(Distance(p, corner), 0, e.maxRadius)
		e.updatePoints()
		e.emit(event.RadiusChanged)
	}
}

// PointerUp ends any gesture and releases every handle.
func (e *Editor) PointerUp(Point) {
	wasIdle := e.gesture.Kind == Idle
	e.gesture = idleGesture()
	if !wasIdle {
		e.emit(event.GestureEnded)
	}
}

// HandleAt returns the first handle, in corner order, strictly closer to p
// than the hit radius.
func (e *Editor) HandleAt(p Point) (int, bool) {
	for i, h := range e.handles {
		if Distance(p, h) < e.hitRadius {
			return i, true
		}
	}
	return -1, false
}

// updatePoints пересчитывает maxRadius, углы и ручки из прямоугольника и радиуса
func (e *Editor) updatePoints() {
	e.maxRadius = e.rect.MaxRadius()
	e.radius = utils.Clamp(e.radius, 0, e.maxRadius)
	e.corners = e.rect.Corners()
	e.handles = e.rect.HandlePoints(e.radius)
}

func (e *Editor) emit(t event.EventType) {
	if e.events == nil {
		return
	}
	e.events.Dispatch(event.Event{Type: t, Data: e.Snapshot()})
}

func (s Snapshot) String() string {
	return fmt.Sprintf("rect=(%g,%g %gx%g) radius=%.1f/%.1f gesture=%s",
		s.Rect.Origin.X, s.Rect.Origin.Y, s.Rect.Width, s.Rect.Height, s.Radius, s.MaxRadius, s.Gesture)
}

func (e *Editor) Snapshot() Snapshot {
	s := Snapshot{
		Rect:      e.rect,
		Radius:    e.radius,
		MaxRadius: e.maxRadius,
		Corners:   e.corners,
		Gesture:   e.gesture,
		Started:   e.started,
	}
	grabbed, _ := e.gesture.Grabbed()
	for i, p := range e.handles {
		s.Handles[i] = Handle{Point: p, Grabbed: i == grabbed}
	}
	return s
}

func (e *Editor) Gesture() Gesture { return e.gesture }
func (e *Editor) Rect() Rectangle { return e.rect }
func (e *Editor) Radius() float64 { return e.radius }
func (e *Editor) MaxRadius() float64 { return e.maxRadius }
func (e *Editor) Corners() [4]Point { return e.corners }
func (e *Editor) Handles() [4]Handle { return e.Snapshot().Handles }
func (e *Editor) HitRadius() float64 { return e.hitRadius }
func (e *Editor) Started() bool { return e.started }

// SnapshotOf extracts the snapshot carried by an editor event.
func SnapshotOf(ev event.Event) (Snapshot, bool) {
	s, ok := ev.Data.(Snapshot)
	return s, ok
}
