// internal/state/editor_state.go
package state

import (
	"go-round-rect/internal/app"
	"go-round-rect/internal/editor"
	"go-round-rect/internal/event"
	"go-round-rect/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*EditorState)(nil)

// EditorState — единственное состояние: редактирование прямоугольника.
// Each editor event re-renders the offscreen frame before the input
// callback returns; Draw only copies that frame to the screen.
type EditorState struct {
	app     *app.App
	canvas  *render.Canvas
	tracker editor.PointerTracker
	subs    map[event.EventType]int
	fresh   bool // первый кадр ещё не нарисован
}

func NewEditorState(a *app.App, canvas *render.Canvas) *EditorState {
	return &EditorState{
		app:    a,
		canvas: canvas,
		subs:   make(map[event.EventType]int),
	}
}

func (s *EditorState) Enter() {
	for _, t := range event.EditorEvents {
		s.subs[t] = s.app.EventDispatcher.Subscribe(t, s)
	}
	s.fresh = true
}

// OnEvent перерисовывает кадр после каждого изменения редактора
func (s *EditorState) OnEvent(ev event.Event) {
	if snap, ok := editor.SnapshotOf(ev); ok {
		s.redraw(snap)
	}
}

func (s *EditorState) Update(deltaTime float64) {
	if s.fresh {
		s.redraw(s.app.Editor.Snapshot())
		s.fresh = false
	}
	x, y := ebiten.CursorPosition()
	s.app.Editor.Sample(&s.tracker,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		editor.Point{X: float64(x), Y: float64(y)})
}

func (s *EditorState) Draw(screen *ebiten.Image) {
	screen.DrawImage(s.canvas.Frame(), nil)
}

func (s *EditorState) Exit() {
	for t, id := range s.subs {
		s.app.EventDispatcher.Unsubscribe(t, id)
	}
	s.subs = make(map[event.EventType]int)
}

func (s *EditorState) redraw(snap editor.Snapshot) {
	s.app.RenderSystem.Draw(s.canvas, snap)
}
