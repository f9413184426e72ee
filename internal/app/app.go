// internal/app/app.go
package app

import (
	"fmt"
	"log"

	"go-round-rect/internal/config"
	"go-round-rect/internal/editor"
	"go-round-rect/internal/event"
	"go-round-rect/internal/system"
	"go-round-rect/pkg/render"
)

// App holds the editor state, its event bus and the renderer.
type App struct {
	Settings        config.Settings
	EventDispatcher *event.Dispatcher
	Editor          *editor.Editor
	RenderSystem    *system.RenderSystem
	Fonts           *render.FontSource
}

// New builds the editor from settings. A font that cannot be loaded is an
// initialization error.
func New(s config.Settings) (*App, error) {
	fonts, err := render.LoadFont(s.FontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	// Проверяем, что шрифт нужного размера создаётся
	if _, err := fonts.Face(s.FontSize); err != nil {
		return nil, err
	}

	dispatcher := event.NewDispatcher()
	ed := editor.New(
		editor.WithDispatcher(dispatcher),
		editor.WithHitRadius(s.HitRadius),
	)

	opts := system.DefaultRenderOptions()
	opts.PointRadius = s.PointRadius
	opts.FontSize = s.FontSize
	opts.RadiusDisplayScale = s.RadiusDisplayScale

	a := &App{
		Settings:        s,
		EventDispatcher: dispatcher,
		Editor:          ed,
		RenderSystem:    system.NewRenderSystem(system.NewPalette(s.Colors), opts),
		Fonts:           fonts,
	}
	if s.Verbose {
		dispatcher.Subscribe(event.GestureStarted, event.ListenerFunc(a.logEvent))
		dispatcher.Subscribe(event.GestureEnded, event.ListenerFunc(a.logEvent))
	}
	return a, nil
}

func (a *App) logEvent(ev event.Event) {
	if snap, ok := editor.SnapshotOf(ev); ok {
		log.Printf("%s: %s", ev.Type, snap)
	}
}
