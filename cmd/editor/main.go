// cmd/editor/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-round-rect/internal/app"
	"go-round-rect/internal/config"
	"go-round-rect/internal/state"
	"go-round-rect/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	backend := flag.String("backend", "", "window backend: ebiten or raylib (overrides settings)")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *backend != "" {
		settings.Backend = *backend
		if err := settings.Validate(); err != nil {
			log.Fatal(err)
		}
	}

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	editorApp, err := app.New(settings)
	if err != nil {
		log.Fatal(err)
	}

	if settings.Backend == config.BackendRaylib {
		if err := editorApp.RunRaylib(); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Без поверхности рисования работать нельзя: выходим сразу
	canvas, err := render.NewCanvas(settings.Width, settings.Height, editorApp.Fonts)
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewEditorState(editorApp, canvas))
	defer sm.Close()
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          settings.Width,
		height:         settings.Height,
	}
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle(settings.Title)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
