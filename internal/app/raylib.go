// internal/app/raylib.go
package app

import (
	"errors"

	"go-round-rect/internal/config"
	"go-round-rect/internal/editor"
	"go-round-rect/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RunRaylib opens a raylib window and runs the editor until it is closed.
// raylib redraws from the current snapshot every frame.
func (a *App) RunRaylib() error {
	rl.InitWindow(int32(a.Settings.Width), int32(a.Settings.Height), a.Settings.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return errors.New("raylib window could not be created")
	}
	rl.SetTargetFPS(config.TargetFPS)

	canvas := render.NewRaylibCanvas(a.Fonts, a.Settings.FontSize)
	defer canvas.Unload()

	var tracker editor.PointerTracker
	for !rl.WindowShouldClose() {
		mouse := rl.GetMousePosition()
		pos := editor.Point{X: float64(mouse.X), Y: float64(mouse.Y)}
		a.Editor.Sample(&tracker,
			rl.IsMouseButtonPressed(rl.MouseLeftButton),
			rl.IsMouseButtonReleased(rl.MouseLeftButton),
			pos)

		rl.BeginDrawing()
		a.RenderSystem.Draw(canvas, a.Editor.Snapshot())
		rl.EndDrawing()
	}
	return nil
}
