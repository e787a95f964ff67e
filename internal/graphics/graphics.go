package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window Run opens.
type Window struct {
	Title     string
	Width     int
	Height    int
	TargetFPS int
	// OnClose, if set, runs after the loop ends and before the GL context goes away.
	OnClose func()
}

// Run opens a resizable, multisampled window and runs the main loop. Each frame it calls update
// (input), then clears the screen and calls draw. setup, if not nil, runs once after the GL
// context exists (fonts and textures must be loaded there). ESC is left to the console; close
// via the window button.
func Run(w Window, setup, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(w.TargetFPS))
	if setup != nil {
		setup()
	}

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(30, 30, 34, 255))
		draw()
		rl.EndDrawing()
	}
	if w.OnClose != nil {
		w.OnClose()
	}
}
