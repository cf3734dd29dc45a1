package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogeo/internal/editor"
)

var mouseButtons = []struct {
	rl     rl.MouseButton
	button editor.Button
}{
	{rl.MouseButtonLeft, editor.ButtonLeft},
	{rl.MouseButtonRight, editor.ButtonRight},
	{rl.MouseButtonMiddle, editor.ButtonMiddle},
}

// pollEvents collects this frame's input as editor events, in the order
// characters, presses, motion, releases
func (app *App) pollEvents() []editor.Event {
	var events []editor.Event

	for c := rl.GetCharPressed(); c > 0; c = rl.GetCharPressed() {
		events = append(events, editor.KeyDown{Key: rune(c)})
	}

	pos := rl.GetMousePosition()
	x, y := float64(pos.X), float64(pos.Y)

	for _, b := range mouseButtons {
		if rl.IsMouseButtonPressed(b.rl) {
			events = append(events, editor.PointerDown{Button: b.button, X: x, Y: y})
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		app.Input.leftDown = true
	}

	// Drags are reported only while the primary button is held
	if app.Input.leftDown && rl.IsMouseButtonDown(rl.MouseButtonLeft) && pos != app.Input.lastMousePos {
		events = append(events, editor.PointerMove{X: x, Y: y})
	}

	for _, b := range mouseButtons {
		if rl.IsMouseButtonReleased(b.rl) {
			events = append(events, editor.PointerUp{Button: b.button, X: x, Y: y})
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		app.Input.leftDown = false
	}

	app.Input.lastMousePos = pos
	return events
}
