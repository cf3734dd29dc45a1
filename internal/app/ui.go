package app

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogeo/pkg/viewer"
	"github.com/philipparndt/gogeo/version"
)

var highlightColor = color.RGBA{R: 255, G: 220, A: 255}

var helpLines = []string{
	"p: place point",
	"l: create line",
	"m: move line",
	"i: intersect",
	"Z / z: zoom out / in",
	"P: pan right",
	"F1: toggle help",
}

// drawSelection highlights the half-finished gesture on top of the scene
func (app *App) drawSelection() error {
	e := app.Editor
	return viewer.DrawSelection(app.renderer, e.Camera, e.Selection(), highlightColor, app.View.style)
}

// drawUI draws the status bar and key help
func (app *App) drawUI() {
	y := int32(10)
	lineHeight := int32(20)
	fontSize := int32(16)

	status := fmt.Sprintf("Mode: %s   Points: %d   Lines: %d",
		app.Editor.Mode(), app.Editor.Points.Len(), app.Editor.Lines.Len())
	rl.DrawText(status, 10, y, fontSize, rl.White)
	y += lineHeight

	if app.View.showHelp {
		y += lineHeight / 2
		for _, line := range helpLines {
			rl.DrawText(line, 10, y, 14, rl.LightGray)
			y += lineHeight - 4
		}
	}

	screenHeight := int32(rl.GetScreenHeight())
	w, h := app.Editor.Camera.Window()
	off := app.Editor.Camera.Offset()
	camText := fmt.Sprintf("window %.2f x %.2f  offset %.2f", w, h, off.X)
	rl.DrawText(camText, 10, screenHeight-24, 14, rl.Gray)

	versionText := "gogeo " + version.GetVersion()
	textWidth := rl.MeasureText(versionText, 14)
	rl.DrawText(versionText, int32(rl.GetScreenWidth())-textWidth-10, screenHeight-24, 14, rl.Gray)
}
