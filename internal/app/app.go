// Package app is the raylib frontend of the editor.
package app

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogeo/internal/config"
	"github.com/philipparndt/gogeo/internal/editor"
	applog "github.com/philipparndt/gogeo/internal/log"
	"github.com/philipparndt/gogeo/pkg/viewer"
)

type App struct {
	Editor *editor.Editor
	Input  InputState
	View   ViewSettings
	Reload ReloadState

	renderer *raylibRenderer
	log      *slog.Logger
}

// Run opens the window and runs the editor until it is closed
func Run(cfg config.Config, configPath string) error {
	style, err := cfg.ViewerStyle()
	if err != nil {
		return err
	}

	app := &App{
		Editor:   editor.New(editor.WithCamera(cfg.NewCamera())),
		View:     ViewSettings{style: style, showHelp: true},
		renderer: &raylibRenderer{},
		log:      applog.WithComponent("app"),
	}
	app.Reload.configPath = configPath
	app.Reload.config = cfg

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	if err := app.setupConfigWatcher(); err != nil {
		app.log.Warn("config hot reload unavailable", slog.Any("err", err))
	} else {
		defer app.Reload.fileWatcher.Close()
	}

	app.log.Info("editor started",
		slog.String("mode", app.Editor.Mode().String()),
		slog.Int("width", cfg.Window.Width),
		slog.Int("height", cfg.Window.Height))

	for !rl.WindowShouldClose() {
		if app.Reload.needsReload.Swap(false) {
			app.reloadConfig()
		}

		vp := viewport()
		for _, ev := range app.pollEvents() {
			app.Editor.Handle(ev, vp)
		}
		if rl.IsKeyPressed(rl.KeyF1) {
			app.View.showHelp = !app.View.showHelp
		}

		rl.BeginDrawing()
		rl.ClearBackground(app.View.style.Background)

		app.renderer.vp = vp
		if err := viewer.DrawScene(app.renderer, app.Editor.Camera, app.Editor.Points, app.Editor.Lines, app.View.style); err != nil {
			rl.EndDrawing()
			return fmt.Errorf("failed to draw scene: %w", err)
		}
		if err := app.drawSelection(); err != nil {
			rl.EndDrawing()
			return fmt.Errorf("failed to draw selection: %w", err)
		}
		app.drawUI()

		rl.EndDrawing()
	}

	return nil
}

func viewport() viewer.Viewport {
	return viewer.Viewport{Width: rl.GetScreenWidth(), Height: rl.GetScreenHeight()}
}
