package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogeo/internal/config"
	"github.com/philipparndt/gogeo/pkg/watcher"
)

// setupConfigWatcher watches the config file and flags a reload when it changes
func (app *App) setupConfigWatcher() error {
	path := app.Reload.configPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return err
		}
		path = p
	}

	fw, err := watcher.NewFileWatcher(500*time.Millisecond, app.log)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(changedFile string) {
		app.log.Debug("config changed", slog.String("file", changedFile))
		app.Reload.needsReload.Store(true)
	}
	if err := fw.Watch([]string{path}, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch config: %w", err)
	}

	fw.Start(context.Background())
	app.Reload.configPath = path
	app.Reload.fileWatcher = fw
	app.log.Info("watching config for changes", slog.String("file", path))
	return nil
}

// reloadConfig re-reads the config on the render thread; a broken file keeps the
// previous settings
func (app *App) reloadConfig() {
	cfg, err := config.Load(app.Reload.configPath)
	if err != nil {
		app.log.Warn("config reload failed", slog.Any("err", err))
		return
	}
	style, err := cfg.ViewerStyle()
	if err != nil {
		app.log.Warn("config reload failed", slog.Any("err", err))
		return
	}

	prev := app.Reload.config
	app.View.style = style
	if cfg.Window.Width != prev.Window.Width || cfg.Window.Height != prev.Window.Height {
		rl.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != prev.Window.Title {
		rl.SetWindowTitle(cfg.Window.Title)
	}
	app.Reload.config = cfg
	app.log.Info("config reloaded")
}
