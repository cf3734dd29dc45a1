package app

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogeo/internal/config"
	"github.com/philipparndt/gogeo/pkg/viewer"
	"github.com/philipparndt/gogeo/pkg/watcher"
)

// InputState holds mouse state carried between frames
type InputState struct {
	lastMousePos rl.Vector2
	leftDown     bool
}

// ViewSettings holds display settings
type ViewSettings struct {
	style    viewer.Style
	showHelp bool
}

// ReloadState holds config file watching state
type ReloadState struct {
	configPath  string
	fileWatcher *watcher.FileWatcher
	needsReload atomic.Bool // set by the watcher goroutine, consumed by the render loop
	config      config.Config
}
