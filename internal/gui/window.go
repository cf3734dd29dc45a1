package gui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gogeo/internal/config"
	"github.com/philipparndt/gogeo/internal/editor"
	applog "github.com/philipparndt/gogeo/internal/log"
)

// Run opens the fyne window and blocks until it is closed
func Run(cfg config.Config) error {
	style, err := cfg.ViewerStyle()
	if err != nil {
		return err
	}
	log := applog.WithComponent("gui")

	a := fyneapp.NewWithID("io.github.philipparndt.gogeo")
	w := a.NewWindow(cfg.Window.Title)

	e := editor.New(editor.WithCamera(cfg.NewCamera()))
	c := NewEditorCanvas(e, style)

	status := widget.NewLabel("")
	updateStatus := func() {
		status.SetText(statusText(e))
	}
	updateStatus()
	c.SetOnChange(updateStatus)

	// Key presses reach the window canvas, not the widget
	w.Canvas().SetOnTypedRune(c.TypedRune)

	w.SetContent(container.NewBorder(nil, status, nil, nil, c))
	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	log.Info("editor started", slog.String("mode", e.Mode().String()))
	w.ShowAndRun()
	return nil
}

func statusText(e *editor.Editor) string {
	return fmt.Sprintf("Mode: %s   Points: %d   Lines: %d   (p/l/m/i modes, Z/z zoom, P pan)",
		e.Mode(), e.Points.Len(), e.Lines.Len())
}
