// Package gui is the fyne frontend of the editor.
package gui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"
	"github.com/philipparndt/gogeo/internal/editor"
	"github.com/philipparndt/gogeo/pkg/geometry"
	"github.com/philipparndt/gogeo/pkg/viewer"
)

var highlightColor = color.RGBA{R: 255, G: 220, A: 255}

// EditorCanvas is a widget that shows an editor session and forwards input to it
type EditorCanvas struct {
	widget.BaseWidget
	editor   *editor.Editor
	style    viewer.Style
	size     fyne.Size
	onChange func()
}

var (
	_ desktop.Mouseable = (*EditorCanvas)(nil)
	_ fyne.Draggable    = (*EditorCanvas)(nil)
)

// NewEditorCanvas creates a canvas widget for e
func NewEditorCanvas(e *editor.Editor, style viewer.Style) *EditorCanvas {
	c := &EditorCanvas{editor: e, style: style}
	c.ExtendBaseWidget(c)
	return c
}

// SetOnChange sets the callback run after an event changed the scene or view
func (c *EditorCanvas) SetOnChange(callback func()) {
	c.onChange = callback
}

// SetStyle replaces the rendering style and redraws
func (c *EditorCanvas) SetStyle(style viewer.Style) {
	c.style = style
	c.Refresh()
}

func (c *EditorCanvas) viewport() viewer.Viewport {
	return viewer.Viewport{Width: int(c.size.Width), Height: int(c.size.Height)}
}

func (c *EditorCanvas) handle(ev editor.Event) {
	if c.editor.Handle(ev, c.viewport()) {
		c.Refresh()
		if c.onChange != nil {
			c.onChange()
		}
	}
}

// MouseDown forwards button presses
func (c *EditorCanvas) MouseDown(ev *desktop.MouseEvent) {
	c.handle(editor.PointerDown{Button: button(ev.Button), X: float64(ev.Position.X), Y: float64(ev.Position.Y)})
}

// MouseUp forwards button releases
func (c *EditorCanvas) MouseUp(ev *desktop.MouseEvent) {
	c.handle(editor.PointerUp{Button: button(ev.Button), X: float64(ev.Position.X), Y: float64(ev.Position.Y)})
}

// Dragged forwards pointer motion while a button is held
func (c *EditorCanvas) Dragged(ev *fyne.DragEvent) {
	c.handle(editor.PointerMove{X: float64(ev.Position.X), Y: float64(ev.Position.Y)})
}

// DragEnd is a no-op; MouseUp ends the drag
func (c *EditorCanvas) DragEnd() {}

// TypedRune forwards typed characters
func (c *EditorCanvas) TypedRune(r rune) {
	c.handle(editor.KeyDown{Key: r})
}

func button(b desktop.MouseButton) editor.Button {
	switch b {
	case desktop.MouseButtonSecondary:
		return editor.ButtonRight
	case desktop.MouseButtonTertiary:
		return editor.ButtonMiddle
	default:
		return editor.ButtonLeft
	}
}

// CreateRenderer creates the renderer for the widget
func (c *EditorCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &editorCanvasRenderer{canvas: c}
}

// editorCanvasRenderer implements fyne.WidgetRenderer
type editorCanvasRenderer struct {
	canvas  *EditorCanvas
	objects []fyne.CanvasObject
}

func (m *editorCanvasRenderer) Layout(size fyne.Size) {
	m.canvas.size = size
	m.rebuild()
}

func (m *editorCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (m *editorCanvasRenderer) Refresh() {
	m.rebuild()
	canvas.Refresh(m.canvas)
}

func (m *editorCanvasRenderer) Objects() []fyne.CanvasObject {
	return m.objects
}

func (m *editorCanvasRenderer) Destroy() {}

func (m *editorCanvasRenderer) rebuild() {
	c := m.canvas
	objects, err := sceneObjects(c.editor, c.style, c.viewport(), c.size)
	if err != nil {
		fyne.LogError("failed to draw scene", err)
	}
	m.objects = objects
}

// sceneObjects converts one frame into canvas objects, background first
func sceneObjects(e *editor.Editor, style viewer.Style, vp viewer.Viewport, size fyne.Size) ([]fyne.CanvasObject, error) {
	bg := canvas.NewRectangle(style.Background)
	bg.Resize(size)

	r := &objectRenderer{vp: vp, objects: []fyne.CanvasObject{bg}}
	if err := viewer.DrawScene(r, e.Camera, e.Points, e.Lines, style); err != nil {
		return r.objects, err
	}

	if err := viewer.DrawSelection(r, e.Camera, e.Selection(), highlightColor, style); err != nil {
		return r.objects, err
	}
	return r.objects, nil
}

// objectRenderer turns draw requests into fyne canvas primitives
type objectRenderer struct {
	vp      viewer.Viewport
	objects []fyne.CanvasObject
}

func (r *objectRenderer) Draw(req viewer.DrawRequest) error {
	switch req.Kind {
	case viewer.KindLines:
		for i := 0; i+1 < len(req.Positions); i += 2 {
			line := canvas.NewLine(req.Color)
			line.StrokeWidth = float32(req.Size)
			line.Position1 = r.toScreen(req.MVP, req.Positions[i])
			line.Position2 = r.toScreen(req.MVP, req.Positions[i+1])
			r.objects = append(r.objects, line)
		}
	case viewer.KindPoints:
		size := float32(req.Size)
		for _, p := range req.Positions {
			pos := r.toScreen(req.MVP, p)
			marker := canvas.NewRectangle(req.Color)
			marker.Resize(fyne.NewSize(size, size))
			marker.Move(fyne.NewPos(pos.X-size/2, pos.Y-size/2))
			r.objects = append(r.objects, marker)
		}
	default:
		return fmt.Errorf("unsupported primitive kind %v", req.Kind)
	}
	return nil
}

func (r *objectRenderer) toScreen(mvp gg.Matrix, p geometry.Point) fyne.Position {
	ndc := mvp.TransformPoint(gg.Pt(p.X, p.Y))
	x, y := viewer.NDCToPixel(geometry.NewPoint(ndc.X, ndc.Y), r.vp)
	return fyne.NewPos(float32(x), float32(y))
}
