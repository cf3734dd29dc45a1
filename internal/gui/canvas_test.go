package gui

import (
	"bytes"
	"math"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/gogeo/internal/editor"
	applog "github.com/philipparndt/gogeo/internal/log"
	"github.com/philipparndt/gogeo/pkg/geometry"
	"github.com/philipparndt/gogeo/pkg/viewer"
)

func newTestEditor() *editor.Editor {
	var buf bytes.Buffer
	return editor.New(editor.WithLogger(applog.New(applog.Options{Output: &buf})))
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestSceneObjects(t *testing.T) {
	e := newTestEditor()
	e.Points.Add(geometry.NewPoint(0, 0))
	e.Lines.Add(geometry.NewPoint(-0.5, 0), geometry.NewPoint(0.5, 0))

	style := viewer.DefaultStyle()
	style.LineMargin = 0.5
	vp := viewer.Viewport{Width: 100, Height: 100}

	objects, err := sceneObjects(e, style, vp, fyne.NewSize(100, 100))
	if err != nil {
		t.Fatalf("sceneObjects failed: %v", err)
	}
	if len(objects) != 3 {
		t.Fatalf("expected background, line and point, got %d objects", len(objects))
	}

	bg, ok := objects[0].(*canvas.Rectangle)
	if !ok || bg.FillColor != style.Background || bg.Size() != fyne.NewSize(100, 100) {
		t.Errorf("first object should be the background, got %#v", objects[0])
	}

	line, ok := objects[1].(*canvas.Line)
	if !ok {
		t.Fatalf("expected a line, got %T", objects[1])
	}
	if !near(line.Position1.X, 0) || !near(line.Position1.Y, 50) || !near(line.Position2.X, 100) || !near(line.Position2.Y, 50) {
		t.Errorf("line drawn at %v-%v, expected (0,50)-(100,50)", line.Position1, line.Position2)
	}
	if line.StrokeColor != style.LineColor || line.StrokeWidth != 3 {
		t.Errorf("unexpected line style %v %v", line.StrokeColor, line.StrokeWidth)
	}

	point, ok := objects[2].(*canvas.Rectangle)
	if !ok {
		t.Fatalf("expected a point marker, got %T", objects[2])
	}
	if !near(point.Position().X, 45) || !near(point.Position().Y, 45) || point.Size() != fyne.NewSize(10, 10) {
		t.Errorf("point marker at %v size %v", point.Position(), point.Size())
	}
}

func TestSceneObjectsHighlightsPending(t *testing.T) {
	e := newTestEditor()
	e.PointerDownAt(geometry.NewPoint(0, 0))
	e.SetMode(editor.CreateLine)
	e.PointerDownAt(geometry.NewPoint(0, 0))

	objects, err := sceneObjects(e, viewer.DefaultStyle(), viewer.Viewport{Width: 100, Height: 100}, fyne.NewSize(100, 100))
	if err != nil {
		t.Fatalf("sceneObjects failed: %v", err)
	}
	if len(objects) != 3 {
		t.Fatalf("expected background, point and highlight, got %d objects", len(objects))
	}
	if hl := objects[2].(*canvas.Rectangle); hl.FillColor != highlightColor {
		t.Errorf("expected highlight color, got %v", hl.FillColor)
	}
}

func TestEditorCanvasEvents(t *testing.T) {
	test.NewTempApp(t)

	e := newTestEditor()
	c := NewEditorCanvas(e, viewer.DefaultStyle())
	c.Resize(fyne.NewSize(100, 100))

	changes := 0
	c.SetOnChange(func() { changes++ })

	c.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(75, 25)},
		Button:     desktop.MouseButtonSecondary,
	})
	if e.Points.Len() != 0 || changes != 0 {
		t.Fatal("secondary button should be ignored")
	}

	c.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(75, 25)},
		Button:     desktop.MouseButtonPrimary,
	})
	p, ok := e.Points.Get(0)
	if !ok || math.Abs(p.X-0.5) > 1e-9 || math.Abs(p.Y-0.5) > 1e-9 {
		t.Errorf("expected a point at (0.5,0.5), got %v", p)
	}
	if changes != 1 {
		t.Errorf("expected 1 change notification, got %d", changes)
	}

	c.TypedRune('l')
	if e.Mode() != editor.CreateLine {
		t.Errorf("expected create-line mode, got %v", e.Mode())
	}
}

func TestEditorCanvasReleaseClearsHighlight(t *testing.T) {
	test.NewTempApp(t)

	e := newTestEditor()
	e.Lines.Add(geometry.NewPoint(-1, 0), geometry.NewPoint(1, 0))
	e.SetMode(editor.MoveLine)
	c := NewEditorCanvas(e, viewer.DefaultStyle())
	c.Resize(fyne.NewSize(100, 100))

	changes := 0
	c.SetOnChange(func() { changes++ })

	center := &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(50, 50)},
		Button:     desktop.MouseButtonPrimary,
	}
	c.MouseDown(center)
	if _, ok := e.DraggingLine(); !ok || changes != 1 {
		t.Fatalf("expected the line to be grabbed with 1 change, got %d", changes)
	}

	c.MouseUp(center)
	if changes != 2 {
		t.Errorf("release should notify a change, got %d notifications", changes)
	}

	objects, err := sceneObjects(e, viewer.DefaultStyle(), c.viewport(), fyne.NewSize(100, 100))
	if err != nil {
		t.Fatalf("sceneObjects failed: %v", err)
	}
	for _, obj := range objects {
		if line, ok := obj.(*canvas.Line); ok && line.StrokeColor == highlightColor {
			t.Error("released line should no longer be highlighted")
		}
	}
}
