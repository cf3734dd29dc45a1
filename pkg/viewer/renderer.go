package viewer

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/philipparndt/gogeo/pkg/geometry"
	"github.com/philipparndt/gogeo/pkg/scene"
)

// PrimitiveKind selects how a DrawRequest's positions are interpreted
type PrimitiveKind int

const (
	// KindPoints draws every position as a square dot
	KindPoints PrimitiveKind = iota
	// KindLines draws consecutive position pairs as segments
	KindLines
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindPoints:
		return "points"
	case KindLines:
		return "lines"
	default:
		return fmt.Sprintf("PrimitiveKind(%d)", int(k))
	}
}

// DrawRequest is a single draw call handed to a Renderer.
// Positions are in world space; MVP maps them to normalized device coordinates.
type DrawRequest struct {
	Kind      PrimitiveKind
	Positions []geometry.Point
	Color     color.RGBA
	Size      float64 // point size or line width in pixels
	MVP       gg.Matrix
}

// Renderer uploads positions and issues the actual draw
type Renderer interface {
	Draw(req DrawRequest) error
}

// Style holds the rendering hints used by DrawScene
type Style struct {
	PointColor color.RGBA
	LineColor  color.RGBA
	Background color.RGBA
	PointSize  float64
	LineWidth  float64
	LineMargin float64 // world units each segment is extended by on both ends
}

// DefaultStyle returns red points of size 10 and cyan lines of width 3 on black
func DefaultStyle() Style {
	return Style{
		PointColor: color.RGBA{R: 255, A: 255},
		LineColor:  color.RGBA{G: 255, B: 255, A: 255},
		Background: color.RGBA{A: 255},
		PointSize:  10,
		LineWidth:  3,
		LineMargin: 2,
	}
}

// DrawScene issues the draw requests for one frame: every line, then all points on top
func DrawScene(r Renderer, cam *Camera, points *scene.Points, lines *scene.Lines, style Style) error {
	mvp := cam.MVP()

	for i, line := range lines.All() {
		e1, e2 := line.Extended(style.LineMargin)
		err := r.Draw(DrawRequest{
			Kind:      KindLines,
			Positions: []geometry.Point{e1, e2},
			Color:     style.LineColor,
			Size:      style.LineWidth,
			MVP:       mvp,
		})
		if err != nil {
			return fmt.Errorf("failed to draw line %d: %w", i, err)
		}
	}

	if points.Len() == 0 {
		return nil
	}
	if err := r.Draw(DrawRequest{
		Kind:      KindPoints,
		Positions: points.All(),
		Color:     style.PointColor,
		Size:      style.PointSize,
		MVP:       mvp,
	}); err != nil {
		return fmt.Errorf("failed to draw points: %w", err)
	}
	return nil
}

// Selection holds the parts of a half-finished gesture that are drawn highlighted
type Selection struct {
	Point    geometry.Point
	HasPoint bool
	Line     geometry.Line
	HasLine  bool
}

// DrawSelection draws sel on top of a scene: the point at half size, the line extended like scene lines
func DrawSelection(r Renderer, cam *Camera, sel Selection, highlight color.RGBA, style Style) error {
	mvp := cam.MVP()

	if sel.HasPoint {
		if err := r.Draw(DrawRequest{
			Kind:      KindPoints,
			Positions: []geometry.Point{sel.Point},
			Color:     highlight,
			Size:      style.PointSize / 2,
			MVP:       mvp,
		}); err != nil {
			return fmt.Errorf("failed to draw selected point: %w", err)
		}
	}

	if sel.HasLine {
		e1, e2 := sel.Line.Extended(style.LineMargin)
		if err := r.Draw(DrawRequest{
			Kind:      KindLines,
			Positions: []geometry.Point{e1, e2},
			Color:     highlight,
			Size:      style.LineWidth,
			MVP:       mvp,
		}); err != nil {
			return fmt.Errorf("failed to draw selected line: %w", err)
		}
	}
	return nil
}
