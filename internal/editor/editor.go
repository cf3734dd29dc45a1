// Package editor implements the interaction state machine of the geometry editor.
//
// An Editor owns the camera and both collections. Frontends feed it discrete input
// events; every event is handled to completion before the next one, and the frontend
// redraws whenever Handle reports a change.
package editor

import (
	"log/slog"

	applog "github.com/philipparndt/gogeo/internal/log"
	"github.com/philipparndt/gogeo/pkg/geometry"
	"github.com/philipparndt/gogeo/pkg/scene"
	"github.com/philipparndt/gogeo/pkg/viewer"
)

// PickThreshold is the world-space distance within which a click selects a point or line
const PickThreshold = 0.03

// ZoomStep is the factor applied by one zoom key press
const ZoomStep = 1.1

// Editor is one independent editing session
type Editor struct {
	Camera *viewer.Camera
	Points *scene.Points
	Lines  *scene.Lines

	state modeState
	log   *slog.Logger
}

// Option configures an Editor
type Option func(*Editor)

// WithLogger sets the logger notices are written to
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) { e.log = l }
}

// WithCamera replaces the default camera
func WithCamera(c *viewer.Camera) Option {
	return func(e *Editor) { e.Camera = c }
}

// New creates an empty session in PlacePoint mode
func New(opts ...Option) *Editor {
	e := &Editor{
		Camera: viewer.NewCamera(),
		Points: scene.NewPoints(),
		Lines:  scene.NewLines(),
		state:  newModeState(PlacePoint),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = applog.WithComponent("editor")
	}
	return e
}

// Mode returns the active mode
func (e *Editor) Mode() Mode {
	return e.state.mode()
}

// SetMode switches to m and drops any half-finished gesture, even when m is already active
func (e *Editor) SetMode(m Mode) {
	e.state = newModeState(m)
	e.log.Debug("mode changed", slog.String("mode", m.String()))
}

// PendingPoint returns the first point of an unfinished line gesture
func (e *Editor) PendingPoint() (scene.PointID, bool) {
	if s, ok := e.state.(*createLineState); ok && s.hasFirst {
		return s.first, true
	}
	return -1, false
}

// PendingLine returns the first line of an unfinished intersection gesture
func (e *Editor) PendingLine() (scene.LineID, bool) {
	if s, ok := e.state.(*intersectState); ok && s.hasFirst {
		return s.first, true
	}
	return -1, false
}

// DraggingLine returns the line currently being dragged
func (e *Editor) DraggingLine() (scene.LineID, bool) {
	if s, ok := e.state.(*moveLineState); ok && s.hasDragging {
		return s.dragging, true
	}
	return -1, false
}

// Selection resolves the pending point and the pending or dragged line for highlighting
func (e *Editor) Selection() viewer.Selection {
	var sel viewer.Selection
	if id, ok := e.PendingPoint(); ok {
		sel.Point, sel.HasPoint = e.Points.Get(id)
	}
	lineID, ok := e.PendingLine()
	if !ok {
		lineID, ok = e.DraggingLine()
	}
	if ok {
		sel.Line, sel.HasLine = e.Lines.Get(lineID)
	}
	return sel
}

// PointerDownAt handles a primary button press at a world position.
// It reports whether the scene or the pending selection changed.
func (e *Editor) PointerDownAt(click geometry.Point) bool {
	switch s := e.state.(type) {
	case *placePointState:
		e.addPoint(click)
		return true

	case *createLineState:
		picked, hit := e.Points.Pick(click, PickThreshold)
		if !s.hasFirst {
			if hit {
				s.first, s.hasFirst = picked, true
			}
			return hit
		}
		if hit && picked != s.first {
			e.addLine(s.first, picked)
		}
		s.hasFirst = false
		return true

	case *moveLineState:
		wasDragging := s.hasDragging
		s.dragging, s.hasDragging = e.Lines.Pick(click, PickThreshold)
		return wasDragging || s.hasDragging

	case *intersectState:
		picked, hit := e.Lines.Pick(click, PickThreshold)
		if !s.hasFirst {
			if hit {
				s.first, s.hasFirst = picked, true
			}
			return hit
		}
		if hit && picked != s.first {
			e.addIntersection(s.first, picked)
		}
		s.hasFirst = false
		return true
	}
	return false
}

// DragTo moves the dragged line so its first anchor follows the pointer.
// It reports whether anything moved.
func (e *Editor) DragTo(click geometry.Point) bool {
	s, ok := e.state.(*moveLineState)
	if !ok || !s.hasDragging {
		return false
	}
	if !e.Lines.Translate(s.dragging, click) {
		return false
	}
	line, _ := e.Lines.Get(s.dragging)
	e.log.Debug("line moved",
		slog.Int("line", int(s.dragging)),
		slog.String("implicit", line.Implicit()))
	return true
}

// PointerUp ends any drag session, whatever the mode, and reports whether one was active
func (e *Editor) PointerUp() bool {
	s, ok := e.state.(*moveLineState)
	if !ok || !s.hasDragging {
		return false
	}
	s.hasDragging = false
	return true
}

// HandleKey applies the command bound to key and reports whether the key is bound
func (e *Editor) HandleKey(key rune) bool {
	switch key {
	case 'Z':
		e.Camera.Zoom(ZoomStep)
	case 'z':
		e.Camera.Zoom(1 / ZoomStep)
	case 'P':
		e.Camera.Pan(1)
	case 'p':
		e.SetMode(PlacePoint)
	case 'l':
		e.SetMode(CreateLine)
	case 'm':
		e.SetMode(MoveLine)
	case 'i':
		e.SetMode(Intersect)
	default:
		return false
	}
	return true
}

// Handle dispatches a pixel-space event, unprojecting pointer positions through the
// camera. It reports whether the scene or view changed and needs a redraw.
// Pointer events are dropped while the viewport has no area.
func (e *Editor) Handle(ev Event, vp viewer.Viewport) bool {
	switch ev := ev.(type) {
	case KeyDown:
		return e.HandleKey(ev.Key)
	case PointerDown:
		if ev.Button != ButtonLeft || vp.Empty() {
			return false
		}
		return e.PointerDownAt(e.Camera.Unproject(ev.X, ev.Y, vp))
	case PointerMove:
		if vp.Empty() {
			return false
		}
		return e.DragTo(e.Camera.Unproject(ev.X, ev.Y, vp))
	case PointerUp:
		if ev.Button != ButtonLeft {
			return false
		}
		return e.PointerUp()
	}
	return false
}

func (e *Editor) addPoint(p geometry.Point) scene.PointID {
	id := e.Points.Add(p)
	e.log.Info("point added",
		slog.Int("point", int(id)),
		slog.Float64("x", p.X),
		slog.Float64("y", p.Y))
	return id
}

func (e *Editor) addLine(from, to scene.PointID) {
	p1, _ := e.Points.Get(from)
	p2, _ := e.Points.Get(to)
	id := e.Lines.Add(p1, p2)
	line, _ := e.Lines.Get(id)
	e.log.Info("line added",
		slog.Int("line", int(id)),
		slog.String("implicit", line.Implicit()),
		slog.String("parametric", line.Parametric()))
}

func (e *Editor) addIntersection(first, second scene.LineID) {
	l1, _ := e.Lines.Get(first)
	l2, _ := e.Lines.Get(second)
	p, ok := l1.Intersect(l2)
	if !ok {
		e.log.Debug("lines do not intersect",
			slog.Int("first", int(first)),
			slog.Int("second", int(second)))
		return
	}
	e.log.Info("intersection found",
		slog.Int("first", int(first)),
		slog.Int("second", int(second)))
	e.addPoint(p)
}
