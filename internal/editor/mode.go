package editor

import (
	"fmt"

	"github.com/philipparndt/gogeo/pkg/scene"
)

// Mode is the active interaction mode
type Mode int

const (
	PlacePoint Mode = iota
	CreateLine
	MoveLine
	Intersect
)

func (m Mode) String() string {
	switch m {
	case PlacePoint:
		return "place-point"
	case CreateLine:
		return "create-line"
	case MoveLine:
		return "move-line"
	case Intersect:
		return "intersect"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// modeState is the active mode together with the selection it has collected so far.
// Exactly one implementation is live at a time, so two modes can never be active at once.
type modeState interface {
	mode() Mode
}

type placePointState struct{}

func (*placePointState) mode() Mode { return PlacePoint }

// createLineState remembers the first picked point of a line gesture
type createLineState struct {
	first    scene.PointID
	hasFirst bool
}

func (*createLineState) mode() Mode { return CreateLine }

// moveLineState remembers the line under the pointer while the button is held
type moveLineState struct {
	dragging    scene.LineID
	hasDragging bool
}

func (*moveLineState) mode() Mode { return MoveLine }

// intersectState remembers the first picked line of an intersection gesture
type intersectState struct {
	first    scene.LineID
	hasFirst bool
}

func (*intersectState) mode() Mode { return Intersect }

// newModeState returns a fresh state for m with nothing selected
func newModeState(m Mode) modeState {
	switch m {
	case CreateLine:
		return &createLineState{}
	case MoveLine:
		return &moveLineState{}
	case Intersect:
		return &intersectState{}
	default:
		return &placePointState{}
	}
}
