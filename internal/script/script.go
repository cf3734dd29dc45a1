// Package script reads recorded input sessions and replays them into an editor.
//
// A script is YAML:
//
//	viewport: {width: 600, height: 600}
//	events:
//	  - down_world: [0.2, 0.3]
//	  - key: "l"
//	  - down: [360, 210]
//
// Pixel events (down, move, up) go through the camera exactly like frontend input.
// World events (down_world, move_world) bypass it.
package script

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/philipparndt/gogeo/internal/editor"
	"github.com/philipparndt/gogeo/pkg/geometry"
	"github.com/philipparndt/gogeo/pkg/viewer"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaJSON)

type ViewportSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Step is one input event; exactly one field is set
type Step struct {
	Key       string    `yaml:"key,omitempty"`
	Down      []float64 `yaml:"down,omitempty"`
	Move      []float64 `yaml:"move,omitempty"`
	Up        []float64 `yaml:"up,omitempty"`
	DownWorld []float64 `yaml:"down_world,omitempty"`
	MoveWorld []float64 `yaml:"move_world,omitempty"`
}

type Script struct {
	Viewport *ViewportSpec `yaml:"viewport,omitempty"`
	Events   []Step        `yaml:"events"`
}

// ValidationError lists every schema violation of a script
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid script: " + strings.Join(e.Problems, "; ")
}

// Load reads and parses the script at path
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML script and validates it against the embedded schema
func Parse(data []byte) (*Script, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to validate script: %w", err)
	}
	if !result.Valid() {
		verr := &ValidationError{}
		for _, e := range result.Errors() {
			verr.Problems = append(verr.Problems, e.String())
		}
		return nil, verr
	}

	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	return &s, nil
}

// ViewportOr returns the script's viewport, or def when it has none
func (s *Script) ViewportOr(def viewer.Viewport) viewer.Viewport {
	if s.Viewport == nil {
		return def
	}
	return viewer.Viewport{Width: s.Viewport.Width, Height: s.Viewport.Height}
}

// Replay feeds every step into e in order and returns the number of steps that
// changed the scene or view
func Replay(e *editor.Editor, s *Script, vp viewer.Viewport, log *slog.Logger) int {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	changes := 0
	for i, step := range s.Events {
		if applyStep(e, step, vp) {
			changes++
		}
		log.Debug("replayed step", slog.Int("step", i), slog.String("mode", e.Mode().String()))
	}
	return changes
}

func applyStep(e *editor.Editor, step Step, vp viewer.Viewport) bool {
	switch {
	case step.Key != "":
		return e.Handle(editor.KeyDown{Key: []rune(step.Key)[0]}, vp)
	case step.Down != nil:
		return e.Handle(editor.PointerDown{Button: editor.ButtonLeft, X: step.Down[0], Y: step.Down[1]}, vp)
	case step.Move != nil:
		return e.Handle(editor.PointerMove{X: step.Move[0], Y: step.Move[1]}, vp)
	case step.Up != nil:
		return e.Handle(editor.PointerUp{Button: editor.ButtonLeft, X: step.Up[0], Y: step.Up[1]}, vp)
	case step.DownWorld != nil:
		return e.PointerDownAt(geometry.NewPoint(step.DownWorld[0], step.DownWorld[1]))
	case step.MoveWorld != nil:
		return e.DragTo(geometry.NewPoint(step.MoveWorld[0], step.MoveWorld[1]))
	}
	return false
}
