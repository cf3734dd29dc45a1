package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gogpu/gg"
	"github.com/philipparndt/gogeo/pkg/geometry"
	"github.com/philipparndt/gogeo/pkg/viewer"
)

// raylibRenderer draws requests in screen space between BeginDrawing and EndDrawing
type raylibRenderer struct {
	vp viewer.Viewport
}

func (r *raylibRenderer) Draw(req viewer.DrawRequest) error {
	col := req.Color
	size := float32(req.Size)

	switch req.Kind {
	case viewer.KindLines:
		for i := 0; i+1 < len(req.Positions); i += 2 {
			p1 := r.toScreen(req, req.Positions[i])
			p2 := r.toScreen(req, req.Positions[i+1])
			rl.DrawLineEx(p1, p2, size, col)
		}
	case viewer.KindPoints:
		for _, p := range req.Positions {
			s := r.toScreen(req, p)
			rl.DrawRectangleV(
				rl.Vector2{X: s.X - size/2, Y: s.Y - size/2},
				rl.Vector2{X: size, Y: size},
				col)
		}
	default:
		return fmt.Errorf("unsupported primitive kind %v", req.Kind)
	}
	return nil
}

func (r *raylibRenderer) toScreen(req viewer.DrawRequest, p geometry.Point) rl.Vector2 {
	ndc := req.MVP.TransformPoint(gg.Pt(p.X, p.Y))
	x, y := viewer.NDCToPixel(geometry.NewPoint(ndc.X, ndc.Y), r.vp)
	return rl.Vector2{X: float32(x), Y: float32(y)}
}
