package viewer

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/philipparndt/gogeo/pkg/geometry"
)

func nearIdentity(m gg.Matrix) bool {
	id := gg.Identity()
	vals := [][2]float64{{m.A, id.A}, {m.B, id.B}, {m.C, id.C}, {m.D, id.D}, {m.E, id.E}, {m.F, id.F}}
	for _, v := range vals {
		if math.Abs(v[0]-v[1]) > 1e-12 {
			return false
		}
	}
	return true
}

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera()
	w, h := cam.Window()

	if w != 2 || h != 2 {
		t.Errorf("Window failed: expected 2x2, got %vx%v", w, h)
	}
	if cam.Offset() != (geometry.Point{}) {
		t.Errorf("Offset failed: expected origin, got %v", cam.Offset())
	}
	if !cam.MVP().IsIdentity() {
		t.Errorf("default MVP should be identity, got %+v", cam.MVP())
	}
}

func TestCameraZoom(t *testing.T) {
	cam := NewCamera()
	cam.Zoom(1.1)
	w, h := cam.Window()

	if math.Abs(w-2.2) > 1e-10 || math.Abs(h-2.2) > 1e-10 {
		t.Errorf("Zoom out failed: expected 2.2, got %vx%v", w, h)
	}

	cam.Zoom(1 / 1.1)
	w, h = cam.Window()
	if math.Abs(w-2) > 1e-10 || math.Abs(h-2) > 1e-10 {
		t.Errorf("Zoom in failed: expected 2, got %vx%v", w, h)
	}
}

func TestCameraPan(t *testing.T) {
	cam := NewCamera()
	cam.Pan(1)
	cam.Pan(1)

	off := cam.Offset()
	if math.Abs(off.X-2.0/15.0) > 1e-10 {
		t.Errorf("Pan failed: expected x=%v, got %v", 2.0/15.0, off.X)
	}
	if off.Y != 0 {
		t.Errorf("Pan must not touch y, got %v", off.Y)
	}
}

func TestCameraUnprojectDefault(t *testing.T) {
	cam := NewCamera()
	vp := Viewport{Width: 600, Height: 600}

	tests := []struct {
		px, py float64
		want   geometry.Point
	}{
		{300, 300, geometry.NewPoint(0, 0)},
		{0, 0, geometry.NewPoint(-1, 1)},
		{600, 600, geometry.NewPoint(1, -1)},
		{360, 210, geometry.NewPoint(0.2, 0.3)},
	}

	for _, tt := range tests {
		got := cam.Unproject(tt.px, tt.py, vp)
		if math.Abs(got.X-tt.want.X) > 1e-10 || math.Abs(got.Y-tt.want.Y) > 1e-10 {
			t.Errorf("Unproject(%v,%v) failed: expected %v, got %v", tt.px, tt.py, tt.want, got)
		}
	}
}

func TestCameraUnprojectPannedAndZoomed(t *testing.T) {
	cam := NewCamera()
	cam.Zoom(2)
	cam.Pan(15)
	vp := Viewport{Width: 400, Height: 200}

	// Centre of the screen shows the offset, the right edge is offset + width/2.
	if got := cam.Unproject(200, 100, vp); math.Abs(got.X-1) > 1e-10 || math.Abs(got.Y) > 1e-10 {
		t.Errorf("Unproject centre failed: expected (1,0), got %v", got)
	}
	if got := cam.Unproject(400, 0, vp); math.Abs(got.X-3) > 1e-10 || math.Abs(got.Y-2) > 1e-10 {
		t.Errorf("Unproject corner failed: expected (3,2), got %v", got)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	setups := []func(*Camera){
		func(c *Camera) {},
		func(c *Camera) { c.Zoom(1.1) },
		func(c *Camera) { c.Zoom(1 / 1.1); c.Zoom(1 / 1.1) },
		func(c *Camera) { c.Pan(1); c.Pan(1); c.Pan(1) },
		func(c *Camera) { c.SetWindow(7, 3); c.Pan(-4) },
	}
	pixels := [][2]float64{{0, 0}, {400, 300}, {799, 1}, {123.5, 456.25}, {800, 600}}

	for i, setup := range setups {
		cam := NewCamera()
		setup(cam)
		for _, px := range pixels {
			world := cam.Unproject(px[0], px[1], vp)
			ndc := cam.Project(world)
			want := PixelToNDC(px[0], px[1], vp)
			if math.Abs(ndc.X-want.X) > 1e-9 || math.Abs(ndc.Y-want.Y) > 1e-9 {
				t.Errorf("setup %d pixel %v: expected NDC %v, got %v", i, px, want, ndc)
			}

			sx, sy := cam.ToScreen(world, vp)
			if math.Abs(sx-px[0]) > 1e-9 || math.Abs(sy-px[1]) > 1e-9 {
				t.Errorf("setup %d pixel %v: ToScreen gave (%v,%v)", i, px, sx, sy)
			}
		}
	}
}

func TestCameraInverses(t *testing.T) {
	cam := NewCamera()
	cam.SetWindow(5, 3)
	cam.Pan(7)

	viewRound := cam.ViewInverse().Multiply(cam.View())
	projRound := cam.ProjectionInverse().Multiply(cam.Projection())
	if !nearIdentity(viewRound) {
		t.Errorf("ViewInverse*View should be identity, got %+v", viewRound)
	}
	if !nearIdentity(projRound) {
		t.Errorf("ProjectionInverse*Projection should be identity, got %+v", projRound)
	}
}

func TestViewportEmpty(t *testing.T) {
	tests := map[Viewport]bool{
		{Width: 600, Height: 400}: false,
		{Width: 1, Height: 1}:     false,
		{}:                        true,
		{Width: 600}:              true,
		{Height: 600}:             true,
		{Width: -1, Height: 10}:   true,
	}
	for vp, want := range tests {
		if got := vp.Empty(); got != want {
			t.Errorf("Empty(%+v) failed: expected %v, got %v", vp, want, got)
		}
	}
}
