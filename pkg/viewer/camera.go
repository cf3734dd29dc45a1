package viewer

import (
	"github.com/gogpu/gg"
	"github.com/philipparndt/gogeo/pkg/geometry"
)

// PanDivisor turns one pan unit into a world-space shift of 1/15
const PanDivisor = 15.0

// Viewport is the pixel size of the surface the scene is shown on
type Viewport struct {
	Width  int
	Height int
}

// Empty reports whether the viewport has no area; pixel positions cannot be normalized then
func (vp Viewport) Empty() bool {
	return vp.Width <= 0 || vp.Height <= 0
}

// Camera is an orthographic 2D camera described by the world-space window it shows:
// a width x height rectangle centred on offset.
type Camera struct {
	offset geometry.Point
	width  float64
	height float64
}

// NewCamera creates a camera showing the 2x2 window around the origin
func NewCamera() *Camera {
	return &Camera{width: 2, height: 2}
}

// Offset returns the world position at the centre of the view
func (c *Camera) Offset() geometry.Point { return c.offset }

// Window returns the width and height of the visible world window
func (c *Camera) Window() (width, height float64) { return c.width, c.height }

// View returns the world -> camera transform
func (c *Camera) View() gg.Matrix {
	return gg.Translate(-c.offset.X, -c.offset.Y)
}

// Projection returns the camera -> normalized device transform
func (c *Camera) Projection() gg.Matrix {
	return gg.Scale(2/c.width, 2/c.height)
}

// ViewInverse undoes View
func (c *Camera) ViewInverse() gg.Matrix {
	return gg.Translate(c.offset.X, c.offset.Y)
}

// ProjectionInverse undoes Projection
func (c *Camera) ProjectionInverse() gg.Matrix {
	return gg.Scale(c.width/2, c.height/2)
}

// MVP returns Projection * View, mapping world space to NDC
func (c *Camera) MVP() gg.Matrix {
	return c.Projection().Multiply(c.View())
}

// SetWindow sets the size of the visible world window
func (c *Camera) SetWindow(width, height float64) {
	c.width = width
	c.height = height
}

// Zoom scales the visible window; factors below 1 zoom in, above 1 zoom out
func (c *Camera) Zoom(factor float64) {
	c.width *= factor
	c.height *= factor
}

// Pan shifts the view horizontally by amount/15 world units
func (c *Camera) Pan(amount float64) {
	c.offset.X += amount / PanDivisor
}

// PixelToNDC normalizes a pixel position to [-1,1]; screen rows grow downwards so y is flipped
func PixelToNDC(px, py float64, vp Viewport) geometry.Point {
	return geometry.NewPoint(
		2*px/float64(vp.Width)-1,
		1-2*py/float64(vp.Height),
	)
}

// NDCToPixel is the inverse of PixelToNDC
func NDCToPixel(ndc geometry.Point, vp Viewport) (float64, float64) {
	return (ndc.X + 1) / 2 * float64(vp.Width), (1 - ndc.Y) / 2 * float64(vp.Height)
}

// Unproject converts a pixel position to world coordinates.
// The projection inverse is applied first, then the view inverse.
func (c *Camera) Unproject(px, py float64, vp Viewport) geometry.Point {
	ndc := PixelToNDC(px, py, vp)
	inv := c.ViewInverse().Multiply(c.ProjectionInverse())
	w := inv.TransformPoint(gg.Pt(ndc.X, ndc.Y))
	return geometry.NewPoint(w.X, w.Y)
}

// Project maps a world point to normalized device coordinates
func (c *Camera) Project(p geometry.Point) geometry.Point {
	ndc := c.MVP().TransformPoint(gg.Pt(p.X, p.Y))
	return geometry.NewPoint(ndc.X, ndc.Y)
}

// ToScreen maps a world point straight to pixel coordinates
func (c *Camera) ToScreen(p geometry.Point, vp Viewport) (float64, float64) {
	return NDCToPixel(c.Project(p), vp)
}
