package viewer

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/philipparndt/gogeo/pkg/geometry"
)

// RasterRenderer renders draw requests into an offscreen image using gg's software
// rasterizer. It backs headless replays and PNG export.
type RasterRenderer struct {
	dc *gg.Context
	vp Viewport
}

// NewRasterRenderer creates an offscreen renderer of the given pixel size
func NewRasterRenderer(width, height int) *RasterRenderer {
	return &RasterRenderer{
		dc: gg.NewContext(width, height),
		vp: Viewport{Width: width, Height: height},
	}
}

// Viewport returns the pixel size of the target image
func (r *RasterRenderer) Viewport() Viewport {
	return r.vp
}

// Clear fills the whole image with col
func (r *RasterRenderer) Clear(col color.RGBA) {
	r.dc.ClearWithColor(gg.FromColor(col))
}

// Draw implements Renderer
func (r *RasterRenderer) Draw(req DrawRequest) error {
	if len(req.Positions) == 0 {
		return nil
	}
	r.dc.SetColor(req.Color)

	switch req.Kind {
	case KindPoints:
		half := req.Size / 2
		for _, p := range req.Positions {
			x, y := r.toPixel(req.MVP, p.X, p.Y)
			r.dc.DrawRectangle(x-half, y-half, req.Size, req.Size)
		}
		return r.dc.Fill()

	case KindLines:
		r.dc.SetLineWidth(req.Size)
		for i := 0; i+1 < len(req.Positions); i += 2 {
			x1, y1 := r.toPixel(req.MVP, req.Positions[i].X, req.Positions[i].Y)
			x2, y2 := r.toPixel(req.MVP, req.Positions[i+1].X, req.Positions[i+1].Y)
			r.dc.MoveTo(x1, y1)
			r.dc.LineTo(x2, y2)
		}
		return r.dc.Stroke()

	default:
		return fmt.Errorf("unsupported primitive kind: %v", req.Kind)
	}
}

func (r *RasterRenderer) toPixel(mvp gg.Matrix, x, y float64) (float64, float64) {
	ndc := mvp.TransformPoint(gg.Pt(x, y))
	return NDCToPixel(geometry.NewPoint(ndc.X, ndc.Y), r.vp)
}

// Image returns the rendered image
func (r *RasterRenderer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the rendered image to path
func (r *RasterRenderer) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the rendered image as PNG to w
func (r *RasterRenderer) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// Close releases the drawing context
func (r *RasterRenderer) Close() error {
	return r.dc.Close()
}
