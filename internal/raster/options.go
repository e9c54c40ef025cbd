// Package raster renders triangle meshes into RGBA pictures with a
// scanline rasterizer: orthographic projection, z-buffered depth,
// headlight diffuse shading and optional grid and dimension overlays.
package raster

import (
	"iter"

	"github.com/krepa098/stl2thumbnail/internal/geometry"
	"github.com/krepa098/stl2thumbnail/internal/picture"
)

// Source yields the triangles of a mesh. Render may range over the
// sequence more than once, so implementations must replay the same
// triangles on every pass.
type Source interface {
	Triangles() iter.Seq[geometry.Triangle]
}

// RenderOptions configures a render pass.
type RenderOptions struct {
	// ViewPos is the camera direction on the unit hemisphere; the
	// camera looks from this direction at the origin.
	ViewPos geometry.Vec3
	// Zoom scales the model inside the viewport. The still and
	// turntable pipelines use 1.05 to keep thin rim edges from
	// clipping.
	Zoom float32
	// GridVisible draws a ground-plane grid under the model.
	GridVisible bool
	// DrawSizeHint strokes the model dimensions under the model.
	// Ignored for pictures under 256 pixels of height.
	DrawSizeHint bool

	BackgroundColor picture.Color
	ModelColor      picture.Color
	GridColor       picture.Color

	// Ambient and Diffuse are the two terms of the headlight
	// lighting model.
	Ambient float32
	Diffuse float32
}

// DefaultRenderOptions returns the documented defaults: a camera on
// the (1,1,1) diagonal, opaque black background, light gray model and
// a mostly transparent grid.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		ViewPos:         geometry.V3(1, 1, 1).Normalize(),
		Zoom:            1,
		GridVisible:     false,
		DrawSizeHint:    false,
		BackgroundColor: picture.NewColor(0, 0, 0, 255),
		ModelColor:      picture.NewColor(230, 230, 230, 255),
		GridColor:       picture.NewColor(255, 255, 255, 60),
		Ambient:         0.2,
		Diffuse:         0.8,
	}
}
