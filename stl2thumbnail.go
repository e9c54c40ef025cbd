// Package stl2thumbnail generates raster thumbnails of 3D-printing
// source files.
//
// STL files (ASCII and binary) are rendered with a CPU scanline
// rasterizer: orthographic projection, z-buffered depth, headlight
// shading and optional grid and dimension overlays. GCODE, BGCODE and
// 3MF files carry pre-rendered previews which are extracted instead.
//
// Basic usage:
//
//	settings := stl2thumbnail.DefaultSettings()
//	err := stl2thumbnail.RenderSTLFile("model.stl", "model.png", 256, 256, settings)
//
// The underlying building blocks (parser, mesh abstractions, raster
// backend, picture) are exposed through this package for callers that
// need more control, e.g. rendering into memory or reusing a parsed
// mesh across passes.
package stl2thumbnail

import (
	"time"

	"github.com/krepa098/stl2thumbnail/internal/picture"
)

// Settings configures the rendering pipelines.
type Settings struct {
	// Verbose enables progress reporting by CLI front-ends; the
	// library itself never prints.
	Verbose bool
	// Lazy streams triangles from the file on every pass instead of
	// buffering the whole mesh, trading speed for O(1) memory.
	Lazy bool
	// RecalculateNormals ignores file-provided facet normals and
	// recomputes them from the vertex winding.
	RecalculateNormals bool
	// Turntable renders a 45-frame animation instead of a still.
	Turntable bool
	// SizeHint draws the model dimensions under the model. Requires a
	// height of at least 256 pixels.
	SizeHint bool
	// Grid draws a ground-plane grid under the model.
	Grid bool
	// CamElevation is the camera's elevation in degrees.
	CamElevation float32
	// CamAzimuth is the camera's azimuth in degrees. Ignored in
	// turntable mode.
	CamAzimuth float32
	// Timeout bounds the time spent rendering; zero disables the
	// budget. An exceeded budget yields a partial image, not an
	// error.
	Timeout time.Duration
	// BackgroundColor fills the picture before the model is drawn.
	BackgroundColor Color
}

// DefaultSettings returns the defaults used by the CLI: a still
// render from 45° azimuth and 25° elevation on an opaque black
// background.
func DefaultSettings() Settings {
	return Settings{
		CamElevation:    25,
		CamAzimuth:      45,
		BackgroundColor: picture.NewColor(0, 0, 0, 255),
	}
}
