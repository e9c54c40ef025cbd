package stl2thumbnail

import (
	"fmt"
	"math"

	"github.com/krepa098/stl2thumbnail/internal/encoder"
	"github.com/krepa098/stl2thumbnail/internal/geometry"
	"github.com/krepa098/stl2thumbnail/internal/raster"
	"github.com/krepa098/stl2thumbnail/internal/stl"
)

// turntable animation parameters: 45 frames at 8 degree increments
// cover a full revolution.
const (
	turntableFrames  = 45
	turntableStepDeg = 8
	pipelineZoom     = 1.05
)

// viewPos derives the camera direction from spherical angles in
// degrees.
func viewPos(azimuth, elevation float32) geometry.Vec3 {
	az := float64(azimuth) * math.Pi / 180
	el := float64(elevation) * math.Pi / 180
	return geometry.V3(
		float32(math.Cos(az)),
		float32(math.Sin(az)),
		float32(math.Tan(el)),
	).Normalize()
}

func newBackend(width, height int, s Settings) *raster.RasterBackend {
	backend := raster.New(width, height)
	backend.Options.GridVisible = s.Grid
	backend.Options.DrawSizeHint = s.SizeHint
	backend.Options.Zoom = pipelineZoom
	backend.Options.BackgroundColor = s.BackgroundColor
	backend.Options.ViewPos = viewPos(s.CamAzimuth, s.CamElevation)
	return backend
}

// RenderStill renders a single frame of the mesh.
func RenderStill(width, height int, mesh MeshSource, s Settings) *Picture {
	backend := newBackend(width, height, s)
	aabb, scale := backend.FitMeshScale(mesh)
	return backend.Render(mesh, scale, aabb, s.Timeout)
}

// RenderTurntable renders the mesh 45 times with the camera azimuth
// advancing 8 degrees per frame at a fixed elevation.
func RenderTurntable(width, height int, mesh MeshSource, s Settings) []*Picture {
	backend := newBackend(width, height, s)
	aabb, scale := backend.FitMeshScale(mesh)

	frames := make([]*Picture, 0, turntableFrames)
	for i := 0; i < turntableFrames; i++ {
		backend.Options.ViewPos = viewPos(float32(i*turntableStepDeg), s.CamElevation)
		frames = append(frames, backend.Render(mesh, scale, aabb, s.Timeout))
	}
	return frames
}

// RenderToFile renders the mesh and writes the result to path: a PNG
// for stills, an animated GIF in turntable mode.
func RenderToFile(width, height int, mesh MeshSource, path string, s Settings) error {
	if s.Turntable {
		return encoder.SaveGIF(path, RenderTurntable(width, height, mesh, s))
	}
	return encoder.SavePNG(path, RenderStill(width, height, mesh, s))
}

// RenderSTLFile renders the STL file at input and writes the
// thumbnail to output. With Settings.Lazy the file is streamed on
// every pass instead of buffered.
func RenderSTLFile(input, output string, width, height int, s Settings) error {
	parser, err := stl.FromFile(input, s.RecalculateNormals)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", input, err)
	}
	defer parser.Close()

	if s.Lazy {
		return RenderToFile(width, height, stl.NewLazyMesh(parser), output, s)
	}

	mesh, err := parser.ReadAll()
	if err != nil {
		return fmt.Errorf("parsing %s: %w", input, err)
	}
	return RenderToFile(width, height, mesh, output, s)
}
