package raster

import (
	"fmt"
	"math"
	"time"

	"github.com/krepa098/stl2thumbnail/internal/geometry"
	"github.com/krepa098/stl2thumbnail/internal/picture"
	"github.com/krepa098/stl2thumbnail/internal/zbuffer"
)

// timeoutCheckInterval is the triangle batch size between elapsed-time
// checks, keeping cancellation responsive without a clock read per
// triangle.
const timeoutCheckInterval = 128

// RasterBackend renders meshes into pictures of a fixed size.
type RasterBackend struct {
	// Options apply to every subsequent Render call.
	Options RenderOptions

	width  int
	height int
}

// New creates a backend rendering width x height pictures with
// default options.
func New(width, height int) *RasterBackend {
	return &RasterBackend{
		Options: DefaultRenderOptions(),
		width:   width,
		height:  height,
	}
}

// FitMeshScale computes the mesh bounding box and the uniform scale
// that, after centering, fits it into the unit cube [-0.5, 0.5]^3.
func (b *RasterBackend) FitMeshScale(mesh Source) (geometry.AABB, geometry.Vec3) {
	aabb := geometry.NewAABB()
	for t := range mesh.Triangles() {
		aabb.ExtendTriangle(t)
	}

	scale := float32(1)
	if !aabb.IsEmpty() {
		size := aabb.Size()
		if m := max(size.X, max(size.Y, size.Z)); m > 0 {
			scale = 1 / m
		}
	}
	return aabb, geometry.V3(scale, scale, scale)
}

// camera is the orthonormal view basis derived from the camera
// direction.
type camera struct {
	right   geometry.Vec3
	up      geometry.Vec3
	forward geometry.Vec3 // toward the camera
	viewDir geometry.Vec3 // looking direction, -forward
}

func newCamera(viewPos geometry.Vec3) camera {
	forward := viewPos.Normalize()
	if forward.IsZero() {
		forward = geometry.V3(0, 0, 1)
	}

	worldUp := geometry.V3(0, 0, 1)
	if abs32(forward.Dot(worldUp)) > 0.999 {
		worldUp = geometry.V3(0, 1, 0)
	}

	right := worldUp.Cross(forward).Normalize()
	up := forward.Cross(right)
	return camera{
		right:   right,
		up:      up,
		forward: forward,
		viewDir: forward.Scale(-1),
	}
}

// project maps a model-space point into screen space. The returned Z
// grows away from the camera, so smaller values are nearer.
func (b *RasterBackend) project(cam camera, p geometry.Vec3) geometry.Vec3 {
	return geometry.Vec3{
		X: (p.Dot(cam.right) + 0.5) * float32(b.width),
		Y: (0.5 - p.Dot(cam.up)) * float32(b.height),
		Z: p.Dot(cam.viewDir),
	}
}

// Render draws the mesh and returns the finished picture. The render
// itself never fails: non-finite and degenerate triangles are skipped
// individually, and when a positive timeout is exceeded the partially
// drawn picture is returned as-is. A timeout of zero disables the
// budget.
func (b *RasterBackend) Render(mesh Source, scale geometry.Vec3, aabb geometry.AABB, timeout time.Duration) *picture.Picture {
	pic := picture.New(b.width, b.height)
	pic.Fill(b.Options.BackgroundColor)
	zbuf := zbuffer.New(b.width, b.height)

	// zoom > 1 insets the model from the picture edges
	zoom := b.Options.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	model := geometry.Scaling(scale.Scale(1 / zoom)).
		Mul(geometry.Translation(aabb.Center().Scale(-1)))
	cam := newCamera(b.Options.ViewPos)

	start := time.Now()
	count := 0
	for t := range mesh.Triangles() {
		count++
		if timeout > 0 && count%timeoutCheckInterval == 0 && time.Since(start) > timeout {
			break
		}
		b.renderTriangle(pic, zbuf, model, cam, t)
	}

	if b.Options.GridVisible {
		b.drawGrid(pic, model, cam, aabb)
	}
	if b.Options.DrawSizeHint && b.height >= 256 {
		b.drawSizeHint(pic, aabb)
	}

	return pic
}

func (b *RasterBackend) renderTriangle(pic *picture.Picture, zbuf *zbuffer.ZBuffer, model geometry.Mat4, cam camera, t geometry.Triangle) {
	if !t.IsFinite() {
		return
	}

	// back-face culling; the zero normal of a degenerate facet never
	// faces the camera
	facing := t.Normal.Dot(cam.forward)
	if facing <= 0 {
		return
	}

	v0 := b.project(cam, model.TransformPoint(t.Vertices[0]))
	v1 := b.project(cam, model.TransformPoint(t.Vertices[1]))
	v2 := b.project(cam, model.TransformPoint(t.Vertices[2]))

	minX := int(floorf(min(v0.X, min(v1.X, v2.X))))
	maxX := int(ceilf(max(v0.X, max(v1.X, v2.X))))
	minY := int(floorf(min(v0.Y, min(v1.Y, v2.Y))))
	maxY := int(ceilf(max(v0.Y, max(v1.Y, v2.Y))))

	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, b.width-1)
	maxY = min(maxY, b.height-1)
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFunc(v0, v1, v2)
	if area == 0 {
		return
	}

	// headlight shading against the camera direction
	intensity := b.Options.Ambient + b.Options.Diffuse*max(0, facing)
	shaded := b.Options.ModelColor.Scale(intensity)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := geometry.Vec3{X: float32(x), Y: float32(y)}

			u := edgeFunc(v1, v2, p) / area
			v := edgeFunc(v2, v0, p) / area
			w := edgeFunc(v0, v1, p) / area
			if u < 0 || v < 0 || w < 0 {
				continue
			}

			z := u*v0.Z + v*v1.Z + w*v2.Z
			if zbuf.TestAndSet(x, y, z) {
				pic.Set(x, y, shaded)
			}
		}
	}
}

// edgeFunc is the signed parallelogram area of (a, b, p); its sign
// tells which side of the edge a->b the point p lies on.
func edgeFunc(a, b, p geometry.Vec3) float32 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// drawGrid strokes a ground-plane grid at the bottom of the model's
// bounding box, 10 divisions across the larger horizontal extent. The
// lines are projected to screen space and drawn without depth
// testing, so they may extend past the model footprint at grazing
// angles.
func (b *RasterBackend) drawGrid(pic *picture.Picture, model geometry.Mat4, cam camera, aabb geometry.AABB) {
	if aabb.IsEmpty() {
		return
	}

	size := aabb.Size()
	extent := max(size.X, size.Y)
	if extent <= 0 {
		return
	}
	step := extent / 10
	center := aabb.Center()
	minZ := aabb.Min.Z

	stroke := func(from, to geometry.Vec3) {
		p0 := b.project(cam, model.TransformPoint(from))
		p1 := b.project(cam, model.TransformPoint(to))
		pic.ThickLine(int(p0.X), int(p0.Y), int(p1.X), int(p1.Y), b.Options.GridColor, 1)
	}

	for i := 0; i <= 10; i++ {
		d := -extent/2 + float32(i)*step
		stroke(
			geometry.V3(center.X+d, center.Y-extent/2, minZ),
			geometry.V3(center.X+d, center.Y+extent/2, minZ),
		)
		stroke(
			geometry.V3(center.X-extent/2, center.Y+d, minZ),
			geometry.V3(center.X+extent/2, center.Y+d, minZ),
		)
	}
}

// drawSizeHint strokes the model dimensions, e.g. "20x15x10mm",
// centered near the bottom edge.
func (b *RasterBackend) drawSizeHint(pic *picture.Picture, aabb geometry.AABB) {
	if aabb.IsEmpty() {
		return
	}

	size := aabb.Size()
	text := fmt.Sprintf("%dx%dx%dmm",
		int(math.Round(float64(size.X))),
		int(math.Round(float64(size.Y))),
		int(math.Round(float64(size.Z))))

	const charSize = 10
	x := (b.width - picture.StringWidth(text, charSize)) / 2
	y := b.height - 20 - charSize
	pic.StrokeString(x, y, text, charSize, b.Options.ModelColor.Invert())
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func floorf(v float32) float32 {
	return float32(math.Floor(float64(v)))
}

func ceilf(v float32) float32 {
	return float32(math.Ceil(float64(v)))
}
