// Package zbuffer implements the per-pixel depth buffer used for
// hidden-surface removal.
package zbuffer

import "math"

// ZBuffer is a width x height grid of depth values. Cells start at the
// far sentinel (+Inf); smaller values are nearer the camera.
type ZBuffer struct {
	width  int
	height int
	depth  []float32
}

// New creates a buffer with every cell at the far sentinel.
func New(width, height int) *ZBuffer {
	z := &ZBuffer{
		width:  width,
		height: height,
		depth:  make([]float32, width*height),
	}
	far := float32(math.Inf(1))
	for i := range z.depth {
		z.depth[i] = far
	}
	return z
}

// Width returns the buffer width in cells.
func (z *ZBuffer) Width() int {
	return z.width
}

// Height returns the buffer height in cells.
func (z *ZBuffer) Height() int {
	return z.height
}

// At returns the stored depth at (x, y).
func (z *ZBuffer) At(x, y int) float32 {
	return z.depth[y*z.width+x]
}

// TestAndSet stores d at (x, y) and reports true iff d is strictly
// nearer than the stored depth. Out-of-bounds coordinates report false.
// Equal depths keep the first-drawn value.
func (z *ZBuffer) TestAndSet(x, y int, d float32) bool {
	if x < 0 || y < 0 || x >= z.width || y >= z.height {
		return false
	}
	i := y*z.width + x
	if d < z.depth[i] {
		z.depth[i] = d
		return true
	}
	return false
}
