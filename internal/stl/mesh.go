package stl

import (
	"iter"

	"github.com/krepa098/stl2thumbnail/internal/geometry"
)

// Mesh is a fully buffered, ordered triangle sequence. Iteration is
// cheap and repeatable, which suits multi-pass renders such as
// turntable animations.
type Mesh struct {
	triangles []geometry.Triangle
}

// NewMesh creates a mesh owning the given triangles.
func NewMesh(triangles []geometry.Triangle) *Mesh {
	return &Mesh{triangles: triangles}
}

// Len returns the number of triangles.
func (m *Mesh) Len() int {
	return len(m.triangles)
}

// At returns the i-th triangle in file order.
func (m *Mesh) At(i int) geometry.Triangle {
	return m.triangles[i]
}

// Triangles yields the triangles in file order. The sequence can be
// ranged over any number of times.
func (m *Mesh) Triangles() iter.Seq[geometry.Triangle] {
	return func(yield func(geometry.Triangle) bool) {
		for _, t := range m.triangles {
			if !yield(t) {
				return
			}
		}
	}
}

// LazyMesh streams triangles straight from a parser without buffering
// them, keeping memory O(1) in the triangle count. Every pass rewinds
// the parser and replays the same logical sequence. A LazyMesh
// borrows its parser exclusively; concurrent iteration is not
// supported.
type LazyMesh struct {
	parser *Parser
}

// NewLazyMesh wraps a parser for streamed iteration.
func NewLazyMesh(p *Parser) *LazyMesh {
	return &LazyMesh{parser: p}
}

// Triangles yields the parser's triangles in file order, rewinding
// first. The sequence ends at the first parse error; use
// Parser.ReadAll to surface errors instead.
func (m *LazyMesh) Triangles() iter.Seq[geometry.Triangle] {
	return func(yield func(geometry.Triangle) bool) {
		if err := m.parser.Rewind(); err != nil {
			return
		}
		for {
			t, err := m.parser.NextTriangle()
			if err != nil {
				return
			}
			if !yield(t) {
				return
			}
		}
	}
}
