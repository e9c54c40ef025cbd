package geometry

import "math"

// AABB is an axis-aligned bounding box. A freshly created box is empty:
// Min is +Inf and Max is -Inf on every axis, so extending by any point
// replaces both corners.
type AABB struct {
	Min, Max Vec3
}

// NewAABB returns an empty bounding box.
func NewAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether the box contains no points.
func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Extend grows the box to contain p.
func (b *AABB) Extend(p Vec3) {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Min.Z = min(b.Min.Z, p.Z)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	b.Max.Z = max(b.Max.Z, p.Z)
}

// ExtendTriangle grows the box to contain all three vertices of t.
func (b *AABB) ExtendTriangle(t Triangle) {
	b.Extend(t.Vertices[0])
	b.Extend(t.Vertices[1])
	b.Extend(t.Vertices[2])
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the box on each axis.
func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}
