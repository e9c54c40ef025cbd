package geometry

import (
	"math"
	"testing"
)

const epsilon = 1e-5

func nearVec3(a, b Vec3) bool {
	return math.Abs(float64(a.X-b.X)) < epsilon &&
		math.Abs(float64(a.Y-b.Y)) < epsilon &&
		math.Abs(float64(a.Z-b.Z)) < epsilon
}

func TestVec3Ops(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	if got := a.Add(b); got != V3(5, 7, 9) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != V3(3, 3, 3) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v", got)
	}
	if got := a.Cross(b); got != V3(-3, 6, -3) {
		t.Errorf("Cross = %v", got)
	}
	if got := V3(3, 4, 0).Length(); got != 5 {
		t.Errorf("Length = %v", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := V3(0, 0, 10).Normalize()
	if !nearVec3(n, V3(0, 0, 1)) {
		t.Errorf("Normalize = %v", n)
	}

	// zero vectors pass through untouched
	if got := V3(0, 0, 0).Normalize(); !got.IsZero() {
		t.Errorf("Normalize(zero) = %v", got)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !V3(1, 2, 3).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	if V3(nan, 0, 0).IsFinite() || V3(0, inf, 0).IsFinite() {
		t.Error("non-finite vector reported as finite")
	}
}

func TestMat4Identity(t *testing.T) {
	p := V3(1, -2, 3)
	if got := Identity().TransformPoint(p); got != p {
		t.Errorf("identity transform = %v", got)
	}
}

func TestMat4Compose(t *testing.T) {
	// scale then translate
	m := Translation(V3(10, 0, 0)).Mul(Scaling(V3(2, 2, 2)))
	got := m.TransformPoint(V3(1, 1, 1))
	if !nearVec3(got, V3(12, 2, 2)) {
		t.Errorf("composed transform = %v", got)
	}

	// directions ignore translation
	dir := m.TransformDir(V3(1, 0, 0))
	if !nearVec3(dir, V3(2, 0, 0)) {
		t.Errorf("direction transform = %v", dir)
	}
}

func TestAABBEmpty(t *testing.T) {
	b := NewAABB()
	if !b.IsEmpty() {
		t.Error("new box should be empty")
	}

	b.Extend(V3(1, 2, 3))
	if b.IsEmpty() {
		t.Error("extended box should not be empty")
	}
	if b.Min != V3(1, 2, 3) || b.Max != V3(1, 2, 3) {
		t.Errorf("single point box = %v", b)
	}
}

func TestAABBExtend(t *testing.T) {
	b := NewAABB()
	b.Extend(V3(-1, 5, 2))
	b.Extend(V3(3, -2, 7))

	if b.Min != V3(-1, -2, 2) || b.Max != V3(3, 5, 7) {
		t.Errorf("box = %v", b)
	}
	if got := b.Center(); !nearVec3(got, V3(1, 1.5, 4.5)) {
		t.Errorf("Center = %v", got)
	}
	if got := b.Size(); !nearVec3(got, V3(4, 7, 5)) {
		t.Errorf("Size = %v", got)
	}
}

func TestFaceNormal(t *testing.T) {
	tri := NewTriangle(V3(0, 0, 0), V3(1, 0, 0), V3(0, 1, 0), Vec3{})
	if got := tri.FaceNormal(); !nearVec3(got, V3(0, 0, 1)) {
		t.Errorf("FaceNormal = %v", got)
	}

	// degenerate triangle yields the zero vector
	deg := NewTriangle(V3(1, 1, 1), V3(1, 1, 1), V3(1, 1, 1), Vec3{})
	if got := deg.FaceNormal(); !got.IsZero() {
		t.Errorf("degenerate FaceNormal = %v", got)
	}
}
