package zbuffer

import (
	"math"
	"testing"
)

func TestNewStartsFar(t *testing.T) {
	z := New(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if !math.IsInf(float64(z.At(x, y)), 1) {
				t.Fatalf("cell (%d,%d) not at far sentinel: %v", x, y, z.At(x, y))
			}
		}
	}
}

func TestTestAndSetNearerWins(t *testing.T) {
	z := New(2, 2)

	if !z.TestAndSet(1, 1, 5) {
		t.Fatal("first write against the sentinel should pass")
	}
	if z.TestAndSet(1, 1, 5) {
		t.Fatal("equal depth must not overwrite")
	}
	if z.TestAndSet(1, 1, 6) {
		t.Fatal("farther depth must not overwrite")
	}
	if !z.TestAndSet(1, 1, 4) {
		t.Fatal("nearer depth should overwrite")
	}
	if z.At(1, 1) != 4 {
		t.Fatalf("stored depth = %v, want 4", z.At(1, 1))
	}
}

func TestTestAndSetOutOfBounds(t *testing.T) {
	z := New(2, 2)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if z.TestAndSet(c[0], c[1], 0) {
			t.Fatalf("out-of-bounds write at %v reported success", c)
		}
	}
}
