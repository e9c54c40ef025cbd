package picture

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"FF00FF00", Color{255, 0, 255, 0}},
		{"000000FF", Color{0, 0, 0, 255}},
		{"E6E6E6FF", Color{230, 230, 230, 255}},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "FFF", "GG0000FF", "FF00FF00AA"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q): expected error", in)
		}
	}
}

func TestNewColorFloatsClamps(t *testing.T) {
	got := NewColorFloats(1.0, 0.5, -1.0, 2.0)
	want := Color{255, 128, 0, 255}
	if got != want {
		t.Errorf("NewColorFloats = %v, want %v", got, want)
	}
}

func TestColorOver(t *testing.T) {
	// half-transparent red over opaque blue
	got := Color{255, 0, 0, 128}.Over(Color{0, 0, 255, 255})
	if got.A != 255 {
		t.Errorf("alpha = %d, want 255", got.A)
	}
	if got.R != 128 {
		t.Errorf("red = %d, want 128", got.R)
	}
	if got.B < 126 || got.B > 128 {
		t.Errorf("blue = %d, want 127 +-1", got.B)
	}
}

func TestColorOverAlgebra(t *testing.T) {
	opaque := Color{10, 20, 30, 255}
	other := Color{200, 100, 50, 255}

	// fully opaque source replaces the destination
	if got := opaque.Over(other); got != opaque {
		t.Errorf("opaque over other = %v", got)
	}
	if got := opaque.Over(opaque); got != opaque {
		t.Errorf("opaque over itself = %v", got)
	}

	// fully transparent source leaves the destination
	if got := (Color{}).Over(other); got != other {
		t.Errorf("transparent over other = %v", got)
	}
}

func TestColorAddSaturates(t *testing.T) {
	got := Color{200, 100, 0, 255}.Add(Color{100, 100, 5, 255})
	want := Color{255, 200, 5, 255}
	if got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
}

func TestColorScaleKeepsAlpha(t *testing.T) {
	got := Color{100, 200, 40, 77}.Scale(0.5)
	if got.A != 77 {
		t.Errorf("alpha changed: %d", got.A)
	}
	if got.R != 50 || got.G != 100 || got.B != 20 {
		t.Errorf("Scale = %v", got)
	}
}

func TestColorInvert(t *testing.T) {
	got := Color{0, 255, 100, 42}.Invert()
	want := Color{255, 0, 155, 42}
	if got != want {
		t.Errorf("Invert = %v, want %v", got, want)
	}
}
