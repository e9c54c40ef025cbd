package picture

import "testing"

func TestNewIsOpaqueBlack(t *testing.T) {
	p := New(8, 4)

	if len(p.Data()) != 8*4*4 {
		t.Fatalf("data length = %d, want %d", len(p.Data()), 8*4*4)
	}
	if p.Stride() != 32 {
		t.Errorf("stride = %d, want 32", p.Stride())
	}
	if got := p.Get(3, 2); got != (Color{0, 0, 0, 255}) {
		t.Errorf("pixel = %v, want opaque black", got)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	p := New(4, 4)
	c := Color{1, 2, 3, 4}
	p.Set(2, 1, c)
	if got := p.Get(2, 1); got != c {
		t.Errorf("Get = %v, want %v", got, c)
	}
}

func TestDrawingClips(t *testing.T) {
	p := New(4, 4)
	before := append([]uint8(nil), p.Data()...)

	p.Set(-1, 0, Color{255, 0, 0, 255})
	p.Set(0, -1, Color{255, 0, 0, 255})
	p.Set(4, 0, Color{255, 0, 0, 255})
	p.Set(0, 4, Color{255, 0, 0, 255})
	p.AlphaBlend(9, 9, Color{255, 0, 0, 255})

	for i, b := range p.Data() {
		if b != before[i] {
			t.Fatalf("out-of-bounds draw modified byte %d", i)
		}
	}
}

func TestLineEndpoints(t *testing.T) {
	p := New(16, 16)
	c := Color{255, 0, 0, 255}
	p.Line(2, 3, 12, 9, c)

	if p.Get(2, 3) != c {
		t.Error("start point not drawn")
	}
	if p.Get(12, 9) != c {
		t.Error("end point not drawn")
	}
}

func TestThickLineCoversCenter(t *testing.T) {
	p := New(32, 32)
	p.ThickLine(0, 16, 31, 16, Color{255, 0, 0, 255}, 3)

	// the ideal line must be fully opaque red
	got := p.Get(15, 16)
	if got.R != 255 || got.G != 0 {
		t.Errorf("center pixel = %v", got)
	}
	// pixels far from the line stay background
	if got := p.Get(15, 0); got != (Color{0, 0, 0, 255}) {
		t.Errorf("distant pixel = %v", got)
	}
}

func TestFillRect(t *testing.T) {
	p := New(8, 8)
	c := Color{0, 255, 0, 255}
	p.FillRect(2, 2, 5, 5, c)

	if p.Get(2, 2) != c || p.Get(5, 5) != c {
		t.Error("rect corners not filled")
	}
	if p.Get(1, 2) == c || p.Get(6, 5) == c {
		t.Error("fill leaked outside the rect")
	}
}

func TestToBGRASwapsChannels(t *testing.T) {
	p := New(1, 1)
	p.Set(0, 0, Color{10, 20, 30, 40})

	bgra := p.ToBGRA()
	want := []uint8{30, 20, 10, 40}
	for i := range want {
		if bgra[i] != want[i] {
			t.Fatalf("bgra = %v, want %v", bgra, want)
		}
	}
}

func TestResizeKeepAspectRatio(t *testing.T) {
	tests := []struct {
		srcW, srcH int
		boxW, boxH int
	}{
		{200, 100, 64, 64},
		{100, 200, 64, 64},
		{100, 100, 50, 80},
		{640, 480, 256, 256},
	}

	for _, tt := range tests {
		p := New(tt.srcW, tt.srcH)
		srcRatio := p.AspectRatio()
		p.ResizeKeepAspectRatio(tt.boxW, tt.boxH)

		if p.Width() > tt.boxW || p.Height() > tt.boxH {
			t.Errorf("%dx%d into %dx%d: result %dx%d exceeds box",
				tt.srcW, tt.srcH, tt.boxW, tt.boxH, p.Width(), p.Height())
		}

		// aspect ratio preserved: the height is within one pixel of
		// width / source ratio
		wantH := float32(p.Width()) / srcRatio
		if diff := wantH - float32(p.Height()); diff < -1 || diff > 1 {
			t.Errorf("%dx%d into %dx%d: aspect ratio drifted (got %dx%d)",
				tt.srcW, tt.srcH, tt.boxW, tt.boxH, p.Width(), p.Height())
		}
	}
}

func TestStrokeStringDraws(t *testing.T) {
	p := New(256, 64)
	p.StrokeString(10, 10, "12x55mm", 10, Color{255, 255, 255, 255})

	changed := 0
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			if p.Get(x, y) != (Color{0, 0, 0, 255}) {
				changed++
			}
		}
	}
	if changed == 0 {
		t.Fatal("StrokeString drew nothing")
	}
}

func TestStrokeLetterUnknownIsNoop(t *testing.T) {
	p := New(32, 32)
	before := append([]uint8(nil), p.Data()...)
	p.StrokeLetter(4, 4, '?', 10, Color{255, 255, 255, 255})

	for i, b := range p.Data() {
		if b != before[i] {
			t.Fatal("unknown glyph modified the picture")
		}
	}
}
