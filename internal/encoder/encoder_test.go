package encoder

import (
	"image"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/krepa098/stl2thumbnail/internal/picture"
)

func TestSavePNGRoundTrip(t *testing.T) {
	pic := picture.New(32, 16)
	pic.Set(3, 4, picture.NewColor(255, 0, 0, 255))

	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, pic); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 32, 16) {
		t.Errorf("decoded bounds = %v", img.Bounds())
	}

	r, g, b, a := img.At(3, 4).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("decoded pixel = %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestSaveGIFAnimation(t *testing.T) {
	frames := []*picture.Picture{
		picture.New(16, 16),
		picture.New(16, 16),
		picture.New(16, 16),
	}
	frames[1].Fill(picture.NewColor(255, 0, 0, 255))

	path := filepath.Join(t.TempDir(), "out.gif")
	if err := SaveGIF(path, frames); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(anim.Image) != 3 {
		t.Fatalf("frame count = %d, want 3", len(anim.Image))
	}
	if anim.LoopCount != 0 {
		t.Errorf("loop count = %d, want 0 (infinite)", anim.LoopCount)
	}
}
