// Package encoder writes rendered pictures to still (PNG) and
// animated (GIF) image files.
package encoder

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"

	"github.com/krepa098/stl2thumbnail/internal/picture"
)

// frameDelay is the per-frame delay of turntable animations in
// hundredths of a second. The nominal 6ms delay rounds up to the
// smallest GIF tick.
const frameDelay = 1

// EncodePNG writes pic to w in PNG format.
func EncodePNG(w io.Writer, pic *picture.Picture) error {
	return png.Encode(w, pic.Image())
}

// SavePNG writes pic to the file at path in PNG format.
func SavePNG(path string, pic *picture.Picture) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodePNG(f, pic); err != nil {
		f.Close()
		return fmt.Errorf("encoder: encoding %s: %w", path, err)
	}
	return f.Close()
}

// EncodeGIF writes the frames to w as an infinitely looping animated
// GIF. Frames are quantized to a 256-color palette with
// Floyd-Steinberg dithering.
func EncodeGIF(w io.Writer, frames []*picture.Picture) error {
	anim := gif.GIF{LoopCount: 0}

	for _, frame := range frames {
		src := frame.Image()
		paletted := image.NewPaletted(src.Rect, palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, src.Rect, src, image.Point{})

		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, frameDelay)
	}

	return gif.EncodeAll(w, &anim)
}

// SaveGIF writes the frames to the file at path as an animated GIF.
func SaveGIF(path string, frames []*picture.Picture) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeGIF(f, frames); err != nil {
		f.Close()
		return fmt.Errorf("encoder: encoding %s: %w", path, err)
	}
	return f.Close()
}
