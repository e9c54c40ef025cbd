package picture

import (
	"image"

	"golang.org/x/image/draw"
)

// Resize scales the picture to width x height in place using bilinear
// filtering.
func (p *Picture) Resize(width, height int) *Picture {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Rect, p.Image(), p.Image().Rect, draw.Src, nil)

	p.width = width
	p.height = height
	p.data = dst.Pix
	return p
}

// ResizeKeepAspectRatio scales the picture to fit inside width x
// height while preserving its aspect ratio. Neither output dimension
// exceeds the requested one.
func (p *Picture) ResizeKeepAspectRatio(width, height int) *Picture {
	scale := float32(width) / float32(p.width)
	if s := float32(height) / float32(p.height); s < scale {
		scale = s
	}

	w := max(int(float32(p.width)*scale), 1)
	h := max(int(float32(p.height)*scale), 1)
	return p.Resize(w, h)
}
