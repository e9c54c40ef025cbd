package picture

import (
	"image"
	"math"
)

// Picture is a width x height RGBA8 raster with 8 bits per channel,
// row-major storage and the origin at the top-left corner. The stride
// is width*4 bytes. All drawing operations clip silently against the
// picture bounds.
type Picture struct {
	width  int
	height int
	data   []uint8
}

// New creates a picture filled with opaque black.
func New(width, height int) *Picture {
	p := &Picture{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
	p.Fill(Color{A: 255})
	return p
}

// FromImage creates a picture holding a copy of img.
func FromImage(img image.Image) *Picture {
	bounds := img.Bounds()
	p := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*p.width + x) * 4
			p.data[i+0] = uint8(r >> 8)
			p.data[i+1] = uint8(g >> 8)
			p.data[i+2] = uint8(b >> 8)
			p.data[i+3] = uint8(a >> 8)
		}
	}
	return p
}

// Width returns the picture width in pixels.
func (p *Picture) Width() int {
	return p.width
}

// Height returns the picture height in pixels.
func (p *Picture) Height() int {
	return p.height
}

// Depth returns the number of bytes per pixel.
func (p *Picture) Depth() int {
	return 4
}

// Stride returns the number of bytes per row.
func (p *Picture) Stride() int {
	return p.width * 4
}

// AspectRatio returns width / height.
func (p *Picture) AspectRatio() float32 {
	return float32(p.width) / float32(p.height)
}

// Data returns the backing RGBA pixel buffer.
func (p *Picture) Data() []uint8 {
	return p.data
}

// Image returns an *image.RGBA view sharing the picture's pixel
// buffer. Mutating one mutates the other.
func (p *Picture) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.Stride(),
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// ToBGRA returns a copy of the pixel data with the red and blue
// channels swapped, for platform bitmap APIs.
func (p *Picture) ToBGRA() []uint8 {
	out := make([]uint8, len(p.data))
	for i := 0; i < len(p.data); i += 4 {
		out[i+0] = p.data[i+2]
		out[i+1] = p.data[i+1]
		out[i+2] = p.data[i+0]
		out[i+3] = p.data[i+3]
	}
	return out
}

// Fill sets every pixel to c.
func (p *Picture) Fill(c Color) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// Set writes the pixel at (x, y). Out-of-bounds writes are dropped.
func (p *Picture) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// Get reads the pixel at (x, y). Out-of-bounds reads return the zero
// color.
func (p *Picture) Get(x, y int) Color {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return Color{}
	}
	i := (y*p.width + x) * 4
	return Color{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// AlphaBlend composes c over the pixel at (x, y) and writes the
// result back.
func (p *Picture) AlphaBlend(x, y int, c Color) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return
	}
	p.Set(x, y, c.Over(p.Get(x, y)))
}

// Line draws an unantialiased line with Bresenham's algorithm.
func (p *Picture) Line(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	dy := -abs(y1 - y0)
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		p.Set(x, y, c)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// ThickLine draws an anti-aliased line of the given width in pixels.
// Pixel coverage is derived from the distance to the ideal line.
// Ref: http://members.chello.at/~easyfilter/bresenham.html
func (p *Picture) ThickLine(x0, y0, x1, y1 int, c Color, width float32) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx - dy

	ed := float32(1.0)
	if dx+dy != 0 {
		ed = sqrtf(float32(dx*dx + dy*dy))
	}

	wd := (width + 1) / 2
	for {
		a := 1 - max(float32(abs(err-dx+dy))/ed-wd, 0)
		p.AlphaBlend(x0, y0, c.AlphaScale(a))

		e2 := err
		x2 := x0
		if 2*e2 >= -dx {
			e2 += dy
			y2 := y0
			for float32(e2) < ed*wd && (y1 != y2 || dx > dy) {
				e2 += dx
				y2 += sy
				a = 1 - max(float32(abs(e2))/ed-wd, 0)
				p.AlphaBlend(x0, y2, c.AlphaScale(a))
			}
			if x0 == x1 {
				return
			}
			e2 = err
			err -= dy
			x0 += sx
		}
		if 2*e2 <= dy {
			e2 = dx - e2
			for float32(e2) < ed*wd && (x1 != x2 || dx < dy) {
				e2 += dy
				x2 += sx
				a = 1 - max(float32(abs(e2))/ed-wd, 0)
				p.AlphaBlend(x2, y0, c.AlphaScale(a))
			}
			if y0 == y1 {
				return
			}
			err += dx
			y0 += sy
		}
	}
}

// FillRect fills the inclusive rectangle [x0,x1] x [y0,y1].
func (p *Picture) FillRect(x0, y0, x1, y1 int, c Color) {
	for x := max(x0, 0); x <= min(x1, p.width-1); x++ {
		for y := max(y0, 0); y <= min(y1, p.height-1); y++ {
			p.Set(x, y, c)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sqrtf(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}
