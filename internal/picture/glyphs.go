package picture

// Glyphs for dimension strings like "12x55mm". Each glyph is a list of
// line segments (pairs of points) in the unit square; x is compressed
// to 70% of the glyph size when stroked.

type glyphPoint struct {
	x, y float32
}

var glyphs = map[rune][]glyphPoint{
	'0': {
		{0, 0}, {1, 0},
		{1, 0}, {1, 1},
		{1, 1}, {0, 1},
		{0, 1}, {0, 0},
	},
	'1': {
		{1, 0}, {1, 1},
	},
	'2': {
		{0, 0}, {1, 0},
		{1, 0}, {1, 0.5},
		{1, 0.5}, {0, 0.5},
		{0, 0.5}, {0, 1},
		{0, 1}, {1, 1},
	},
	'3': {
		{0, 0}, {1, 0},
		{1, 0}, {1, 1},
		{1, 1}, {0, 1},
		{1, 0.5}, {0, 0.5},
	},
	'4': {
		{0, 0}, {0, 0.5},
		{0, 0.5}, {1, 0.5},
		{1, 0}, {1, 1},
	},
	'5': {
		{0, 1}, {1, 1},
		{1, 1}, {1, 0.5},
		{1, 0.5}, {0, 0.5},
		{0, 0.5}, {0, 0},
		{0, 0}, {1, 0},
	},
	'6': {
		{0, 0}, {1, 0},
		{0, 0}, {0, 1},
		{0, 1}, {1, 1},
		{1, 1}, {1, 0.5},
		{1, 0.5}, {0, 0.5},
	},
	'7': {
		{0, 0}, {1, 0},
		{1, 0}, {1, 1},
	},
	'8': {
		{0, 0}, {1, 0},
		{1, 0}, {1, 1},
		{1, 1}, {0, 1},
		{0, 1}, {0, 0},
		{0, 0.5}, {1, 0.5},
	},
	'9': {
		{0, 0}, {1, 0},
		{1, 0}, {1, 1},
		{1, 1}, {0, 1},
		{0, 0}, {0, 0.5},
		{0, 0.5}, {1, 0.5},
	},
	'x': {
		{0, 0}, {1, 1},
		{1, 0}, {0, 1},
	},
	'm': {
		{0, 0.5}, {1, 0.5},
		{0, 0.5}, {0, 1},
		{0.5, 0.5}, {0.5, 1},
		{1, 0.5}, {1, 1},
	},
}

// GlyphAdvance returns the horizontal advance between glyphs stroked
// at the given size.
func GlyphAdvance(size float32) int {
	return int(size*0.7 + 6)
}

// StringWidth returns the stroked width of s at the given glyph size.
func StringWidth(s string, size float32) int {
	n := 0
	for range s {
		n++
	}
	return n * GlyphAdvance(size)
}

// StrokeLetter draws a single glyph with its top-left corner at
// (x, y). Characters without a glyph produce no output.
func (p *Picture) StrokeLetter(x, y int, ch rune, size float32, c Color) {
	segments := glyphs[ch]
	for i := 0; i+1 < len(segments); i += 2 {
		x0 := int(segments[i].x*size*0.7) + x
		y0 := int(segments[i].y*size) + y
		x1 := int(segments[i+1].x*size*0.7) + x
		y1 := int(segments[i+1].y*size) + y
		p.ThickLine(x0, y0, x1, y1, c, 3)
	}
}

// StrokeString draws s one glyph at a time, advancing by
// GlyphAdvance(size) per character.
func (p *Picture) StrokeString(x, y int, s string, size float32, c Color) {
	i := 0
	for _, ch := range s {
		p.StrokeLetter(x+i*GlyphAdvance(size), y, ch, size, c)
		i++
	}
}
