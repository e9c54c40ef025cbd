package stl

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/krepa098/stl2thumbnail/internal/geometry"
)

// nextBinary decodes one 50-byte little-endian triangle record:
// normal, v0, v1, v2 as 3 x f32 each, then a 2-byte attribute count
// that is ignored.
func (p *Parser) nextBinary() (geometry.Triangle, error) {
	if p.triIndex >= p.triCount {
		return geometry.Triangle{}, io.EOF
	}

	if _, err := io.ReadFull(p.r, p.record[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return geometry.Triangle{}, fmt.Errorf("stl: triangle %d: %w", p.triIndex, io.ErrUnexpectedEOF)
		}
		return geometry.Triangle{}, err
	}
	p.triIndex++

	t := geometry.Triangle{
		Normal: decodeVec3(p.record[0:]),
		Vertices: [3]geometry.Vec3{
			decodeVec3(p.record[12:]),
			decodeVec3(p.record[24:]),
			decodeVec3(p.record[36:]),
		},
	}
	return t, nil
}

func decodeVec3(b []byte) geometry.Vec3 {
	return geometry.Vec3{
		X: decodeF32(b[0:]),
		Y: decodeF32(b[4:]),
		Z: decodeF32(b[8:]),
	}
}

func decodeF32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
