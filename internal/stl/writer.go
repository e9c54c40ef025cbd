package stl

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/krepa098/stl2thumbnail/internal/geometry"
)

// WriteBinary serializes the mesh as a binary STL: an 80-byte zero
// header, the little-endian triangle count, and one 50-byte record per
// triangle with a zero attribute count.
func WriteBinary(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)

	var header [binaryHeaderLen]byte
	binary.LittleEndian.PutUint32(header[80:], uint32(m.Len()))
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}

	var record [binaryRecordLen]byte
	for t := range m.Triangles() {
		encodeVec3(record[0:], t.Normal)
		encodeVec3(record[12:], t.Vertices[0])
		encodeVec3(record[24:], t.Vertices[1])
		encodeVec3(record[36:], t.Vertices[2])
		record[48] = 0
		record[49] = 0
		if _, err := bw.Write(record[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func encodeVec3(b []byte, v geometry.Vec3) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(v.Z))
}
