package gcode

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"fmt"
	"image"
	"io"

	"github.com/krepa098/stl2thumbnail/internal/picture"
)

// BGCODE layout per the libbgcode specification:
// https://github.com/prusa3d/libbgcode/blob/main/doc/specifications.md
const magicBGCode = "GCDE"

const (
	blockFileMetadata = iota
	blockGCode
	blockSlicerMetadata
	blockPrinterMetadata
	blockPrintMetadata
	blockThumbnail
)

const (
	compressionNone = iota
	compressionDeflate
	compressionHeatshrink11
	compressionHeatshrink12
)

const fileHeaderLen = 10 // magic u32, version u32, checksum type u16

// extractBinary walks the block stream of a BGCODE file and decodes
// every thumbnail block.
func extractBinary(data []byte) ([]*picture.Picture, error) {
	if len(data) < fileHeaderLen {
		return nil, fmt.Errorf("gcode: truncated bgcode header")
	}
	checksumType := binary.LittleEndian.Uint16(data[8:])

	var pictures []*picture.Picture
	r := bytes.NewReader(data[fileHeaderLen:])

	for {
		payload, err := nextThumbnailBlock(r, checksumType)
		if err == io.EOF {
			return pictures, nil
		}
		if err != nil {
			// a malformed tail does not invalidate previews already
			// decoded
			return pictures, nil
		}
		if payload == nil {
			continue
		}

		img, _, err := image.Decode(bytes.NewReader(payload))
		if err != nil {
			continue
		}
		pictures = append(pictures, picture.FromImage(img))
	}
}

// nextThumbnailBlock reads one block and returns its uncompressed
// payload for thumbnail blocks, nil for every other block type.
func nextThumbnailBlock(r *bytes.Reader, checksumType uint16) ([]byte, error) {
	var head struct {
		Type             uint16
		Compression      uint16
		UncompressedSize uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &head); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, io.EOF
		}
		return nil, err
	}

	dataSize := head.UncompressedSize
	if head.Compression != compressionNone {
		if err := binary.Read(r, binary.LittleEndian, &dataSize); err != nil {
			return nil, err
		}
	}

	// block parameter section, fixed size per block type
	paramLen := 2
	if head.Type == blockThumbnail {
		paramLen = 6 // format, width, height as u16
	}
	if _, err := r.Seek(int64(paramLen), io.SeekCurrent); err != nil {
		return nil, err
	}

	data := make([]byte, dataSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}

	// trailing crc32 when the file declares one
	if checksumType == 1 {
		if _, err := r.Seek(4, io.SeekCurrent); err != nil {
			return nil, err
		}
	}

	if head.Type != blockThumbnail {
		return nil, nil
	}

	switch head.Compression {
	case compressionNone:
		return data, nil
	case compressionDeflate:
		fr := flate.NewReader(bytes.NewReader(data))
		defer fr.Close()
		out, err := io.ReadAll(fr)
		if err != nil {
			return nil, fmt.Errorf("gcode: inflating thumbnail: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("gcode: unsupported thumbnail compression %d", head.Compression)
	}
}
