// Package gcode extracts pre-rendered preview images embedded in
// GCODE (plain text) and BGCODE (binary) toolpath files.
package gcode

import (
	"bytes"
	"errors"
	"os"
	"sort"

	"github.com/krepa098/stl2thumbnail/internal/picture"
)

// ErrNoPreview reports that a file carries no decodable preview. The
// extract functions of this package do not return it; they return an
// empty slice in that case.
var ErrNoPreview = errors.New("gcode: no embedded preview")

// ExtractPreviewsFromFile reads path and returns all embedded preview
// images, sorted by pixel area in ascending order.
func ExtractPreviewsFromFile(path string) ([]*picture.Picture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ExtractPreviews(data)
}

// ExtractPreviews returns all preview images embedded in the given
// GCODE or BGCODE payload, sorted by pixel area in ascending order.
func ExtractPreviews(data []byte) ([]*picture.Picture, error) {
	var pictures []*picture.Picture
	var err error

	if isBinary(data) {
		pictures, err = extractBinary(data)
	} else {
		pictures, err = extractASCII(data)
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(pictures, func(i, j int) bool {
		return pictures[i].Width()*pictures[i].Height() < pictures[j].Width()*pictures[j].Height()
	})
	return pictures, nil
}

// isBinary reports whether the payload starts with the BGCODE magic.
func isBinary(data []byte) bool {
	return bytes.HasPrefix(data, []byte(magicBGCode))
}
