// Package threemf extracts the pre-rendered preview image embedded in
// 3MF archives.
package threemf

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // preview decoding
	_ "image/png"  // preview decoding
	"io"
	"os"

	"github.com/krepa098/stl2thumbnail/internal/picture"
)

// thumbnailPath is where slicers place the preview inside the
// archive.
const thumbnailPath = "Metadata/thumbnail.png"

// ExtractPreviewFromFile reads the 3MF archive at path and returns
// its embedded preview image.
func ExtractPreviewFromFile(path string) (*picture.Picture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return ExtractPreview(f, fi.Size())
}

// ExtractPreview returns the preview image embedded in the 3MF
// archive read from r.
func ExtractPreview(r io.ReaderAt, size int64) (*picture.Picture, error) {
	archive, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("threemf: opening archive: %w", err)
	}

	thumb, err := archive.Open(thumbnailPath)
	if err != nil {
		return nil, fmt.Errorf("threemf: no preview at %s: %w", thumbnailPath, err)
	}
	defer thumb.Close()

	data, err := io.ReadAll(thumb)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("threemf: decoding preview: %w", err)
	}
	return picture.FromImage(img), nil
}
