package gcode

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"image"
	_ "image/jpeg" // preview decoding
	_ "image/png"  // preview decoding
	"strings"

	"github.com/krepa098/stl2thumbnail/internal/picture"
)

// maxScanLines bounds the header scan. GCODE files can be huge, and
// slicers place previews at the top of the file.
const maxScanLines = 2000

// extractASCII collects the base64 thumbnail sections of a plain-text
// GCODE file:
//
//	; thumbnail begin <width>x<height> <len>
//	; <base64>
//	; ...
//	; thumbnail end
//
// Sections that fail to decode are skipped.
func extractASCII(data []byte) ([]*picture.Picture, error) {
	var encoded []string
	var current strings.Builder
	inThumbnail := false

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for lines := 0; scanner.Scan() && lines < maxScanLines; lines++ {
		line := strings.TrimSpace(scanner.Text())

		if inThumbnail && (strings.HasPrefix(line, "; thumbnail end") || !strings.HasPrefix(line, ";")) {
			inThumbnail = false
			if current.Len() > 0 {
				encoded = append(encoded, current.String())
				current.Reset()
			}
			continue
		}

		if inThumbnail {
			current.WriteString(strings.TrimSpace(strings.TrimPrefix(line, ";")))
			continue
		}

		if strings.HasPrefix(line, "; thumbnail begin") {
			inThumbnail = true
		}
	}

	var pictures []*picture.Picture
	for _, b64 := range encoded {
		raw, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			continue
		}
		img, _, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			continue
		}
		pictures = append(pictures, picture.FromImage(img))
	}
	return pictures, nil
}
