package threemf

import (
	"archive/zip"
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"
)

// archiveWith builds an in-memory ZIP holding the given files.
func archiveWith(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, data := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtractPreview(t *testing.T) {
	data := archiveWith(t, map[string][]byte{
		"3D/3dmodel.model":       []byte("<model/>"),
		"Metadata/thumbnail.png": encodePNG(t, 40, 30),
	})

	pic, err := ExtractPreview(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	if pic.Width() != 40 || pic.Height() != 30 {
		t.Errorf("preview size = %dx%d, want 40x30", pic.Width(), pic.Height())
	}
}

func TestExtractPreviewMissingThumbnail(t *testing.T) {
	data := archiveWith(t, map[string][]byte{
		"3D/3dmodel.model": []byte("<model/>"),
	})

	if _, err := ExtractPreview(bytes.NewReader(data), int64(len(data))); err == nil {
		t.Fatal("expected an error for an archive without a preview")
	}
}

func TestExtractPreviewNotAnArchive(t *testing.T) {
	r := strings.NewReader("plain text, not a zip archive")
	if _, err := ExtractPreview(r, int64(r.Len())); err == nil {
		t.Fatal("expected an error for a non-zip payload")
	}
}
