// Package main builds the C-ABI library for shell-extension hosts:
//
//	go build -buildmode=c-shared -o libstl2thumbnail.so ./capi
//
// All exports use a caller-allocated-buffer pattern: the caller
// passes a destination pointer and its capacity, the callee writes
// RGBA pixels and returns the number of bytes written, or a negative
// error code. No ownership crosses the boundary.
package main

/*
#include <stdint.h>
#include <stddef.h>
*/
import "C"

import (
	"time"
	"unsafe"

	stl2thumbnail "github.com/krepa098/stl2thumbnail"
	"github.com/krepa098/stl2thumbnail/internal/gcode"
	"github.com/krepa098/stl2thumbnail/internal/threemf"
)

// error codes returned by the exported functions
const (
	errInvalidArgument = -1
	errParseFailed     = -2
	errBufferTooSmall  = -3
)

// render flag bits of stl2thumbnail_render_stl
const (
	flagSizeHint = 1 << 0
	flagGrid     = 1 << 1
)

// stl2thumbnail_render_stl renders the STL at path into out, an RGBA
// buffer of at least width*height*4 bytes. timeoutMS bounds the
// render time (0 disables). Returns the number of bytes written or a
// negative error code.
//
//export stl2thumbnail_render_stl
func stl2thumbnail_render_stl(path *C.char, width, height, flags C.uint32_t, timeoutMS C.uint64_t, out *C.uint8_t, capacity C.size_t) C.int64_t {
	if path == nil || out == nil {
		return errInvalidArgument
	}

	parser, err := stl2thumbnail.ParserFromFile(C.GoString(path), true)
	if err != nil {
		return errParseFailed
	}
	defer parser.Close()

	mesh, err := parser.ReadAll()
	if err != nil {
		return errParseFailed
	}

	settings := stl2thumbnail.DefaultSettings()
	settings.SizeHint = flags&flagSizeHint != 0
	settings.Grid = flags&flagGrid != 0
	settings.Timeout = time.Duration(timeoutMS) * time.Millisecond

	pic := stl2thumbnail.RenderStill(int(width), int(height), mesh, settings)
	return copyOut(pic.Data(), out, capacity)
}

// stl2thumbnail_extract_gcode_preview extracts the largest preview
// embedded in the GCODE or BGCODE file at path, scales it to fit
// width x height, and writes the RGBA pixels into out. Returns the
// number of bytes written or a negative error code.
//
//export stl2thumbnail_extract_gcode_preview
func stl2thumbnail_extract_gcode_preview(path *C.char, width, height C.uint32_t, out *C.uint8_t, capacity C.size_t) C.int64_t {
	if path == nil || out == nil {
		return errInvalidArgument
	}

	previews, err := gcode.ExtractPreviewsFromFile(C.GoString(path))
	if err != nil || len(previews) == 0 {
		return errParseFailed
	}

	preview := previews[len(previews)-1]
	preview.ResizeKeepAspectRatio(int(width), int(height))
	return copyOut(preview.Data(), out, capacity)
}

// stl2thumbnail_extract_3mf_preview extracts the preview embedded in
// the 3MF file at path, scales it to fit width x height, and writes
// the RGBA pixels into out. Returns the number of bytes written or a
// negative error code.
//
//export stl2thumbnail_extract_3mf_preview
func stl2thumbnail_extract_3mf_preview(path *C.char, width, height C.uint32_t, out *C.uint8_t, capacity C.size_t) C.int64_t {
	if path == nil || out == nil {
		return errInvalidArgument
	}

	preview, err := threemf.ExtractPreviewFromFile(C.GoString(path))
	if err != nil {
		return errParseFailed
	}

	preview.ResizeKeepAspectRatio(int(width), int(height))
	return copyOut(preview.Data(), out, capacity)
}

func copyOut(data []uint8, out *C.uint8_t, capacity C.size_t) C.int64_t {
	if len(data) > int(capacity) {
		return errBufferTooSmall
	}
	dst := unsafe.Slice((*uint8)(out), int(capacity))
	copy(dst, data)
	return C.int64_t(len(data))
}

func main() {}
