package stl2thumbnail

import (
	"github.com/krepa098/stl2thumbnail/internal/geometry"
	"github.com/krepa098/stl2thumbnail/internal/picture"
	"github.com/krepa098/stl2thumbnail/internal/raster"
	"github.com/krepa098/stl2thumbnail/internal/stl"
)

// Re-exported building blocks of the rendering pipeline.
type (
	// Color is an RGBA color with straight alpha.
	Color = picture.Color
	// Picture is the RGBA raster a render produces.
	Picture = picture.Picture
	// Vec3 is a 3-component float32 vector.
	Vec3 = geometry.Vec3
	// Triangle is a mesh facet.
	Triangle = geometry.Triangle
	// AABB is an axis-aligned bounding box.
	AABB = geometry.AABB

	// Parser reads triangles from an STL byte source.
	Parser = stl.Parser
	// Mesh is a fully buffered triangle sequence.
	Mesh = stl.Mesh
	// LazyMesh streams triangles from a parser on every pass.
	LazyMesh = stl.LazyMesh

	// MeshSource yields triangles to the raster backend.
	MeshSource = raster.Source
	// RasterBackend renders meshes into pictures.
	RasterBackend = raster.RasterBackend
	// RenderOptions configures a render pass.
	RenderOptions = raster.RenderOptions
)

// NewColor creates a color from 8-bit channel values.
func NewColor(r, g, b, a uint8) Color {
	return picture.NewColor(r, g, b, a)
}

// ParseColor parses a color from an "RRGGBBAA" hex string.
func ParseColor(s string) (Color, error) {
	return picture.ParseColor(s)
}

// NewParser creates a parser over a seekable byte source.
var NewParser = stl.NewParser

// ParserFromFile opens an STL file for parsing.
var ParserFromFile = stl.FromFile

// ParserFromFileMapped memory-maps an STL file for low-memory
// streaming.
var ParserFromFileMapped = stl.FromFileMapped

// NewLazyMesh wraps a parser for streamed iteration.
var NewLazyMesh = stl.NewLazyMesh

// NewRasterBackend creates a backend rendering width x height
// pictures.
var NewRasterBackend = raster.New
