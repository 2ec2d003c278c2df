// Package gs implements the software rasterizer that fills the framebuffer
// from shaded triangles.
package gs

import (
	"github.com/sarchlab/vupipe/sim"
)

// Default framebuffer geometry and background.
const (
	Width      = 640
	Height     = 448
	ClearColor = uint32(0xFF080A14)
)

// HookPosTriangleDrawn is triggered after a triangle is rasterized. Item is
// the Triangle and Detail the number of pixels written.
var HookPosTriangleDrawn = &sim.HookPos{Name: "GS Triangle Drawn"}

// HookPosTriangleCulled is triggered when a triangle is degenerate or
// back-facing. Item is the Triangle.
var HookPosTriangleCulled = &sim.HookPos{Name: "GS Triangle Culled"}

// A Vertex is a shaded vertex in pixel coordinates.
type Vertex struct {
	R, G, B, A uint8
	X, Y       int32
}

// A Triangle is three vertices in submission order.
type Triangle [3]Vertex

// PackABGR packs a colour as 0xAABBGGRR.
func PackABGR(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// Framebuffer is a width x height array of 0xAABBGGRR pixels.
type Framebuffer struct {
	*sim.ComponentBase

	width, height int
	pixels        []uint32
	clearColor    uint32

	trianglesDrawn  uint64
	trianglesCulled uint64
}

// Width returns the number of pixels per row.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the number of rows.
func (f *Framebuffer) Height() int {
	return f.height
}

// Pixels returns the backing pixel slice, row-major. Callers must not modify
// it.
func (f *Framebuffer) Pixels() []uint32 {
	return f.pixels
}

// Pixel returns the pixel at (x, y).
func (f *Framebuffer) Pixel(x, y int) uint32 {
	return f.pixels[y*f.width+x]
}

// ClearColor returns the colour the framebuffer was built with.
func (f *Framebuffer) ClearColor() uint32 {
	return f.clearColor
}

// Clear fills every pixel with color.
func (f *Framebuffer) Clear(color uint32) {
	for i := range f.pixels {
		f.pixels[i] = color
	}
}

// TrianglesDrawn returns the number of triangles rasterized so far.
func (f *Framebuffer) TrianglesDrawn() uint64 {
	return f.trianglesDrawn
}

// TrianglesCulled returns the number of triangles discarded so far.
func (f *Framebuffer) TrianglesCulled() uint64 {
	return f.trianglesCulled
}
