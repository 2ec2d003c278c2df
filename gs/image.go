package gs

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// ColorModel implements image.Image.
func (f *Framebuffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// At implements image.Image.
func (f *Framebuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(f.Bounds())) {
		return color.NRGBA{}
	}

	p := f.Pixel(x, y)

	return color.NRGBA{
		R: uint8(p),
		G: uint8(p >> 8),
		B: uint8(p >> 16),
		A: uint8(p >> 24),
	}
}

// Snapshot copies the framebuffer into a new image, scaled by an integer
// factor with nearest-neighbour sampling.
func (f *Framebuffer) Snapshot(scale int) *image.NRGBA {
	if scale < 1 {
		scale = 1
	}

	src := f.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, src.Dx()*scale, src.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), f, src, draw.Src, nil)

	return dst
}

// WritePNG encodes a scaled snapshot of the framebuffer as PNG.
func (f *Framebuffer) WritePNG(w io.Writer, scale int) error {
	if err := png.Encode(w, f.Snapshot(scale)); err != nil {
		return fmt.Errorf("encoding framebuffer: %w", err)
	}

	return nil
}
