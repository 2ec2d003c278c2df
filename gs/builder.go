package gs

import "github.com/sarchlab/vupipe/sim"

// Builder can build framebuffers.
type Builder struct {
	width, height int
	clearColor    uint32
}

// MakeBuilder creates a builder for a 640x448 framebuffer.
func MakeBuilder() Builder {
	return Builder{
		width:      Width,
		height:     Height,
		clearColor: ClearColor,
	}
}

// WithSize sets the framebuffer size in pixels.
func (b Builder) WithSize(width, height int) Builder {
	b.width = width
	b.height = height

	return b
}

// WithClearColor sets the initial pixel value.
func (b Builder) WithClearColor(c uint32) Builder {
	b.clearColor = c
	return b
}

// Build creates a framebuffer filled with the clear colour.
func (b Builder) Build(name string) *Framebuffer {
	if b.width <= 0 || b.height <= 0 {
		panic("framebuffer size must be positive")
	}

	f := &Framebuffer{
		ComponentBase: sim.NewComponentBase(name),
		width:         b.width,
		height:        b.height,
		pixels:        make([]uint32, b.width*b.height),
		clearColor:    b.clearColor,
	}
	f.Clear(b.clearColor)

	return f
}
