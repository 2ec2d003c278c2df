package ee

import "math"

// Builder can build payload producers.
type Builder struct {
	base       uint32
	startFrame uint64
	distance   float32
	light      [4]float32
	viewport   [4]float32
}

// MakeBuilder creates a builder with the default camera, light and viewport.
func MakeBuilder() Builder {
	return Builder{
		base:     DefaultPacketBase,
		distance: 3,
		light:    [4]float32{0.577, 0.577, 0.577, 0.2},
		viewport: [4]float32{320, 224, 0, 0},
	}
}

// WithPacketBase sets the byte address the packet is written to. It must be
// quadword aligned.
func (b Builder) WithPacketBase(addr uint32) Builder {
	b.base = addr
	return b
}

// WithStartFrame sets the frame index of the first packet.
func (b Builder) WithStartFrame(frame uint64) Builder {
	b.startFrame = frame
	return b
}

// WithCameraDistance sets how far the camera sits from the cube.
func (b Builder) WithCameraDistance(d float32) Builder {
	b.distance = d
	return b
}

// WithLight sets the light direction and the ambient term in w.
func (b Builder) WithLight(light [4]float32) Builder {
	b.light = light
	return b
}

// WithViewport sets the half-extents of the screen in pixels.
func (b Builder) WithViewport(halfWidth, halfHeight float32) Builder {
	b.viewport = [4]float32{halfWidth, halfHeight, 0, 0}
	return b
}

// Build creates a producer.
func (b Builder) Build() *Producer {
	if b.base%16 != 0 {
		panic("packet base must be quadword aligned")
	}

	return &Producer{
		base:     b.base,
		frame:    b.startFrame,
		distance: b.distance,
		fovY:     math.Pi / 3,
		aspect:   b.viewport[0] / b.viewport[1],
		near:     0.1,
		far:      100,
		light:    b.light,
		viewport: b.viewport,
	}
}
