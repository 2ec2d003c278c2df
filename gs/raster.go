package gs

import "github.com/sarchlab/vupipe/sim"

// edge is the edge function of p against a->b. Front-facing triangles in
// screen space have a negative doubled area.
func edge(a, b Vertex, px, py int64) int64 {
	ax, ay := int64(a.X), int64(a.Y)
	bx, by := int64(b.X), int64(b.Y)

	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// DrawTriangle rasterizes t with Gouraud-shaded RGB and returns the number of
// pixels written. Triangles with a non-negative doubled area are culled.
// Pixels are sampled at integer coordinates, bounds inclusive, and written
// opaque without blending.
func (f *Framebuffer) DrawTriangle(t Triangle) int {
	v0, v1, v2 := t[0], t[1], t[2]

	area := edge(v0, v1, int64(v2.X), int64(v2.Y))
	if area >= 0 {
		f.trianglesCulled++
		f.invoke(HookPosTriangleCulled, t, nil)

		return 0
	}

	minX, maxX := bounds(v0.X, v1.X, v2.X, f.width)
	minY, maxY := bounds(v0.Y, v1.Y, v2.Y, f.height)

	written := 0
	for y := minY; y <= maxY; y++ {
		row := y * f.width

		for x := minX; x <= maxX; x++ {
			px, py := int64(x), int64(y)

			w0 := edge(v1, v2, px, py)
			w1 := edge(v2, v0, px, py)
			w2 := edge(v0, v1, px, py)

			if w0 > 0 || w1 > 0 || w2 > 0 {
				continue
			}

			f.pixels[row+x] = PackABGR(
				lerp(w0, w1, w2, area, v0.R, v1.R, v2.R),
				lerp(w0, w1, w2, area, v0.G, v1.G, v2.G),
				lerp(w0, w1, w2, area, v0.B, v1.B, v2.B),
				0xFF,
			)
			written++
		}
	}

	f.trianglesDrawn++
	f.invoke(HookPosTriangleDrawn, t, written)

	return written
}

// lerp weights three channel values by the edge values of an inside pixel.
// All edge values and the area are non-positive, so the quotient is in range.
func lerp(w0, w1, w2, area int64, c0, c1, c2 uint8) uint8 {
	sum := w0*int64(c0) + w1*int64(c1) + w2*int64(c2)
	return uint8(sum / area)
}

// bounds returns the inclusive range of a, b and c clipped to [0, size). An
// empty range has min > max.
func bounds(a, b, c int32, size int) (int, int) {
	lo := min(a, b, c)
	hi := max(a, b, c)

	if lo < 0 {
		lo = 0
	}

	if int(hi) > size-1 {
		hi = int32(size - 1)
	}

	return int(lo), int(hi)
}

func (f *Framebuffer) invoke(pos *sim.HookPos, item, detail interface{}) {
	if f.NumHooks() == 0 {
		return
	}

	f.InvokeHook(sim.HookCtx{
		Domain: f,
		Pos:    pos,
		Item:   item,
		Detail: detail,
	})
}
