package gif

import (
	"math"

	"github.com/sarchlab/vupipe/gs"
	"github.com/sarchlab/vupipe/qword"
	"github.com/sarchlab/vupipe/vu"
)

// A Primitive is the vertex stream of one tag.
type Primitive struct {
	Tag      Tag
	IIP      bool
	Vertices []gs.Vertex
}

// Triangles groups the vertices into consecutive, non-overlapping triangles.
// Trailing vertices that do not fill a triangle are dropped.
func (p Primitive) Triangles() []gs.Triangle {
	tris := make([]gs.Triangle, 0, len(p.Vertices)/3)
	for i := 0; i+2 < len(p.Vertices); i += 3 {
		tris = append(tris, gs.Triangle{p.Vertices[i], p.Vertices[i+1], p.Vertices[i+2]})
	}

	return tris
}

// TagAt reads the tag stored in data-memory slot base.
func TagAt(mem *vu.DataMemory, base int) Tag {
	return Tag(qword.FromFloats(mem[base]))
}

// Parse decodes the tag at slot base and the register data after it. A tag
// with no loops or a non-packed format yields no primitives. Decoding stops
// at the end of data memory; a vertex cut short there is dropped.
func Parse(mem *vu.DataMemory, base int) []Primitive {
	if base < 0 || base >= vu.DataMemSize {
		return nil
	}

	tag := TagAt(mem, base)
	if tag.NLoop() == 0 || tag.Flag() != FlagPacked {
		return nil
	}

	prim := Primitive{
		Tag:      tag,
		IIP:      tag.IIP(),
		Vertices: make([]gs.Vertex, 0, tag.NLoop()),
	}

	cur := base + 1
	nreg := tag.NReg()

	for loop := 0; loop < tag.NLoop(); loop++ {
		if cur+nreg > vu.DataMemSize {
			break
		}

		v := gs.Vertex{A: 255}
		for i := 0; i < nreg; i++ {
			decodeReg(&v, tag.Reg(i), mem[cur])
			cur++
		}

		prim.Vertices = append(prim.Vertices, v)
	}

	return []Primitive{prim}
}

func decodeReg(v *gs.Vertex, reg uint8, data vu.Vector) {
	switch reg {
	case RegRGBAQ:
		v.R = colorChannel(data[0])
		v.G = colorChannel(data[1])
		v.B = colorChannel(data[2])
		v.A = colorChannel(data[3])
	case RegXYZ2:
		v.X = vu.Fixed4ToInt(data[0])
		v.Y = vu.Fixed4ToInt(data[1])
	}
}

// colorChannel scales a [0, 1] float to a byte, rounding half up. NaN maps to
// 0.
func colorChannel(f float32) uint8 {
	if f != f {
		return 0
	}

	f = float32(math.Min(math.Max(float64(f), 0), 1))

	return uint8(f*255 + 0.5)
}
