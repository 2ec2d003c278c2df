package ee

// A Vertex is one corner of a cube face.
type Vertex struct {
	Pos    [3]float32
	Normal [3]float32
	Color  [3]float32
}

var (
	red     = [3]float32{1, 0.1, 0.1}
	cyan    = [3]float32{0.1, 1, 1}
	green   = [3]float32{0.1, 1, 0.1}
	magenta = [3]float32{1, 0.1, 1}
	blue    = [3]float32{0.1, 0.1, 1}
	yellow  = [3]float32{1, 1, 0.1}
)

func face(normal, color [3]float32, corners ...[3]float32) []Vertex {
	vs := make([]Vertex, len(corners))
	for i, c := range corners {
		vs[i] = Vertex{Pos: c, Normal: normal, Color: color}
	}

	return vs
}

// Cube returns the 36 vertices of a unit cube, two counter-clockwise
// triangles per face.
func Cube() []Vertex {
	var vs []Vertex

	vs = append(vs, face([3]float32{1, 0, 0}, red,
		[3]float32{1, -1, 1}, [3]float32{1, 1, 1}, [3]float32{1, 1, -1},
		[3]float32{1, -1, 1}, [3]float32{1, 1, -1}, [3]float32{1, -1, -1})...)
	vs = append(vs, face([3]float32{-1, 0, 0}, cyan,
		[3]float32{-1, -1, -1}, [3]float32{-1, 1, -1}, [3]float32{-1, 1, 1},
		[3]float32{-1, -1, -1}, [3]float32{-1, 1, 1}, [3]float32{-1, -1, 1})...)
	vs = append(vs, face([3]float32{0, 1, 0}, green,
		[3]float32{-1, 1, 1}, [3]float32{-1, 1, -1}, [3]float32{1, 1, -1},
		[3]float32{-1, 1, 1}, [3]float32{1, 1, -1}, [3]float32{1, 1, 1})...)
	vs = append(vs, face([3]float32{0, -1, 0}, magenta,
		[3]float32{-1, -1, -1}, [3]float32{-1, -1, 1}, [3]float32{1, -1, 1},
		[3]float32{-1, -1, -1}, [3]float32{1, -1, 1}, [3]float32{1, -1, -1})...)
	vs = append(vs, face([3]float32{0, 0, 1}, blue,
		[3]float32{-1, -1, 1}, [3]float32{1, -1, 1}, [3]float32{1, 1, 1},
		[3]float32{-1, -1, 1}, [3]float32{1, 1, 1}, [3]float32{-1, 1, 1})...)
	vs = append(vs, face([3]float32{0, 0, -1}, yellow,
		[3]float32{1, -1, -1}, [3]float32{-1, -1, -1}, [3]float32{-1, 1, -1},
		[3]float32{1, -1, -1}, [3]float32{-1, 1, -1}, [3]float32{1, 1, -1})...)

	return vs
}
