package ee

import "math"

// Mat4 is a column-major 4x4 matrix: m[col][row].
type Mat4 [4][4]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns a * b.
func Mul(a, b Mat4) Mat4 {
	var r Mat4

	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			r[col][row] = a[0][row]*b[col][0] +
				a[1][row]*b[col][1] +
				a[2][row]*b[col][2] +
				a[3][row]*b[col][3]
		}
	}

	return r
}

// Apply returns m * v.
func (m Mat4) Apply(v [4]float32) [4]float32 {
	var r [4]float32

	for row := 0; row < 4; row++ {
		r[row] = m[0][row]*v[0] + m[1][row]*v[1] + m[2][row]*v[2] + m[3][row]*v[3]
	}

	return r
}

func sinCos(rad float32) (float32, float32) {
	s, c := math.Sincos(float64(rad))
	return float32(s), float32(c)
}

// RotateY rotates around the Y axis.
func RotateY(rad float32) Mat4 {
	s, c := sinCos(rad)

	return Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateX rotates around the X axis.
func RotateX(rad float32) Mat4 {
	s, c := sinCos(rad)

	return Mat4{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

// TranslateZ moves along the Z axis.
func TranslateZ(tz float32) Mat4 {
	m := Identity()
	m[3][2] = tz

	return m
}

// Perspective is a right-handed projection with clip-space Z in [-1, 1].
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := float32(1 / math.Tan(float64(fovY/2)))
	rng := near - far

	return Mat4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / rng, -1},
		{0, 0, 2 * far * near / rng, 0},
	}
}
